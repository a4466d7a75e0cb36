package usecase

import (
	"context"

	"ytnote/internal/note/domain"
	"ytnote/pkg/youtube"
)

// TranscriptFetcher fetches the caption segments for a video id.
// *youtube.Client satisfies this; tests substitute a fake.
type TranscriptFetcher interface {
	Fetch(ctx context.Context, videoID string) ([]youtube.Segment, error)
}

// NoteUsecase defines the interface for note business logic
type NoteUsecase interface {
	// CreateFromURL runs the full pipeline for one YouTube URL:
	// extract the video id, fetch and format the transcript, summarize it,
	// derive a title, and upsert the note keyed by the original URL.
	CreateFromURL(ctx context.Context, youtubeURL string) (*domain.Note, error)

	// ListNotes returns all saved notes, newest first
	ListNotes() ([]domain.Note, error)
}
