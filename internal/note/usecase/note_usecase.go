package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"ytnote/internal/note/domain"
	"ytnote/internal/note/repository"
	"ytnote/pkg/ai"
	"ytnote/pkg/youtube"
)

// TranscriptError is a transcript-provider failure with a user-facing
// message already chosen by classifyTranscriptError. The delivery layer
// maps it to a 400 response.
type TranscriptError struct {
	Message string
	Err     error
}

func (e *TranscriptError) Error() string { return e.Message }

func (e *TranscriptError) Unwrap() error { return e.Err }

type noteUsecase struct {
	transcripts TranscriptFetcher
	summarizer  ai.Summarizer
	repo        repository.NoteRepository
}

// NewNoteUsecase creates the pipeline with its external collaborators
// injected, so tests can swap in fakes.
func NewNoteUsecase(transcripts TranscriptFetcher, summarizer ai.Summarizer, repo repository.NoteRepository) NoteUsecase {
	return &noteUsecase{
		transcripts: transcripts,
		summarizer:  summarizer,
		repo:        repo,
	}
}

func (u *noteUsecase) CreateFromURL(ctx context.Context, youtubeURL string) (*domain.Note, error) {
	videoID, err := youtube.ExtractVideoID(youtubeURL)
	if err != nil {
		return nil, err
	}

	segments, err := u.transcripts.Fetch(ctx, videoID)
	if err != nil {
		log.Printf("Failed to get transcript for %s: %v", videoID, err)
		return nil, &TranscriptError{Message: classifyTranscriptError(err), Err: err}
	}
	transcript := youtube.FormatTranscript(segments)

	summary, err := u.summarizer.SummarizeTranscript(ctx, transcript)
	if err != nil {
		return nil, fmt.Errorf("summarize transcript: %w", err)
	}
	summary = normalizeSummary(summary)
	title := extractTitle(summary)

	// Two concurrent requests for the same URL can race here; the later
	// commit wins, which is acceptable for latest-fetch-wins semantics.
	note, err := u.repo.Upsert(youtubeURL, title, transcript, summary)
	if err != nil {
		return nil, fmt.Errorf("save note: %w", err)
	}
	return note, nil
}

func (u *noteUsecase) ListNotes() ([]domain.Note, error) {
	return u.repo.ListAll()
}

// classifyTranscriptError rewrites provider failures into user-facing
// messages. Matching on error text is fragile, so all of it lives here;
// these three cases are the whole contract.
func classifyTranscriptError(err error) string {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "Could not retrieve a transcript"):
		return "No transcript available for this video. The video might not have captions or transcripts enabled."
	case strings.Contains(msg, "Video unavailable"):
		return "Video is unavailable or does not exist."
	default:
		return fmt.Sprintf("Failed to get transcript: %s", msg)
	}
}
