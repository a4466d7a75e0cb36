package repository

import "ytnote/internal/note/domain"

// NoteRepository defines the interface for note data access
type NoteRepository interface {
	// ListAll returns every note, newest first (id descending)
	ListAll() ([]domain.Note, error)

	// FindByURL finds the note stored for a YouTube URL, or nil
	FindByURL(url string) (*domain.Note, error)

	// Upsert overwrites the note stored for the URL, or inserts a new one.
	// Either way the user's note text is reset to empty and the persisted
	// row (with assigned id and timestamps) is returned.
	Upsert(url, title, transcript, summary string) (*domain.Note, error)
}
