package repository

import (
	"gorm.io/gorm"

	"ytnote/internal/note/domain"
)

// gormNoteRepository implements NoteRepository using GORM.
// Each method is a self-contained statement chain: gorm checks a pooled
// connection out per statement and returns it when the statement finishes,
// so nothing is held across calls.
type gormNoteRepository struct {
	db *gorm.DB
}

// NewGormNoteRepository creates a new GORM-based NoteRepository
func NewGormNoteRepository(db *gorm.DB) NoteRepository {
	return &gormNoteRepository{db: db}
}

func (r *gormNoteRepository) ListAll() ([]domain.Note, error) {
	var notes []domain.Note
	err := r.db.Order("id DESC").Find(&notes).Error
	return notes, err
}

func (r *gormNoteRepository) FindByURL(url string) (*domain.Note, error) {
	var note domain.Note
	err := r.db.Where("youtube_url = ?", url).First(&note).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &note, nil
}

func (r *gormNoteRepository) Upsert(url, title, transcript, summary string) (*domain.Note, error) {
	existing, err := r.FindByURL(url)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		existing.Title = title
		existing.Transcript = transcript
		existing.Summary = summary
		existing.Note = ""
		if err := r.db.Save(existing).Error; err != nil {
			return nil, err
		}
		return existing, nil
	}

	note := domain.Note{
		YoutubeURL: url,
		Title:      title,
		Transcript: transcript,
		Summary:    summary,
		Note:       "",
	}
	if err := r.db.Create(&note).Error; err != nil {
		return nil, err
	}
	return &note, nil
}
