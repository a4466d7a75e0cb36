package domain

import "time"

// jakarta is the fixed UTC+7 offset all note timestamps are recorded in.
var jakarta = time.FixedZone("UTC+7", 7*60*60)

// Now returns the current time in the fixed UTC+7 offset.
// Wired into gorm as NowFunc so created_at/updated_at use the same clock.
func Now() time.Time {
	return time.Now().In(jakarta)
}

// Note is one saved YouTube video: the original URL, its fetched transcript,
// the AI-generated summary, and a free-text note the user can edit.
// At most one row exists per youtube_url; a re-fetch overwrites the row
// and clears the note text.
type Note struct {
	ID         uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	YoutubeURL string    `json:"youtube_url" gorm:"column:youtube_url;not null"`
	Title      string    `json:"title"`
	Transcript string    `json:"transcript" gorm:"type:text"`
	Summary    string    `json:"summary" gorm:"type:text"`
	Note       string    `json:"note" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Note) TableName() string {
	return "youtube_note"
}
