package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"ytnote/internal/note/domain"
)

// schemaMigration records which migration steps have already been applied.
type schemaMigration struct {
	Version int `gorm:"primaryKey"`
}

func (schemaMigration) TableName() string {
	return "schema_migrations"
}

type migration struct {
	version int
	name    string
	apply   func(db *gorm.DB) error
}

// migrations run in order; each step must be safe to apply against data
// written by the previous ones.
var migrations = []migration{
	{
		version: 1,
		name:    "create youtube_note table",
		apply: func(db *gorm.DB) error {
			return db.AutoMigrate(&domain.Note{})
		},
	},
	{
		version: 2,
		name:    "add title column to youtube_note",
		apply: func(db *gorm.DB) error {
			m := db.Migrator()
			if m.HasColumn(&domain.Note{}, "title") {
				return nil
			}
			return m.AddColumn(&domain.Note{}, "title")
		},
	},
}

// Migrate applies any pending migration steps, recording each applied
// version so reruns are no-ops. It must complete before the server
// accepts traffic.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&schemaMigration{}); err != nil {
		return fmt.Errorf("create schema_migrations table: %w", err)
	}

	var current int
	row := db.Model(&schemaMigration{}).Select("COALESCE(MAX(version), 0)").Row()
	if err := row.Scan(&current); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		log.Printf("Applying migration %d: %s", m.version, m.name)
		if err := m.apply(db); err != nil {
			return fmt.Errorf("migration %d (%s): %w", m.version, m.name, err)
		}
		if err := db.Create(&schemaMigration{Version: m.version}).Error; err != nil {
			return fmt.Errorf("record migration %d: %w", m.version, err)
		}
	}
	return nil
}
