package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ytnote/internal/note/domain"
	"ytnote/pkg/config"
)

// NewSQLiteConnection opens the database file named by the config, creating
// its containing directory first if needed.
func NewSQLiteConnection(cfg *config.Config) (*gorm.DB, error) {
	dir := filepath.Dir(cfg.DBPath)
	if dir != "." {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create database directory %s: %w", dir, err)
			}
			log.Printf("Created database directory: %s", dir)
		}
	}

	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{
		NowFunc: domain.Now,
		Logger:  logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", cfg.DBPath, err)
	}
	return db, nil
}
