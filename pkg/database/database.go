package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"pretty_exam_backend/internal/config"
	"pretty_exam_backend/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB opens the single-file SQLite store with foreign keys enforced and
// declares the schema. Cascades (options with their question, answers with
// their result) and the category RESTRICT live in the DDL, so the pragma
// must stay on.
func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}

	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", cfg.Path)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Category{},
		&model.Question{},
		&model.Option{},
		&model.Exam{},
		&model.Result{},
		&model.UserAnswer{},
	)
}
