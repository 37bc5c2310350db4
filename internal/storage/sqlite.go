package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"go-evaltrack/internal/employee"
	"go-evaltrack/internal/evaluation"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open opens (or creates) the embedded database file and migrates the
// schema. Every mutation afterwards is a durable SQLite commit, so there is
// no separate snapshot step. A file that cannot be read as a database makes
// Open fail; the caller is expected to refuse to start serving.
func Open(path string) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_foreign_keys=on", path)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.AutoMigrate(&employee.Employee{}, &evaluation.Evaluation{}); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	return db, nil
}
