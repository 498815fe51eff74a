package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenGorm opens a SQL database for the key-value gateway.
// driver is "sqlite" or "postgres". For sqlite an empty dsn means
// <storageDir>/joinerypro.db.
func OpenGorm(driver, dsn, storageDir string, debug bool) (*gorm.DB, error) {
	logLevel := logger.Silent
	if debug {
		logLevel = logger.Info
	}
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logLevel)}

	var dialector gorm.Dialector
	switch strings.ToLower(driver) {
	case "sqlite":
		if dsn == "" {
			if err := os.MkdirAll(storageDir, 0o755); err != nil {
				return nil, fmt.Errorf("create storage dir: %w", err)
			}
			dsn = filepath.Join(storageDir, "joinerypro.db")
		}
		dialector = sqlite.Open(dsn)
	case "postgres":
		if dsn == "" {
			return nil, fmt.Errorf("DATABASE_DSN is required for postgres")
		}
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported sql driver %q", driver)
	}

	db, err := gorm.Open(dialector, cfg)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if err := db.Exec("SELECT 1").Error; err != nil {
		return nil, fmt.Errorf("db ping failed: %w", err)
	}
	log.Printf("[storage][gorm] connected driver=%s", driver)
	return db, nil
}
