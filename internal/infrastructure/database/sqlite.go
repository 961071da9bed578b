package database

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/sangkips/abs-inventory-api/internal/config"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const MemoryPath = ":memory:"

// NewSQLiteDB opens an embedded SQLite database for local runs and tests.
// A single connection is used: an in-memory database lives only as long as
// its connection, and SQLite serialises writers anyway.
func NewSQLiteDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	path := cfg.SQLitePath
	if path == "" {
		path = MemoryPath
	}

	db, err := gorm.Open(sqlite.Open(sqliteDSN(path)), gormConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	slog.Info("opened SQLite database", "path", path)
	return db, nil
}

func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on&_busy_timeout=5000"
}
