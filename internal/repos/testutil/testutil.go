// Package testutil provides shared helpers for repo and service tests.
package testutil

import (
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/scripta/scripta-backend/internal/logger"
	"github.com/scripta/scripta-backend/internal/types"
)

// DB opens a file-backed sqlite database in the test's temp directory
// and migrates every model. The file is removed with the temp dir when
// the test finishes.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		tb.Fatalf("open sqlite: %v", err)
	}
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		tb.Fatalf("enable foreign keys: %v", err)
	}
	if err := db.AutoMigrate(
		&types.Swatch{},
		&types.LayerConfigSet{},
		&types.LayerConfig{},
		&types.Tpm{},
		&types.MaterialRecord{},
	); err != nil {
		tb.Fatalf("automigrate: %v", err)
	}

	tb.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// Logger returns a quiet logger suitable for tests.
func Logger(tb testing.TB) *logger.Logger {
	tb.Helper()

	log, err := logger.New("test")
	if err != nil {
		tb.Fatalf("new logger: %v", err)
	}
	tb.Cleanup(log.Sync)
	return log
}

// Str is a convenience for building *string literals in test fixtures.
func Str(s string) *string {
	return &s
}
