package db

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/scripta/scripta-backend/internal/logger"
	"github.com/scripta/scripta-backend/internal/types"
)

// SQLiteService owns the single-file database that survives restarts. The
// masterdata_databricks table is managed separately by the masterdata repo,
// its schema follows the warehouse dataset rather than these CRUD models.
type SQLiteService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSQLiteService(dbPath string, log *logger.Logger) (*SQLiteService, error) {
	serviceLog := log.With("service", "SQLiteService")

	serviceLog.Info("Opening SQLite database...", "path", dbPath)
	gdb, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		serviceLog.Error("Failed to open SQLite database", "error", err)
		return nil, fmt.Errorf("open sqlite database at %s: %w", dbPath, err)
	}

	if err := gdb.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		serviceLog.Error("Failed to enable foreign keys", "error", err)
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	return &SQLiteService{db: gdb, log: serviceLog}, nil
}

func (s *SQLiteService) AutoMigrateAll() error {
	s.log.Info("Auto migrating sqlite tables...")
	err := s.db.AutoMigrate(
		&types.Swatch{},
		&types.LayerConfigSet{},
		&types.LayerConfig{},
		&types.Tpm{},
	)
	if err != nil {
		s.log.Error("Auto migration failed for sqlite tables", "error", err)
		return err
	}
	return nil
}

func (s *SQLiteService) DB() *gorm.DB {
	return s.db
}

func (s *SQLiteService) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
