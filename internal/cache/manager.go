package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/scripta/scripta-backend/internal/logger"
	"github.com/scripta/scripta-backend/internal/types"
)

// ErrNotInitialized is returned by every cache operation invoked before
// Initialize (or after Close).
var ErrNotInitialized = errors.New("masterdata cache not initialized")

// Store is the read/write surface of the in-memory masterdata mirror.
type Store interface {
	Initialize() error
	BulkLoad(ctx context.Context, records []*types.MaterialRecord) (int, error)
	GetByMatnr8(ctx context.Context, matnr8 int64) (*types.MaterialRecord, error)
	GetAll(ctx context.Context, limit int) ([]*types.MaterialRecord, error)
	Stats(ctx context.Context) types.CacheStats
	Clear(ctx context.Context) error
	Close() error
}

// Manager holds the masterdata mirror in a private in-memory SQLite handle.
// The pool is pinned to a single connection so a replace transaction is never
// interleaved with reads, readers observe either the old or the new
// generation, never an empty table mid-swap.
type Manager struct {
	log *logger.Logger

	mu    sync.RWMutex
	db    *gorm.DB
	sqlDB *sql.DB
}

func NewManager(baseLog *logger.Logger) *Manager {
	return &Manager{log: baseLog.With("component", "MasterdataCache")}
}

// Initialize creates the in-memory schema and indexes. Calling it on an
// already-initialized cache is a no-op, a full reset is Close then Initialize.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.db != nil {
		m.log.Debug("Cache already initialized, skipping")
		return nil
	}

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		m.log.Error("Failed to open in-memory database", "error", err)
		return fmt.Errorf("open in-memory database: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return fmt.Errorf("access in-memory connection pool: %w", err)
	}
	// One connection keeps the :memory: database alive and serializes access.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)
	sqlDB.SetConnMaxIdleTime(0)

	if err := gdb.AutoMigrate(&types.MaterialRecord{}); err != nil {
		_ = sqlDB.Close()
		m.log.Error("Failed to create cache schema", "error", err)
		return fmt.Errorf("create cache schema: %w", err)
	}

	m.db = gdb
	m.sqlDB = sqlDB
	m.log.Info("In-memory masterdata cache initialized")
	return nil
}

// BulkLoad replaces the entire cache contents with records inside one
// transaction. An empty batch yields an empty cache.
func (m *Manager) BulkLoad(ctx context.Context, records []*types.MaterialRecord) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.db == nil {
		return 0, ErrNotInitialized
	}

	now := time.Now().UTC()
	for _, rec := range records {
		rec.CreatedAt = now
		rec.UpdatedAt = now
	}

	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM masterdata_databricks").Error; err != nil {
			return fmt.Errorf("clear cache table: %w", err)
		}
		if len(records) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(records, 200).Error; err != nil {
			return fmt.Errorf("insert cache records: %w", err)
		}
		return nil
	})
	if err != nil {
		m.log.Error("Bulk load into cache failed", "error", err)
		return 0, err
	}

	m.log.Info("Bulk loaded masterdata records into cache", "count", len(records))
	return len(records), nil
}

// GetByMatnr8 returns the record for the 8-digit material number, or nil when
// it is not cached.
func (m *Manager) GetByMatnr8(ctx context.Context, matnr8 int64) (*types.MaterialRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.db == nil {
		return nil, ErrNotInitialized
	}

	var rec types.MaterialRecord
	err := m.db.WithContext(ctx).Where("MATNR8 = ?", matnr8).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lookup MATNR8 %d: %w", matnr8, err)
	}
	return &rec, nil
}

// GetAll returns cached records ordered by MATNR8 ascending. A limit <= 0
// means no limit.
func (m *Manager) GetAll(ctx context.Context, limit int) ([]*types.MaterialRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.db == nil {
		return nil, ErrNotInitialized
	}

	q := m.db.WithContext(ctx).Order("MATNR8")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var results []*types.MaterialRecord
	if err := q.Find(&results).Error; err != nil {
		return nil, fmt.Errorf("scan cache table: %w", err)
	}
	return results, nil
}

// Stats never fails, storage errors degrade to a diagnostic payload so a
// health endpoint cannot be taken down by a broken cache handle.
func (m *Manager) Stats(ctx context.Context) types.CacheStats {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.db == nil {
		return types.CacheStats{Initialized: false}
	}

	var count int64
	if err := m.db.WithContext(ctx).Model(&types.MaterialRecord{}).Count(&count).Error; err != nil {
		m.log.Error("Failed to count cache records", "error", err)
		return types.CacheStats{Initialized: true, RecordCount: 0, Error: err.Error()}
	}

	stats := types.CacheStats{Initialized: true, RecordCount: count}
	if count > 0 {
		var stamps []time.Time
		err := m.db.WithContext(ctx).Model(&types.MaterialRecord{}).
			Order("updated_at DESC").Limit(1).Pluck("updated_at", &stamps).Error
		if err != nil {
			m.log.Error("Failed to read cache last_updated", "error", err)
			return types.CacheStats{Initialized: true, RecordCount: 0, Error: err.Error()}
		}
		if len(stamps) > 0 {
			stats.LastUpdated = &stamps[0]
		}
	}
	return stats
}

// Clear empties the table but keeps the schema.
func (m *Manager) Clear(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.db == nil {
		return ErrNotInitialized
	}

	if err := m.db.WithContext(ctx).Exec("DELETE FROM masterdata_databricks").Error; err != nil {
		m.log.Error("Failed to clear cache", "error", err)
		return fmt.Errorf("clear cache table: %w", err)
	}
	m.log.Info("In-memory cache cleared")
	return nil
}

// Close releases the in-memory database. Operations after Close fail with
// ErrNotInitialized until Initialize is called again.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.db == nil {
		return nil
	}

	err := m.sqlDB.Close()
	m.db = nil
	m.sqlDB = nil
	m.log.Info("In-memory cache closed")
	return err
}
