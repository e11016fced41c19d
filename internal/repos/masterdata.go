package repos

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/scripta/scripta-backend/internal/logger"
	"github.com/scripta/scripta-backend/internal/types"
)

// MasterdataRepo manages the durable masterdata_databricks table, the
// on-disk copy of the warehouse dataset that survives restarts. Records are
// only ever written wholesale by a refresh, there is no single-row mutation
// path.
type MasterdataRepo interface {
	EnsureSchema(ctx context.Context) error
	ReplaceAll(ctx context.Context, tx *gorm.DB, records []*types.MaterialRecord) (int64, error)
	ReadAll(ctx context.Context, tx *gorm.DB) ([]*types.MaterialRecord, error)
	Stats(ctx context.Context) *types.StoreStats
}

type masterdataRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMasterdataRepo(db *gorm.DB, baseLog *logger.Logger) MasterdataRepo {
	repoLog := baseLog.With("repo", "MasterdataRepo")
	return &masterdataRepo{db: db, log: repoLog}
}

// EnsureSchema creates the table and its indexes when absent. It never drops
// existing data and is safe to call on every startup and every refresh.
func (mr *masterdataRepo) EnsureSchema(ctx context.Context) error {
	if err := mr.db.WithContext(ctx).AutoMigrate(&types.MaterialRecord{}); err != nil {
		mr.log.Error("Failed to migrate masterdata table", "error", err)
		return fmt.Errorf("migrate masterdata_databricks: %w", err)
	}
	return nil
}

// ReplaceAll swaps the full table contents for records inside a single
// transaction, stamping updated_at on every row. Readers never observe the
// intermediate empty table.
func (mr *masterdataRepo) ReplaceAll(ctx context.Context, tx *gorm.DB, records []*types.MaterialRecord) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}

	now := time.Now().UTC()
	for _, rec := range records {
		rec.CreatedAt = now
		rec.UpdatedAt = now
	}

	err := transaction.WithContext(ctx).Transaction(func(txn *gorm.DB) error {
		if err := txn.Exec("DELETE FROM masterdata_databricks").Error; err != nil {
			return fmt.Errorf("clear masterdata table: %w", err)
		}
		if len(records) == 0 {
			return nil
		}
		if err := txn.CreateInBatches(records, 200).Error; err != nil {
			return fmt.Errorf("insert masterdata records: %w", err)
		}
		return nil
	})
	if err != nil {
		mr.log.Error("ReplaceAll failed", "error", err)
		return 0, err
	}

	mr.log.Info("Replaced masterdata table contents", "count", len(records))
	return int64(len(records)), nil
}

func (mr *masterdataRepo) ReadAll(ctx context.Context, tx *gorm.DB) ([]*types.MaterialRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}

	var results []*types.MaterialRecord
	if err := transaction.WithContext(ctx).Order("MATNR8").Find(&results).Error; err != nil {
		return nil, fmt.Errorf("read masterdata table: %w", err)
	}
	return results, nil
}

// Stats never returns an error, a missing table reports TableExists=false
// and storage failures degrade to the Error field.
func (mr *masterdataRepo) Stats(ctx context.Context) *types.StoreStats {
	if !mr.db.WithContext(ctx).Migrator().HasTable(&types.MaterialRecord{}) {
		return &types.StoreStats{TableExists: false}
	}

	var count int64
	if err := mr.db.WithContext(ctx).Model(&types.MaterialRecord{}).Count(&count).Error; err != nil {
		mr.log.Error("Failed to count masterdata records", "error", err)
		return &types.StoreStats{TableExists: true, Error: err.Error()}
	}

	stats := &types.StoreStats{TableExists: true, RecordCount: count}
	if count > 0 {
		var stamps []time.Time
		err := mr.db.WithContext(ctx).Model(&types.MaterialRecord{}).
			Order("updated_at DESC").Limit(1).Pluck("updated_at", &stamps).Error
		if err != nil {
			mr.log.Error("Failed to read masterdata last_updated", "error", err)
			stats.Error = err.Error()
			return stats
		}
		if len(stamps) > 0 {
			stats.LastUpdated = &stamps[0]
		}
	}
	return stats
}
