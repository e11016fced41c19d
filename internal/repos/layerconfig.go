package repos

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/scripta/scripta-backend/internal/logger"
	"github.com/scripta/scripta-backend/internal/types"
)

type LayerConfigRepo interface {
	List(ctx context.Context, tx *gorm.DB) ([]*types.LayerConfigSet, error)
	GetByName(ctx context.Context, tx *gorm.DB, configName string) (*types.LayerConfigSet, error)
	Create(ctx context.Context, tx *gorm.DB, set *types.LayerConfigSet) error
	ReplaceLayers(ctx context.Context, tx *gorm.DB, existing *types.LayerConfigSet, updated *types.LayerConfigSet) error
	Delete(ctx context.Context, tx *gorm.DB, set *types.LayerConfigSet) error
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
}

type layerConfigRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLayerConfigRepo(db *gorm.DB, baseLog *logger.Logger) LayerConfigRepo {
	repoLog := baseLog.With("repo", "LayerConfigRepo")
	return &layerConfigRepo{db: db, log: repoLog}
}

func (lr *layerConfigRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.LayerConfigSet, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}

	var results []*types.LayerConfigSet
	err := transaction.WithContext(ctx).
		Preload("Layers", func(db *gorm.DB) *gorm.DB { return db.Order("layer_config.id") }).
		Order("config_name").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (lr *layerConfigRepo) GetByName(ctx context.Context, tx *gorm.DB, configName string) (*types.LayerConfigSet, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}

	var set types.LayerConfigSet
	err := transaction.WithContext(ctx).
		Preload("Layers", func(db *gorm.DB) *gorm.DB { return db.Order("layer_config.id") }).
		Where("config_name = ?", configName).
		First(&set).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &set, nil
}

func (lr *layerConfigRepo) Create(ctx context.Context, tx *gorm.DB, set *types.LayerConfigSet) error {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}
	return transaction.WithContext(ctx).Create(set).Error
}

// ReplaceLayers renames the set when needed and swaps its layer list
// wholesale, matching the update semantics of the API (the layer list is
// always sent complete).
func (lr *layerConfigRepo) ReplaceLayers(ctx context.Context, tx *gorm.DB, existing *types.LayerConfigSet, updated *types.LayerConfigSet) error {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}

	return transaction.WithContext(ctx).Transaction(func(txn *gorm.DB) error {
		if existing.ConfigName != updated.ConfigName {
			if err := txn.Model(&types.LayerConfigSet{}).
				Where("id = ?", existing.ID).
				Update("config_name", updated.ConfigName).Error; err != nil {
				return fmt.Errorf("rename layer config set: %w", err)
			}
		}
		if err := txn.Where("config_set_id = ?", existing.ID).
			Delete(&types.LayerConfig{}).Error; err != nil {
			return fmt.Errorf("delete old layers: %w", err)
		}
		for i := range updated.Layers {
			updated.Layers[i].ID = 0
			updated.Layers[i].ConfigSetID = existing.ID
		}
		if len(updated.Layers) == 0 {
			return nil
		}
		if err := txn.Create(&updated.Layers).Error; err != nil {
			return fmt.Errorf("insert updated layers: %w", err)
		}
		return nil
	})
}

func (lr *layerConfigRepo) Delete(ctx context.Context, tx *gorm.DB, set *types.LayerConfigSet) error {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}

	return transaction.WithContext(ctx).Transaction(func(txn *gorm.DB) error {
		if err := txn.Where("config_set_id = ?", set.ID).
			Delete(&types.LayerConfig{}).Error; err != nil {
			return fmt.Errorf("delete layers: %w", err)
		}
		if err := txn.Delete(&types.LayerConfigSet{}, set.ID).Error; err != nil {
			return fmt.Errorf("delete layer config set: %w", err)
		}
		return nil
	})
}

func (lr *layerConfigRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}

	var count int64
	if err := transaction.WithContext(ctx).Model(&types.LayerConfigSet{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
