package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/scripta/scripta-backend/internal/logger"
	"github.com/scripta/scripta-backend/internal/types"
)

type SwatchRepo interface {
	List(ctx context.Context, tx *gorm.DB) ([]*types.Swatch, error)
	GetByName(ctx context.Context, tx *gorm.DB, colorName string) (*types.Swatch, error)
	Create(ctx context.Context, tx *gorm.DB, swatch *types.Swatch) error
	Save(ctx context.Context, tx *gorm.DB, swatch *types.Swatch) error
	DeleteByName(ctx context.Context, tx *gorm.DB, colorName string) (bool, error)
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
}

type swatchRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSwatchRepo(db *gorm.DB, baseLog *logger.Logger) SwatchRepo {
	repoLog := baseLog.With("repo", "SwatchRepo")
	return &swatchRepo{db: db, log: repoLog}
}

func (sr *swatchRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Swatch, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	var results []*types.Swatch
	if err := transaction.WithContext(ctx).
		Order("color_name").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (sr *swatchRepo) GetByName(ctx context.Context, tx *gorm.DB, colorName string) (*types.Swatch, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	var swatch types.Swatch
	err := transaction.WithContext(ctx).
		Where("color_name = ?", colorName).
		First(&swatch).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &swatch, nil
}

func (sr *swatchRepo) Create(ctx context.Context, tx *gorm.DB, swatch *types.Swatch) error {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	return transaction.WithContext(ctx).Create(swatch).Error
}

func (sr *swatchRepo) Save(ctx context.Context, tx *gorm.DB, swatch *types.Swatch) error {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	return transaction.WithContext(ctx).Save(swatch).Error
}

func (sr *swatchRepo) DeleteByName(ctx context.Context, tx *gorm.DB, colorName string) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	res := transaction.WithContext(ctx).
		Where("color_name = ?", colorName).
		Delete(&types.Swatch{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (sr *swatchRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	var count int64
	if err := transaction.WithContext(ctx).Model(&types.Swatch{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
