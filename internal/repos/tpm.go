package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/scripta/scripta-backend/internal/logger"
	"github.com/scripta/scripta-backend/internal/types"
)

type TpmRepo interface {
	List(ctx context.Context, tx *gorm.DB) ([]*types.Tpm, error)
	GetByName(ctx context.Context, tx *gorm.DB, tpmName string) ([]*types.Tpm, error)
	GetByID(ctx context.Context, tx *gorm.DB, id int64) (*types.Tpm, error)
	Create(ctx context.Context, tx *gorm.DB, tpm *types.Tpm) error
	Save(ctx context.Context, tx *gorm.DB, tpm *types.Tpm) error
	Delete(ctx context.Context, tx *gorm.DB, id int64) (bool, error)
}

type tpmRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTpmRepo(db *gorm.DB, baseLog *logger.Logger) TpmRepo {
	repoLog := baseLog.With("repo", "TpmRepo")
	return &tpmRepo{db: db, log: repoLog}
}

func (tr *tpmRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Tpm, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	var results []*types.Tpm
	if err := transaction.WithContext(ctx).Order("tpm").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (tr *tpmRepo) GetByName(ctx context.Context, tx *gorm.DB, tpmName string) ([]*types.Tpm, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	var results []*types.Tpm
	if err := transaction.WithContext(ctx).
		Where("tpm = ?", tpmName).
		Order("id").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (tr *tpmRepo) GetByID(ctx context.Context, tx *gorm.DB, id int64) (*types.Tpm, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	var tpm types.Tpm
	err := transaction.WithContext(ctx).First(&tpm, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tpm, nil
}

func (tr *tpmRepo) Create(ctx context.Context, tx *gorm.DB, tpm *types.Tpm) error {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}
	return transaction.WithContext(ctx).Create(tpm).Error
}

func (tr *tpmRepo) Save(ctx context.Context, tx *gorm.DB, tpm *types.Tpm) error {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}
	return transaction.WithContext(ctx).Save(tpm).Error
}

func (tr *tpmRepo) Delete(ctx context.Context, tx *gorm.DB, id int64) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	res := transaction.WithContext(ctx).Delete(&types.Tpm{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
