package services

import (
	"context"
	"fmt"

	"github.com/scripta/scripta-backend/internal/logger"
	"github.com/scripta/scripta-backend/internal/repos"
	"github.com/scripta/scripta-backend/internal/types"
)

type SwatchService interface {
	ListConfigs(ctx context.Context) (*types.SwatchConfigResponse, error)
	GetConfig(ctx context.Context, colorName string) (types.SwatchConfig, error)
	CreateConfig(ctx context.Context, cfg types.SwatchConfig) error
	UpdateConfig(ctx context.Context, colorName string, cfg types.SwatchConfig) error
	DeleteConfig(ctx context.Context, colorName string) error
}

type swatchService struct {
	log  *logger.Logger
	repo repos.SwatchRepo
}

func NewSwatchService(repo repos.SwatchRepo, baseLog *logger.Logger) SwatchService {
	svcLog := baseLog.With("service", "SwatchService")
	return &swatchService{log: svcLog, repo: repo}
}

func (ss *swatchService) ListConfigs(ctx context.Context) (*types.SwatchConfigResponse, error) {
	swatches, err := ss.repo.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list swatches: %w", err)
	}

	configs := make([]types.SwatchConfig, 0, len(swatches))
	for _, sw := range swatches {
		cfg, err := sw.ToConfig()
		if err != nil {
			return nil, err
		}
		configs = append(configs, cfg)
	}
	return &types.SwatchConfigResponse{Swatches: configs}, nil
}

func (ss *swatchService) GetConfig(ctx context.Context, colorName string) (types.SwatchConfig, error) {
	swatch, err := ss.repo.GetByName(ctx, nil, colorName)
	if err != nil {
		return types.SwatchConfig{}, fmt.Errorf("get swatch %q: %w", colorName, err)
	}
	if swatch == nil {
		return types.SwatchConfig{}, fmt.Errorf("swatch %q: %w", colorName, ErrNotFound)
	}
	return swatch.ToConfig()
}

func (ss *swatchService) CreateConfig(ctx context.Context, cfg types.SwatchConfig) error {
	existing, err := ss.repo.GetByName(ctx, nil, cfg.ColorName)
	if err != nil {
		return fmt.Errorf("check swatch %q: %w", cfg.ColorName, err)
	}
	if existing != nil {
		return fmt.Errorf("swatch %q: %w", cfg.ColorName, ErrConflict)
	}

	swatch, err := cfg.ToSwatch()
	if err != nil {
		return err
	}
	if err := ss.repo.Create(ctx, nil, swatch); err != nil {
		return fmt.Errorf("create swatch %q: %w", cfg.ColorName, err)
	}
	ss.log.Info("Swatch created", "color_name", cfg.ColorName)
	return nil
}

// UpdateConfig updates the swatch stored under colorName. The payload may
// rename the swatch, a rename onto an existing name is a conflict.
func (ss *swatchService) UpdateConfig(ctx context.Context, colorName string, cfg types.SwatchConfig) error {
	existing, err := ss.repo.GetByName(ctx, nil, colorName)
	if err != nil {
		return fmt.Errorf("get swatch %q: %w", colorName, err)
	}
	if existing == nil {
		return fmt.Errorf("swatch %q: %w", colorName, ErrNotFound)
	}

	if cfg.ColorName != colorName {
		clash, err := ss.repo.GetByName(ctx, nil, cfg.ColorName)
		if err != nil {
			return fmt.Errorf("check swatch %q: %w", cfg.ColorName, err)
		}
		if clash != nil {
			return fmt.Errorf("swatch %q: %w", cfg.ColorName, ErrConflict)
		}
	}

	updated, err := cfg.ToSwatch()
	if err != nil {
		return err
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	if err := ss.repo.Save(ctx, nil, updated); err != nil {
		return fmt.Errorf("update swatch %q: %w", colorName, err)
	}
	ss.log.Info("Swatch updated", "color_name", colorName)
	return nil
}

func (ss *swatchService) DeleteConfig(ctx context.Context, colorName string) error {
	deleted, err := ss.repo.DeleteByName(ctx, nil, colorName)
	if err != nil {
		return fmt.Errorf("delete swatch %q: %w", colorName, err)
	}
	if !deleted {
		return fmt.Errorf("swatch %q: %w", colorName, ErrNotFound)
	}
	ss.log.Info("Swatch deleted", "color_name", colorName)
	return nil
}
