package services

import (
	"context"
	"fmt"

	"github.com/scripta/scripta-backend/internal/logger"
	"github.com/scripta/scripta-backend/internal/repos"
	"github.com/scripta/scripta-backend/internal/types"
)

type LayerService interface {
	ListSets(ctx context.Context) ([]*types.LayerConfigSet, error)
	GetSet(ctx context.Context, configName string) (*types.LayerConfigSet, error)
	CreateSet(ctx context.Context, set *types.LayerConfigSet) error
	UpdateSet(ctx context.Context, configName string, set *types.LayerConfigSet) error
	DeleteSet(ctx context.Context, configName string) error
}

type layerService struct {
	log  *logger.Logger
	repo repos.LayerConfigRepo
}

func NewLayerService(repo repos.LayerConfigRepo, baseLog *logger.Logger) LayerService {
	svcLog := baseLog.With("service", "LayerService")
	return &layerService{log: svcLog, repo: repo}
}

func (ls *layerService) ListSets(ctx context.Context) ([]*types.LayerConfigSet, error) {
	sets, err := ls.repo.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list layer config sets: %w", err)
	}
	return sets, nil
}

func (ls *layerService) GetSet(ctx context.Context, configName string) (*types.LayerConfigSet, error) {
	set, err := ls.repo.GetByName(ctx, nil, configName)
	if err != nil {
		return nil, fmt.Errorf("get layer config %q: %w", configName, err)
	}
	if set == nil {
		return nil, fmt.Errorf("layer config %q: %w", configName, ErrNotFound)
	}
	return set, nil
}

func (ls *layerService) CreateSet(ctx context.Context, set *types.LayerConfigSet) error {
	existing, err := ls.repo.GetByName(ctx, nil, set.ConfigName)
	if err != nil {
		return fmt.Errorf("check layer config %q: %w", set.ConfigName, err)
	}
	if existing != nil {
		return fmt.Errorf("layer config %q: %w", set.ConfigName, ErrConflict)
	}

	if err := ls.repo.Create(ctx, nil, set); err != nil {
		return fmt.Errorf("create layer config %q: %w", set.ConfigName, err)
	}
	ls.log.Info("Layer config created", "config_name", set.ConfigName, "layers", len(set.Layers))
	return nil
}

// UpdateSet replaces the layer list of the set stored under configName. The
// payload may rename the set, a rename onto an existing name is a conflict.
func (ls *layerService) UpdateSet(ctx context.Context, configName string, set *types.LayerConfigSet) error {
	existing, err := ls.repo.GetByName(ctx, nil, configName)
	if err != nil {
		return fmt.Errorf("get layer config %q: %w", configName, err)
	}
	if existing == nil {
		return fmt.Errorf("layer config %q: %w", configName, ErrNotFound)
	}

	if set.ConfigName != configName {
		clash, err := ls.repo.GetByName(ctx, nil, set.ConfigName)
		if err != nil {
			return fmt.Errorf("check layer config %q: %w", set.ConfigName, err)
		}
		if clash != nil {
			return fmt.Errorf("layer config %q: %w", set.ConfigName, ErrConflict)
		}
	}

	if err := ls.repo.ReplaceLayers(ctx, nil, existing, set); err != nil {
		return fmt.Errorf("update layer config %q: %w", configName, err)
	}
	ls.log.Info("Layer config updated", "config_name", configName, "layers", len(set.Layers))
	return nil
}

func (ls *layerService) DeleteSet(ctx context.Context, configName string) error {
	existing, err := ls.repo.GetByName(ctx, nil, configName)
	if err != nil {
		return fmt.Errorf("get layer config %q: %w", configName, err)
	}
	if existing == nil {
		return fmt.Errorf("layer config %q: %w", configName, ErrNotFound)
	}

	if err := ls.repo.Delete(ctx, nil, existing); err != nil {
		return fmt.Errorf("delete layer config %q: %w", configName, err)
	}
	ls.log.Info("Layer config deleted", "config_name", configName)
	return nil
}
