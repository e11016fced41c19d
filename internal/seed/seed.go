// Package seed loads the bundled reference data on first boot. Tables that
// already hold rows are left alone, operators may have edited them through
// the API.
package seed

import (
	"context"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/scripta/scripta-backend/internal/logger"
	"github.com/scripta/scripta-backend/internal/repos"
	"github.com/scripta/scripta-backend/internal/types"
)

//go:embed data.yaml
var dataYAML []byte

type seedSwatch struct {
	ColorName   string `yaml:"colorName"`
	ColorModel  string `yaml:"colorModel"`
	ColorSpace  string `yaml:"colorSpace"`
	ColorValues []int  `yaml:"colorValues"`
}

type seedLayer struct {
	Name   string `yaml:"name"`
	Locked bool   `yaml:"locked"`
	Print  bool   `yaml:"print"`
	Color  string `yaml:"color"`
}

type seedLayerSet struct {
	ConfigName string      `yaml:"configName"`
	Layers     []seedLayer `yaml:"layers"`
}

type seedFile struct {
	Swatches     []seedSwatch   `yaml:"swatches"`
	LayerConfigs []seedLayerSet `yaml:"layerConfigs"`
}

type Seeder struct {
	log        *logger.Logger
	swatchRepo repos.SwatchRepo
	layerRepo  repos.LayerConfigRepo
}

func NewSeeder(swatchRepo repos.SwatchRepo, layerRepo repos.LayerConfigRepo, baseLog *logger.Logger) *Seeder {
	return &Seeder{
		log:        baseLog.With("component", "Seeder"),
		swatchRepo: swatchRepo,
		layerRepo:  layerRepo,
	}
}

// Run seeds swatches and layer config sets when their tables are empty.
func (s *Seeder) Run(ctx context.Context) error {
	var data seedFile
	if err := yaml.Unmarshal(dataYAML, &data); err != nil {
		return fmt.Errorf("parse seed data: %w", err)
	}

	if err := s.seedSwatches(ctx, data.Swatches); err != nil {
		return err
	}
	return s.seedLayerConfigs(ctx, data.LayerConfigs)
}

func (s *Seeder) seedSwatches(ctx context.Context, swatches []seedSwatch) error {
	count, err := s.swatchRepo.Count(ctx, nil)
	if err != nil {
		return fmt.Errorf("count swatches: %w", err)
	}
	if count > 0 {
		s.log.Debug("Swatch table already populated, skipping seed", "count", count)
		return nil
	}

	for _, entry := range swatches {
		cfg := types.SwatchConfig{
			ColorName:   entry.ColorName,
			ColorModel:  entry.ColorModel,
			ColorSpace:  entry.ColorSpace,
			ColorValues: entry.ColorValues,
		}
		swatch, err := cfg.ToSwatch()
		if err != nil {
			return err
		}
		if err := s.swatchRepo.Create(ctx, nil, swatch); err != nil {
			return fmt.Errorf("seed swatch %q: %w", entry.ColorName, err)
		}
	}
	s.log.Info("Seeded swatches", "count", len(swatches))
	return nil
}

func (s *Seeder) seedLayerConfigs(ctx context.Context, sets []seedLayerSet) error {
	count, err := s.layerRepo.Count(ctx, nil)
	if err != nil {
		return fmt.Errorf("count layer config sets: %w", err)
	}
	if count > 0 {
		s.log.Debug("Layer config tables already populated, skipping seed", "count", count)
		return nil
	}

	for _, entry := range sets {
		set := &types.LayerConfigSet{ConfigName: entry.ConfigName}
		for _, layer := range entry.Layers {
			set.Layers = append(set.Layers, types.LayerConfig{
				Name:   layer.Name,
				Locked: layer.Locked,
				Print:  layer.Print,
				Color:  layer.Color,
			})
		}
		if err := s.layerRepo.Create(ctx, nil, set); err != nil {
			return fmt.Errorf("seed layer config %q: %w", entry.ConfigName, err)
		}
	}
	s.log.Info("Seeded layer config sets", "count", len(sets))
	return nil
}
