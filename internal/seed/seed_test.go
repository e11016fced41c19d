package seed

import (
	"context"
	"testing"

	"github.com/scripta/scripta-backend/internal/repos"
	"github.com/scripta/scripta-backend/internal/repos/testutil"
)

func TestSeedRunPopulatesEmptyTables(t *testing.T) {
	db := testutil.DB(t)
	log := testutil.Logger(t)
	swatchRepo := repos.NewSwatchRepo(db, log)
	layerRepo := repos.NewLayerConfigRepo(db, log)
	ctx := context.Background()

	if err := NewSeeder(swatchRepo, layerRepo, log).Run(ctx); err != nil {
		t.Fatalf("seed run: %v", err)
	}

	swatchCount, err := swatchRepo.Count(ctx, nil)
	if err != nil {
		t.Fatalf("count swatches: %v", err)
	}
	if swatchCount == 0 {
		t.Fatal("no swatches seeded")
	}

	dieline, err := swatchRepo.GetByName(ctx, nil, "DIELINE")
	if err != nil {
		t.Fatalf("get DIELINE: %v", err)
	}
	if dieline == nil {
		t.Fatal("DIELINE swatch missing")
	}
	cfg, err := dieline.ToConfig()
	if err != nil {
		t.Fatalf("decode DIELINE: %v", err)
	}
	if len(cfg.ColorValues) != 4 || cfg.ColorValues[0] != 50 || cfg.ColorValues[1] != 50 {
		t.Fatalf("DIELINE values: %+v", cfg.ColorValues)
	}

	setCount, err := layerRepo.Count(ctx, nil)
	if err != nil {
		t.Fatalf("count layer sets: %v", err)
	}
	if setCount != 4 {
		t.Fatalf("layer sets: want=4 got=%d", setCount)
	}

	tpmSet, err := layerRepo.GetByName(ctx, nil, "TPM")
	if err != nil {
		t.Fatalf("get TPM set: %v", err)
	}
	if tpmSet == nil || len(tpmSet.Layers) != 3 {
		t.Fatalf("TPM set: %+v", tpmSet)
	}
	defaultSet, err := layerRepo.GetByName(ctx, nil, "default")
	if err != nil {
		t.Fatalf("get default set: %v", err)
	}
	if defaultSet == nil || len(defaultSet.Layers) != 9 {
		t.Fatalf("default set: %+v", defaultSet)
	}
	if defaultSet.Layers[0].Name != "DIELINE" || defaultSet.Layers[0].Color != "GOLD" {
		t.Fatalf("default first layer: %+v", defaultSet.Layers[0])
	}
}

func TestSeedRunIdempotent(t *testing.T) {
	db := testutil.DB(t)
	log := testutil.Logger(t)
	swatchRepo := repos.NewSwatchRepo(db, log)
	layerRepo := repos.NewLayerConfigRepo(db, log)
	seeder := NewSeeder(swatchRepo, layerRepo, log)
	ctx := context.Background()

	if err := seeder.Run(ctx); err != nil {
		t.Fatalf("first run: %v", err)
	}
	first, err := swatchRepo.Count(ctx, nil)
	if err != nil {
		t.Fatalf("count: %v", err)
	}

	if err := seeder.Run(ctx); err != nil {
		t.Fatalf("second run: %v", err)
	}
	second, err := swatchRepo.Count(ctx, nil)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if first != second {
		t.Fatalf("seed not idempotent: first=%d second=%d", first, second)
	}
}
