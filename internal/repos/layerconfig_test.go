package repos

import (
	"context"
	"testing"

	"github.com/scripta/scripta-backend/internal/repos/testutil"
	"github.com/scripta/scripta-backend/internal/types"
)

func layerSetFixture(name string) *types.LayerConfigSet {
	return &types.LayerConfigSet{
		ConfigName: name,
		Layers: []types.LayerConfig{
			{Name: "DIELINE", Locked: true, Print: true, Color: "GOLD"},
			{Name: "GUIDES", Locked: true, Print: false, Color: "GRAY"},
		},
	}
}

func TestLayerConfigCreateAndGet(t *testing.T) {
	repo := NewLayerConfigRepo(testutil.DB(t), testutil.Logger(t))
	ctx := context.Background()

	if err := repo.Create(ctx, nil, layerSetFixture("default")); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByName(ctx, nil, "default")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || len(got.Layers) != 2 {
		t.Fatalf("unexpected set: %+v", got)
	}
	if got.Layers[0].Name != "DIELINE" || got.Layers[1].Name != "GUIDES" {
		t.Fatalf("layer order not preserved: %+v", got.Layers)
	}

	missing, err := repo.GetByName(ctx, nil, "NOPE")
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatalf("want nil for unknown name, got %+v", missing)
	}
}

func TestLayerConfigListOrdered(t *testing.T) {
	repo := NewLayerConfigRepo(testutil.DB(t), testutil.Logger(t))
	ctx := context.Background()

	for _, name := range []string{"TPM", "FoldingBox", "Label"} {
		if err := repo.Create(ctx, nil, layerSetFixture(name)); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	sets, err := repo.List(ctx, nil)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(sets) != 3 {
		t.Fatalf("len: want=3 got=%d", len(sets))
	}
	for i, want := range []string{"FoldingBox", "Label", "TPM"} {
		if sets[i].ConfigName != want {
			t.Fatalf("order at %d: want=%s got=%s", i, want, sets[i].ConfigName)
		}
		if len(sets[i].Layers) != 2 {
			t.Fatalf("layers not preloaded for %s", sets[i].ConfigName)
		}
	}
}

func TestLayerConfigReplaceLayers(t *testing.T) {
	repo := NewLayerConfigRepo(testutil.DB(t), testutil.Logger(t))
	ctx := context.Background()

	if err := repo.Create(ctx, nil, layerSetFixture("default")); err != nil {
		t.Fatalf("create: %v", err)
	}
	existing, err := repo.GetByName(ctx, nil, "default")
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	updated := &types.LayerConfigSet{
		ConfigName: "default",
		Layers: []types.LayerConfig{
			{Name: "TEXT", Locked: false, Print: true, Color: "LIGHT_BLUE"},
		},
	}
	if err := repo.ReplaceLayers(ctx, nil, existing, updated); err != nil {
		t.Fatalf("replace layers: %v", err)
	}

	got, err := repo.GetByName(ctx, nil, "default")
	if err != nil {
		t.Fatalf("get after replace: %v", err)
	}
	if len(got.Layers) != 1 || got.Layers[0].Name != "TEXT" {
		t.Fatalf("layers not replaced: %+v", got.Layers)
	}
}

func TestLayerConfigReplaceLayersRenames(t *testing.T) {
	repo := NewLayerConfigRepo(testutil.DB(t), testutil.Logger(t))
	ctx := context.Background()

	if err := repo.Create(ctx, nil, layerSetFixture("default")); err != nil {
		t.Fatalf("create: %v", err)
	}
	existing, err := repo.GetByName(ctx, nil, "default")
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	updated := layerSetFixture("renamed")
	if err := repo.ReplaceLayers(ctx, nil, existing, updated); err != nil {
		t.Fatalf("replace layers: %v", err)
	}

	if old, _ := repo.GetByName(ctx, nil, "default"); old != nil {
		t.Fatalf("old name should be gone, got %+v", old)
	}
	got, err := repo.GetByName(ctx, nil, "renamed")
	if err != nil {
		t.Fatalf("get renamed: %v", err)
	}
	if got == nil || len(got.Layers) != 2 {
		t.Fatalf("renamed set missing layers: %+v", got)
	}
}

func TestLayerConfigDelete(t *testing.T) {
	repo := NewLayerConfigRepo(testutil.DB(t), testutil.Logger(t))
	ctx := context.Background()

	if err := repo.Create(ctx, nil, layerSetFixture("default")); err != nil {
		t.Fatalf("create: %v", err)
	}
	existing, err := repo.GetByName(ctx, nil, "default")
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	if err := repo.Delete(ctx, nil, existing); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if got, _ := repo.GetByName(ctx, nil, "default"); got != nil {
		t.Fatalf("set should be gone, got %+v", got)
	}
	count, err := repo.Count(ctx, nil)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("count: want=0 got=%d", count)
	}
}
