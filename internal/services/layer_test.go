package services

import (
	"context"
	"errors"
	"testing"

	"github.com/scripta/scripta-backend/internal/repos"
	"github.com/scripta/scripta-backend/internal/repos/testutil"
	"github.com/scripta/scripta-backend/internal/types"
)

func newLayerService(t *testing.T) LayerService {
	t.Helper()
	log := testutil.Logger(t)
	return NewLayerService(repos.NewLayerConfigRepo(testutil.DB(t), log), log)
}

func layerSetInput(name string) *types.LayerConfigSet {
	return &types.LayerConfigSet{
		ConfigName: name,
		Layers: []types.LayerConfig{
			{Name: "DIELINE", Locked: true, Print: true, Color: "GOLD"},
			{Name: "GUIDES", Locked: true, Print: false, Color: "GRAY"},
		},
	}
}

func TestLayerSetCreateAndGet(t *testing.T) {
	svc := newLayerService(t)
	ctx := context.Background()

	if err := svc.CreateSet(ctx, layerSetInput("default")); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.CreateSet(ctx, layerSetInput("default")); !errors.Is(err, ErrConflict) {
		t.Fatalf("want ErrConflict, got %v", err)
	}

	got, err := svc.GetSet(ctx, "default")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Layers) != 2 {
		t.Fatalf("layers: want=2 got=%d", len(got.Layers))
	}

	if _, err := svc.GetSet(ctx, "NOPE"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestLayerSetUpdateReplacesLayers(t *testing.T) {
	svc := newLayerService(t)
	ctx := context.Background()

	if err := svc.CreateSet(ctx, layerSetInput("default")); err != nil {
		t.Fatalf("create: %v", err)
	}

	updated := &types.LayerConfigSet{
		ConfigName: "default",
		Layers: []types.LayerConfig{
			{Name: "TEXT", Locked: false, Print: true, Color: "LIGHT_BLUE"},
		},
	}
	if err := svc.UpdateSet(ctx, "default", updated); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := svc.GetSet(ctx, "default")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Layers) != 1 || got.Layers[0].Name != "TEXT" {
		t.Fatalf("layers not replaced: %+v", got.Layers)
	}
}

func TestLayerSetUpdateMissing(t *testing.T) {
	svc := newLayerService(t)

	err := svc.UpdateSet(context.Background(), "NOPE", layerSetInput("NOPE"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestLayerSetDelete(t *testing.T) {
	svc := newLayerService(t)
	ctx := context.Background()

	if err := svc.CreateSet(ctx, layerSetInput("default")); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.DeleteSet(ctx, "default"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.DeleteSet(ctx, "default"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}

	sets, err := svc.ListSets(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(sets) != 0 {
		t.Fatalf("list len: want=0 got=%d", len(sets))
	}
}
