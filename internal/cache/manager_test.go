package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/scripta/scripta-backend/internal/repos/testutil"
	"github.com/scripta/scripta-backend/internal/types"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m := NewManager(testutil.Logger(t))
	if err := m.Initialize(); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	t.Cleanup(func() { _ = m.Close() })
	return m
}

func record(matnr string, matnr8 int64) *types.MaterialRecord {
	return &types.MaterialRecord{
		MATNR:               matnr,
		MATNR8:              matnr8,
		MaterialDescription: testutil.Str("desc " + matnr),
	}
}

func TestOperationsBeforeInitialize(t *testing.T) {
	m := NewManager(testutil.Logger(t))
	ctx := context.Background()

	if _, err := m.BulkLoad(ctx, []*types.MaterialRecord{record("000000000012345678", 12345678)}); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("BulkLoad: want ErrNotInitialized, got %v", err)
	}
	if _, err := m.GetByMatnr8(ctx, 12345678); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("GetByMatnr8: want ErrNotInitialized, got %v", err)
	}
	if _, err := m.GetAll(ctx, 0); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("GetAll: want ErrNotInitialized, got %v", err)
	}
	if err := m.Clear(ctx); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("Clear: want ErrNotInitialized, got %v", err)
	}
	if stats := m.Stats(ctx); stats.Initialized {
		t.Fatalf("Stats: want Initialized=false, got %+v", stats)
	}
}

func TestInitializeIdempotent(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	if _, err := m.BulkLoad(ctx, []*types.MaterialRecord{record("000000000012345678", 12345678)}); err != nil {
		t.Fatalf("bulk load: %v", err)
	}
	if err := m.Initialize(); err != nil {
		t.Fatalf("second initialize: %v", err)
	}

	stats := m.Stats(ctx)
	if stats.RecordCount != 1 {
		t.Fatalf("record count after re-initialize: want=1 got=%d", stats.RecordCount)
	}
}

func TestBulkLoadReplacesContents(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	first := []*types.MaterialRecord{
		record("000000000011111111", 11111111),
		record("000000000022222222", 22222222),
	}
	if _, err := m.BulkLoad(ctx, first); err != nil {
		t.Fatalf("first load: %v", err)
	}

	second := []*types.MaterialRecord{record("000000000033333333", 33333333)}
	loaded, err := m.BulkLoad(ctx, second)
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if loaded != 1 {
		t.Fatalf("loaded: want=1 got=%d", loaded)
	}

	if rec, err := m.GetByMatnr8(ctx, 11111111); err != nil || rec != nil {
		t.Fatalf("old record should be gone, got rec=%v err=%v", rec, err)
	}
	rec, err := m.GetByMatnr8(ctx, 33333333)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if rec == nil || rec.MATNR != "000000000033333333" {
		t.Fatalf("new record missing, got %+v", rec)
	}
}

func TestBulkLoadEmptyClearsCache(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	if _, err := m.BulkLoad(ctx, []*types.MaterialRecord{record("000000000012345678", 12345678)}); err != nil {
		t.Fatalf("load: %v", err)
	}
	loaded, err := m.BulkLoad(ctx, nil)
	if err != nil {
		t.Fatalf("empty load: %v", err)
	}
	if loaded != 0 {
		t.Fatalf("loaded: want=0 got=%d", loaded)
	}

	stats := m.Stats(ctx)
	if !stats.Initialized || stats.RecordCount != 0 {
		t.Fatalf("stats after empty load: %+v", stats)
	}
}

func TestGetByMatnr8Miss(t *testing.T) {
	m := newTestManager(t)

	rec, err := m.GetByMatnr8(context.Background(), 99999999)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if rec != nil {
		t.Fatalf("want nil for unknown MATNR8, got %+v", rec)
	}
}

func TestGetAllOrderAndLimit(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	records := []*types.MaterialRecord{
		record("000000000033333333", 33333333),
		record("000000000011111111", 11111111),
		record("000000000022222222", 22222222),
	}
	if _, err := m.BulkLoad(ctx, records); err != nil {
		t.Fatalf("load: %v", err)
	}

	all, err := m.GetAll(ctx, 0)
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len: want=3 got=%d", len(all))
	}
	for i, want := range []int64{11111111, 22222222, 33333333} {
		if all[i].MATNR8 != want {
			t.Fatalf("order at %d: want=%d got=%d", i, want, all[i].MATNR8)
		}
	}

	limited, err := m.GetAll(ctx, 2)
	if err != nil {
		t.Fatalf("get limited: %v", err)
	}
	if len(limited) != 2 {
		t.Fatalf("limited len: want=2 got=%d", len(limited))
	}
	if limited[0].MATNR8 != 11111111 {
		t.Fatalf("limited order: got %d", limited[0].MATNR8)
	}
}

func TestStats(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	stats := m.Stats(ctx)
	if !stats.Initialized || stats.RecordCount != 0 || stats.LastUpdated != nil {
		t.Fatalf("empty stats: %+v", stats)
	}

	if _, err := m.BulkLoad(ctx, []*types.MaterialRecord{record("000000000012345678", 12345678)}); err != nil {
		t.Fatalf("load: %v", err)
	}
	stats = m.Stats(ctx)
	if stats.RecordCount != 1 {
		t.Fatalf("record count: want=1 got=%d", stats.RecordCount)
	}
	if stats.LastUpdated == nil {
		t.Fatal("LastUpdated should be set after a load")
	}
}

func TestStatsDegradedOnStorageFailure(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	if _, err := m.BulkLoad(ctx, []*types.MaterialRecord{record("000000000012345678", 12345678)}); err != nil {
		t.Fatalf("load: %v", err)
	}

	// Pull the connection out from under the manager without going through
	// Close, the manager still believes it is initialized.
	if err := m.sqlDB.Close(); err != nil {
		t.Fatalf("close underlying db: %v", err)
	}

	stats := m.Stats(ctx)
	if !stats.Initialized {
		t.Fatalf("stats must stay Initialized=true: %+v", stats)
	}
	if stats.RecordCount != 0 {
		t.Fatalf("record count: want=0 got=%d", stats.RecordCount)
	}
	if stats.Error == "" {
		t.Fatal("stats must carry the storage error")
	}
}

func TestClear(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	if _, err := m.BulkLoad(ctx, []*types.MaterialRecord{record("000000000012345678", 12345678)}); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := m.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}

	stats := m.Stats(ctx)
	if !stats.Initialized || stats.RecordCount != 0 {
		t.Fatalf("stats after clear: %+v", stats)
	}
}

func TestCloseAndReinitialize(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	if _, err := m.BulkLoad(ctx, []*types.MaterialRecord{record("000000000012345678", 12345678)}); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := m.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	if _, err := m.GetByMatnr8(ctx, 12345678); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("after close: want ErrNotInitialized, got %v", err)
	}

	if err := m.Initialize(); err != nil {
		t.Fatalf("re-initialize: %v", err)
	}
	stats := m.Stats(ctx)
	if !stats.Initialized || stats.RecordCount != 0 {
		t.Fatalf("re-initialized cache should be empty: %+v", stats)
	}
}
