package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"github.com/scripta/scripta-backend/internal/cache"
	"github.com/scripta/scripta-backend/internal/logger"
	"github.com/scripta/scripta-backend/internal/repos"
	"github.com/scripta/scripta-backend/internal/types"
	"github.com/scripta/scripta-backend/internal/warehouse"
)

var (
	// ErrRefreshInFlight is returned when a refresh is requested while a
	// previous run is still executing. Refreshes replace the whole dataset,
	// running two at once buys nothing and risks interleaved replaces.
	ErrRefreshInFlight = errors.New("masterdata refresh already in progress")

	// ErrWarehouseNotConfigured is returned when warehouse-backed operations
	// are invoked without warehouse credentials in the environment.
	ErrWarehouseNotConfigured = errors.New("warehouse client not configured")

	// ErrWarehouseFetch wraps failures while pulling the dataset from the
	// warehouse. The durable store and cache are untouched when it occurs.
	ErrWarehouseFetch = errors.New("warehouse fetch failed")

	// ErrRefreshTimeout wraps a refresh that exceeded its deadline.
	ErrRefreshTimeout = errors.New("masterdata refresh timed out")

	// ErrDurableWrite wraps failures writing the fetched dataset to the
	// durable store. The previous durable contents survive, the replace is
	// transactional.
	ErrDurableWrite = errors.New("durable masterdata write failed")

	// ErrDurableRead wraps failures reading the durable store during a
	// cache-only reload. Nothing was modified when it occurs.
	ErrDurableRead = errors.New("durable masterdata read failed")

	// ErrCacheWrite wraps failures loading the in-memory cache. When it
	// occurs during a warehouse refresh the durable store has already been
	// updated, the run result carries Partial=true.
	ErrCacheWrite = errors.New("cache load failed")
)

type MasterdataService interface {
	RefreshFromWarehouse(ctx context.Context) (*types.RefreshResult, error)
	ReloadCacheFromStore(ctx context.Context) (*types.ReloadResult, error)
	GetByMatnr8(ctx context.Context, matnr8 int64) (*types.MaterialRecord, error)
	GetAll(ctx context.Context, limit int) ([]*types.MaterialRecord, error)
	CacheStats(ctx context.Context) types.CacheStats
	StoreStats(ctx context.Context) *types.StoreStats
	TestWarehouseConnection(ctx context.Context) error
}

type masterdataService struct {
	log            *logger.Logger
	repo           repos.MasterdataRepo
	store          cache.Store
	wh             warehouse.Client
	refreshTimeout time.Duration
	refreshGate    *semaphore.Weighted
}

// NewMasterdataService wires the refresh pipeline. wh may be nil when the
// environment carries no warehouse credentials, warehouse-backed operations
// then fail with ErrWarehouseNotConfigured while cache reads keep working.
func NewMasterdataService(
	repo repos.MasterdataRepo,
	store cache.Store,
	wh warehouse.Client,
	refreshTimeout time.Duration,
	baseLog *logger.Logger,
) MasterdataService {
	svcLog := baseLog.With("service", "MasterdataService")
	return &masterdataService{
		log:            svcLog,
		repo:           repo,
		store:          store,
		wh:             wh,
		refreshTimeout: refreshTimeout,
		refreshGate:    semaphore.NewWeighted(1),
	}
}

// RefreshFromWarehouse pulls the full dataset from the warehouse, replaces
// the durable table, then replaces the cache. Only one refresh runs at a
// time. On a cache failure after the durable replace succeeded, the returned
// result carries Partial=true alongside the error so callers can report how
// far the run got.
func (ms *masterdataService) RefreshFromWarehouse(ctx context.Context) (*types.RefreshResult, error) {
	if ms.wh == nil {
		return nil, ErrWarehouseNotConfigured
	}
	if !ms.refreshGate.TryAcquire(1) {
		return nil, ErrRefreshInFlight
	}
	defer ms.refreshGate.Release(1)

	runID := uuid.NewString()
	started := time.Now()
	runLog := ms.log.With("run_id", runID)
	runLog.Info("Masterdata refresh started", "timeout", ms.refreshTimeout.String())

	if ms.refreshTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, ms.refreshTimeout)
		defer cancel()
	}

	records, err := ms.wh.FetchFullMaterialDataset(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			runLog.Error("Warehouse fetch timed out", "error", err)
			return nil, fmt.Errorf("%w: %w", ErrRefreshTimeout, err)
		}
		runLog.Error("Warehouse fetch failed", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrWarehouseFetch, err)
	}
	runLog.Info("Warehouse dataset fetched", "records", len(records))

	if err := ms.repo.EnsureSchema(ctx); err != nil {
		runLog.Error("Failed to ensure durable schema", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrDurableWrite, err)
	}
	saved, err := ms.repo.ReplaceAll(ctx, nil, records)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			runLog.Error("Durable replace timed out", "error", err)
			return nil, fmt.Errorf("%w: %w", ErrRefreshTimeout, err)
		}
		runLog.Error("Durable replace failed", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrDurableWrite, err)
	}
	runLog.Info("Durable masterdata table replaced", "records", saved)

	result := &types.RefreshResult{
		RunID:        runID,
		SourceCount:  len(records),
		DurableCount: saved,
	}

	loaded, err := ms.store.BulkLoad(ctx, records)
	if err != nil {
		result.Partial = true
		result.DurationMillis = time.Since(started).Milliseconds()
		runLog.Error("Cache load failed after durable replace", "error", err)
		return result, fmt.Errorf("%w: %w", ErrCacheWrite, err)
	}
	result.CacheCount = loaded
	result.DurationMillis = time.Since(started).Milliseconds()

	runLog.Info("Masterdata refresh complete",
		"source_records", result.SourceCount,
		"durable_records", result.DurableCount,
		"cache_records", result.CacheCount,
		"duration_ms", result.DurationMillis)
	return result, nil
}

// ReloadCacheFromStore rebuilds the in-memory cache from the durable table
// without touching the warehouse. It is the recovery path for a Partial
// refresh and the boot path when the durable table already has data.
func (ms *masterdataService) ReloadCacheFromStore(ctx context.Context) (*types.ReloadResult, error) {
	records, err := ms.repo.ReadAll(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDurableRead, err)
	}

	loaded, err := ms.store.BulkLoad(ctx, records)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCacheWrite, err)
	}
	ms.log.Info("Cache reloaded from durable store", "records", loaded)

	return &types.ReloadResult{
		RowsLoaded: loaded,
		CacheStats: ms.store.Stats(ctx),
	}, nil
}

func (ms *masterdataService) GetByMatnr8(ctx context.Context, matnr8 int64) (*types.MaterialRecord, error) {
	return ms.store.GetByMatnr8(ctx, matnr8)
}

func (ms *masterdataService) GetAll(ctx context.Context, limit int) ([]*types.MaterialRecord, error) {
	return ms.store.GetAll(ctx, limit)
}

func (ms *masterdataService) CacheStats(ctx context.Context) types.CacheStats {
	return ms.store.Stats(ctx)
}

func (ms *masterdataService) StoreStats(ctx context.Context) *types.StoreStats {
	return ms.repo.Stats(ctx)
}

func (ms *masterdataService) TestWarehouseConnection(ctx context.Context) error {
	if ms.wh == nil {
		return ErrWarehouseNotConfigured
	}
	if err := ms.wh.TestConnection(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrWarehouseFetch, err)
	}
	return nil
}
