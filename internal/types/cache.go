package types

import "time"

// CacheStats describes the in-memory masterdata cache. Error carries a
// storage failure description instead of propagating it, stats feed health
// endpoints and must never fail a request.
type CacheStats struct {
	Initialized bool       `json:"initialized"`
	RecordCount int64      `json:"record_count"`
	LastUpdated *time.Time `json:"last_updated,omitempty"`
	Error       string     `json:"error,omitempty"`
}

// StoreStats describes the durable masterdata table on disk.
type StoreStats struct {
	TableExists bool       `json:"table_exists"`
	RecordCount int64      `json:"record_count"`
	LastUpdated *time.Time `json:"last_updated,omitempty"`
	Error       string     `json:"error,omitempty"`
}

// RefreshResult reports one warehouse refresh run. Partial is set when the
// durable store was updated but the cache load failed, operators should then
// trigger the cache-only reload to reconcile.
type RefreshResult struct {
	RunID          string `json:"run_id"`
	SourceCount    int    `json:"databricks_records"`
	DurableCount   int64  `json:"sqlite_records_saved"`
	CacheCount     int    `json:"cache_records_loaded"`
	Partial        bool   `json:"partial"`
	DurationMillis int64  `json:"duration_ms"`
}

type ReloadResult struct {
	RowsLoaded int        `json:"records_loaded"`
	CacheStats CacheStats `json:"cache_stats"`
}
