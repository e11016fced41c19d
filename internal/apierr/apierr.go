package apierr

import "fmt"

const (
	CodeNotFound            = "not_found"
	CodeConflict            = "conflict"
	CodeBadRequest          = "bad_request"
	CodeCacheNotInitialized = "cache_not_initialized"
	CodeWarehouseFetch      = "warehouse_fetch_failed"
	CodeRefreshTimeout      = "refresh_timeout"
	CodeRefreshInFlight     = "refresh_in_flight"
	CodeDurableWrite        = "durable_write_failed"
	CodeDurableRead         = "durable_read_failed"
	CodeCacheWrite          = "cache_write_failed"
	CodeInternal            = "internal_error"
)

type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}
