package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scripta/scripta-backend/internal/apierr"
	"github.com/scripta/scripta-backend/internal/cache"
	"github.com/scripta/scripta-backend/internal/services"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// classify maps service errors onto an HTTP status and error code. Unknown
// errors stay internal.
func classify(err error) *apierr.Error {
	var ae *apierr.Error
	if errors.As(err, &ae) {
		return ae
	}

	switch {
	case errors.Is(err, services.ErrNotFound):
		return apierr.New(http.StatusNotFound, apierr.CodeNotFound, err)
	case errors.Is(err, services.ErrConflict):
		return apierr.New(http.StatusConflict, apierr.CodeConflict, err)
	case errors.Is(err, cache.ErrNotInitialized):
		return apierr.New(http.StatusServiceUnavailable, apierr.CodeCacheNotInitialized, err)
	case errors.Is(err, services.ErrWarehouseNotConfigured):
		return apierr.New(http.StatusServiceUnavailable, apierr.CodeWarehouseFetch, err)
	case errors.Is(err, services.ErrRefreshInFlight):
		return apierr.New(http.StatusConflict, apierr.CodeRefreshInFlight, err)
	case errors.Is(err, services.ErrRefreshTimeout):
		return apierr.New(http.StatusGatewayTimeout, apierr.CodeRefreshTimeout, err)
	case errors.Is(err, services.ErrWarehouseFetch):
		return apierr.New(http.StatusBadGateway, apierr.CodeWarehouseFetch, err)
	case errors.Is(err, services.ErrDurableWrite):
		return apierr.New(http.StatusInternalServerError, apierr.CodeDurableWrite, err)
	case errors.Is(err, services.ErrDurableRead):
		return apierr.New(http.StatusInternalServerError, apierr.CodeDurableRead, err)
	case errors.Is(err, services.ErrCacheWrite):
		return apierr.New(http.StatusInternalServerError, apierr.CodeCacheWrite, err)
	default:
		return apierr.New(http.StatusInternalServerError, apierr.CodeInternal, err)
	}
}

func RespondServiceError(c *gin.Context, err error) {
	ae := classify(err)
	RespondError(c, ae.Status, ae.Code, err)
}
