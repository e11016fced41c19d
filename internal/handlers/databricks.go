package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scripta/scripta-backend/internal/apierr"
	"github.com/scripta/scripta-backend/internal/logger"
	"github.com/scripta/scripta-backend/internal/services"
)

// DatabricksHandler exposes the warehouse refresh pipeline.
type DatabricksHandler struct {
	log               *logger.Logger
	masterdataService services.MasterdataService
}

func NewDatabricksHandler(log *logger.Logger, svc services.MasterdataService) *DatabricksHandler {
	return &DatabricksHandler{
		log:               log.With("handler", "DatabricksHandler"),
		masterdataService: svc,
	}
}

// POST /databricks/save_masterdata_to_sqlite_and_cache
// Full refresh: warehouse -> durable sqlite table -> in-memory cache. A run
// that updated sqlite but failed the cache load answers 500 with the partial
// result attached so operators can see how far it got.
func (h *DatabricksHandler) SaveMasterdata(c *gin.Context) {
	result, err := h.masterdataService.RefreshFromWarehouse(c.Request.Context())
	if err != nil {
		if result != nil && result.Partial {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": APIError{
					Message: err.Error(),
					Code:    apierr.CodeCacheWrite,
				},
				"result": result,
			})
			return
		}
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, result)
}

// POST /databricks/refresh_cache_from_sqlite
// Cache-only rebuild from the durable table, no warehouse involved.
func (h *DatabricksHandler) RefreshCache(c *gin.Context) {
	result, err := h.masterdataService.ReloadCacheFromStore(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, result)
}

// GET /databricks/test-connection
func (h *DatabricksHandler) TestConnection(c *gin.Context) {
	if err := h.masterdataService.TestWarehouseConnection(c.Request.Context()); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"status": "ok"})
}
