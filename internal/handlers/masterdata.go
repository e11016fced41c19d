package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/scripta/scripta-backend/internal/apierr"
	"github.com/scripta/scripta-backend/internal/logger"
	"github.com/scripta/scripta-backend/internal/services"
	"github.com/scripta/scripta-backend/internal/types"
)

// maxListedRecords caps the unfiltered masterdata listing, the full dataset
// runs to tens of thousands of rows.
const maxListedRecords = 1000

type MasterdataHandler struct {
	log               *logger.Logger
	masterdataService services.MasterdataService
}

func NewMasterdataHandler(log *logger.Logger, svc services.MasterdataService) *MasterdataHandler {
	return &MasterdataHandler{
		log:               log.With("handler", "MasterdataHandler"),
		masterdataService: svc,
	}
}

// GET /get_masterdata_from_sqlite
// Serves from the in-memory cache. With ?matnr8= a single record is returned,
// without it the listing is capped at maxListedRecords.
func (h *MasterdataHandler) GetMasterdata(c *gin.Context) {
	raw := c.Query("matnr8")
	if raw != "" {
		matnr8, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			RespondError(c, http.StatusBadRequest, apierr.CodeBadRequest,
				fmt.Errorf("invalid matnr8 %q: %w", raw, err))
			return
		}

		rec, err := h.masterdataService.GetByMatnr8(c.Request.Context(), matnr8)
		if err != nil {
			RespondServiceError(c, err)
			return
		}
		if rec == nil {
			RespondError(c, http.StatusNotFound, apierr.CodeNotFound,
				fmt.Errorf("no masterdata record for MATNR8 %d", matnr8))
			return
		}
		RespondOK(c, types.MasterdataResponse{Masterdata: []*types.MaterialRecord{rec}})
		return
	}

	limit := maxListedRecords
	if rawLimit := c.Query("limit"); rawLimit != "" {
		parsed, err := strconv.Atoi(rawLimit)
		if err != nil || parsed <= 0 {
			RespondError(c, http.StatusBadRequest, apierr.CodeBadRequest,
				fmt.Errorf("invalid limit %q", rawLimit))
			return
		}
		if parsed < limit {
			limit = parsed
		}
	}

	records, err := h.masterdataService.GetAll(c.Request.Context(), limit)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, types.MasterdataResponse{Masterdata: records})
}

// GET /cache_stats
func (h *MasterdataHandler) CacheStats(c *gin.Context) {
	ctx := c.Request.Context()
	RespondOK(c, gin.H{
		"cache":  h.masterdataService.CacheStats(ctx),
		"sqlite": h.masterdataService.StoreStats(ctx),
	})
}
