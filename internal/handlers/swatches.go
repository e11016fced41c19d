package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scripta/scripta-backend/internal/apierr"
	"github.com/scripta/scripta-backend/internal/logger"
	"github.com/scripta/scripta-backend/internal/services"
	"github.com/scripta/scripta-backend/internal/types"
)

type SwatchHandler struct {
	log           *logger.Logger
	swatchService services.SwatchService
}

func NewSwatchHandler(log *logger.Logger, svc services.SwatchService) *SwatchHandler {
	return &SwatchHandler{
		log:           log.With("handler", "SwatchHandler"),
		swatchService: svc,
	}
}

// GET /get_swatch_config
// Returns every swatch, or a single one when ?colorName= is given. Filtered
// hits keep the list envelope, clients always parse a swatches array.
func (h *SwatchHandler) GetSwatchConfig(c *gin.Context) {
	colorName := c.Query("colorName")
	if colorName != "" {
		cfg, err := h.swatchService.GetConfig(c.Request.Context(), colorName)
		if err != nil {
			RespondServiceError(c, err)
			return
		}
		RespondOK(c, types.SwatchConfigResponse{Swatches: []types.SwatchConfig{cfg}})
		return
	}

	resp, err := h.swatchService.ListConfigs(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, resp)
}

// POST /create_swatch_config
func (h *SwatchHandler) CreateSwatchConfig(c *gin.Context) {
	var cfg types.SwatchConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeBadRequest, err)
		return
	}

	if err := h.swatchService.CreateConfig(c.Request.Context(), cfg); err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cfg)
}

// PUT /update_swatch_config/:colorName
func (h *SwatchHandler) UpdateSwatchConfig(c *gin.Context) {
	colorName := c.Param("colorName")

	var cfg types.SwatchConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeBadRequest, err)
		return
	}

	if err := h.swatchService.UpdateConfig(c.Request.Context(), colorName, cfg); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, cfg)
}

// DELETE /delete_swatch_config/:colorName
func (h *SwatchHandler) DeleteSwatchConfig(c *gin.Context) {
	colorName := c.Param("colorName")

	if err := h.swatchService.DeleteConfig(c.Request.Context(), colorName); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": colorName})
}
