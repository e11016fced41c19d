package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scripta/scripta-backend/internal/apierr"
	"github.com/scripta/scripta-backend/internal/logger"
	"github.com/scripta/scripta-backend/internal/services"
	"github.com/scripta/scripta-backend/internal/types"
)

type LayerHandler struct {
	log          *logger.Logger
	layerService services.LayerService
}

func NewLayerHandler(log *logger.Logger, svc services.LayerService) *LayerHandler {
	return &LayerHandler{
		log:          log.With("handler", "LayerHandler"),
		layerService: svc,
	}
}

// GET /get_layer_config
// Returns every layer config set, or a single one when ?configName= is
// given. The response is always a JSON list, a filtered hit is a
// single-element list.
func (h *LayerHandler) GetLayerConfig(c *gin.Context) {
	configName := c.Query("configName")
	if configName != "" {
		set, err := h.layerService.GetSet(c.Request.Context(), configName)
		if err != nil {
			RespondServiceError(c, err)
			return
		}
		RespondOK(c, []*types.LayerConfigSet{set})
		return
	}

	sets, err := h.layerService.ListSets(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, sets)
}

// POST /create_layer_config
func (h *LayerHandler) CreateLayerConfig(c *gin.Context) {
	var set types.LayerConfigSet
	if err := c.ShouldBindJSON(&set); err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeBadRequest, err)
		return
	}

	if err := h.layerService.CreateSet(c.Request.Context(), &set); err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, set)
}

// PUT /update_layer_config/:configName
func (h *LayerHandler) UpdateLayerConfig(c *gin.Context) {
	configName := c.Param("configName")

	var set types.LayerConfigSet
	if err := c.ShouldBindJSON(&set); err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeBadRequest, err)
		return
	}

	if err := h.layerService.UpdateSet(c.Request.Context(), configName, &set); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, set)
}

// DELETE /delete_layer_config/:configName
func (h *LayerHandler) DeleteLayerConfig(c *gin.Context) {
	configName := c.Param("configName")

	if err := h.layerService.DeleteSet(c.Request.Context(), configName); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": configName})
}
