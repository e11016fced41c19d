package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/scripta/scripta-backend/internal/apierr"
	"github.com/scripta/scripta-backend/internal/logger"
	"github.com/scripta/scripta-backend/internal/services"
	"github.com/scripta/scripta-backend/internal/types"
)

type TpmHandler struct {
	log        *logger.Logger
	tpmService services.TpmService
}

func NewTpmHandler(log *logger.Logger, svc services.TpmService) *TpmHandler {
	return &TpmHandler{
		log:        log.With("handler", "TpmHandler"),
		tpmService: svc,
	}
}

// GET /get_tpm_config
// Returns every TPM record, or all versions of one name when ?tpmName= is
// given.
func (h *TpmHandler) GetTpmConfig(c *gin.Context) {
	tpmName := c.Query("tpmName")

	var (
		resp *types.TpmConfigResponse
		err  error
	)
	if tpmName != "" {
		resp, err = h.tpmService.GetByName(c.Request.Context(), tpmName)
	} else {
		resp, err = h.tpmService.List(c.Request.Context())
	}
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, resp)
}

// GET /get_tpm_by_id/:id
func (h *TpmHandler) GetTpmByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeBadRequest, err)
		return
	}

	tpm, err := h.tpmService.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, tpm)
}

// POST /create_tpm
func (h *TpmHandler) CreateTpmConfig(c *gin.Context) {
	var req types.TpmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeBadRequest, err)
		return
	}

	tpm, err := h.tpmService.Create(c.Request.Context(), req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tpm)
}

// PUT /update_tpm/:id
func (h *TpmHandler) UpdateTpmConfig(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeBadRequest, err)
		return
	}

	var req types.TpmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeBadRequest, err)
		return
	}

	tpm, err := h.tpmService.Update(c.Request.Context(), id, req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, tpm)
}

// DELETE /delete_tpm/:id
func (h *TpmHandler) DeleteTpmConfig(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeBadRequest, err)
		return
	}

	if err := h.tpmService.Delete(c.Request.Context(), id); err != nil {
		RespondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
