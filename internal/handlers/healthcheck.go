package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/scripta/scripta-backend/internal/services"
)

type HealthHandler struct {
	serviceName string
	version     string
	masterdata  services.MasterdataService
}

func NewHealthHandler(serviceName, version string, msvc services.MasterdataService) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		masterdata:  msvc,
	}
}

// GET /
func (h *HealthHandler) Root(c *gin.Context) {
	RespondOK(c, gin.H{
		"service": h.serviceName,
		"version": h.version,
		"status":  "ok",
	})
}

// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	cacheStats := h.masterdata.CacheStats(c.Request.Context())

	status := "ok"
	if !cacheStats.Initialized {
		status = "degraded"
	}
	RespondOK(c, gin.H{
		"status": status,
		"cache":  cacheStats,
	})
}
