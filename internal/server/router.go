package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/scripta/scripta-backend/internal/handlers"
)

type RouterConfig struct {
	AllowedOrigins    []string
	HealthHandler     *handlers.HealthHandler
	SwatchHandler     *handlers.SwatchHandler
	LayerHandler      *handlers.LayerHandler
	TpmHandler        *handlers.TpmHandler
	MasterdataHandler *handlers.MasterdataHandler
	DatabricksHandler *handlers.DatabricksHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// Health
	router.GET("/", cfg.HealthHandler.Root)
	router.GET("/health", cfg.HealthHandler.Health)

	// Swatches
	router.GET("/get_swatch_config", cfg.SwatchHandler.GetSwatchConfig)
	router.POST("/create_swatch_config", cfg.SwatchHandler.CreateSwatchConfig)
	router.PUT("/update_swatch_config/:colorName", cfg.SwatchHandler.UpdateSwatchConfig)
	router.DELETE("/delete_swatch_config/:colorName", cfg.SwatchHandler.DeleteSwatchConfig)

	// Layer configs
	router.GET("/get_layer_config", cfg.LayerHandler.GetLayerConfig)
	router.POST("/create_layer_config", cfg.LayerHandler.CreateLayerConfig)
	router.PUT("/update_layer_config/:configName", cfg.LayerHandler.UpdateLayerConfig)
	router.DELETE("/delete_layer_config/:configName", cfg.LayerHandler.DeleteLayerConfig)

	// TPM
	router.GET("/get_tpm_config", cfg.TpmHandler.GetTpmConfig)
	router.GET("/get_tpm_by_id/:id", cfg.TpmHandler.GetTpmByID)
	router.POST("/create_tpm", cfg.TpmHandler.CreateTpmConfig)
	router.PUT("/update_tpm/:id", cfg.TpmHandler.UpdateTpmConfig)
	router.DELETE("/delete_tpm/:id", cfg.TpmHandler.DeleteTpmConfig)

	// Masterdata reads
	router.GET("/get_masterdata_from_sqlite", cfg.MasterdataHandler.GetMasterdata)
	router.GET("/cache_stats", cfg.MasterdataHandler.CacheStats)

	// Warehouse refresh pipeline
	databricks := router.Group("/databricks")
	{
		databricks.POST("/save_masterdata_to_sqlite_and_cache", cfg.DatabricksHandler.SaveMasterdata)
		databricks.POST("/refresh_cache_from_sqlite", cfg.DatabricksHandler.RefreshCache)
		databricks.GET("/test-connection", cfg.DatabricksHandler.TestConnection)
	}

	return router
}
