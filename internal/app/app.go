package app

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/scripta/scripta-backend/internal/cache"
	"github.com/scripta/scripta-backend/internal/db"
	"github.com/scripta/scripta-backend/internal/handlers"
	"github.com/scripta/scripta-backend/internal/logger"
	"github.com/scripta/scripta-backend/internal/repos"
	"github.com/scripta/scripta-backend/internal/seed"
	"github.com/scripta/scripta-backend/internal/server"
	"github.com/scripta/scripta-backend/internal/services"
	"github.com/scripta/scripta-backend/internal/warehouse"
)

type Services struct {
	Swatch     services.SwatchService
	Layer      services.LayerService
	Tpm        services.TpmService
	Masterdata services.MasterdataService
}

type App struct {
	Log      *logger.Logger
	Cfg      Config
	DB       *gorm.DB
	Cache    *cache.Manager
	Router   *gin.Engine
	Services Services

	sqlite    *db.SQLiteService
	warehouse *warehouse.DatabricksClient
}

func New(ctx context.Context) (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading environment variables...")
	cfg := LoadConfig(log)

	sqliteService, err := db.NewSQLiteService(cfg.DBPath, log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init sqlite: %w", err)
	}
	if err := sqliteService.AutoMigrateAll(); err != nil {
		log.Sync()
		return nil, fmt.Errorf("sqlite automigrate: %w", err)
	}
	theDB := sqliteService.DB()

	// Repos
	swatchRepo := repos.NewSwatchRepo(theDB, log)
	layerRepo := repos.NewLayerConfigRepo(theDB, log)
	tpmRepo := repos.NewTpmRepo(theDB, log)
	masterdataRepo := repos.NewMasterdataRepo(theDB, log)
	if err := masterdataRepo.EnsureSchema(ctx); err != nil {
		log.Sync()
		return nil, fmt.Errorf("ensure masterdata schema: %w", err)
	}

	// In-memory cache
	cacheManager := cache.NewManager(log)
	if err := cacheManager.Initialize(); err != nil {
		log.Sync()
		return nil, fmt.Errorf("init cache: %w", err)
	}

	// Seed reference data on first boot
	seeder := seed.NewSeeder(swatchRepo, layerRepo, log)
	if err := seeder.Run(ctx); err != nil {
		log.Sync()
		return nil, fmt.Errorf("seed reference data: %w", err)
	}

	// Warehouse client, optional
	var whClient *warehouse.DatabricksClient
	if cfg.Warehouse.Complete() {
		whClient, err = warehouse.NewDatabricksClient(cfg.Warehouse, log)
		if err != nil {
			log.Sync()
			return nil, fmt.Errorf("init warehouse client: %w", err)
		}
	} else {
		log.Warn("Warehouse credentials incomplete, refresh endpoints disabled")
	}

	// Services
	var wh warehouse.Client
	if whClient != nil {
		wh = whClient
	}
	svcs := Services{
		Swatch:     services.NewSwatchService(swatchRepo, log),
		Layer:      services.NewLayerService(layerRepo, log),
		Tpm:        services.NewTpmService(tpmRepo, log),
		Masterdata: services.NewMasterdataService(masterdataRepo, cacheManager, wh, cfg.WarehouseTimeout, log),
	}

	// Warm the cache from the durable table when it already has data.
	if stats := masterdataRepo.Stats(ctx); stats.TableExists && stats.RecordCount > 0 {
		if _, err := svcs.Masterdata.ReloadCacheFromStore(ctx); err != nil {
			log.Warn("Could not warm cache from durable store", "error", err)
		}
	}

	// Handlers and router
	router := server.NewRouter(server.RouterConfig{
		AllowedOrigins:    cfg.AllowedOrigins,
		HealthHandler:     handlers.NewHealthHandler(ServiceName, Version, svcs.Masterdata),
		SwatchHandler:     handlers.NewSwatchHandler(log, svcs.Swatch),
		LayerHandler:      handlers.NewLayerHandler(log, svcs.Layer),
		TpmHandler:        handlers.NewTpmHandler(log, svcs.Tpm),
		MasterdataHandler: handlers.NewMasterdataHandler(log, svcs.Masterdata),
		DatabricksHandler: handlers.NewDatabricksHandler(log, svcs.Masterdata),
	})

	return &App{
		Log:       log,
		Cfg:       cfg,
		DB:        theDB,
		Cache:     cacheManager,
		Router:    router,
		Services:  svcs,
		sqlite:    sqliteService,
		warehouse: whClient,
	}, nil
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.Cache != nil {
		if err := a.Cache.Close(); err != nil {
			a.Log.Warn("Cache close failed", "error", err)
		}
	}
	if a.warehouse != nil {
		if err := a.warehouse.Close(); err != nil {
			a.Log.Warn("Warehouse client close failed", "error", err)
		}
	}
	if a.sqlite != nil {
		if err := a.sqlite.Close(); err != nil {
			a.Log.Warn("SQLite close failed", "error", err)
		}
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
