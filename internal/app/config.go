package app

import (
	"strings"
	"time"

	"github.com/scripta/scripta-backend/internal/logger"
	"github.com/scripta/scripta-backend/internal/utils"
	"github.com/scripta/scripta-backend/internal/warehouse"
)

const (
	ServiceName = "scripta-backend"
	Version     = "1.0.0"
)

type Config struct {
	Port             string
	DBPath           string
	AllowedOrigins   []string
	Warehouse        warehouse.Config
	WarehouseTimeout time.Duration
}

func LoadConfig(log *logger.Logger) Config {
	port := utils.GetEnv("PORT", "8000", log)
	dbPath := utils.GetEnv("SQLITE_DB_PATH", "scripta.db", log)

	origins := utils.GetEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173", log)
	allowedOrigins := strings.Split(origins, ",")
	for i := range allowedOrigins {
		allowedOrigins[i] = strings.TrimSpace(allowedOrigins[i])
	}

	whCfg := warehouse.Config{
		ServerHostname: utils.GetEnv("DATABRICKS_SERVER_HOSTNAME", "", log),
		HTTPPath:       utils.GetEnv("DATABRICKS_HTTP_PATH", "", log),
		AccessToken:    utils.GetEnv("DATABRICKS_ACCESS_TOKEN", "", log),
		Port:           utils.GetEnvAsInt("DATABRICKS_PORT", 443, log),
		Catalog:        utils.GetEnv("DATABRICKS_CATALOG", "", log),
		Schema:         utils.GetEnv("DATABRICKS_SCHEMA", "", log),
	}
	refreshTimeout := utils.GetEnvAsDuration("MASTERDATA_REFRESH_TIMEOUT", 5*time.Minute, log)

	return Config{
		Port:             port,
		DBPath:           dbPath,
		AllowedOrigins:   allowedOrigins,
		Warehouse:        whCfg,
		WarehouseTimeout: refreshTimeout,
	}
}
