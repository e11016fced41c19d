package warehouse

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	dbsql "github.com/databricks/databricks-sql-go"

	"github.com/scripta/scripta-backend/internal/logger"
	"github.com/scripta/scripta-backend/internal/types"
)

//go:embed unified_material_data_cte.sql
var unifiedMaterialDataQuery string

// Config carries the Databricks SQL warehouse connection settings.
type Config struct {
	ServerHostname string
	HTTPPath       string
	AccessToken    string
	Port           int
	Catalog        string
	Schema         string
}

func (c Config) Complete() bool {
	return c.ServerHostname != "" && c.HTTPPath != "" && c.AccessToken != ""
}

// DatabricksClient runs the fixed dataset query against the warehouse over
// the Databricks SQL driver.
type DatabricksClient struct {
	db  *sql.DB
	log *logger.Logger
	cfg Config
}

func NewDatabricksClient(cfg Config, baseLog *logger.Logger) (*DatabricksClient, error) {
	clientLog := baseLog.With("client", "DatabricksClient")

	if !cfg.Complete() {
		return nil, fmt.Errorf("missing Databricks connection settings (hostname, http path, access token)")
	}
	port := cfg.Port
	if port == 0 {
		port = 443
	}

	connector, err := dbsql.NewConnector(
		dbsql.WithServerHostname(cfg.ServerHostname),
		dbsql.WithHTTPPath(cfg.HTTPPath),
		dbsql.WithAccessToken(cfg.AccessToken),
		dbsql.WithPort(port),
		dbsql.WithInitialNamespace(cfg.Catalog, cfg.Schema),
	)
	if err != nil {
		clientLog.Error("Failed to build Databricks connector", "error", err)
		return nil, fmt.Errorf("build databricks connector: %w", err)
	}

	return &DatabricksClient{
		db:  sql.OpenDB(connector),
		log: clientLog,
		cfg: cfg,
	}, nil
}

func (c *DatabricksClient) TestConnection(ctx context.Context) error {
	var probe int
	if err := c.db.QueryRowContext(ctx, "SELECT 1").Scan(&probe); err != nil {
		return fmt.Errorf("databricks connection test: %w", err)
	}
	return nil
}

// FetchFullMaterialDataset runs the unified CTE query and scans the complete
// result set. The dataset is fetched in one shot, typically 15-20 seconds.
func (c *DatabricksClient) FetchFullMaterialDataset(ctx context.Context) ([]*types.MaterialRecord, error) {
	c.log.Info("Fetching full material dataset from Databricks...")

	rows, err := c.db.QueryContext(ctx, unifiedMaterialDataQuery)
	if err != nil {
		c.log.Error("Dataset query failed", "error", err)
		return nil, fmt.Errorf("execute unified material query: %w", err)
	}
	defer rows.Close()

	var records []*types.MaterialRecord
	for rows.Next() {
		rec, err := scanMaterialRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan material row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate material rows: %w", err)
	}

	c.log.Info("Fetched material dataset from Databricks", "count", len(records))
	return records, nil
}

func (c *DatabricksClient) Close() error {
	return c.db.Close()
}

// scanMaterialRecord reads one row in the column order of the embedded query.
func scanMaterialRecord(rows *sql.Rows) (*types.MaterialRecord, error) {
	var (
		rec    types.MaterialRecord
		matnr  sql.NullString
		matnr8 sql.NullInt64
	)

	err := rows.Scan(
		&matnr,
		&matnr8,
		&rec.MaterialDescription,
		&rec.MaterialType,
		&rec.XplantStatus,
		&rec.Prdhatxt,
		&rec.Makeup,
		&rec.Plants,
		&rec.PlantsTxt,
		&rec.ContractManufacturerCodetype,
		&rec.ContractManufacturerCode,
		&rec.ResponsibleForSpecification,
		&rec.ContractManufacturerMaterial,
		&rec.LayoutApproved,
		&rec.UsagePrefix,
		&rec.NumberOfPages,
		&rec.AcfFlag,
		&rec.VisibleMarkings,
		&rec.Code,
		&rec.Colors,
		&rec.NumberColorsFront,
		&rec.ContractManufacturer,
		&rec.ArticleCodetype,
		&rec.ArticleCode,
		&rec.ContractManVisibleMarkings,
		&rec.ContractManufacturerMtIndex,
		&rec.ComponentScrabKey,
		&rec.Remarks,
		&rec.Printed,
		&rec.NumberColorsBack,
		&rec.PrintCharacteristics,
		&rec.BrailleText,
		&rec.PrintcharBraille,
		&rec.PrintcharFoilstamp,
		&rec.PrintcharGoldhotfoil,
		&rec.PrintcharEmbossdeboss,
		&rec.PrintcharSpotvarnish,
		&rec.PrintcharScratchoff,
		&rec.PrintcharLamination,
		&rec.PrintcharDiecut,
		&rec.PrintcharPerforation,
		&rec.PrintcharGlossvarnish,
		&rec.PrintcharLeafleting,
		&rec.PrintcharFolding,
		&rec.PrintcharRichpalegold,
		&rec.PrintcharSilverhotfoil,
		&rec.PrintcharUnvarnish,
		&rec.PrintcharSecurityvarish,
		&rec.PrintcharMattvarnish,
		&rec.PrintcharCodingbysupplier,
		&rec.PrintcharBklogo,
		&rec.PrintcharSDr,
		&rec.DraCombination,
		&rec.DraCombinationDktxtuc,
		&rec.DraDieline,
		&rec.DraDielineDktxtuc,
		&rec.DraOther,
		&rec.DraOtherDktxtuc,
		&rec.DraAll,
		&rec.DraAllDktxtuc,
		&rec.Dra1,
		&rec.Dra2,
		&rec.Dra3,
		&rec.Dra4,
		&rec.Dra5,
		&rec.Dra6,
		&rec.Dra7,
		&rec.Dra8,
		&rec.Dra9,
		&rec.Dra10,
		&rec.Lra,
		&rec.LraVersion,
		&rec.LraDate,
		&rec.LraFilename,
		&rec.Hrl,
		&rec.HrlVersion,
		&rec.HrlDate,
		&rec.Acs,
		&rec.AcsVersion,
		&rec.TpmDrawing,
		&rec.Tpm,
		&rec.Tpmtxt,
		&rec.TpmStatus,
		&rec.Glpt,
		&rec.Glpttxt,
		&rec.Eclass,
		&rec.Eclasstxt,
		&rec.EclassS,
		&rec.EclassSTxt,
	)
	if err != nil {
		return nil, err
	}

	if !matnr.Valid || matnr.String == "" {
		return nil, fmt.Errorf("row without MATNR")
	}
	rec.MATNR = matnr.String
	rec.MATNR8 = matnr8.Int64

	return &rec, nil
}
