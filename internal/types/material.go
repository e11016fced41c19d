package types

import (
	"time"
)

// MaterialRecord mirrors one row of the warehouse material dataset. MATNR is
// the primary material identifier (zero-padded), MATNR8 the 8-digit numeric
// key used for point lookups. Every payload column is nullable upstream.
type MaterialRecord struct {
	MATNR                       string     `gorm:"column:MATNR;primaryKey" json:"MATNR"`
	MATNR8                      int64      `gorm:"column:MATNR8;index:idx_masterdata_databricks_matnr8" json:"MATNR8"`
	MaterialDescription         *string    `gorm:"column:MATERIAL_DESCRIPTION" json:"materialDescription"`
	MaterialType                *string    `gorm:"column:MATERIAL_TYPE;index:idx_masterdata_databricks_material_type" json:"materialType"`
	XplantStatus                *string    `gorm:"column:XPLANT_STATUS" json:"xplantStatus"`
	Prdhatxt                    *string    `gorm:"column:PRDHATXT" json:"prdhatxt"`
	Makeup                      *string    `gorm:"column:MAKEUP" json:"makeup"`
	Plants                      *string    `gorm:"column:PLANTS" json:"plants"`
	PlantsTxt                   *string    `gorm:"column:PLANTS_TXT" json:"plantsTxt"`
	ContractManufacturerCodetype *string   `gorm:"column:CONTRACT_MANUFACTURER_CODETYPE" json:"contractManufacturerCodetype"`
	ContractManufacturerCode    *string    `gorm:"column:CONTRACT_MANUFACTURER_CODE" json:"contractManufacturerCode"`
	ResponsibleForSpecification *string    `gorm:"column:RESPONSIBLE_FOR_SPECIFICATION" json:"responsibleForSpecification"`
	ContractManufacturerMaterial *string   `gorm:"column:CONTRACT_MANUFACTURER_MATERIAL" json:"contractManufacturerMaterial"`
	LayoutApproved              *string    `gorm:"column:LAYOUT_APPROVED" json:"layoutApproved"`
	UsagePrefix                 *string    `gorm:"column:USAGE_PREFIX" json:"usagePrefix"`
	NumberOfPages               *string    `gorm:"column:NUMBER_OF_PAGES" json:"numberOfPages"`
	AcfFlag                     *string    `gorm:"column:ACF_FLAG" json:"acfFlag"`
	VisibleMarkings             *string    `gorm:"column:VISIBLE_MARKINGS" json:"visibleMarkings"`
	Code                        *string    `gorm:"column:CODE" json:"code"`
	Colors                      *string    `gorm:"column:COLORS" json:"colors"`
	NumberColorsFront           *string    `gorm:"column:NUMBER_COLORS_FRONT" json:"numberColorsFront"`
	ContractManufacturer        *string    `gorm:"column:CONTRACT_MANUFACTURER" json:"contractManufacturer"`
	ArticleCodetype             *string    `gorm:"column:ARTICLE_CODETYPE" json:"articleCodetype"`
	ArticleCode                 *string    `gorm:"column:ARTICLE_CODE" json:"articleCode"`
	ContractManVisibleMarkings  *string    `gorm:"column:CONTRACT_MAN_VISIBLE_MARKINGS" json:"contractManVisibleMarkings"`
	ContractManufacturerMtIndex *string    `gorm:"column:CONTRACT_MANUFACTURER_MT_INDEX" json:"contractManufacturerMtIndex"`
	ComponentScrabKey           *string    `gorm:"column:COMPONENT_SCRAB_KEY" json:"componentScrabKey"`
	Remarks                     *string    `gorm:"column:REMARKS" json:"remarks"`
	Printed                     *string    `gorm:"column:PRINTED" json:"printed"`
	NumberColorsBack            *string    `gorm:"column:NUMBER_COLORS_BACK" json:"numberColorsBack"`
	PrintCharacteristics        *string    `gorm:"column:PRINT_CHARACTERISTICS" json:"printCharacteristics"`
	BrailleText                 *string    `gorm:"column:BRAILLE_TEXT" json:"brailleText"`
	PrintcharBraille            *string    `gorm:"column:PRINTCHAR_BRAILLE" json:"printcharBraille"`
	PrintcharFoilstamp          *string    `gorm:"column:PRINTCHAR_FOILSTAMP" json:"printcharFoilstamp"`
	PrintcharGoldhotfoil        *string    `gorm:"column:PRINTCHAR_GOLDHOTFOIL" json:"printcharGoldhotfoil"`
	PrintcharEmbossdeboss       *string    `gorm:"column:PRINTCHAR_EMBOSSDEBOSS" json:"printcharEmbossdeboss"`
	PrintcharSpotvarnish        *string    `gorm:"column:PRINTCHAR_SPOTVARNISH" json:"printcharSpotvarnish"`
	PrintcharScratchoff         *string    `gorm:"column:PRINTCHAR_SCRATCHOFF" json:"printcharScratchoff"`
	PrintcharLamination         *string    `gorm:"column:PRINTCHAR_LAMINATION" json:"printcharLamination"`
	PrintcharDiecut             *string    `gorm:"column:PRINTCHAR_DIECUT" json:"printcharDiecut"`
	PrintcharPerforation        *string    `gorm:"column:PRINTCHAR_PERFORATION" json:"printcharPerforation"`
	PrintcharGlossvarnish       *string    `gorm:"column:PRINTCHAR_GLOSSVARNISH" json:"printcharGlossvarnish"`
	PrintcharLeafleting         *string    `gorm:"column:PRINTCHAR_LEAFLETING" json:"printcharLeafleting"`
	PrintcharFolding            *string    `gorm:"column:PRINTCHAR_FOLDING" json:"printcharFolding"`
	PrintcharRichpalegold       *string    `gorm:"column:PRINTCHAR_RICHPALEGOLD" json:"printcharRichpalegold"`
	PrintcharSilverhotfoil      *string    `gorm:"column:PRINTCHAR_SILVERHOTFOIL" json:"printcharSilverhotfoil"`
	PrintcharUnvarnish          *string    `gorm:"column:PRINTCHAR_UNVARNISH" json:"printcharUnvarnish"`
	PrintcharSecurityvarish     *string    `gorm:"column:PRINTCHAR_SECURITYVARISH" json:"printcharSecurityvarish"`
	PrintcharMattvarnish        *string    `gorm:"column:PRINTCHAR_MATTVARNISH" json:"printcharMattvarnish"`
	PrintcharCodingbysupplier   *string    `gorm:"column:PRINTCHAR_CODINGBYSUPPLIER" json:"printcharCodingbysupplier"`
	PrintcharBklogo             *string    `gorm:"column:PRINTCHAR_BKLOGO" json:"printcharBklogo"`
	PrintcharSDr                *string    `gorm:"column:PRINTCHAR_S_DR" json:"printcharSDr"`
	DraCombination              *string    `gorm:"column:DRA_COMBINATION" json:"draCombination"`
	DraCombinationDktxtuc       *string    `gorm:"column:DRA_COMBINATION_DKTXTUC" json:"draCombinationDktxtuc"`
	DraDieline                  *string    `gorm:"column:DRA_DIELINE" json:"draDieline"`
	DraDielineDktxtuc           *string    `gorm:"column:DRA_DIELINE_DKTXTUC" json:"draDielineDktxtuc"`
	DraOther                    *string    `gorm:"column:DRA_OTHER" json:"draOther"`
	DraOtherDktxtuc             *string    `gorm:"column:DRA_OTHER_DKTXTUC" json:"draOtherDktxtuc"`
	DraAll                      *string    `gorm:"column:DRA_ALL" json:"draAll"`
	DraAllDktxtuc               *string    `gorm:"column:DRA_ALL_DKTXTUC" json:"draAllDktxtuc"`
	Dra1                        *string    `gorm:"column:DRA_1" json:"dra1"`
	Dra2                        *string    `gorm:"column:DRA_2" json:"dra2"`
	Dra3                        *string    `gorm:"column:DRA_3" json:"dra3"`
	Dra4                        *string    `gorm:"column:DRA_4" json:"dra4"`
	Dra5                        *string    `gorm:"column:DRA_5" json:"dra5"`
	Dra6                        *string    `gorm:"column:DRA_6" json:"dra6"`
	Dra7                        *string    `gorm:"column:DRA_7" json:"dra7"`
	Dra8                        *string    `gorm:"column:DRA_8" json:"dra8"`
	Dra9                        *string    `gorm:"column:DRA_9" json:"dra9"`
	Dra10                       *string    `gorm:"column:DRA_10" json:"dra10"`
	Lra                         *string    `gorm:"column:LRA" json:"lra"`
	LraVersion                  *string    `gorm:"column:LRA_VERSION" json:"lraVersion"`
	LraDate                     *string    `gorm:"column:LRA_DATE" json:"lraDate"`
	LraFilename                 *string    `gorm:"column:LRA_FILENAME" json:"lraFilename"`
	Hrl                         *string    `gorm:"column:HRL" json:"hrl"`
	HrlVersion                  *string    `gorm:"column:HRL_VERSION" json:"hrlVersion"`
	HrlDate                     *string    `gorm:"column:HRL_DATE" json:"hrlDate"`
	Acs                         *string    `gorm:"column:ACS" json:"acs"`
	AcsVersion                  *string    `gorm:"column:ACS_VERSION" json:"acsVersion"`
	TpmDrawing                  *string    `gorm:"column:TPM_DRAWING" json:"tpmDrawing"`
	Tpm                         *string    `gorm:"column:TPM" json:"tpm"`
	Tpmtxt                      *string    `gorm:"column:TPMTXT" json:"tpmtxt"`
	TpmStatus                   *string    `gorm:"column:TPM_STATUS" json:"tpmStatus"`
	Glpt                        *string    `gorm:"column:GLPT" json:"glpt"`
	Glpttxt                     *string    `gorm:"column:GLPTTXT" json:"glpttxt"`
	Eclass                      *string    `gorm:"column:ECLASS" json:"eclass"`
	Eclasstxt                   *string    `gorm:"column:ECLASSTXT" json:"eclasstxt"`
	EclassS                     *string    `gorm:"column:ECLASS_S" json:"eclassS"`
	EclassSTxt                  *string    `gorm:"column:ECLASS_S_TXT" json:"eclassSText"`
	CreatedAt                   time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt                   time.Time  `gorm:"column:updated_at" json:"updated_at"`
}

func (MaterialRecord) TableName() string { return "masterdata_databricks" }

type MasterdataResponse struct {
	Masterdata []*MaterialRecord `json:"masterdata"`
}
