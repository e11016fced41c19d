package types

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	ColorModelSpot    = "SPOT"
	ColorModelProcess = "PROCESS"

	ColorSpaceCMYK = "CMYK"
	ColorSpaceRGB  = "RGB"
	ColorSpaceLAB  = "LAB"
)

// Swatch is the stored form of a color swatch, color values are kept as a
// JSON array in a text column.
type Swatch struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	ColorName   string    `gorm:"column:color_name;uniqueIndex;not null" json:"colorName"`
	ColorModel  string    `gorm:"column:color_model;not null" json:"colorModel"`
	ColorSpace  string    `gorm:"column:color_space;not null" json:"colorSpace"`
	ColorValues string    `gorm:"column:color_values;not null" json:"-"`
	CreatedAt   time.Time `gorm:"not null" json:"-"`
	UpdatedAt   time.Time `gorm:"not null" json:"-"`
}

func (Swatch) TableName() string { return "swatches" }

// SwatchConfig is the API representation, color values decoded to integers.
type SwatchConfig struct {
	ColorName   string `json:"colorName" binding:"required"`
	ColorModel  string `json:"colorModel" binding:"required,oneof=SPOT PROCESS"`
	ColorSpace  string `json:"colorSpace" binding:"required,oneof=CMYK RGB LAB"`
	ColorValues []int  `json:"colorValues" binding:"required"`
}

type SwatchConfigResponse struct {
	Swatches []SwatchConfig `json:"swatches"`
}

func (s *Swatch) ToConfig() (SwatchConfig, error) {
	var values []int
	if err := json.Unmarshal([]byte(s.ColorValues), &values); err != nil {
		return SwatchConfig{}, fmt.Errorf("decode color values for %q: %w", s.ColorName, err)
	}
	return SwatchConfig{
		ColorName:   s.ColorName,
		ColorModel:  s.ColorModel,
		ColorSpace:  s.ColorSpace,
		ColorValues: values,
	}, nil
}

func (c SwatchConfig) ToSwatch() (*Swatch, error) {
	raw, err := json.Marshal(c.ColorValues)
	if err != nil {
		return nil, fmt.Errorf("encode color values for %q: %w", c.ColorName, err)
	}
	return &Swatch{
		ColorName:   c.ColorName,
		ColorModel:  c.ColorModel,
		ColorSpace:  c.ColorSpace,
		ColorValues: string(raw),
	}, nil
}
