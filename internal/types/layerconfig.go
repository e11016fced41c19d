package types

import "time"

// LayerConfigSet groups the InDesign layers for one document template, for
// example "default" or "FoldingBox".
type LayerConfigSet struct {
	ID         uint          `gorm:"primaryKey;autoIncrement" json:"-"`
	ConfigName string        `gorm:"column:config_name;uniqueIndex;not null" json:"configName" binding:"required"`
	Layers     []LayerConfig `gorm:"foreignKey:ConfigSetID;constraint:OnDelete:CASCADE" json:"layers" binding:"required,dive"`
	CreatedAt  time.Time     `gorm:"not null" json:"-"`
	UpdatedAt  time.Time     `gorm:"not null" json:"-"`
}

func (LayerConfigSet) TableName() string { return "layer_config_sets" }

type LayerConfig struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"-"`
	ConfigSetID uint   `gorm:"column:config_set_id;index;not null" json:"-"`
	Name        string `gorm:"column:name;not null" json:"name" binding:"required"`
	Locked      bool   `gorm:"column:locked;not null" json:"locked"`
	Print       bool   `gorm:"column:print;not null" json:"print"`
	Color       string `gorm:"column:color;not null" json:"color" binding:"required"`
}

func (LayerConfig) TableName() string { return "layer_config" }
