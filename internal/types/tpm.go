package types

import "time"

// Tpm is a technical packaging material record. The createdBy/createdAt style
// fields are free-text audit data carried over from the source system, the
// Created/UpdatedTimestamp columns are stamped by this store.
type Tpm struct {
	ID               int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	TPM              string    `gorm:"column:tpm;index;not null" json:"TPM" binding:"required"`
	DrawDieline      *string   `gorm:"column:draw_dieline" json:"drawDieline"`
	DrawCombination  *string   `gorm:"column:draw_combination" json:"drawCombination"`
	A                *int64    `gorm:"column:a" json:"A"`
	B                *int64    `gorm:"column:b" json:"B"`
	H                *int64    `gorm:"column:h" json:"H"`
	Variant          *string   `gorm:"column:variant" json:"variant"`
	Version          int       `gorm:"column:version;not null;default:1" json:"version"`
	VariablesList    *string   `gorm:"column:variables_list" json:"variablesList"`
	CreatedBy        *string   `gorm:"column:created_by" json:"createdBy"`
	CreatedAtText    *string   `gorm:"column:created_at_text" json:"createdAt"`
	ModifiedBy       *string   `gorm:"column:modified_by" json:"modifiedBy"`
	ModifiedAtText   *string   `gorm:"column:modified_at_text" json:"modifiedAt"`
	PackType         *string   `gorm:"column:pack_type" json:"packType"`
	Description      *string   `gorm:"column:description" json:"description"`
	Comment          *string   `gorm:"column:comment" json:"comment"`
	PanelList        *string   `gorm:"column:panel_list" json:"panelList"`
	CreatedTimestamp time.Time `gorm:"column:created_timestamp;autoCreateTime" json:"createdTimestamp"`
	UpdatedTimestamp time.Time `gorm:"column:updated_timestamp;autoUpdateTime" json:"updatedTimestamp"`
}

func (Tpm) TableName() string { return "tpm" }

// TpmRequest is the create/update payload, identity and store timestamps are
// assigned server side.
type TpmRequest struct {
	TPM             string  `json:"TPM" binding:"required"`
	DrawDieline     *string `json:"drawDieline"`
	DrawCombination *string `json:"drawCombination"`
	A               *int64  `json:"A"`
	B               *int64  `json:"B"`
	H               *int64  `json:"H"`
	Variant         *string `json:"variant"`
	Version         int     `json:"version"`
	VariablesList   *string `json:"variablesList"`
	CreatedBy       *string `json:"createdBy"`
	CreatedAtText   *string `json:"createdAt"`
	ModifiedBy      *string `json:"modifiedBy"`
	ModifiedAtText  *string `json:"modifiedAt"`
	PackType        *string `json:"packType"`
	Description     *string `json:"description"`
	Comment         *string `json:"comment"`
	PanelList       *string `json:"panelList"`
}

type TpmConfigResponse struct {
	Tpms []*Tpm `json:"tpms"`
}

func (r TpmRequest) ToTpm() *Tpm {
	version := r.Version
	if version == 0 {
		version = 1
	}
	return &Tpm{
		TPM:             r.TPM,
		DrawDieline:     r.DrawDieline,
		DrawCombination: r.DrawCombination,
		A:               r.A,
		B:               r.B,
		H:               r.H,
		Variant:         r.Variant,
		Version:         version,
		VariablesList:   r.VariablesList,
		CreatedBy:       r.CreatedBy,
		CreatedAtText:   r.CreatedAtText,
		ModifiedBy:      r.ModifiedBy,
		ModifiedAtText:  r.ModifiedAtText,
		PackType:        r.PackType,
		Description:     r.Description,
		Comment:         r.Comment,
		PanelList:       r.PanelList,
	}
}
