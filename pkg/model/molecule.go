package model

import (
	datatypes "gorm.io/datatypes"
)

// Molecule is a stored structure in the library. Structure keeps the
// notation exactly as submitted; Properties caches the last computed
// result set as a JSON document.
type Molecule struct {
	BaseModel
	ClientID   string         `gorm:"type:varchar(120);not null;index:idx_molecule_client_id" json:"client_id"`
	Name       string         `gorm:"type:varchar(255);not null;index:idx_molecule_name" json:"name"`
	Format     string         `gorm:"type:varchar(16);not null" json:"format"`
	Structure  string         `gorm:"type:text;not null" json:"structure"`
	Formula    string         `gorm:"type:varchar(255)" json:"formula"`
	NAtoms     int            `gorm:"not null;default:0" json:"n_atoms"`
	Properties datatypes.JSON `gorm:"type:jsonb" json:"properties"`
	IsDeleted  int8           `gorm:"type:smallint;not null;default:0" json:"is_deleted"`
}

func (*Molecule) TableName() string { return "molecule" }
