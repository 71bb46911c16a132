package models

// StorageUnit is a top level physical location such as a shelf or a room.
type StorageUnit struct {
	BaseModel
	Name        string       `gorm:"type:varchar(255);not null" json:"name"`
	Description *string      `gorm:"type:text" json:"description"`
	Boxes       []StorageBox `gorm:"foreignKey:UnitID;constraint:OnDelete:CASCADE" json:"boxes"`
}

func (StorageUnit) TableName() string {
	return "units"
}
