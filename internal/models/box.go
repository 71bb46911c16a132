package models

// StorageBox lives in exactly one unit. Slug is the identity printed in the
// box's QR code and never changes after creation.
type StorageBox struct {
	BaseModel
	Name        string  `gorm:"type:varchar(255);not null" json:"name"`
	Description *string `gorm:"type:text" json:"description"`
	Slug        string  `gorm:"type:varchar(255);not null;uniqueIndex" json:"slug"`
	UnitID      uint    `gorm:"not null;index" json:"unit_id"`
	Items       []Item  `gorm:"foreignKey:BoxID;constraint:OnDelete:CASCADE" json:"items"`
}

func (StorageBox) TableName() string {
	return "boxes"
}
