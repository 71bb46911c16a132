package models

type Item struct {
	BaseModel
	Name        string  `gorm:"type:varchar(255);not null" json:"name"`
	Description *string `gorm:"type:text" json:"description"`
	Quantity    int     `gorm:"not null" json:"quantity"`
	// Category is a denormalized copy of a category name, not a foreign key.
	Category  *string     `gorm:"type:varchar(255);index" json:"category"`
	PhotoPath *string     `gorm:"type:text" json:"photo_path,omitempty"`
	BoxID     uint        `gorm:"not null;index" json:"box_id"`
	Box       *StorageBox `gorm:"foreignKey:BoxID" json:"box,omitempty"`
}
