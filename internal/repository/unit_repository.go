package repository

import (
	"WhereIsIt/internal/models"

	"gorm.io/gorm"
)

type UnitRepository interface {
	GenericRepository[models.StorageUnit]
}

type UnitRepositoryImpl struct {
	*GenericRepositoryImpl[models.StorageUnit]
}

func NewUnitRepository(db *gorm.DB) UnitRepository {
	return &UnitRepositoryImpl{
		GenericRepositoryImpl: newGenericRepository[models.StorageUnit](db, []string{"Boxes", "Boxes.Items"}, deleteUnitChildren),
	}
}

func deleteUnitChildren(tx *gorm.DB, unitID uint) error {
	boxIDs := tx.Model(&models.StorageBox{}).Select("id").Where("unit_id = ?", unitID)
	if err := tx.Where("box_id IN (?)", boxIDs).Delete(&models.Item{}).Error; err != nil {
		return err
	}
	return tx.Where("unit_id = ?", unitID).Delete(&models.StorageBox{}).Error
}
