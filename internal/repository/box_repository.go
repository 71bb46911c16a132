package repository

import (
	"WhereIsIt/internal/models"

	"gorm.io/gorm"
)

type BoxRepository interface {
	GenericRepository[models.StorageBox]
	FindBySlug(slug string) (*models.StorageBox, error)
	BoxesSearch(whereClause string, args []interface{}) ([]models.StorageBox, error)
}

type BoxRepositoryImpl struct {
	*GenericRepositoryImpl[models.StorageBox]
	db *gorm.DB
}

func NewBoxRepository(db *gorm.DB) BoxRepository {
	return &BoxRepositoryImpl{
		GenericRepositoryImpl: newGenericRepository[models.StorageBox](db, []string{"Items"}, deleteBoxChildren),
		db:                    db,
	}
}

func deleteBoxChildren(tx *gorm.DB, boxID uint) error {
	return tx.Where("box_id = ?", boxID).Delete(&models.Item{}).Error
}

// FindBySlug matches the slug exactly, case included.
func (r *BoxRepositoryImpl) FindBySlug(slug string) (*models.StorageBox, error) {
	var box models.StorageBox
	err := r.db.Preload("Items", orderByID).Where("slug = ?", slug).First(&box).Error
	if err != nil {
		return nil, err
	}
	return &box, nil
}

func (r *BoxRepositoryImpl) BoxesSearch(whereClause string, args []interface{}) ([]models.StorageBox, error) {
	boxes := make([]models.StorageBox, 0)
	query := r.db.Preload("Items", orderByID).Order("id")
	if whereClause != "" {
		query = query.Where(whereClause, args...)
	}
	if err := query.Find(&boxes).Error; err != nil {
		return nil, err
	}
	return boxes, nil
}
