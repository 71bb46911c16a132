package repository

import (
	"WhereIsIt/internal/models"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(category *models.Category) error
	FindByName(name string) (*models.Category, error)
	RegistryNames() ([]string, error)
	ItemCategoryNames() ([]string, error)
	// Rename moves every item and the registry row from oldName to newName in
	// one transaction and reports whether oldName was found anywhere.
	Rename(oldName, newName string) (bool, error)
	// Delete clears name from every item and removes the registry row in one
	// transaction. Items are never deleted.
	Delete(name string) (bool, error)
}

type CategoryRepositoryImpl struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &CategoryRepositoryImpl{db: db}
}

func (r *CategoryRepositoryImpl) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

func (r *CategoryRepositoryImpl) FindByName(name string) (*models.Category, error) {
	var category models.Category
	if err := r.db.Where("name = ?", name).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepositoryImpl) RegistryNames() ([]string, error) {
	var names []string
	err := r.db.Model(&models.Category{}).Order("name").Pluck("name", &names).Error
	return names, err
}

func (r *CategoryRepositoryImpl) ItemCategoryNames() ([]string, error) {
	var names []string
	err := r.db.Model(&models.Item{}).
		Distinct("category").
		Where("category IS NOT NULL").
		Order("category").
		Pluck("category", &names).Error
	return names, err
}

func (r *CategoryRepositoryImpl) Rename(oldName, newName string) (bool, error) {
	found := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		items := tx.Model(&models.Item{}).Where("category = ?", oldName).Update("category", newName)
		if items.Error != nil {
			return items.Error
		}

		var existing int64
		if err := tx.Model(&models.Category{}).Where("name = ?", newName).Count(&existing).Error; err != nil {
			return err
		}
		var registry *gorm.DB
		if existing > 0 {
			// newName is already registered, the old row merges into it.
			registry = tx.Where("name = ?", oldName).Delete(&models.Category{})
		} else {
			registry = tx.Model(&models.Category{}).Where("name = ?", oldName).Update("name", newName)
		}
		if registry.Error != nil {
			return registry.Error
		}
		found = items.RowsAffected > 0 || registry.RowsAffected > 0
		return nil
	})
	return found, err
}

func (r *CategoryRepositoryImpl) Delete(name string) (bool, error) {
	found := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		items := tx.Model(&models.Item{}).Where("category = ?", name).Update("category", nil)
		if items.Error != nil {
			return items.Error
		}
		registry := tx.Where("name = ?", name).Delete(&models.Category{})
		if registry.Error != nil {
			return registry.Error
		}
		found = items.RowsAffected > 0 || registry.RowsAffected > 0
		return nil
	})
	return found, err
}
