package repository

import (
	"WhereIsIt/internal/models"

	"gorm.io/gorm"
)

type ItemRepository interface {
	GenericRepository[models.Item]
	FindByBoxID(boxID uint) ([]models.Item, error)
	FindPhotoPaths() ([]string, error)
	ItemsSearch(
		whereClause string,
		args []interface{},
		order string,
		limit int,
		offset int,
	) ([]models.Item, error)
}

type ItemRepositoryImpl struct {
	*GenericRepositoryImpl[models.Item]
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &ItemRepositoryImpl{
		GenericRepositoryImpl: newGenericRepository[models.Item](db, nil, nil),
		db:                    db,
	}
}

func (r *ItemRepositoryImpl) FindByBoxID(boxID uint) ([]models.Item, error) {
	items := make([]models.Item, 0)
	err := r.db.Where("box_id = ?", boxID).Order("id").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ItemRepositoryImpl) FindPhotoPaths() ([]string, error) {
	var paths []string
	err := r.db.Model(&models.Item{}).
		Where("photo_path IS NOT NULL AND photo_path <> ''").
		Pluck("photo_path", &paths).Error
	if err != nil {
		return nil, err
	}
	return paths, nil
}

// ItemsSearch returns the matching items with their box and the box's items
// attached, so every box in a search result has the same shape. A limit of
// zero or less means no limit.
func (r *ItemRepositoryImpl) ItemsSearch(
	whereClause string,
	args []interface{},
	order string,
	limit int,
	offset int,
) ([]models.Item, error) {
	items := make([]models.Item, 0)
	query := r.db.Preload("Box").Preload("Box.Items", orderByID).Order(order).Offset(offset)
	if whereClause != "" {
		query = query.Where(whereClause, args...)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
