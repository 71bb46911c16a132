package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CascadeFunc removes the children of the row identified by id. It runs in
// the same transaction as the delete of the row itself.
type CascadeFunc func(tx *gorm.DB, id uint) error

type GenericRepositoryImpl[T any] struct {
	db       *gorm.DB
	preloads []string
	cascade  CascadeFunc
}

func NewGenericRepository[T any](db *gorm.DB, preloads ...string) GenericRepository[T] {
	return newGenericRepository[T](db, preloads, nil)
}

func newGenericRepository[T any](db *gorm.DB, preloads []string, cascade CascadeFunc) *GenericRepositoryImpl[T] {
	return &GenericRepositoryImpl[T]{db: db, preloads: preloads, cascade: cascade}
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}

func (r *GenericRepositoryImpl[T]) withPreloads(db *gorm.DB) *gorm.DB {
	for _, preload := range r.preloads {
		db = db.Preload(preload, orderByID)
	}
	return db
}

func (r *GenericRepositoryImpl[T]) Create(entity *T) error {
	return r.db.Omit(clause.Associations).Create(entity).Error
}

func (r *GenericRepositoryImpl[T]) FindByID(id uint) (*T, error) {
	return r.findByID(r.db, id)
}

func (r *GenericRepositoryImpl[T]) findByID(db *gorm.DB, id uint) (*T, error) {
	var entity T
	if err := r.withPreloads(db).First(&entity, id).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

func (r *GenericRepositoryImpl[T]) FindAll(offset, limit int) ([]T, error) {
	entities := make([]T, 0)
	query := r.withPreloads(r.db).Order("id").Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&entities).Error
	return entities, err
}

// Update writes only the given columns and returns the reloaded row.
func (r *GenericRepositoryImpl[T]) Update(id uint, fields map[string]interface{}) (*T, error) {
	var updated *T
	err := r.db.Transaction(func(tx *gorm.DB) error {
		entity, err := r.findByID(tx, id)
		if err != nil {
			return err
		}
		if len(fields) > 0 {
			if err = tx.Model(entity).Omit(clause.Associations).Updates(fields).Error; err != nil {
				return err
			}
		}
		updated, err = r.findByID(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the row and its children in one transaction and returns the
// row as it was before deletion.
func (r *GenericRepositoryImpl[T]) Delete(id uint) (*T, error) {
	var deleted *T
	err := r.db.Transaction(func(tx *gorm.DB) error {
		entity, err := r.findByID(tx, id)
		if err != nil {
			return err
		}
		if r.cascade != nil {
			if err = r.cascade(tx, id); err != nil {
				return err
			}
		}
		if err = tx.Delete(entity).Error; err != nil {
			return err
		}
		deleted = entity
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}
