package repository

type GenericRepository[T any] interface {
	Create(entity *T) error
	FindByID(id uint) (*T, error)
	FindAll(offset, limit int) ([]T, error)
	Update(id uint, fields map[string]interface{}) (*T, error)
	Delete(id uint) (*T, error)
}
