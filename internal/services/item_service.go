package services

import (
	"WhereIsIt/internal/dto"
	"WhereIsIt/internal/mapper"
	"WhereIsIt/internal/metrics"
	"WhereIsIt/internal/models"
	"WhereIsIt/internal/repository"

	"github.com/sirupsen/logrus"
)

type ItemService interface {
	CreateItem(boxID uint, input dto.ItemCreateDTO) (*models.Item, error)
	GetItems(skip, limit int) ([]models.Item, error)
	GetItemByID(id uint) (*models.Item, error)
	GetItemsByBoxID(boxID uint) ([]models.Item, error)
	UpdateItem(id uint, input dto.ItemUpdateDTO) (*models.Item, error)
	DeleteItem(id uint) (*models.Item, error)
	SetPhotoPath(id uint, photoPath string) (*models.Item, error)
}

type itemServiceImpl struct {
	itemRepo   repository.ItemRepository
	boxRepo    repository.BoxRepository
	logService LogService
	metrics    *metrics.Metrics
}

func NewItemService(
	itemRepo repository.ItemRepository,
	boxRepo repository.BoxRepository,
	logService LogService,
	metrics *metrics.Metrics,
) ItemService {
	return &itemServiceImpl{itemRepo: itemRepo, boxRepo: boxRepo, logService: logService, metrics: metrics}
}

func validateQuantity(quantity *int) error {
	if quantity != nil && *quantity < 0 {
		return &ValidationError{Field: "quantity", Message: "must not be negative"}
	}
	return nil
}

// CreateItem fails with a NotFoundError when the box does not exist instead
// of inserting an orphan.
func (s *itemServiceImpl) CreateItem(boxID uint, input dto.ItemCreateDTO) (*models.Item, error) {
	if err := required("name", input.Name); err != nil {
		return nil, err
	}
	if err := validateQuantity(input.Quantity); err != nil {
		return nil, err
	}
	if _, err := s.boxRepo.FindByID(boxID); err != nil {
		return nil, notFound("Box", boxID, err)
	}

	item := mapper.ToItemModel(boxID, input)
	if err := s.itemRepo.Create(item); err != nil {
		if isForeignKeyViolation(err) {
			return nil, &NotFoundError{Entity: "Box", Key: boxID}
		}
		return nil, err
	}
	s.metrics.EntityCreated("item")
	s.logService.Log.WithFields(logrus.Fields{"item": item.ID, "box": boxID}).Info("item created")
	return item, nil
}

func (s *itemServiceImpl) GetItems(skip, limit int) ([]models.Item, error) {
	return s.itemRepo.FindAll(skip, limit)
}

func (s *itemServiceImpl) GetItemByID(id uint) (*models.Item, error) {
	item, err := s.itemRepo.FindByID(id)
	if err != nil {
		return nil, notFound("Item", id, err)
	}
	return item, nil
}

func (s *itemServiceImpl) GetItemsByBoxID(boxID uint) ([]models.Item, error) {
	if _, err := s.boxRepo.FindByID(boxID); err != nil {
		return nil, notFound("Box", boxID, err)
	}
	return s.itemRepo.FindByBoxID(boxID)
}

func (s *itemServiceImpl) UpdateItem(id uint, input dto.ItemUpdateDTO) (*models.Item, error) {
	if input.Name != nil {
		if err := required("name", *input.Name); err != nil {
			return nil, err
		}
	}
	if err := validateQuantity(input.Quantity); err != nil {
		return nil, err
	}
	if input.BoxID != nil {
		if _, err := s.boxRepo.FindByID(*input.BoxID); err != nil {
			return nil, notFound("Box", *input.BoxID, err)
		}
	}
	item, err := s.itemRepo.Update(id, mapper.ToItemUpdateFields(input))
	if err != nil {
		if isForeignKeyViolation(err) && input.BoxID != nil {
			return nil, &NotFoundError{Entity: "Box", Key: *input.BoxID}
		}
		return nil, notFound("Item", id, err)
	}
	s.logService.Log.WithFields(logrus.Fields{"item": id}).Debug("item updated")
	return item, nil
}

func (s *itemServiceImpl) DeleteItem(id uint) (*models.Item, error) {
	item, err := s.itemRepo.Delete(id)
	if err != nil {
		return nil, notFound("Item", id, err)
	}
	s.metrics.EntityDeleted("item")
	s.logService.Log.WithFields(logrus.Fields{"item": id, "box": item.BoxID}).Info("item deleted")
	return item, nil
}

func (s *itemServiceImpl) SetPhotoPath(id uint, photoPath string) (*models.Item, error) {
	item, err := s.itemRepo.Update(id, map[string]interface{}{"photo_path": photoPath})
	if err != nil {
		return nil, notFound("Item", id, err)
	}
	return item, nil
}
