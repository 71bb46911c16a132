package services

import (
	"WhereIsIt/internal/dto"
	"WhereIsIt/internal/mapper"
	"WhereIsIt/internal/metrics"
	"WhereIsIt/internal/models"
	"WhereIsIt/internal/repository"

	"github.com/sirupsen/logrus"
)

type BoxService interface {
	CreateBox(input dto.BoxCreateDTO) (*models.StorageBox, error)
	GetBoxes(skip, limit int) ([]models.StorageBox, error)
	GetBoxByID(id uint) (*models.StorageBox, error)
	GetBoxBySlug(slug string) (*models.StorageBox, error)
	UpdateBox(id uint, input dto.BoxUpdateDTO) (*models.StorageBox, error)
	DeleteBox(id uint) (*models.StorageBox, error)
}

type boxServiceImpl struct {
	boxRepo      repository.BoxRepository
	unitRepo     repository.UnitRepository
	generateSlug SlugGenerator
	logService   LogService
	metrics      *metrics.Metrics
}

func NewBoxService(
	boxRepo repository.BoxRepository,
	unitRepo repository.UnitRepository,
	generateSlug SlugGenerator,
	logService LogService,
	metrics *metrics.Metrics,
) BoxService {
	return &boxServiceImpl{
		boxRepo:      boxRepo,
		unitRepo:     unitRepo,
		generateSlug: generateSlug,
		logService:   logService,
		metrics:      metrics,
	}
}

func (s *boxServiceImpl) CreateBox(input dto.BoxCreateDTO) (*models.StorageBox, error) {
	if err := required("name", input.Name); err != nil {
		return nil, err
	}
	if input.UnitID == 0 {
		return nil, &ValidationError{Field: "unit_id", Message: "is required"}
	}
	if _, err := s.unitRepo.FindByID(input.UnitID); err != nil {
		return nil, notFound("Unit", input.UnitID, err)
	}

	slug := ResolveSlug(input.Slug, s.generateSlug)
	box := mapper.ToBoxModel(input, slug)
	if err := s.boxRepo.Create(box); err != nil {
		if isDuplicateKey(err) {
			return nil, &ConflictError{Entity: "Box", Field: "slug", Value: slug, Err: err}
		}
		if isForeignKeyViolation(err) {
			return nil, &NotFoundError{Entity: "Unit", Key: input.UnitID}
		}
		return nil, err
	}
	s.metrics.EntityCreated("box")
	s.logService.Log.WithFields(logrus.Fields{
		"box":  box.ID,
		"unit": box.UnitID,
		"slug": box.Slug,
	}).Info("box created")
	return box, nil
}

func (s *boxServiceImpl) GetBoxes(skip, limit int) ([]models.StorageBox, error) {
	return s.boxRepo.FindAll(skip, limit)
}

func (s *boxServiceImpl) GetBoxByID(id uint) (*models.StorageBox, error) {
	box, err := s.boxRepo.FindByID(id)
	if err != nil {
		return nil, notFound("Box", id, err)
	}
	return box, nil
}

func (s *boxServiceImpl) GetBoxBySlug(slug string) (*models.StorageBox, error) {
	box, err := s.boxRepo.FindBySlug(slug)
	if err != nil {
		return nil, notFound("Box", slug, err)
	}
	return box, nil
}

func (s *boxServiceImpl) UpdateBox(id uint, input dto.BoxUpdateDTO) (*models.StorageBox, error) {
	if input.Name != nil {
		if err := required("name", *input.Name); err != nil {
			return nil, err
		}
	}
	if input.UnitID != nil {
		if _, err := s.unitRepo.FindByID(*input.UnitID); err != nil {
			return nil, notFound("Unit", *input.UnitID, err)
		}
	}
	box, err := s.boxRepo.Update(id, mapper.ToBoxUpdateFields(input))
	if err != nil {
		if isForeignKeyViolation(err) && input.UnitID != nil {
			return nil, &NotFoundError{Entity: "Unit", Key: *input.UnitID}
		}
		return nil, notFound("Box", id, err)
	}
	s.logService.Log.WithFields(logrus.Fields{"box": id}).Debug("box updated")
	return box, nil
}

func (s *boxServiceImpl) DeleteBox(id uint) (*models.StorageBox, error) {
	box, err := s.boxRepo.Delete(id)
	if err != nil {
		return nil, notFound("Box", id, err)
	}
	s.metrics.EntityDeleted("box")
	s.logService.Log.WithFields(logrus.Fields{"box": id, "items": len(box.Items)}).Info("box deleted")
	return box, nil
}
