package services

import (
	"WhereIsIt/internal/dto"
	"WhereIsIt/internal/mapper"
	"WhereIsIt/internal/metrics"
	"WhereIsIt/internal/models"
	"WhereIsIt/internal/repository"

	"github.com/sirupsen/logrus"
)

type UnitService interface {
	CreateUnit(input dto.UnitCreateDTO) (*models.StorageUnit, error)
	GetUnits(skip, limit int) ([]models.StorageUnit, error)
	GetUnitByID(id uint) (*models.StorageUnit, error)
	UpdateUnit(id uint, input dto.UnitUpdateDTO) (*models.StorageUnit, error)
	DeleteUnit(id uint) (*models.StorageUnit, error)
}

type unitServiceImpl struct {
	unitRepo   repository.UnitRepository
	logService LogService
	metrics    *metrics.Metrics
}

func NewUnitService(unitRepo repository.UnitRepository, logService LogService, metrics *metrics.Metrics) UnitService {
	return &unitServiceImpl{unitRepo: unitRepo, logService: logService, metrics: metrics}
}

func (s *unitServiceImpl) CreateUnit(input dto.UnitCreateDTO) (*models.StorageUnit, error) {
	if err := required("name", input.Name); err != nil {
		return nil, err
	}
	unit := mapper.ToUnitModel(input)
	if err := s.unitRepo.Create(unit); err != nil {
		return nil, err
	}
	s.metrics.EntityCreated("unit")
	s.logService.Log.WithFields(logrus.Fields{"unit": unit.ID, "name": unit.Name}).Info("unit created")
	return unit, nil
}

func (s *unitServiceImpl) GetUnits(skip, limit int) ([]models.StorageUnit, error) {
	return s.unitRepo.FindAll(skip, limit)
}

func (s *unitServiceImpl) GetUnitByID(id uint) (*models.StorageUnit, error) {
	unit, err := s.unitRepo.FindByID(id)
	if err != nil {
		return nil, notFound("Unit", id, err)
	}
	return unit, nil
}

func (s *unitServiceImpl) UpdateUnit(id uint, input dto.UnitUpdateDTO) (*models.StorageUnit, error) {
	if input.Name != nil {
		if err := required("name", *input.Name); err != nil {
			return nil, err
		}
	}
	unit, err := s.unitRepo.Update(id, mapper.ToUnitUpdateFields(input))
	if err != nil {
		return nil, notFound("Unit", id, err)
	}
	s.logService.Log.WithFields(logrus.Fields{"unit": id}).Debug("unit updated")
	return unit, nil
}

func (s *unitServiceImpl) DeleteUnit(id uint) (*models.StorageUnit, error) {
	unit, err := s.unitRepo.Delete(id)
	if err != nil {
		return nil, notFound("Unit", id, err)
	}
	s.metrics.EntityDeleted("unit")
	s.logService.Log.WithFields(logrus.Fields{"unit": id, "boxes": len(unit.Boxes)}).Info("unit deleted")
	return unit, nil
}
