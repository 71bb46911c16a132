package services

import (
	"WhereIsIt/internal/metrics"
	"WhereIsIt/internal/models"
	"WhereIsIt/internal/repository"
	"errors"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type CategoryService interface {
	ListCategories() ([]string, error)
	// CreateCategory reports created=false, without writing, when the name
	// is already registered.
	CreateCategory(name string) (category *models.Category, created bool, err error)
	RenameCategory(oldName, newName string) error
	DeleteCategory(name string) error
}

type categoryServiceImpl struct {
	categoryRepo repository.CategoryRepository
	logService   LogService
	metrics      *metrics.Metrics
}

func NewCategoryService(categoryRepo repository.CategoryRepository, logService LogService, metrics *metrics.Metrics) CategoryService {
	return &categoryServiceImpl{categoryRepo: categoryRepo, logService: logService, metrics: metrics}
}

// ListCategories merges the registry with the categories used by items,
// dropping blanks and duplicates, in byte order.
func (s *categoryServiceImpl) ListCategories() ([]string, error) {
	itemNames, err := s.categoryRepo.ItemCategoryNames()
	if err != nil {
		return nil, err
	}
	registryNames, err := s.categoryRepo.RegistryNames()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(itemNames)+len(registryNames))
	names := make([]string, 0, len(itemNames)+len(registryNames))
	for _, name := range append(itemNames, registryNames...) {
		if strings.TrimSpace(name) == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *categoryServiceImpl) CreateCategory(name string) (*models.Category, bool, error) {
	name = strings.TrimSpace(name)
	if err := required("name", name); err != nil {
		return nil, false, err
	}

	existing, err := s.categoryRepo.FindByName(name)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	category := &models.Category{Name: name}
	if err = s.categoryRepo.Create(category); err != nil {
		if isDuplicateKey(err) {
			// Lost a race with a concurrent create of the same name.
			existing, findErr := s.categoryRepo.FindByName(name)
			if findErr != nil {
				return nil, false, findErr
			}
			return existing, false, nil
		}
		return nil, false, err
	}
	s.metrics.EntityCreated("category")
	s.logService.Log.WithFields(logrus.Fields{"category": name}).Info("category created")
	return category, true, nil
}

func (s *categoryServiceImpl) RenameCategory(oldName, newName string) error {
	newName = strings.TrimSpace(newName)
	if err := required("new_name", newName); err != nil {
		return err
	}
	if oldName == newName {
		return nil
	}
	found, err := s.categoryRepo.Rename(oldName, newName)
	if err != nil {
		return err
	}
	if !found {
		return &NotFoundError{Entity: "Category", Key: oldName}
	}
	s.logService.Log.WithFields(logrus.Fields{"category": oldName, "new_name": newName}).Info("category renamed")
	return nil
}

func (s *categoryServiceImpl) DeleteCategory(name string) error {
	found, err := s.categoryRepo.Delete(name)
	if err != nil {
		return err
	}
	if !found {
		return &NotFoundError{Entity: "Category", Key: name}
	}
	s.metrics.EntityDeleted("category")
	s.logService.Log.WithFields(logrus.Fields{"category": name}).Info("category deleted")
	return nil
}
