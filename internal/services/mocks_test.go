package services

import (
	"WhereIsIt/internal/models"

	"github.com/stretchr/testify/mock"
)

type MockUnitRepository struct {
	mock.Mock
}

func (m *MockUnitRepository) Create(unit *models.StorageUnit) error {
	args := m.Called(unit)
	return args.Error(0)
}

func (m *MockUnitRepository) FindByID(id uint) (*models.StorageUnit, error) {
	args := m.Called(id)
	unit, _ := args.Get(0).(*models.StorageUnit)
	return unit, args.Error(1)
}

func (m *MockUnitRepository) FindAll(offset, limit int) ([]models.StorageUnit, error) {
	args := m.Called(offset, limit)
	return args.Get(0).([]models.StorageUnit), args.Error(1)
}

func (m *MockUnitRepository) Update(id uint, fields map[string]interface{}) (*models.StorageUnit, error) {
	args := m.Called(id, fields)
	unit, _ := args.Get(0).(*models.StorageUnit)
	return unit, args.Error(1)
}

func (m *MockUnitRepository) Delete(id uint) (*models.StorageUnit, error) {
	args := m.Called(id)
	unit, _ := args.Get(0).(*models.StorageUnit)
	return unit, args.Error(1)
}

type MockBoxRepository struct {
	mock.Mock
}

func (m *MockBoxRepository) Create(box *models.StorageBox) error {
	args := m.Called(box)
	return args.Error(0)
}

func (m *MockBoxRepository) FindByID(id uint) (*models.StorageBox, error) {
	args := m.Called(id)
	box, _ := args.Get(0).(*models.StorageBox)
	return box, args.Error(1)
}

func (m *MockBoxRepository) FindAll(offset, limit int) ([]models.StorageBox, error) {
	args := m.Called(offset, limit)
	return args.Get(0).([]models.StorageBox), args.Error(1)
}

func (m *MockBoxRepository) Update(id uint, fields map[string]interface{}) (*models.StorageBox, error) {
	args := m.Called(id, fields)
	box, _ := args.Get(0).(*models.StorageBox)
	return box, args.Error(1)
}

func (m *MockBoxRepository) Delete(id uint) (*models.StorageBox, error) {
	args := m.Called(id)
	box, _ := args.Get(0).(*models.StorageBox)
	return box, args.Error(1)
}

func (m *MockBoxRepository) FindBySlug(slug string) (*models.StorageBox, error) {
	args := m.Called(slug)
	box, _ := args.Get(0).(*models.StorageBox)
	return box, args.Error(1)
}

func (m *MockBoxRepository) BoxesSearch(whereClause string, args []interface{}) ([]models.StorageBox, error) {
	called := m.Called(whereClause, args)
	return called.Get(0).([]models.StorageBox), called.Error(1)
}

type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) Create(item *models.Item) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockItemRepository) FindByID(id uint) (*models.Item, error) {
	args := m.Called(id)
	item, _ := args.Get(0).(*models.Item)
	return item, args.Error(1)
}

func (m *MockItemRepository) FindAll(offset, limit int) ([]models.Item, error) {
	args := m.Called(offset, limit)
	return args.Get(0).([]models.Item), args.Error(1)
}

func (m *MockItemRepository) Update(id uint, fields map[string]interface{}) (*models.Item, error) {
	args := m.Called(id, fields)
	item, _ := args.Get(0).(*models.Item)
	return item, args.Error(1)
}

func (m *MockItemRepository) Delete(id uint) (*models.Item, error) {
	args := m.Called(id)
	item, _ := args.Get(0).(*models.Item)
	return item, args.Error(1)
}

func (m *MockItemRepository) FindByBoxID(boxID uint) ([]models.Item, error) {
	args := m.Called(boxID)
	return args.Get(0).([]models.Item), args.Error(1)
}

func (m *MockItemRepository) FindPhotoPaths() ([]string, error) {
	args := m.Called()
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockItemRepository) ItemsSearch(whereClause string, args []interface{}, order string, limit int, offset int) ([]models.Item, error) {
	called := m.Called(whereClause, args, order, limit, offset)
	return called.Get(0).([]models.Item), called.Error(1)
}
