package handlers

import (
	"WhereIsIt/internal/dto"
	"WhereIsIt/internal/models"
	"WhereIsIt/internal/storage"
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

type MockUnitService struct {
	mock.Mock
}

func (m *MockUnitService) CreateUnit(input dto.UnitCreateDTO) (*models.StorageUnit, error) {
	args := m.Called(input)
	unit, _ := args.Get(0).(*models.StorageUnit)
	return unit, args.Error(1)
}

func (m *MockUnitService) GetUnits(skip, limit int) ([]models.StorageUnit, error) {
	args := m.Called(skip, limit)
	units, _ := args.Get(0).([]models.StorageUnit)
	return units, args.Error(1)
}

func (m *MockUnitService) GetUnitByID(id uint) (*models.StorageUnit, error) {
	args := m.Called(id)
	unit, _ := args.Get(0).(*models.StorageUnit)
	return unit, args.Error(1)
}

func (m *MockUnitService) UpdateUnit(id uint, input dto.UnitUpdateDTO) (*models.StorageUnit, error) {
	args := m.Called(id, input)
	unit, _ := args.Get(0).(*models.StorageUnit)
	return unit, args.Error(1)
}

func (m *MockUnitService) DeleteUnit(id uint) (*models.StorageUnit, error) {
	args := m.Called(id)
	unit, _ := args.Get(0).(*models.StorageUnit)
	return unit, args.Error(1)
}

type MockBoxService struct {
	mock.Mock
}

func (m *MockBoxService) CreateBox(input dto.BoxCreateDTO) (*models.StorageBox, error) {
	args := m.Called(input)
	box, _ := args.Get(0).(*models.StorageBox)
	return box, args.Error(1)
}

func (m *MockBoxService) GetBoxes(skip, limit int) ([]models.StorageBox, error) {
	args := m.Called(skip, limit)
	boxes, _ := args.Get(0).([]models.StorageBox)
	return boxes, args.Error(1)
}

func (m *MockBoxService) GetBoxByID(id uint) (*models.StorageBox, error) {
	args := m.Called(id)
	box, _ := args.Get(0).(*models.StorageBox)
	return box, args.Error(1)
}

func (m *MockBoxService) GetBoxBySlug(slug string) (*models.StorageBox, error) {
	args := m.Called(slug)
	box, _ := args.Get(0).(*models.StorageBox)
	return box, args.Error(1)
}

func (m *MockBoxService) UpdateBox(id uint, input dto.BoxUpdateDTO) (*models.StorageBox, error) {
	args := m.Called(id, input)
	box, _ := args.Get(0).(*models.StorageBox)
	return box, args.Error(1)
}

func (m *MockBoxService) DeleteBox(id uint) (*models.StorageBox, error) {
	args := m.Called(id)
	box, _ := args.Get(0).(*models.StorageBox)
	return box, args.Error(1)
}

type MockItemService struct {
	mock.Mock
}

func (m *MockItemService) CreateItem(boxID uint, input dto.ItemCreateDTO) (*models.Item, error) {
	args := m.Called(boxID, input)
	item, _ := args.Get(0).(*models.Item)
	return item, args.Error(1)
}

func (m *MockItemService) GetItems(skip, limit int) ([]models.Item, error) {
	args := m.Called(skip, limit)
	items, _ := args.Get(0).([]models.Item)
	return items, args.Error(1)
}

func (m *MockItemService) GetItemByID(id uint) (*models.Item, error) {
	args := m.Called(id)
	item, _ := args.Get(0).(*models.Item)
	return item, args.Error(1)
}

func (m *MockItemService) GetItemsByBoxID(boxID uint) ([]models.Item, error) {
	args := m.Called(boxID)
	items, _ := args.Get(0).([]models.Item)
	return items, args.Error(1)
}

func (m *MockItemService) UpdateItem(id uint, input dto.ItemUpdateDTO) (*models.Item, error) {
	args := m.Called(id, input)
	item, _ := args.Get(0).(*models.Item)
	return item, args.Error(1)
}

func (m *MockItemService) DeleteItem(id uint) (*models.Item, error) {
	args := m.Called(id)
	item, _ := args.Get(0).(*models.Item)
	return item, args.Error(1)
}

func (m *MockItemService) SetPhotoPath(id uint, photoPath string) (*models.Item, error) {
	args := m.Called(id, photoPath)
	item, _ := args.Get(0).(*models.Item)
	return item, args.Error(1)
}

type MockQRService struct {
	mock.Mock
}

func (m *MockQRService) BoxLink(slug string) string {
	return m.Called(slug).String(0)
}

func (m *MockQRService) BoxQRCode(boxID uint) ([]byte, error) {
	args := m.Called(boxID)
	png, _ := args.Get(0).([]byte)
	return png, args.Error(1)
}

type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) ListCategories() ([]string, error) {
	args := m.Called()
	names, _ := args.Get(0).([]string)
	return names, args.Error(1)
}

func (m *MockCategoryService) CreateCategory(name string) (*models.Category, bool, error) {
	args := m.Called(name)
	category, _ := args.Get(0).(*models.Category)
	return category, args.Bool(1), args.Error(2)
}

func (m *MockCategoryService) RenameCategory(oldName, newName string) error {
	return m.Called(oldName, newName).Error(0)
}

func (m *MockCategoryService) DeleteCategory(name string) error {
	return m.Called(name).Error(0)
}

type MockSearchService struct {
	mock.Mock
}

func (m *MockSearchService) Search(query string, category *string) (*dto.SearchResultDTO, error) {
	args := m.Called(query, category)
	result, _ := args.Get(0).(*dto.SearchResultDTO)
	return result, args.Error(1)
}

type MockPhotoService struct {
	mock.Mock
}

func (m *MockPhotoService) UploadPhoto(ctx context.Context, itemID uint, upload dto.PhotoUploadDTO) (*models.Item, error) {
	args := m.Called(ctx, itemID, upload)
	item, _ := args.Get(0).(*models.Item)
	return item, args.Error(1)
}

func (m *MockPhotoService) OpenPhoto(ctx context.Context, key string) (storage.Info, io.ReadCloser, error) {
	args := m.Called(ctx, key)
	body, _ := args.Get(1).(io.ReadCloser)
	return args.Get(0).(storage.Info), body, args.Error(2)
}
