package services

import (
	"WhereIsIt/internal/dto"
	"WhereIsIt/internal/metrics"
	"WhereIsIt/internal/models"
	"WhereIsIt/internal/repository"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newMockedBoxService(slug string) (*MockBoxRepository, *MockUnitRepository, BoxService) {
	boxRepo := new(MockBoxRepository)
	unitRepo := new(MockUnitRepository)
	generate := func() string { return slug }
	return boxRepo, unitRepo, NewBoxService(boxRepo, unitRepo, generate, NewDiscardLogService(), metrics.NewMetrics())
}

func TestBoxService_CreateBox_GeneratesSlug(t *testing.T) {
	boxRepo, unitRepo, service := newMockedBoxService("generated")

	unitRepo.On("FindByID", uint(1)).Return(&models.StorageUnit{BaseModel: models.BaseModel{ID: 1}}, nil)
	boxRepo.On("Create", mock.MatchedBy(func(box *models.StorageBox) bool {
		return box.Slug == "generated" && box.UnitID == 1 && box.Name == "Bin 1"
	})).Return(nil)

	box, err := service.CreateBox(dto.BoxCreateDTO{Name: "Bin 1", UnitID: 1})

	assert.NoError(t, err)
	assert.Equal(t, "generated", box.Slug)
	boxRepo.AssertExpectations(t)
}

func TestBoxService_CreateBox_KeepsGivenSlug(t *testing.T) {
	boxRepo, unitRepo, service := newMockedBoxService("generated")

	unitRepo.On("FindByID", uint(1)).Return(&models.StorageUnit{}, nil)
	boxRepo.On("Create", mock.MatchedBy(func(box *models.StorageBox) bool {
		return box.Slug == "Garage-Bin"
	})).Return(nil)

	box, err := service.CreateBox(dto.BoxCreateDTO{Name: "Bin 1", UnitID: 1, Slug: ptr("Garage-Bin")})

	assert.NoError(t, err)
	assert.Equal(t, "Garage-Bin", box.Slug)
}

func TestBoxService_CreateBox_DuplicateSlugConflicts(t *testing.T) {
	boxRepo, unitRepo, service := newMockedBoxService("generated")

	unitRepo.On("FindByID", uint(1)).Return(&models.StorageUnit{}, nil)
	boxRepo.On("Create", mock.Anything).Return(gorm.ErrDuplicatedKey)

	_, err := service.CreateBox(dto.BoxCreateDTO{Name: "Bin 1", UnitID: 1, Slug: ptr("taken")})

	assert.ErrorIs(t, err, ErrConflict)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestBoxService_CreateBox_UnknownUnit(t *testing.T) {
	boxRepo, unitRepo, service := newMockedBoxService("generated")

	unitRepo.On("FindByID", uint(5)).Return(nil, gorm.ErrRecordNotFound)

	_, err := service.CreateBox(dto.BoxCreateDTO{Name: "Bin 1", UnitID: 5})

	assert.ErrorIs(t, err, ErrNotFound)
	boxRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestBoxService_UpdateBox_UnknownTargetUnit(t *testing.T) {
	boxRepo, unitRepo, service := newMockedBoxService("generated")

	unitRepo.On("FindByID", uint(8)).Return(nil, gorm.ErrRecordNotFound)

	_, err := service.UpdateBox(1, dto.BoxUpdateDTO{UnitID: ptr(uint(8))})

	assert.ErrorIs(t, err, ErrNotFound)
	boxRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestBoxService_GetBoxBySlug_NotFound(t *testing.T) {
	boxRepo, _, service := newMockedBoxService("generated")

	boxRepo.On("FindBySlug", "missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := service.GetBoxBySlug("missing")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBoxService_AutoSlugsAreUnique(t *testing.T) {
	env := setupTestEnv(t)
	unit, err := env.units.CreateUnit(dto.UnitCreateDTO{Name: "Garage"})
	require.NoError(t, err)

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		box, err := env.boxes.CreateBox(dto.BoxCreateDTO{Name: "Bin", UnitID: unit.ID})
		require.NoError(t, err)
		assert.NotEmpty(t, box.Slug)
		assert.False(t, seen[box.Slug])
		seen[box.Slug] = true
	}
}

func TestBoxService_DuplicateExplicitSlug_PersistsNothing(t *testing.T) {
	env := setupTestEnv(t)
	unit, err := env.units.CreateUnit(dto.UnitCreateDTO{Name: "Garage"})
	require.NoError(t, err)

	_, err = env.boxes.CreateBox(dto.BoxCreateDTO{Name: "First", UnitID: unit.ID, Slug: ptr("same")})
	require.NoError(t, err)
	_, err = env.boxes.CreateBox(dto.BoxCreateDTO{Name: "Second", UnitID: unit.ID, Slug: ptr("same")})

	assert.ErrorIs(t, err, ErrConflict)
	var count int64
	env.db.Model(&models.StorageBox{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestBoxService_UpdateBox_KeepsSlug(t *testing.T) {
	env := setupTestEnv(t)
	unit, err := env.units.CreateUnit(dto.UnitCreateDTO{Name: "Garage"})
	require.NoError(t, err)
	other, err := env.units.CreateUnit(dto.UnitCreateDTO{Name: "Attic"})
	require.NoError(t, err)
	box, err := env.boxes.CreateBox(dto.BoxCreateDTO{Name: "Bin", UnitID: unit.ID, Description: ptr("old")})
	require.NoError(t, err)

	updated, err := env.boxes.UpdateBox(box.ID, dto.BoxUpdateDTO{UnitID: ptr(other.ID)})

	require.NoError(t, err)
	assert.Equal(t, box.Slug, updated.Slug)
	assert.Equal(t, other.ID, updated.UnitID)
	assert.Equal(t, "Bin", updated.Name)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "old", *updated.Description)
}

func TestBoxService_CreateBox_MissingUnitID(t *testing.T) {
	boxRepo, unitRepo, service := newMockedBoxService("generated")

	_, err := service.CreateBox(dto.BoxCreateDTO{Name: "Bin 1"})

	assert.ErrorIs(t, err, ErrValidation)
	assert.EqualError(t, err, "unit_id is required")
	unitRepo.AssertNotCalled(t, "FindByID", mock.Anything)
	boxRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestBoxService_CreateBox_UnitDeletedBeforeInsert(t *testing.T) {
	boxRepo, unitRepo, service := newMockedBoxService("generated")

	unitRepo.On("FindByID", uint(3)).Return(&models.StorageUnit{}, nil)
	boxRepo.On("Create", mock.Anything).Return(gorm.ErrForeignKeyViolated)

	_, err := service.CreateBox(dto.BoxCreateDTO{Name: "Bin 1", UnitID: 3})

	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "Unit not found")
}

func TestBoxService_UnitVanishesUnderWrite(t *testing.T) {
	env := setupTestEnv(t)
	unit, err := env.units.CreateUnit(dto.UnitCreateDTO{Name: "Garage"})
	require.NoError(t, err)
	box, err := env.boxes.CreateBox(dto.BoxCreateDTO{Name: "Bin", UnitID: unit.ID})
	require.NoError(t, err)

	// The unit lookup succeeds but no row 99 exists when the write happens.
	unitRepo := new(MockUnitRepository)
	unitRepo.On("FindByID", uint(99)).Return(&models.StorageUnit{}, nil)
	service := NewBoxService(repository.NewBoxRepository(env.db), unitRepo, NewSlugGenerator(),
		NewDiscardLogService(), metrics.NewMetrics())

	_, err = service.CreateBox(dto.BoxCreateDTO{Name: "Orphan", UnitID: 99})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "Unit not found")

	_, err = service.UpdateBox(box.ID, dto.BoxUpdateDTO{UnitID: ptr(uint(99))})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "Unit not found")

	reloaded, err := env.boxes.GetBoxByID(box.ID)
	require.NoError(t, err)
	assert.Equal(t, unit.ID, reloaded.UnitID)
}
