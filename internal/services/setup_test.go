package services

import (
	"WhereIsIt/internal/config"
	"WhereIsIt/internal/metrics"
	"WhereIsIt/internal/models"
	"WhereIsIt/internal/repository"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	db       *gorm.DB
	units    UnitService
	boxes    BoxService
	items    ItemService
	category CategoryService
	search   SearchService
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

func setupTestEnv(t *testing.T) *testEnv {
	db := setupTestDB(t)
	logService := NewDiscardLogService()
	m := metrics.NewMetrics()
	unitRepo := repository.NewUnitRepository(db)
	boxRepo := repository.NewBoxRepository(db)
	itemRepo := repository.NewItemRepository(db)
	return &testEnv{
		db:       db,
		units:    NewUnitService(unitRepo, logService, m),
		boxes:    NewBoxService(boxRepo, unitRepo, NewSlugGenerator(), logService, m),
		items:    NewItemService(itemRepo, boxRepo, logService, m),
		category: NewCategoryService(repository.NewCategoryRepository(db), logService, m),
		search:   NewSearchService(boxRepo, itemRepo),
	}
}

func testConfiguration() *config.Configuration {
	cfg := &config.Configuration{}
	cfg.QR.LinkPrefix = "/hassio/ingress/whereisit"
	cfg.QR.Size = 128
	cfg.Server.CleanConfig.Schedule = "@every 1h"
	return cfg
}

func ptr[T any](v T) *T {
	return &v
}
