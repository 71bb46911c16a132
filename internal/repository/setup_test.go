package repository

import (
	"WhereIsIt/internal/models"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

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

func strPtr(s string) *string {
	return &s
}

func seedUnit(t *testing.T, db *gorm.DB, name string) *models.StorageUnit {
	t.Helper()
	unit := &models.StorageUnit{Name: name}
	require.NoError(t, NewUnitRepository(db).Create(unit))
	return unit
}

func seedBox(t *testing.T, db *gorm.DB, unitID uint, name, slug string) *models.StorageBox {
	t.Helper()
	box := &models.StorageBox{Name: name, Slug: slug, UnitID: unitID}
	require.NoError(t, NewBoxRepository(db).Create(box))
	return box
}

func seedItem(t *testing.T, db *gorm.DB, boxID uint, name string, category *string) *models.Item {
	t.Helper()
	item := &models.Item{Name: name, Quantity: 1, Category: category, BoxID: boxID}
	require.NoError(t, NewItemRepository(db).Create(item))
	return item
}

var errTableUnavailable = errors.New("table unavailable")

// failWrites makes every update and delete against table fail, so a
// transaction that reaches it must roll back what it already wrote.
func failWrites(t *testing.T, db *gorm.DB, table string) {
	t.Helper()
	fail := func(tx *gorm.DB) {
		if tx.Statement.Table == table {
			_ = tx.AddError(errTableUnavailable)
		}
	}
	require.NoError(t, db.Callback().Update().Before("gorm:update").Register("test:fail_update_"+table, fail))
	require.NoError(t, db.Callback().Delete().Before("gorm:delete").Register("test:fail_delete_"+table, fail))
}
