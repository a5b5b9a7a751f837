package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ozadencsevda/restaurant-api/entity"
	"github.com/ozadencsevda/restaurant-api/repository"
)

// newTestDB opens a fresh in-memory database per test, with the same error
// translation the server runs with.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&entity.User{}, &entity.Category{}, &entity.MenuItem{}))
	return db
}

func newCategoryService(t *testing.T) (*CategoryService, *gorm.DB) {
	db := newTestDB(t)
	return NewCategoryService(repository.NewCategoryRepository(db)), db
}

func newMenuItemService(t *testing.T) (*MenuItemService, *gorm.DB) {
	db := newTestDB(t)
	return NewMenuItemService(
		repository.NewMenuItemRepository(db),
		repository.NewCategoryRepository(db),
	), db
}

func mustCategory(t *testing.T, db *gorm.DB, name string) entity.Category {
	t.Helper()
	cat := entity.Category{Name: name, IsActive: true}
	require.NoError(t, db.Create(&cat).Error)
	return cat
}

func mustItem(t *testing.T, db *gorm.DB, name string, categoryID uint, price float64) entity.MenuItem {
	t.Helper()
	item := entity.MenuItem{Name: name, CategoryID: categoryID, Price: price, IsAvailable: true}
	require.NoError(t, db.Create(&item).Error)
	return item
}
