package repository

import (
	"github.com/ozadencsevda/restaurant-api/entity"
	"gorm.io/gorm"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) List(isActive *bool, skip, limit int) ([]entity.Category, error) {
	q := r.DB.Model(&entity.Category{})
	if isActive != nil {
		q = q.Where("is_active = ?", *isActive)
	}

	var categories []entity.Category
	err := q.Order("id asc").Offset(skip).Limit(limit).Find(&categories).Error
	return categories, err
}

func (r *CategoryRepository) FindByID(id uint) (*entity.Category, error) {
	var category entity.Category
	if err := r.DB.First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// CountByName matches the name exactly (case-sensitive); excludeID skips the
// row being updated.
func (r *CategoryRepository) CountByName(name string, excludeID uint) (int64, error) {
	q := r.DB.Model(&entity.Category{}).Where("name = ?", name)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	err := q.Count(&count).Error
	return count, err
}

func (r *CategoryRepository) Create(category *entity.Category) error {
	return r.DB.Create(category).Error
}

func (r *CategoryRepository) Updates(id uint, fields map[string]any) error {
	return r.DB.Model(&entity.Category{}).Where("id = ?", id).Updates(fields).Error
}

func (r *CategoryRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Category{}, id).Error
}

// CountItems reports how many menu items still reference the category.
func (r *CategoryRepository) CountItems(categoryID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.MenuItem{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}

func (r *CategoryRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Category{}).Count(&count).Error
	return count, err
}
