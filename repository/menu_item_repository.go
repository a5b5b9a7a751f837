package repository

import (
	"strings"

	"github.com/ozadencsevda/restaurant-api/entity"
	"gorm.io/gorm"
)

// ItemFilter carries the optional list/search filters; nil means no filter.
type ItemFilter struct {
	CategoryID   *uint
	IsAvailable  *bool
	IsFeatured   *bool
	IsVegetarian *bool
	IsVegan      *bool
	IsGlutenFree *bool
	MinPrice     *float64
	MaxPrice     *float64
	Search       string
}

// Suggestion is the lightweight autocomplete payload.
type Suggestion struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

var sortColumns = map[string]string{
	"name":       "name",
	"price":      "price",
	"created_at": "created_at",
}

// OrderClause maps a user-supplied sort to a safe order-by expression.
// Unknown columns fall back to fallbackCol.
func OrderClause(sortBy, sortDir, fallbackCol string) string {
	col, ok := sortColumns[sortBy]
	if !ok {
		col = fallbackCol
	}
	dir := "asc"
	if sortDir == "desc" {
		dir = "desc"
	}
	return col + " " + dir
}

type MenuItemRepository struct {
	DB *gorm.DB
}

func NewMenuItemRepository(db *gorm.DB) *MenuItemRepository {
	return &MenuItemRepository{DB: db}
}

func (r *MenuItemRepository) applyFilter(q *gorm.DB, f ItemFilter) *gorm.DB {
	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}
	if f.IsAvailable != nil {
		q = q.Where("is_available = ?", *f.IsAvailable)
	}
	if f.IsFeatured != nil {
		q = q.Where("is_featured = ?", *f.IsFeatured)
	}
	if f.IsVegetarian != nil {
		q = q.Where("is_vegetarian = ?", *f.IsVegetarian)
	}
	if f.IsVegan != nil {
		q = q.Where("is_vegan = ?", *f.IsVegan)
	}
	if f.IsGlutenFree != nil {
		q = q.Where("is_gluten_free = ?", *f.IsGlutenFree)
	}
	if f.MinPrice != nil {
		q = q.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}
	if f.Search != "" {
		like := "%" + strings.ToLower(f.Search) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}
	return q
}

func (r *MenuItemRepository) List(f ItemFilter, skip, limit int) ([]entity.MenuItem, error) {
	q := r.applyFilter(r.DB.Preload("Category"), f)

	var items []entity.MenuItem
	err := q.Order("id asc").Offset(skip).Limit(limit).Find(&items).Error
	return items, err
}

// Search is List with a caller-chosen sort instead of the fixed id ordering.
func (r *MenuItemRepository) Search(f ItemFilter, sortBy, sortDir string, skip, limit int) ([]entity.MenuItem, error) {
	q := r.applyFilter(r.DB.Preload("Category"), f)

	var items []entity.MenuItem
	err := q.Order(OrderClause(sortBy, sortDir, "name")).Offset(skip).Limit(limit).Find(&items).Error
	return items, err
}

// ListFeatured returns featured+available items; newest-first style defaults
// are decided by the caller through sortBy/sortDir.
func (r *MenuItemRepository) ListFeatured(f ItemFilter, sortBy, sortDir string, limit int) ([]entity.MenuItem, error) {
	featured, available := true, true
	f.IsFeatured = &featured
	f.IsAvailable = &available

	q := r.applyFilter(r.DB.Preload("Category"), f)

	var items []entity.MenuItem
	err := q.Order(OrderClause(sortBy, sortDir, "created_at")).Limit(limit).Find(&items).Error
	return items, err
}

func (r *MenuItemRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.Preload("Category").First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// CountByNameInCategory enforces name-per-category uniqueness (exact,
// case-sensitive); excludeID skips the row being updated.
func (r *MenuItemRepository) CountByNameInCategory(name string, categoryID, excludeID uint) (int64, error) {
	q := r.DB.Model(&entity.MenuItem{}).
		Where("name = ? AND category_id = ?", name, categoryID)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	err := q.Count(&count).Error
	return count, err
}

func (r *MenuItemRepository) Create(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuItemRepository) Updates(id uint, fields map[string]any) error {
	return r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Updates(fields).Error
}

func (r *MenuItemRepository) SetFeatured(id uint, featured bool) error {
	return r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Update("is_featured", featured).Error
}

func (r *MenuItemRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.MenuItem{}, id).Error
}

func (r *MenuItemRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&entity.MenuItem{}).Count(&count).Error
	return count, err
}

// Suggest fills up to limit slots with prefix matches first (alphabetical),
// then tops up with substring matches. The id exclusion sits inside the second
// query so the top-up is never under-filled.
func (r *MenuItemRepository) Suggest(term string, limit int) ([]Suggestion, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []Suggestion{}, nil
	}

	lower := strings.ToLower(term)
	prefixLike := lower + "%"
	anyLike := "%" + lower + "%"

	prefix := make([]Suggestion, 0, limit)
	err := r.DB.Model(&entity.MenuItem{}).
		Select("id", "name").
		Where("LOWER(name) LIKE ?", prefixLike).
		Order("name asc").
		Limit(limit).
		Scan(&prefix).Error
	if err != nil {
		return nil, err
	}
	if len(prefix) >= limit {
		return prefix, nil
	}

	picked := make([]uint, 0, len(prefix))
	for _, s := range prefix {
		picked = append(picked, s.ID)
	}

	q := r.DB.Model(&entity.MenuItem{}).
		Select("id", "name").
		Where("LOWER(name) LIKE ?", anyLike)
	if len(picked) > 0 {
		q = q.Where("id NOT IN ?", picked)
	}

	var rest []Suggestion
	err = q.Order("name asc").
		Limit(limit - len(prefix)).
		Scan(&rest).Error
	if err != nil {
		return nil, err
	}

	return append(prefix, rest...), nil
}
