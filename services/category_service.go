package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ozadencsevda/restaurant-api/entity"
	"github.com/ozadencsevda/restaurant-api/repository"
)

// CategoryDetail pairs a category with its current item count for responses.
type CategoryDetail struct {
	Category  entity.Category
	ItemCount int64
}

// CategoryCreateInput is the full create payload.
type CategoryCreateInput struct {
	Name         string `json:"name" binding:"required,min=1,max=100"`
	Description  string `json:"description" binding:"max=500"`
	IsActive     *bool  `json:"is_active"`
	DisplayOrder *int   `json:"display_order" binding:"omitempty,gte=0"`
}

// CategoryUpdateInput carries only the fields the caller supplied; nil means
// leave untouched.
type CategoryUpdateInput struct {
	Name         *string `json:"name" binding:"omitempty,min=1,max=100"`
	Description  *string `json:"description" binding:"omitempty,max=500"`
	IsActive     *bool   `json:"is_active"`
	DisplayOrder *int    `json:"display_order" binding:"omitempty,gte=0"`
}

type CategoryService struct {
	repo *repository.CategoryRepository
}

func NewCategoryService(repo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) List(isActive *bool, skip, limit int) ([]CategoryDetail, error) {
	categories, err := s.repo.List(isActive, skip, limit)
	if err != nil {
		return nil, err
	}

	details := make([]CategoryDetail, 0, len(categories))
	for _, cat := range categories {
		count, err := s.repo.CountItems(cat.ID)
		if err != nil {
			return nil, err
		}
		details = append(details, CategoryDetail{Category: cat, ItemCount: count})
	}
	return details, nil
}

func (s *CategoryService) Get(id uint) (*CategoryDetail, error) {
	category, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	count, err := s.repo.CountItems(id)
	if err != nil {
		return nil, err
	}
	return &CategoryDetail{Category: *category, ItemCount: count}, nil
}

func (s *CategoryService) Create(in CategoryCreateInput) (*entity.Category, error) {
	count, err := s.repo.CountByName(in.Name, 0)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrCategoryNameTaken
	}

	category := &entity.Category{
		Name:        in.Name,
		Description: in.Description,
		IsActive:    true,
	}
	if in.IsActive != nil {
		category.IsActive = *in.IsActive
	}
	if in.DisplayOrder != nil {
		category.DisplayOrder = *in.DisplayOrder
	}

	if err := s.repo.Create(category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCategoryNameTaken
		}
		return nil, err
	}
	return category, nil
}

// Update mutates only the supplied fields. The name uniqueness check runs
// only when the name actually changes.
func (s *CategoryService) Update(id uint, in CategoryUpdateInput) (*CategoryDetail, error) {
	category, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	if in.Name != nil && *in.Name != category.Name {
		count, err := s.repo.CountByName(*in.Name, id)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrCategoryNameTaken
		}
	}

	fields := map[string]any{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.IsActive != nil {
		fields["is_active"] = *in.IsActive
	}
	if in.DisplayOrder != nil {
		fields["display_order"] = *in.DisplayOrder
	}

	if len(fields) > 0 {
		if err := s.repo.Updates(id, fields); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, ErrCategoryNameTaken
			}
			return nil, err
		}
	}
	return s.Get(id)
}

// Delete refuses while menu items still reference the category.
func (s *CategoryService) Delete(id uint) error {
	if _, err := s.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}

	count, err := s.repo.CountItems(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: %d item(s) still reference it, move or delete them first", ErrCategoryHasItems, count)
	}

	return s.repo.Delete(id)
}
