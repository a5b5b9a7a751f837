package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ozadencsevda/restaurant-api/entity"
	"github.com/ozadencsevda/restaurant-api/repository"
)

// MenuItemCreateInput is the full create payload.
type MenuItemCreateInput struct {
	Name            string  `json:"name" binding:"required,min=1,max=200"`
	Description     string  `json:"description"`
	Price           float64 `json:"price" binding:"required,gt=0"`
	CategoryID      uint    `json:"category_id" binding:"required"`
	ImageURL        string  `json:"image_url" binding:"max=500"`
	Calories        int     `json:"calories" binding:"gte=0"`
	PreparationTime int     `json:"preparation_time" binding:"gte=0"`
	IsVegetarian    bool    `json:"is_vegetarian"`
	IsVegan         bool    `json:"is_vegan"`
	IsGlutenFree    bool    `json:"is_gluten_free"`
	IsAvailable     *bool   `json:"is_available"`
	IsFeatured      bool    `json:"is_featured"`
}

// MenuItemUpdateInput carries only supplied fields; nil means leave untouched.
type MenuItemUpdateInput struct {
	Name            *string  `json:"name" binding:"omitempty,min=1,max=200"`
	Description     *string  `json:"description"`
	Price           *float64 `json:"price" binding:"omitempty,gt=0"`
	CategoryID      *uint    `json:"category_id"`
	ImageURL        *string  `json:"image_url" binding:"omitempty,max=500"`
	Calories        *int     `json:"calories" binding:"omitempty,gte=0"`
	PreparationTime *int     `json:"preparation_time" binding:"omitempty,gte=0"`
	IsVegetarian    *bool    `json:"is_vegetarian"`
	IsVegan         *bool    `json:"is_vegan"`
	IsGlutenFree    *bool    `json:"is_gluten_free"`
	IsAvailable     *bool    `json:"is_available"`
	IsFeatured      *bool    `json:"is_featured"`
}

type MenuItemService struct {
	repo         *repository.MenuItemRepository
	categoryRepo *repository.CategoryRepository
}

func NewMenuItemService(repo *repository.MenuItemRepository, categoryRepo *repository.CategoryRepository) *MenuItemService {
	return &MenuItemService{repo: repo, categoryRepo: categoryRepo}
}

func (s *MenuItemService) List(f repository.ItemFilter, skip, limit int) ([]entity.MenuItem, error) {
	return s.repo.List(f, skip, limit)
}

func (s *MenuItemService) Get(id uint) (*entity.MenuItem, error) {
	item, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *MenuItemService) Create(in MenuItemCreateInput, createdBy uint) (*entity.MenuItem, error) {
	if _, err := s.categoryRepo.FindByID(in.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCategory
		}
		return nil, err
	}

	count, err := s.repo.CountByNameInCategory(in.Name, in.CategoryID, 0)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrItemNameTaken
	}

	item := &entity.MenuItem{
		Name:            in.Name,
		Description:     in.Description,
		Price:           in.Price,
		CategoryID:      in.CategoryID,
		ImageURL:        in.ImageURL,
		Calories:        in.Calories,
		PreparationTime: in.PreparationTime,
		IsVegetarian:    in.IsVegetarian,
		IsVegan:         in.IsVegan,
		IsGlutenFree:    in.IsGlutenFree,
		IsAvailable:     true,
		IsFeatured:      in.IsFeatured,
		CreatedBy:       &createdBy,
	}
	if in.IsAvailable != nil {
		item.IsAvailable = *in.IsAvailable
	}

	if err := s.repo.Create(item); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrItemNameTaken
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, ErrInvalidCategory
		}
		return nil, err
	}
	return s.Get(item.ID)
}

// Update mutates only the supplied fields. Category existence and
// name-per-category uniqueness are re-validated only when the relevant
// field changes.
func (s *MenuItemService) Update(id uint, in MenuItemUpdateInput) (*entity.MenuItem, error) {
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if in.CategoryID != nil && *in.CategoryID != item.CategoryID {
		if _, err := s.categoryRepo.FindByID(*in.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrInvalidCategory
			}
			return nil, err
		}
	}

	// uniqueness is scoped to the category the item will end up in
	effectiveCategory := item.CategoryID
	if in.CategoryID != nil {
		effectiveCategory = *in.CategoryID
	}
	effectiveName := item.Name
	if in.Name != nil {
		effectiveName = *in.Name
	}
	if effectiveName != item.Name || effectiveCategory != item.CategoryID {
		count, err := s.repo.CountByNameInCategory(effectiveName, effectiveCategory, id)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrItemNameTaken
		}
	}

	fields := map[string]any{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.Price != nil {
		fields["price"] = *in.Price
	}
	if in.CategoryID != nil {
		fields["category_id"] = *in.CategoryID
	}
	if in.ImageURL != nil {
		fields["image_url"] = *in.ImageURL
	}
	if in.Calories != nil {
		fields["calories"] = *in.Calories
	}
	if in.PreparationTime != nil {
		fields["preparation_time"] = *in.PreparationTime
	}
	if in.IsVegetarian != nil {
		fields["is_vegetarian"] = *in.IsVegetarian
	}
	if in.IsVegan != nil {
		fields["is_vegan"] = *in.IsVegan
	}
	if in.IsGlutenFree != nil {
		fields["is_gluten_free"] = *in.IsGlutenFree
	}
	if in.IsAvailable != nil {
		fields["is_available"] = *in.IsAvailable
	}
	if in.IsFeatured != nil {
		fields["is_featured"] = *in.IsFeatured
	}

	if len(fields) > 0 {
		if err := s.repo.Updates(id, fields); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, ErrItemNameTaken
			}
			if errors.Is(err, gorm.ErrForeignKeyViolated) {
				return nil, ErrInvalidCategory
			}
			return nil, err
		}
	}
	return s.Get(id)
}

// Delete is unconditional once the item exists.
func (s *MenuItemService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

func (s *MenuItemService) ListFeatured(f repository.ItemFilter, sortBy, sortDir string, limit int) ([]entity.MenuItem, error) {
	return s.repo.ListFeatured(f, sortBy, sortDir, limit)
}

// MarkFeatured sets the flag; returns changed=false when it was already set.
func (s *MenuItemService) MarkFeatured(id uint) (bool, error) {
	item, err := s.Get(id)
	if err != nil {
		return false, err
	}
	if item.IsFeatured {
		return false, nil
	}
	return true, s.repo.SetFeatured(id, true)
}

// UnmarkFeatured clears the flag; returns changed=false when already clear.
func (s *MenuItemService) UnmarkFeatured(id uint) (bool, error) {
	item, err := s.Get(id)
	if err != nil {
		return false, err
	}
	if !item.IsFeatured {
		return false, nil
	}
	return true, s.repo.SetFeatured(id, false)
}

func (s *MenuItemService) SetFeatured(id uint, featured bool) (*entity.MenuItem, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	if err := s.repo.SetFeatured(id, featured); err != nil {
		return nil, err
	}
	return s.Get(id)
}

func (s *MenuItemService) Search(f repository.ItemFilter, sortBy, sortDir string, skip, limit int) ([]entity.MenuItem, error) {
	return s.repo.Search(f, sortBy, sortDir, skip, limit)
}

func (s *MenuItemService) Suggest(term string, limit int) ([]repository.Suggestion, error) {
	return s.repo.Suggest(term, limit)
}
