package controllers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ozadencsevda/restaurant-api/entity"
	"github.com/ozadencsevda/restaurant-api/pkg/resp"
	"github.com/ozadencsevda/restaurant-api/services"
)

type categoryResponse struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	IsActive       bool      `json:"is_active"`
	DisplayOrder   int       `json:"display_order"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	MenuItemsCount int64     `json:"menu_items_count"`
}

func toCategoryResponse(d services.CategoryDetail) categoryResponse {
	return categoryResponse{
		ID:             d.Category.ID,
		Name:           d.Category.Name,
		Description:    d.Category.Description,
		IsActive:       d.Category.IsActive,
		DisplayOrder:   d.Category.DisplayOrder,
		CreatedAt:      d.Category.CreatedAt,
		UpdatedAt:      d.Category.UpdatedAt,
		MenuItemsCount: d.ItemCount,
	}
}

// menuItemSummary is the flat listing shape with the category name
// denormalized in.
type menuItemSummary struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	CategoryName string  `json:"category_name"`
	IsAvailable  bool    `json:"is_available"`
	IsFeatured   bool    `json:"is_featured"`
	ImageURL     string  `json:"image_url"`
}

func toItemSummaries(items []entity.MenuItem) []menuItemSummary {
	out := make([]menuItemSummary, 0, len(items))
	for _, it := range items {
		out = append(out, menuItemSummary{
			ID:           it.ID,
			Name:         it.Name,
			Description:  it.Description,
			Price:        it.Price,
			CategoryName: it.Category.Name,
			IsAvailable:  it.IsAvailable,
			IsFeatured:   it.IsFeatured,
			ImageURL:     it.ImageURL,
		})
	}
	return out
}

type categoryInfo struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type menuItemDetail struct {
	ID              uint         `json:"id"`
	Name            string       `json:"name"`
	Description     string       `json:"description"`
	Price           float64      `json:"price"`
	CategoryID      uint         `json:"category_id"`
	Category        categoryInfo `json:"category"`
	ImageURL        string       `json:"image_url"`
	Calories        int          `json:"calories"`
	PreparationTime int          `json:"preparation_time"`
	IsVegetarian    bool         `json:"is_vegetarian"`
	IsVegan         bool         `json:"is_vegan"`
	IsGlutenFree    bool         `json:"is_gluten_free"`
	IsAvailable     bool         `json:"is_available"`
	IsFeatured      bool         `json:"is_featured"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
	CreatedBy       *uint        `json:"created_by"`
}

func toItemDetail(it *entity.MenuItem) menuItemDetail {
	return menuItemDetail{
		ID:              it.ID,
		Name:            it.Name,
		Description:     it.Description,
		Price:           it.Price,
		CategoryID:      it.CategoryID,
		Category:        categoryInfo{ID: it.Category.ID, Name: it.Category.Name},
		ImageURL:        it.ImageURL,
		Calories:        it.Calories,
		PreparationTime: it.PreparationTime,
		IsVegetarian:    it.IsVegetarian,
		IsVegan:         it.IsVegan,
		IsGlutenFree:    it.IsGlutenFree,
		IsAvailable:     it.IsAvailable,
		IsFeatured:      it.IsFeatured,
		CreatedAt:       it.CreatedAt,
		UpdatedAt:       it.UpdatedAt,
		CreatedBy:       it.CreatedBy,
	}
}

// fail maps service errors onto the response taxonomy: missing resources are
// 404, conflicts and referential failures 400, the rest 500.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrCategoryNotFound),
		errors.Is(err, services.ErrItemNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrCategoryNameTaken),
		errors.Is(err, services.ErrCategoryHasItems),
		errors.Is(err, services.ErrItemNameTaken),
		errors.Is(err, services.ErrInvalidCategory),
		errors.Is(err, services.ErrEmailTaken):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		resp.Unauthorized(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
