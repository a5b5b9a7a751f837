package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ozadencsevda/restaurant-api/pkg/resp"
	"github.com/ozadencsevda/restaurant-api/repository"
	"github.com/ozadencsevda/restaurant-api/services"
)

// FeaturedController owns the featured sub-resource of menu items.
// Mutations require authentication but not the admin flag.
type FeaturedController struct {
	svc *services.MenuItemService
}

func NewFeaturedController(svc *services.MenuItemService) *FeaturedController {
	return &FeaturedController{svc: svc}
}

type featuredListQuery struct {
	Limit      int      `form:"limit,default=10" binding:"gte=1,lte=50"`
	CategoryID *uint    `form:"category_id"`
	MinPrice   *float64 `form:"min_price" binding:"omitempty,gte=0"`
	MaxPrice   *float64 `form:"max_price" binding:"omitempty,gte=0"`
	SortBy     string   `form:"sort_by" binding:"omitempty,oneof=name price created_at"`
	SortDir    string   `form:"sort_dir,default=asc" binding:"oneof=asc desc"`
}

// GET /api/v1/menu-items/featured (public)
func (ctl *FeaturedController) List(c *gin.Context) {
	var q featuredListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	items, err := ctl.svc.ListFeatured(repository.ItemFilter{
		CategoryID: q.CategoryID,
		MinPrice:   q.MinPrice,
		MaxPrice:   q.MaxPrice,
	}, q.SortBy, q.SortDir, q.Limit)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, toItemSummaries(items))
}

// POST /api/v1/menu-items/:id/featured
func (ctl *FeaturedController) Mark(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}

	changed, err := ctl.svc.MarkFeatured(uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	if !changed {
		resp.Created(c, gin.H{"message": "already featured"})
		return
	}
	resp.Created(c, gin.H{"is_featured": true})
}

// DELETE /api/v1/menu-items/:id/featured
func (ctl *FeaturedController) Unmark(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}

	if _, err := ctl.svc.UnmarkFeatured(uint(id)); err != nil {
		fail(c, err)
		return
	}
	resp.NoContent(c)
}

type featuredPatchRequest struct {
	IsFeatured *bool `json:"is_featured" binding:"required"`
}

// PATCH /api/v1/menu-items/:id/featured
func (ctl *FeaturedController) Patch(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}

	var req featuredPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := ctl.svc.SetFeatured(uint(id), *req.IsFeatured)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"is_featured": item.IsFeatured})
}
