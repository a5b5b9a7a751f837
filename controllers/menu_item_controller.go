package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ozadencsevda/restaurant-api/pkg/resp"
	"github.com/ozadencsevda/restaurant-api/repository"
	"github.com/ozadencsevda/restaurant-api/services"
	"github.com/ozadencsevda/restaurant-api/utils"
)

type MenuItemController struct {
	svc *services.MenuItemService
}

func NewMenuItemController(svc *services.MenuItemService) *MenuItemController {
	return &MenuItemController{svc: svc}
}

// itemFilterQuery is shared by the list, search and featured endpoints;
// unset params mean no filter.
type itemFilterQuery struct {
	CategoryID   *uint    `form:"category_id"`
	IsAvailable  *bool    `form:"is_available"`
	IsFeatured   *bool    `form:"is_featured"`
	IsVegetarian *bool    `form:"is_vegetarian"`
	IsVegan      *bool    `form:"is_vegan"`
	IsGlutenFree *bool    `form:"is_gluten_free"`
	MinPrice     *float64 `form:"min_price" binding:"omitempty,gte=0"`
	MaxPrice     *float64 `form:"max_price" binding:"omitempty,gte=0"`
}

func (q itemFilterQuery) toFilter() repository.ItemFilter {
	return repository.ItemFilter{
		CategoryID:   q.CategoryID,
		IsAvailable:  q.IsAvailable,
		IsFeatured:   q.IsFeatured,
		IsVegetarian: q.IsVegetarian,
		IsVegan:      q.IsVegan,
		IsGlutenFree: q.IsGlutenFree,
		MinPrice:     q.MinPrice,
		MaxPrice:     q.MaxPrice,
	}
}

type itemListQuery struct {
	itemFilterQuery
	Skip   int    `form:"skip,default=0" binding:"gte=0"`
	Limit  int    `form:"limit,default=100" binding:"gte=1,lte=500"`
	Search string `form:"search"`
}

// GET /api/v1/menu-items
func (ctl *MenuItemController) List(c *gin.Context) {
	var q itemListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	filter := q.toFilter()
	filter.Search = q.Search

	items, err := ctl.svc.List(filter, q.Skip, q.Limit)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, toItemSummaries(items))
}

// GET /api/v1/menu-items/:id
func (ctl *MenuItemController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}

	item, err := ctl.svc.Get(uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, toItemDetail(item))
}

// POST /api/v1/menu-items (admin)
func (ctl *MenuItemController) Create(c *gin.Context) {
	var in services.MenuItemCreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := ctl.svc.Create(in, utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, toItemDetail(item))
}

// PUT /api/v1/menu-items/:id and PATCH /api/v1/menu-items/:id (admin).
// Both apply partial semantics: only supplied fields change.
func (ctl *MenuItemController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}

	var in services.MenuItemUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := ctl.svc.Update(uint(id), in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, toItemDetail(item))
}

// DELETE /api/v1/menu-items/:id (admin)
func (ctl *MenuItemController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}

	if err := ctl.svc.Delete(uint(id)); err != nil {
		fail(c, err)
		return
	}
	resp.NoContent(c)
}
