package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/ozadencsevda/restaurant-api/pkg/resp"
	"github.com/ozadencsevda/restaurant-api/services"
)

type SearchController struct {
	svc *services.MenuItemService
}

func NewSearchController(svc *services.MenuItemService) *SearchController {
	return &SearchController{svc: svc}
}

type searchQuery struct {
	itemFilterQuery
	Q       string `form:"q" binding:"required,min=2,max=100"`
	Skip    int    `form:"skip,default=0" binding:"gte=0"`
	Limit   int    `form:"limit,default=100" binding:"gte=1,lte=500"`
	SortBy  string `form:"sort_by" binding:"omitempty,oneof=name price created_at"`
	SortDir string `form:"sort_dir,default=asc" binding:"oneof=asc desc"`
}

// GET /api/v1/menu-items/search
func (ctl *SearchController) Search(c *gin.Context) {
	var q searchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	filter := q.toFilter()
	filter.IsFeatured = nil // surfaced through /featured, not here
	filter.Search = q.Q

	items, err := ctl.svc.Search(filter, q.SortBy, q.SortDir, q.Skip, q.Limit)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, toItemSummaries(items))
}

type suggestQuery struct {
	Q     string `form:"q" binding:"required,min=1,max=100"`
	Limit int    `form:"limit,default=10" binding:"gte=1,lte=20"`
}

// GET /api/v1/menu-items/suggest
func (ctl *SearchController) Suggest(c *gin.Context) {
	var q suggestQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	suggestions, err := ctl.svc.Suggest(q.Q, q.Limit)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, suggestions)
}
