package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ozadencsevda/restaurant-api/pkg/resp"
	"github.com/ozadencsevda/restaurant-api/services"
)

type CategoryController struct {
	svc *services.CategoryService
}

func NewCategoryController(svc *services.CategoryService) *CategoryController {
	return &CategoryController{svc: svc}
}

type categoryListQuery struct {
	Skip     int   `form:"skip,default=0" binding:"gte=0"`
	Limit    int   `form:"limit,default=100" binding:"gte=1,lte=500"`
	IsActive *bool `form:"is_active"`
}

// GET /api/v1/categories
func (ctl *CategoryController) List(c *gin.Context) {
	var q categoryListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	details, err := ctl.svc.List(q.IsActive, q.Skip, q.Limit)
	if err != nil {
		fail(c, err)
		return
	}

	out := make([]categoryResponse, 0, len(details))
	for _, d := range details {
		out = append(out, toCategoryResponse(d))
	}
	resp.OK(c, out)
}

// GET /api/v1/categories/:id
func (ctl *CategoryController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid category id")
		return
	}

	detail, err := ctl.svc.Get(uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, toCategoryResponse(*detail))
}

// POST /api/v1/categories (admin)
func (ctl *CategoryController) Create(c *gin.Context) {
	var in services.CategoryCreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	category, err := ctl.svc.Create(in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, toCategoryResponse(services.CategoryDetail{Category: *category}))
}

// PUT /api/v1/categories/:id (admin)
func (ctl *CategoryController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid category id")
		return
	}

	var in services.CategoryUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	detail, err := ctl.svc.Update(uint(id), in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, toCategoryResponse(*detail))
}

// DELETE /api/v1/categories/:id (admin)
func (ctl *CategoryController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid category id")
		return
	}

	if err := ctl.svc.Delete(uint(id)); err != nil {
		fail(c, err)
		return
	}
	resp.NoContent(c)
}
