package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ozadencsevda/restaurant-api/configs"
	"github.com/ozadencsevda/restaurant-api/entity"
)

// SystemController serves the diagnostics endpoints. They bypass the resp
// envelope: the health payload is its own contract.
type SystemController struct {
	DB  *gorm.DB
	Cfg *configs.Config
}

func NewSystemController(db *gorm.DB, cfg *configs.Config) *SystemController {
	return &SystemController{DB: db, Cfg: cfg}
}

// GET /health — a database outage is reported in the payload, never a 500.
func (ctl *SystemController) Health(c *gin.Context) {
	status := gin.H{
		"api":              "ok",
		"database":         "down",
		"database_type":    ctl.Cfg.DBDriver,
		"database_tables":  []string{},
		"total_users":      int64(0),
		"total_categories": int64(0),
		"total_menu_items": int64(0),
	}

	if err := configs.PingDB(ctl.DB); err != nil {
		status["error"] = err.Error()
		c.JSON(http.StatusOK, status)
		return
	}
	status["database"] = "ok"

	if tables, err := ctl.DB.Migrator().GetTables(); err == nil {
		status["database_tables"] = tables
	}

	var users, categories, items int64
	ctl.DB.Model(&entity.User{}).Count(&users)
	ctl.DB.Model(&entity.Category{}).Count(&categories)
	ctl.DB.Model(&entity.MenuItem{}).Count(&items)
	status["total_users"] = users
	status["total_categories"] = categories
	status["total_menu_items"] = items

	c.JSON(http.StatusOK, status)
}

// GET /
func (ctl *SystemController) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":  "Restaurant Menu API",
		"version":  ctl.Cfg.AppVersion,
		"database": ctl.Cfg.DBDriver,
		"health":   "/health",
		"info":     "/api/info",
	})
}

// GET /api/info
func (ctl *SystemController) Info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":        ctl.Cfg.AppName,
		"version":     ctl.Cfg.AppVersion,
		"environment": ctl.Cfg.AppEnv,
		"database":    ctl.Cfg.DBDriver,
		"endpoints": gin.H{
			"auth": gin.H{
				"register": "POST /auth/register",
				"login":    "POST /auth/login",
			},
			"user": gin.H{
				"profile": "GET /api/v1/me",
			},
			"categories": gin.H{
				"list":   "GET /api/v1/categories",
				"get":    "GET /api/v1/categories/{id}",
				"create": "POST /api/v1/categories",
				"update": "PUT /api/v1/categories/{id}",
				"delete": "DELETE /api/v1/categories/{id}",
			},
			"menu_items": gin.H{
				"list":     "GET /api/v1/menu-items",
				"get":      "GET /api/v1/menu-items/{id}",
				"create":   "POST /api/v1/menu-items",
				"update":   "PUT /api/v1/menu-items/{id}",
				"patch":    "PATCH /api/v1/menu-items/{id}",
				"delete":   "DELETE /api/v1/menu-items/{id}",
				"featured": "GET /api/v1/menu-items/featured",
				"search":   "GET /api/v1/menu-items/search",
				"suggest":  "GET /api/v1/menu-items/suggest",
			},
			"system": gin.H{
				"health":  "GET /health",
				"info":    "GET /api/info",
				"metrics": "GET /metrics",
			},
		},
	})
}
