package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/ozadencsevda/restaurant-api/configs"
	"github.com/ozadencsevda/restaurant-api/controllers"
	"github.com/ozadencsevda/restaurant-api/middlewares"
	"github.com/ozadencsevda/restaurant-api/repository"
	"github.com/ozadencsevda/restaurant-api/services"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	// Repositories
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	itemRepo := repository.NewMenuItemRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	categorySvc := services.NewCategoryService(categoryRepo)
	itemSvc := services.NewMenuItemService(itemRepo, categoryRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	categoryCtrl := controllers.NewCategoryController(categorySvc)
	itemCtrl := controllers.NewMenuItemController(itemSvc)
	featuredCtrl := controllers.NewFeaturedController(itemSvc)
	searchCtrl := controllers.NewSearchController(itemSvc)
	systemCtrl := controllers.NewSystemController(db, cfg)

	authRequired := middlewares.AuthMiddleware(db, cfg.JWTSecret)
	adminRequired := middlewares.AdminOnly()

	// System
	r.GET("/", systemCtrl.Root)
	r.GET("/health", systemCtrl.Health)
	r.GET("/api/info", systemCtrl.Info)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	v1 := r.Group("/api/v1")

	v1.GET("/me", authRequired, authCtrl.Me)

	// Categories (reads public, writes admin)
	cat := v1.Group("/categories")
	{
		cat.GET("", categoryCtrl.List)
		cat.GET("/:id", categoryCtrl.Get)
		cat.POST("", authRequired, adminRequired, categoryCtrl.Create)
		cat.PUT("/:id", authRequired, adminRequired, categoryCtrl.Update)
		cat.DELETE("/:id", authRequired, adminRequired, categoryCtrl.Delete)
	}

	// Menu items (reads public, writes admin)
	items := v1.Group("/menu-items")
	{
		items.GET("", itemCtrl.List)
		items.GET("/featured", featuredCtrl.List)
		items.GET("/search", searchCtrl.Search)
		items.GET("/suggest", searchCtrl.Suggest)
		items.GET("/:id", itemCtrl.Get)

		items.POST("", authRequired, adminRequired, itemCtrl.Create)
		items.PUT("/:id", authRequired, adminRequired, itemCtrl.Update)
		items.PATCH("/:id", authRequired, adminRequired, itemCtrl.Update)
		items.DELETE("/:id", authRequired, adminRequired, itemCtrl.Delete)

		// featured toggles only need a logged-in user, not an admin
		items.POST("/:id/featured", authRequired, featuredCtrl.Mark)
		items.DELETE("/:id/featured", authRequired, featuredCtrl.Unmark)
		items.PATCH("/:id/featured", authRequired, featuredCtrl.Patch)
	}
}
