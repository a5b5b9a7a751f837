package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ozadencsevda/restaurant-api/configs"
	"github.com/ozadencsevda/restaurant-api/middlewares"
	"github.com/ozadencsevda/restaurant-api/routes"
)

func main() {
	cfg := configs.LoadConfig()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	// DB
	db, err := configs.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("connect database", zap.Error(err))
	}

	// migrate
	if err := configs.SetupDatabase(db); err != nil {
		logger.Fatal("migrate schema", zap.Error(err))
	}

	if err := configs.SeedAdmin(db, cfg); err != nil {
		logger.Fatal("seed admin", zap.Error(err))
	}
	if err := configs.SeedCategories(db); err != nil {
		logger.Fatal("seed categories", zap.Error(err))
	}

	// HTTP
	if cfg.AppEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger(logger))
	r.Use(middlewares.Metrics())
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	logger.Info("server running", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
