package main

import (
	"context"

	"backend/internal/app/auth"
	"backend/internal/app/config"
	"backend/internal/app/dsn"
	"backend/internal/app/handler"
	"backend/internal/app/middleware"
	"backend/internal/app/redis"
	"backend/internal/app/repository"
	"backend/internal/pkg"

	_ "backend/docs"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// @title Sweet Shop API
// @version 1.0
// @description Магазин сладостей: каталог, покупки, управление складом
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal("failed to load config: ", err)
	}

	repo, err := repository.New(dsn.FromEnv())
	if err != nil {
		logrus.Fatal("failed to init repository: ", err)
	}

	// Кеш каталога опционален: без Redis сервис работает напрямую с БД
	var cache *redis.Client
	if cfg.Redis.Host != "" {
		cache, err = redis.New(context.Background(), cfg.Redis)
		if err != nil {
			logrus.Error("redis unavailable, catalog cache disabled: ", err)
			cache = nil
		}
	}

	authService := auth.NewService(cfg.JWT)
	authHandler := handler.NewAuthHandler(repo, authService)
	apiHandler := handler.NewAPIHandler(repo, cache, authHandler)
	authMiddleware := middleware.NewAuthMiddleware(authService)

	router := gin.New()

	app := pkg.NewApp(cfg, router, apiHandler, authMiddleware, repo, cache)
	app.RunApp()
}
