package pkg

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"backend/internal/app/config"
	"backend/internal/app/dto"
	"backend/internal/app/handler"
	"backend/internal/app/middleware"
	"backend/internal/app/redis"
	"backend/internal/app/repository"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

type Application struct {
	Config     *config.Config
	Router     *gin.Engine
	Handler    *handler.APIHandler
	Middleware *middleware.AuthMiddleware
	Repository *repository.Repository
	Cache      *redis.Client
}

func NewApp(c *config.Config, r *gin.Engine, h *handler.APIHandler, am *middleware.AuthMiddleware, repo *repository.Repository, cache *redis.Client) *Application {
	return &Application{
		Config:     c,
		Router:     r,
		Handler:    h,
		Middleware: am,
		Repository: repo,
		Cache:      cache,
	}
}

// RunApp поднимает HTTP-сервер и корректно гасит его по сигналу:
// сначала сервер, затем кеш и пул БД
func (a *Application) RunApp() {
	logrus.Info("Server start up")

	a.Router.Use(middleware.RequestID(), middleware.RequestLogger())
	// Паника в обработчике превращается в 500 без деталей для клиента
	a.Router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logrus.Error("panic recovered: ", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
			Status:  "error",
			Message: "server error",
		})
	}))
	a.Router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
	}))

	a.Handler.RegisterAPIRoutes(a.Router, a.Middleware)

	serverAddress := fmt.Sprintf("%s:%d", a.Config.ServiceHost, a.Config.ServicePort)
	srv := &http.Server{
		Addr:    serverAddress,
		Handler: a.Router,
	}

	go func() {
		logrus.Infof("Starting server on %s", serverAddress)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Error("forced shutdown: ", err)
	}

	if a.Cache != nil {
		if err := a.Cache.Close(); err != nil {
			logrus.Error("failed to close redis client: ", err)
		}
	}
	if err := a.Repository.Close(); err != nil {
		logrus.Error("failed to close repository: ", err)
	}

	logrus.Info("Server down")
}
