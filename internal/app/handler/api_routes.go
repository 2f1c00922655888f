package handler

import (
	"backend/internal/app/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterAPIRoutes регистрирует все REST API маршруты с авторизацией
func (h *APIHandler) RegisterAPIRoutes(router *gin.Engine, authMiddleware *middleware.AuthMiddleware) {
	api := router.Group("/api")

	// ============ Аутентификация ============
	auth := api.Group("/auth")
	{
		// Публичные эндпоинты
		auth.POST("/register", h.AuthHandler.Register)
		auth.POST("/login", h.AuthHandler.Login)

		auth.GET("/me", authMiddleware.WithAuthCheck(), h.AuthHandler.Me)
	}

	// ============ Товары ============
	sweets := api.Group("/sweets")
	sweets.Use(authMiddleware.WithAuthCheck())
	{
		// Для всех авторизованных пользователей
		sweets.GET("", h.GetSweets)
		sweets.GET("/search", h.SearchSweets)
		sweets.GET("/:id", h.GetSweet)
		sweets.POST("/:id/purchase", h.PurchaseSweet)

		// Только для администраторов (управление складом)
		sweets.POST("", authMiddleware.WithAdminCheck(), h.CreateSweet)
		sweets.PUT("/:id", authMiddleware.WithAdminCheck(), h.UpdateSweet)
		sweets.DELETE("/:id", authMiddleware.WithAdminCheck(), h.DeleteSweet)
		sweets.POST("/:id/restock", authMiddleware.WithAdminCheck(), h.RestockSweet)
	}

	// ============ Статистика продаж ============
	stats := api.Group("/stats")
	stats.Use(authMiddleware.WithAuthCheck(), authMiddleware.WithAdminCheck())
	{
		stats.GET("", h.GetStats)
	}

	// Ping эндпоинт для проверки
	router.GET("/ping", h.Ping)

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// Ping проверяет работоспособность API
// @Summary Проверка работоспособности
// @Description Возвращает простой ответ для проверки работы сервера
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func (h *APIHandler) Ping(ctx *gin.Context) {
	ctx.JSON(200, gin.H{"message": "pong"})
}
