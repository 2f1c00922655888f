package handler

import (
	"strconv"

	"backend/internal/app/ds"
	"backend/internal/app/dto"
	"backend/internal/app/redis"
	"backend/internal/app/repository"
	"backend/internal/app/role"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Repository — операции хранилища, нужные HTTP-слою.
// Боевая реализация — repository.Repository (gorm/postgres),
// в тестах подставляется in-memory вариант.
type Repository interface {
	CreateUser(username, passwordHash string, userRole role.Role) (*ds.User, error)
	GetUserByID(id uint) (*ds.User, error)
	GetUserByUsername(username string) (*ds.User, error)
	UserExistsByUsername(username string) (bool, error)

	CreateSweet(name, category string, price float64, quantity int) (*ds.Sweet, error)
	GetAllSweets() ([]ds.Sweet, error)
	GetSweetByID(id uint) (*ds.Sweet, error)
	UpdateSweet(id uint, upd repository.SweetUpdate) (*ds.Sweet, error)
	DeleteSweet(id uint) (bool, error)
	SearchSweets(filter repository.SweetFilter) ([]ds.Sweet, error)
	PurchaseSweet(id uint, quantity int, buyerID uint) (*ds.Sweet, error)
	RestockSweet(id uint, quantity int) (*ds.Sweet, error)
	TotalRevenue() (float64, error)
	CountPurchases() (int64, error)
}

// APIHandler содержит обработчики для REST API
type APIHandler struct {
	Repository  Repository
	Cache       *redis.Client
	AuthHandler *AuthHandler
}

func NewAPIHandler(r Repository, cache *redis.Client, authHandler *AuthHandler) *APIHandler {
	return &APIHandler{
		Repository:  r,
		Cache:       cache,
		AuthHandler: authHandler,
	}
}

// ============ Вспомогательные функции ============

func (h *APIHandler) errorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{
		Status:  "error",
		Message: message,
	})
}

// parseID разбирает :id из пути; 0 — не валидный идентификатор
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func toSweetResponse(sweet *ds.Sweet) dto.SweetResponse {
	return dto.SweetResponse{
		ID:       sweet.ID,
		Name:     sweet.Name,
		Category: sweet.Category,
		Price:    sweet.Price,
		Quantity: sweet.Quantity,
	}
}

func toSweetListResponse(sweets []ds.Sweet) []dto.SweetResponse {
	responses := make([]dto.SweetResponse, len(sweets))
	for i := range sweets {
		responses[i] = toSweetResponse(&sweets[i])
	}
	return responses
}

func toUserResponse(user *ds.User) dto.UserResponse {
	return dto.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		IsAdmin:  user.IsAdmin(),
	}
}

// invalidateCatalog сбрасывает кеш каталога после мутации склада.
// Ошибка кеша не роняет запрос: источник истины — БД.
func (h *APIHandler) invalidateCatalog(c *gin.Context) {
	if h.Cache == nil {
		return
	}
	if err := h.Cache.InvalidateSweetList(c.Request.Context()); err != nil {
		logrus.Error("failed to invalidate sweet list cache: ", err)
	}
}
