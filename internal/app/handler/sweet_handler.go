package handler

import (
	"errors"
	"net/http"
	"strconv"

	"backend/internal/app/dto"
	"backend/internal/app/middleware"
	"backend/internal/app/redis"
	"backend/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ДОМЕН ТОВАРЫ ============

// GetSweets получает каталог товаров
// @Summary Каталог товаров
// @Description Возвращает все товары; список может отдаваться из кеша
// @Tags Sweets
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.SweetResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/sweets [get]
func (h *APIHandler) GetSweets(c *gin.Context) {
	if h.Cache != nil {
		sweets, err := h.Cache.GetSweetList(c.Request.Context())
		if err == nil {
			c.JSON(http.StatusOK, toSweetListResponse(sweets))
			return
		}
		if !errors.Is(err, redis.ErrCacheMiss) {
			logrus.Error("sweet list cache read failed: ", err)
		}
	}

	sweets, err := h.Repository.GetAllSweets()
	if err != nil {
		logrus.Error("Error getting sweets: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "server error")
		return
	}

	if h.Cache != nil {
		if err := h.Cache.SetSweetList(c.Request.Context(), sweets); err != nil {
			logrus.Error("sweet list cache write failed: ", err)
		}
	}

	c.JSON(http.StatusOK, toSweetListResponse(sweets))
}

// SearchSweets поиск по каталогу
// @Summary Поиск товаров
// @Description Фильтры складываются по AND; имя — подстрока без учёта регистра
// @Tags Sweets
// @Produce json
// @Security BearerAuth
// @Param name query string false "Подстрока названия"
// @Param category query string false "Категория (точное совпадение)"
// @Param minPrice query number false "Нижняя граница цены (включительно)"
// @Param maxPrice query number false "Верхняя граница цены (включительно)"
// @Success 200 {array} dto.SweetResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/sweets/search [get]
func (h *APIHandler) SearchSweets(c *gin.Context) {
	filter := repository.SweetFilter{
		Name:     c.Query("name"),
		Category: c.Query("category"),
	}

	if v := c.Query("minPrice"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			h.errorResponse(c, http.StatusBadRequest, "minPrice must be a number")
			return
		}
		filter.MinPrice = &price
	}
	if v := c.Query("maxPrice"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			h.errorResponse(c, http.StatusBadRequest, "maxPrice must be a number")
			return
		}
		filter.MaxPrice = &price
	}

	sweets, err := h.Repository.SearchSweets(filter)
	if err != nil {
		logrus.Error("Error searching sweets: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "server error")
		return
	}

	c.JSON(http.StatusOK, toSweetListResponse(sweets))
}

// GetSweet получает один товар
// @Summary Товар по ID
// @Tags Sweets
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID товара"
// @Success 200 {object} dto.SweetResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/sweets/{id} [get]
func (h *APIHandler) GetSweet(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.errorResponse(c, http.StatusBadRequest, "invalid sweet id")
		return
	}

	sweet, err := h.Repository.GetSweetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrSweetNotFound) {
			h.errorResponse(c, http.StatusNotFound, "sweet not found")
			return
		}
		logrus.Error("Error getting sweet: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "server error")
		return
	}

	c.JSON(http.StatusOK, toSweetResponse(sweet))
}

// CreateSweet создает товар
// @Summary Создание товара
// @Description Добавляет товар в каталог (только для администраторов)
// @Tags Sweets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSweetRequest true "Данные товара"
// @Success 201 {object} dto.SweetResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/sweets [post]
func (h *APIHandler) CreateSweet(c *gin.Context) {
	var request dto.CreateSweetRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	quantity := 0
	if request.Quantity != nil {
		quantity = *request.Quantity
	}

	sweet, err := h.Repository.CreateSweet(request.Name, request.Category, *request.Price, quantity)
	if err != nil {
		logrus.Error("Error creating sweet: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "server error")
		return
	}

	h.invalidateCatalog(c)
	c.JSON(http.StatusCreated, toSweetResponse(sweet))
}

// UpdateSweet частично обновляет товар
// @Summary Изменение товара
// @Description Меняет только переданные поля; количество не может стать отрицательным
// @Tags Sweets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID товара"
// @Param request body dto.UpdateSweetRequest true "Изменяемые поля"
// @Success 200 {object} dto.SweetResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/sweets/{id} [put]
func (h *APIHandler) UpdateSweet(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.errorResponse(c, http.StatusBadRequest, "invalid sweet id")
		return
	}

	var request dto.UpdateSweetRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	sweet, err := h.Repository.UpdateSweet(id, repository.SweetUpdate{
		Name:     request.Name,
		Category: request.Category,
		Price:    request.Price,
		Quantity: request.Quantity,
	})
	if err != nil {
		if errors.Is(err, repository.ErrSweetNotFound) {
			h.errorResponse(c, http.StatusNotFound, "sweet not found")
			return
		}
		logrus.Error("Error updating sweet: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "server error")
		return
	}

	h.invalidateCatalog(c)
	c.JSON(http.StatusOK, toSweetResponse(sweet))
}

// DeleteSweet удаляет товар
// @Summary Удаление товара
// @Tags Sweets
// @Security BearerAuth
// @Param id path int true "ID товара"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/sweets/{id} [delete]
func (h *APIHandler) DeleteSweet(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.errorResponse(c, http.StatusBadRequest, "invalid sweet id")
		return
	}

	deleted, err := h.Repository.DeleteSweet(id)
	if err != nil {
		logrus.Error("Error deleting sweet: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "server error")
		return
	}
	if !deleted {
		h.errorResponse(c, http.StatusNotFound, "sweet not found")
		return
	}

	h.invalidateCatalog(c)
	c.Status(http.StatusNoContent)
}

// ============ ПОКУПКА И ПОПОЛНЕНИЕ ============

// PurchaseSweet покупка товара
// @Summary Покупка
// @Description Атомарно списывает остаток; при нехватке остаток не меняется
// @Tags Inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID товара"
// @Param request body dto.QuantityRequest true "Количество"
// @Success 200 {object} dto.SweetResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/sweets/{id}/purchase [post]
func (h *APIHandler) PurchaseSweet(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.errorResponse(c, http.StatusBadRequest, "invalid sweet id")
		return
	}

	var request dto.QuantityRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "valid quantity required")
		return
	}

	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		h.errorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	sweet, err := h.Repository.PurchaseSweet(id, request.Quantity, identity.UserID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrSweetNotFound):
			h.errorResponse(c, http.StatusNotFound, "sweet not found")
		case errors.Is(err, repository.ErrInsufficientStock):
			h.errorResponse(c, http.StatusBadRequest, "insufficient stock")
		default:
			logrus.Error("Error purchasing sweet: ", err)
			h.errorResponse(c, http.StatusInternalServerError, "server error")
		}
		return
	}

	h.invalidateCatalog(c)
	c.JSON(http.StatusOK, toSweetResponse(sweet))
}

// RestockSweet пополнение склада
// @Summary Пополнение остатка
// @Description Добавляет количество к остатку (только для администраторов)
// @Tags Inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID товара"
// @Param request body dto.QuantityRequest true "Количество"
// @Success 200 {object} dto.SweetResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/sweets/{id}/restock [post]
func (h *APIHandler) RestockSweet(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.errorResponse(c, http.StatusBadRequest, "invalid sweet id")
		return
	}

	var request dto.QuantityRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "valid quantity required")
		return
	}

	sweet, err := h.Repository.RestockSweet(id, request.Quantity)
	if err != nil {
		if errors.Is(err, repository.ErrSweetNotFound) {
			h.errorResponse(c, http.StatusNotFound, "sweet not found")
			return
		}
		logrus.Error("Error restocking sweet: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "server error")
		return
	}

	h.invalidateCatalog(c)
	c.JSON(http.StatusOK, toSweetResponse(sweet))
}

// ============ СТАТИСТИКА ============

// GetStats сводка по журналу покупок
// @Summary Статистика продаж
// @Description Выручка и число покупок по журналу (только для администраторов)
// @Tags Stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.StatsResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/stats [get]
func (h *APIHandler) GetStats(c *gin.Context) {
	revenue, err := h.Repository.TotalRevenue()
	if err != nil {
		logrus.Error("Error getting revenue: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "server error")
		return
	}

	count, err := h.Repository.CountPurchases()
	if err != nil {
		logrus.Error("Error counting purchases: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "server error")
		return
	}

	c.JSON(http.StatusOK, dto.StatsResponse{
		TotalRevenue:  revenue,
		PurchaseCount: count,
	})
}
