package handler

import (
	"errors"
	"net/http"

	"backend/internal/app/auth"
	"backend/internal/app/dto"
	"backend/internal/app/middleware"
	"backend/internal/app/repository"
	"backend/internal/app/role"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	Repository Repository
	Auth       *auth.Service
}

func NewAuthHandler(r Repository, authService *auth.Service) *AuthHandler {
	return &AuthHandler{
		Repository: r,
		Auth:       authService,
	}
}

// Register регистрация нового пользователя
// @Summary Регистрация пользователя
// @Description Создание пользователя и выдача токена сразу при регистрации
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Данные для регистрации"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(ctx *gin.Context) {
	var request dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	// Проверяем существует ли пользователь
	exists, err := h.Repository.UserExistsByUsername(request.Username)
	if err != nil {
		logrus.Error("Error checking user existence: ", err)
		h.errorResponse(ctx, http.StatusInternalServerError, "server error")
		return
	}
	if exists {
		h.errorResponse(ctx, http.StatusBadRequest, "username already exists")
		return
	}

	passwordHash, err := h.Auth.HashPassword(request.Password)
	if err != nil {
		logrus.Error("Error hashing password: ", err)
		h.errorResponse(ctx, http.StatusInternalServerError, "server error")
		return
	}

	user, err := h.Repository.CreateUser(request.Username, passwordHash, role.FromIsAdmin(request.IsAdmin))
	if err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			h.errorResponse(ctx, http.StatusBadRequest, "username already exists")
			return
		}
		logrus.Error("Error creating user: ", err)
		h.errorResponse(ctx, http.StatusInternalServerError, "server error")
		return
	}

	// Токен выдаём сразу при регистрации
	token, err := h.Auth.IssueToken(user)
	if err != nil {
		logrus.Error("Error issuing token: ", err)
		h.errorResponse(ctx, http.StatusInternalServerError, "server error")
		return
	}

	ctx.JSON(http.StatusCreated, dto.AuthResponse{
		Token: token,
		User:  toUserResponse(user),
	})
}

// Login аутентификация пользователя
// @Summary Вход в систему
// @Description Аутентификация пользователя с возвратом JWT токена
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Данные для входа"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(ctx *gin.Context) {
	var request dto.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, "username and password required")
		return
	}

	// Один и тот же ответ для неизвестного логина и неверного пароля:
	// по нему нельзя понять, существует ли пользователь
	user, err := h.Repository.GetUserByUsername(request.Username)
	if err != nil {
		h.errorResponse(ctx, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if !h.Auth.VerifyPassword(request.Password, user.PasswordHash) {
		h.errorResponse(ctx, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := h.Auth.IssueToken(user)
	if err != nil {
		logrus.Error("Error issuing token: ", err)
		h.errorResponse(ctx, http.StatusInternalServerError, "server error")
		return
	}

	ctx.JSON(http.StatusOK, dto.AuthResponse{
		Token: token,
		User:  toUserResponse(user),
	})
}

// Me профиль текущего пользователя
// @Summary Текущий пользователь
// @Description Возвращает информацию о владельце токена
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(ctx *gin.Context) {
	identity, ok := middleware.IdentityFromContext(ctx)
	if !ok {
		h.errorResponse(ctx, http.StatusUnauthorized, "authentication required")
		return
	}

	user, err := h.Repository.GetUserByID(identity.UserID)
	if err != nil {
		h.errorResponse(ctx, http.StatusNotFound, "user not found")
		return
	}

	ctx.JSON(http.StatusOK, toUserResponse(user))
}

func (h *AuthHandler) errorResponse(ctx *gin.Context, statusCode int, message string) {
	ctx.JSON(statusCode, dto.ErrorResponse{
		Status:  "error",
		Message: message,
	})
}
