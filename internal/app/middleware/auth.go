package middleware

import (
	"net/http"

	"backend/internal/app/auth"
	"backend/internal/app/ds"
	"backend/internal/app/dto"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

type AuthMiddleware struct {
	Auth *auth.Service
}

func NewAuthMiddleware(authService *auth.Service) *AuthMiddleware {
	return &AuthMiddleware{Auth: authService}
}

// WithAuthCheck middleware для проверки авторизации.
// Отсутствующий заголовок и негодный токен — разные ответы:
// клиент должен отличать "токена нет" от "токен протух".
func (am *AuthMiddleware) WithAuthCheck() gin.HandlerFunc {
	return gin.HandlerFunc(func(gCtx *gin.Context) {
		jwtStr := gCtx.GetHeader("Authorization")
		if jwtStr == "" {
			am.abort(gCtx, http.StatusUnauthorized, "authentication required")
			return
		}

		// Убираем префикс "Bearer " если он есть
		if len(jwtStr) > 7 && jwtStr[:7] == "Bearer " {
			jwtStr = jwtStr[7:]
		}

		claims, err := am.Auth.VerifyToken(jwtStr)
		if err != nil {
			am.abort(gCtx, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		// Сохраняем идентичность в контексте для последующего использования
		gCtx.Set(identityKey, claims.Identity())

		gCtx.Next()
	})
}

// WithAdminCheck middleware для проверки роли администратора.
// Ставится в цепочку после WithAuthCheck; состояние не трогает.
func (am *AuthMiddleware) WithAdminCheck() gin.HandlerFunc {
	return gin.HandlerFunc(func(gCtx *gin.Context) {
		identity, ok := IdentityFromContext(gCtx)
		if !ok {
			am.abort(gCtx, http.StatusUnauthorized, "authentication required")
			return
		}

		if !identity.Role.IsAdmin() {
			am.abort(gCtx, http.StatusForbidden, "admin access required")
			return
		}

		gCtx.Next()
	})
}

// IdentityFromContext извлекает идентичность пользователя из контекста запроса
func IdentityFromContext(gCtx *gin.Context) (ds.Identity, bool) {
	v, exists := gCtx.Get(identityKey)
	if !exists {
		return ds.Identity{}, false
	}
	identity, ok := v.(ds.Identity)
	return identity, ok
}

func (am *AuthMiddleware) abort(gCtx *gin.Context, statusCode int, message string) {
	gCtx.AbortWithStatusJSON(statusCode, dto.ErrorResponse{
		Status:  "error",
		Message: message,
	})
}
