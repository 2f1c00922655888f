package ds

import (
	"backend/internal/app/role"

	"github.com/golang-jwt/jwt"
)

type JWTClaims struct {
	jwt.StandardClaims
	UserID   uint      `json:"user_id"`
	Username string    `json:"username"`
	Role     role.Role `json:"role"`
}

// Identity — данные пользователя из проверенного токена.
// Кладётся в контекст запроса middleware-ом и читается обработчиками.
type Identity struct {
	UserID   uint
	Username string
	Role     role.Role
}

func (c *JWTClaims) Identity() Identity {
	return Identity{
		UserID:   c.UserID,
		Username: c.Username,
		Role:     c.Role,
	}
}
