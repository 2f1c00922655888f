package auth

import (
	"errors"
	"time"

	"backend/internal/app/config"
	"backend/internal/app/ds"

	"github.com/golang-jwt/jwt"
	"golang.org/x/crypto/bcrypt"
)

const tokenIssuer = "sweetshop-api"

// ErrInvalidToken возвращается для любого негодного токена: битая подпись,
// истёкший срок, мусор вместо JWT. Клиенту детали не нужны.
var ErrInvalidToken = errors.New("invalid or expired token")

// Service отвечает за пароли и токены: хеширование, проверка, выпуск, разбор
type Service struct {
	cfg config.JWTConfig
}

func NewService(cfg config.JWTConfig) *Service {
	return &Service{cfg: cfg}
}

// HashPassword хеширует пароль bcrypt-ом (соль внутри хеша)
func (s *Service) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword сверяет пароль с хешем через bcrypt, не через сравнение строк
func (s *Service) VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// IssueToken выпускает подписанный JWT с идентичностью пользователя
func (s *Service) IssueToken(user *ds.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(s.cfg.SigningMethod, ds.JWTClaims{
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(s.cfg.ExpiresIn).Unix(),
			IssuedAt:  now.Unix(),
			Issuer:    tokenIssuer,
		},
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	})

	return token.SignedString([]byte(s.cfg.Secret))
}

// VerifyToken разбирает и проверяет токен; срок действия проверяет сама
// библиотека при парсинге claims
func (s *Service) VerifyToken(tokenString string) (*ds.JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ds.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.cfg.Secret), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*ds.JWTClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
