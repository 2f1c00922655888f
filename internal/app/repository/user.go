package repository

import (
	"errors"

	"backend/internal/app/ds"
	"backend/internal/app/role"

	"gorm.io/gorm"
)

// Методы для пользователей (ORM)

func (r *Repository) GetUserByID(id uint) (*ds.User, error) {
	var user ds.User
	err := r.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByUsername ищет пользователя по логину. Сравнение чувствительно
// к регистру: "Alice" и "alice" — разные пользователи.
func (r *Repository) GetUserByUsername(username string) (*ds.User, error) {
	var user ds.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) UserExistsByUsername(username string) (bool, error) {
	var count int64
	err := r.db.Model(&ds.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

func (r *Repository) CreateUser(username, passwordHash string, userRole role.Role) (*ds.User, error) {
	user := ds.User{
		Username:     username,
		PasswordHash: passwordHash,
		Role:         userRole,
	}

	err := r.db.Create(&user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Гонку двух одинаковых регистраций ловит уникальный индекс
		return nil, ErrUsernameTaken
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}
