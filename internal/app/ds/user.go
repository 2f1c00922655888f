package ds

import "backend/internal/app/role"

// Таблица пользователей. Записи создаются при регистрации и дальше не меняются.
type User struct {
	ID           uint      `gorm:"primaryKey"`
	Username     string    `gorm:"type:varchar(50);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         role.Role `gorm:"type:int;default:0;not null"`
}

func (u *User) IsAdmin() bool {
	return u.Role.IsAdmin()
}
