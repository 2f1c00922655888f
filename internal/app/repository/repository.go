package repository

import (
	"errors"
	"fmt"

	"backend/internal/app/ds"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Ошибки хранилища. Обработчики разбирают их через errors.Is
// и переводят в коды ответов.
var (
	ErrSweetNotFound     = errors.New("sweet not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrUsernameTaken     = errors.New("username already exists")
	ErrInsufficientStock = errors.New("insufficient stock")
)

type Repository struct {
	db *gorm.DB
}

// New открывает соединение и накатывает схему.
// Repository — единственная точка доступа к таблицам: остаток товара
// меняется только его методами.
func New(dsn string) (*Repository, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	// Автоматическая миграция всех таблиц
	err = db.AutoMigrate(
		&ds.User{},
		&ds.Sweet{},
		&ds.Purchase{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Repository{
		db: db,
	}, nil
}

// Close отдаёт пул соединений; вызывается при остановке сервиса
func (r *Repository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
