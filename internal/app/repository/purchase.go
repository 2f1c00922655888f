package repository

import (
	"time"

	"backend/internal/app/ds"

	"gorm.io/gorm"
)

// PurchaseSweet списывает товар со склада и пишет запись в журнал покупок.
// Декремент — один условный UPDATE: "quantity = quantity - N WHERE
// quantity >= N", поэтому две конкурентные покупки не могут обе пройти
// по одному и тому же остатку и увести его в минус. Читать остаток
// заранее и вычитать в коде нельзя.
func (r *Repository) PurchaseSweet(id uint, quantity int, buyerID uint) (*ds.Sweet, error) {
	var sweet ds.Sweet

	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&ds.Sweet{}).
			Where("id = ? AND quantity >= ?", id, quantity).
			UpdateColumn("quantity", gorm.Expr("quantity - ?", quantity))
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			// Условие не прошло: либо товара нет, либо не хватило остатка
			var count int64
			if err := tx.Model(&ds.Sweet{}).Where("id = ?", id).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return ErrSweetNotFound
			}
			return ErrInsufficientStock
		}

		if err := tx.First(&sweet, id).Error; err != nil {
			return err
		}

		purchase := ds.Purchase{
			SweetID:    sweet.ID,
			UserID:     buyerID,
			Quantity:   quantity,
			TotalPrice: sweet.Price * float64(quantity),
			CreatedAt:  time.Now(),
		}
		return tx.Create(&purchase).Error
	})
	if err != nil {
		return nil, err
	}

	return &sweet, nil
}

// RestockSweet атомарно добавляет количество к остатку
func (r *Repository) RestockSweet(id uint, quantity int) (*ds.Sweet, error) {
	result := r.db.Model(&ds.Sweet{}).
		Where("id = ?", id).
		UpdateColumn("quantity", gorm.Expr("quantity + ?", quantity))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrSweetNotFound
	}

	return r.GetSweetByID(id)
}

// Методы для статистики продаж

func (r *Repository) TotalRevenue() (float64, error) {
	var total float64
	err := r.db.Model(&ds.Purchase{}).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&total).Error
	return total, err
}

func (r *Repository) CountPurchases() (int64, error) {
	var count int64
	err := r.db.Model(&ds.Purchase{}).Count(&count).Error
	return count, err
}
