package repository

import (
	"errors"

	"backend/internal/app/ds"

	"gorm.io/gorm"
)

// Фильтр поиска по каталогу. Пустое/nil поле — без ограничения,
// заданные условия складываются по AND.
type SweetFilter struct {
	Name     string
	Category string
	MinPrice *float64
	MaxPrice *float64
}

// Частичное обновление товара: меняются только не-nil поля
type SweetUpdate struct {
	Name     *string
	Category *string
	Price    *float64
	Quantity *int
}

// Методы для товаров

func (r *Repository) CreateSweet(name, category string, price float64, quantity int) (*ds.Sweet, error) {
	sweet := ds.Sweet{
		Name:     name,
		Category: category,
		Price:    price,
		Quantity: quantity,
	}

	err := r.db.Create(&sweet).Error
	if err != nil {
		return nil, err
	}

	return &sweet, nil
}

func (r *Repository) GetAllSweets() ([]ds.Sweet, error) {
	var sweets []ds.Sweet
	err := r.db.Order("id").Find(&sweets).Error
	if err != nil {
		return nil, err
	}
	return sweets, nil
}

func (r *Repository) GetSweetByID(id uint) (*ds.Sweet, error) {
	var sweet ds.Sweet
	err := r.db.First(&sweet, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSweetNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sweet, nil
}

// UpdateSweet частично обновляет поля товара одним UPDATE
func (r *Repository) UpdateSweet(id uint, upd SweetUpdate) (*ds.Sweet, error) {
	updates := map[string]interface{}{}
	if upd.Name != nil {
		updates["name"] = *upd.Name
	}
	if upd.Category != nil {
		updates["category"] = *upd.Category
	}
	if upd.Price != nil {
		updates["price"] = *upd.Price
	}
	if upd.Quantity != nil {
		updates["quantity"] = *upd.Quantity
	}

	if len(updates) == 0 {
		return r.GetSweetByID(id)
	}

	result := r.db.Model(&ds.Sweet{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrSweetNotFound
	}

	return r.GetSweetByID(id)
}

// DeleteSweet удаляет товар; true если строка действительно была
func (r *Repository) DeleteSweet(id uint) (bool, error) {
	result := r.db.Delete(&ds.Sweet{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// SearchSweets ищет по каталогу: имя — подстрока без учёта регистра,
// категория — точное совпадение, границы цены включительные
func (r *Repository) SearchSweets(filter SweetFilter) ([]ds.Sweet, error) {
	query := r.db.Model(&ds.Sweet{})

	if filter.Name != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}

	var sweets []ds.Sweet
	err := query.Order("id").Find(&sweets).Error
	if err != nil {
		return nil, err
	}
	return sweets, nil
}
