package ds

// Таблица товаров (сладости)
type Sweet struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Name     string  `gorm:"type:varchar(100);not null" json:"name"`
	Category string  `gorm:"type:varchar(50);not null" json:"category"`
	Price    float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	// Остаток на складе. Меняется только через PurchaseSweet/RestockSweet,
	// уйти в минус не может: декремент условный, плюс check-ограничение в БД.
	Quantity int `gorm:"type:int;default:0;not null;check:quantity >= 0" json:"quantity"`
}
