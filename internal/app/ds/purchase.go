package ds

import "time"

// Журнал покупок. Строка пишется в той же транзакции, что и списание
// остатка, поэтому журнал всегда согласован со складом.
// Намеренно без gorm-ассоциаций: товар можно удалить, история остаётся.
type Purchase struct {
	ID         uint      `gorm:"primaryKey"`
	SweetID    uint      `gorm:"not null;index"`
	UserID     uint      `gorm:"not null;index"`
	Quantity   int       `gorm:"type:int;not null"`
	TotalPrice float64   `gorm:"type:decimal(12,2);not null"`
	CreatedAt  time.Time `gorm:"not null"`
}
