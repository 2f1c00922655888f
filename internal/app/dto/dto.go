package dto

// ============ Общие структуры ============

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ============ Пользователи и аутентификация ============

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6"`
	IsAdmin  bool   `json:"isAdmin"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Хеш пароля наружу не отдаётся ни в одном ответе
type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ============ Товары (Sweets) ============

type SweetResponse struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Price и Quantity через указатели: ноль — допустимое значение,
// которое required на голом поле забраковал бы
type CreateSweetRequest struct {
	Name     string   `json:"name" binding:"required"`
	Category string   `json:"category" binding:"required"`
	Price    *float64 `json:"price" binding:"required,gte=0"`
	Quantity *int     `json:"quantity" binding:"omitempty,gte=0"`
}

type UpdateSweetRequest struct {
	Name     *string  `json:"name" binding:"omitempty,min=1"`
	Category *string  `json:"category" binding:"omitempty,min=1"`
	Price    *float64 `json:"price" binding:"omitempty,gte=0"`
	Quantity *int     `json:"quantity" binding:"omitempty,gte=0"`
}

// ============ Покупка и пополнение склада ============

type QuantityRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}

// ============ Статистика продаж ============

type StatsResponse struct {
	TotalRevenue  float64 `json:"totalRevenue"`
	PurchaseCount int64   `json:"purchaseCount"`
}
