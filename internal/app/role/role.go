package role

// Role — уровень доступа пользователя в магазине
type Role int

const (
	Customer Role = iota // обычный покупатель
	Admin                // администратор склада
)

// FromIsAdmin преобразует флаг из запроса регистрации в роль
func FromIsAdmin(isAdmin bool) Role {
	if isAdmin {
		return Admin
	}
	return Customer
}

func (r Role) IsAdmin() bool {
	return r == Admin
}

func (r Role) String() string {
	switch r {
	case Admin:
		return "admin"
	default:
		return "customer"
	}
}
