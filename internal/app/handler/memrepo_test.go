package handler

import (
	"strings"
	"sync"
	"time"

	"backend/internal/app/ds"
	"backend/internal/app/repository"
	"backend/internal/app/role"
)

// In-memory реализация Repository для тестов обработчиков.
// Семантика повторяет боевое хранилище, включая проверку остатка
// и запись покупки под одной блокировкой.
type memRepository struct {
	mu          sync.Mutex
	users       map[uint]ds.User
	sweets      map[uint]ds.Sweet
	purchases   []ds.Purchase
	nextUserID  uint
	nextSweetID uint
}

func newMemRepository() *memRepository {
	return &memRepository{
		users:  map[uint]ds.User{},
		sweets: map[uint]ds.Sweet{},
	}
}

func (m *memRepository) CreateUser(username, passwordHash string, userRole role.Role) (*ds.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Username == username {
			return nil, repository.ErrUsernameTaken
		}
	}

	m.nextUserID++
	user := ds.User{ID: m.nextUserID, Username: username, PasswordHash: passwordHash, Role: userRole}
	m.users[user.ID] = user
	return &user, nil
}

func (m *memRepository) GetUserByID(id uint) (*ds.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return &user, nil
}

func (m *memRepository) GetUserByUsername(username string) (*ds.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Username == username {
			user := u
			return &user, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (m *memRepository) UserExistsByUsername(username string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (m *memRepository) CreateSweet(name, category string, price float64, quantity int) (*ds.Sweet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextSweetID++
	sweet := ds.Sweet{ID: m.nextSweetID, Name: name, Category: category, Price: price, Quantity: quantity}
	m.sweets[sweet.ID] = sweet
	return &sweet, nil
}

func (m *memRepository) GetAllSweets() ([]ds.Sweet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sweets := make([]ds.Sweet, 0, len(m.sweets))
	for id := uint(1); id <= m.nextSweetID; id++ {
		if sweet, ok := m.sweets[id]; ok {
			sweets = append(sweets, sweet)
		}
	}
	return sweets, nil
}

func (m *memRepository) GetSweetByID(id uint) (*ds.Sweet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sweet, ok := m.sweets[id]
	if !ok {
		return nil, repository.ErrSweetNotFound
	}
	return &sweet, nil
}

func (m *memRepository) UpdateSweet(id uint, upd repository.SweetUpdate) (*ds.Sweet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sweet, ok := m.sweets[id]
	if !ok {
		return nil, repository.ErrSweetNotFound
	}

	if upd.Name != nil {
		sweet.Name = *upd.Name
	}
	if upd.Category != nil {
		sweet.Category = *upd.Category
	}
	if upd.Price != nil {
		sweet.Price = *upd.Price
	}
	if upd.Quantity != nil {
		sweet.Quantity = *upd.Quantity
	}

	m.sweets[id] = sweet
	return &sweet, nil
}

func (m *memRepository) DeleteSweet(id uint) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sweets[id]; !ok {
		return false, nil
	}
	delete(m.sweets, id)
	return true, nil
}

func (m *memRepository) SearchSweets(filter repository.SweetFilter) ([]ds.Sweet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var sweets []ds.Sweet
	for id := uint(1); id <= m.nextSweetID; id++ {
		sweet, ok := m.sweets[id]
		if !ok {
			continue
		}
		if filter.Name != "" && !strings.Contains(strings.ToLower(sweet.Name), strings.ToLower(filter.Name)) {
			continue
		}
		if filter.Category != "" && sweet.Category != filter.Category {
			continue
		}
		if filter.MinPrice != nil && sweet.Price < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && sweet.Price > *filter.MaxPrice {
			continue
		}
		sweets = append(sweets, sweet)
	}
	return sweets, nil
}

func (m *memRepository) PurchaseSweet(id uint, quantity int, buyerID uint) (*ds.Sweet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sweet, ok := m.sweets[id]
	if !ok {
		return nil, repository.ErrSweetNotFound
	}
	if sweet.Quantity < quantity {
		return nil, repository.ErrInsufficientStock
	}

	sweet.Quantity -= quantity
	m.sweets[id] = sweet

	m.purchases = append(m.purchases, ds.Purchase{
		ID:         uint(len(m.purchases) + 1),
		SweetID:    id,
		UserID:     buyerID,
		Quantity:   quantity,
		TotalPrice: sweet.Price * float64(quantity),
		CreatedAt:  time.Now(),
	})
	return &sweet, nil
}

func (m *memRepository) RestockSweet(id uint, quantity int) (*ds.Sweet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sweet, ok := m.sweets[id]
	if !ok {
		return nil, repository.ErrSweetNotFound
	}
	sweet.Quantity += quantity
	m.sweets[id] = sweet
	return &sweet, nil
}

func (m *memRepository) TotalRevenue() (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var total float64
	for _, p := range m.purchases {
		total += p.TotalPrice
	}
	return total, nil
}

func (m *memRepository) CountPurchases() (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.purchases)), nil
}
