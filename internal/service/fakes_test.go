package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/comanda-app/comanda-service/internal/db/repository"
	"github.com/comanda-app/comanda-service/internal/models"
)

// In-memory fakes of the store interfaces. They mirror the sqlx
// repositories' semantics, including the sentinel errors for missed
// lookups and conditional updates.

type fakeUserStore struct {
	users map[uuid.UUID]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uuid.UUID]*models.User)}
}

func (s *fakeUserStore) add(name, email string, role models.Role) *models.User {
	user := &models.User{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		Role:      role,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	s.users[user.ID] = user
	return user
}

func (s *fakeUserStore) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *user
	return &cp, nil
}

func (s *fakeUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			cp := *user
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeUserStore) List(ctx context.Context) ([]models.User, error) {
	users := make([]models.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, *user)
	}
	return users, nil
}

func (s *fakeUserStore) Count(ctx context.Context) (int, error) {
	return len(s.users), nil
}

func (s *fakeUserStore) Create(ctx context.Context, user models.User) (*models.User, error) {
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	s.users[user.ID] = &user
	cp := user
	return &cp, nil
}

func (s *fakeUserStore) PromoteStaff(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, ok := s.users[id]
	if !ok || user.Role != models.RoleStaff {
		return nil, repository.ErrNotFound
	}
	user.Role = models.RoleAdmin
	user.UpdatedAt = time.Now()
	cp := *user
	return &cp, nil
}

type fakeCategoryStore struct {
	categories map[uuid.UUID]*models.Category
}

func newFakeCategoryStore() *fakeCategoryStore {
	return &fakeCategoryStore{categories: make(map[uuid.UUID]*models.Category)}
}

func (s *fakeCategoryStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	category, ok := s.categories[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *category
	return &cp, nil
}

func (s *fakeCategoryStore) FindActiveByName(ctx context.Context, name string, excludeID uuid.UUID) (*models.Category, error) {
	for _, category := range s.categories {
		if category.Name == name && category.Active && category.ID != excludeID {
			cp := *category
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeCategoryStore) List(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	for _, category := range s.categories {
		if category.Active {
			categories = append(categories, *category)
		}
	}
	return categories, nil
}

func (s *fakeCategoryStore) Create(ctx context.Context, name string) (*models.Category, error) {
	category := &models.Category{
		ID:        uuid.New(),
		Name:      name,
		Active:    true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	s.categories[category.ID] = category
	cp := *category
	return &cp, nil
}

func (s *fakeCategoryStore) Rename(ctx context.Context, id uuid.UUID, name string) (*models.Category, error) {
	category, ok := s.categories[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	category.Name = name
	category.UpdatedAt = time.Now()
	cp := *category
	return &cp, nil
}

func (s *fakeCategoryStore) Deactivate(ctx context.Context, id uuid.UUID) error {
	category, ok := s.categories[id]
	if !ok || !category.Active {
		return repository.ErrNotFound
	}
	category.Active = false
	category.UpdatedAt = time.Now()
	return nil
}

type fakeProductStore struct {
	products map[uuid.UUID]*models.Product
}

func newFakeProductStore() *fakeProductStore {
	return &fakeProductStore{products: make(map[uuid.UUID]*models.Product)}
}

func (s *fakeProductStore) add(name string, price int64, categoryID uuid.UUID, disabled bool) *models.Product {
	product := &models.Product{
		ID:          uuid.New(),
		Name:        name,
		Description: name + " description",
		Price:       price,
		CategoryID:  categoryID,
		Banner:      "/files/" + name + ".png",
		Disabled:    disabled,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	s.products[product.ID] = product
	return product
}

func (s *fakeProductStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, ok := s.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *product
	return &cp, nil
}

func (s *fakeProductStore) List(ctx context.Context, disabled bool) ([]models.Product, error) {
	var products []models.Product
	for _, product := range s.products {
		if product.Disabled == disabled {
			products = append(products, *product)
		}
	}
	return products, nil
}

func (s *fakeProductStore) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]models.Product, error) {
	var products []models.Product
	for _, product := range s.products {
		if product.CategoryID == categoryID && !product.Disabled {
			products = append(products, *product)
		}
	}
	return products, nil
}

func (s *fakeProductStore) Create(ctx context.Context, product models.Product) (*models.Product, error) {
	product.ID = uuid.New()
	product.CreatedAt = time.Now()
	product.UpdatedAt = time.Now()
	s.products[product.ID] = &product
	cp := product
	return &cp, nil
}

func (s *fakeProductStore) Update(ctx context.Context, product models.Product) (*models.Product, error) {
	existing, ok := s.products[product.ID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	existing.Name = product.Name
	existing.Description = product.Description
	existing.Price = product.Price
	existing.Banner = product.Banner
	existing.UpdatedAt = time.Now()
	cp := *existing
	return &cp, nil
}

func (s *fakeProductStore) Disable(ctx context.Context, id uuid.UUID) error {
	product, ok := s.products[id]
	if !ok {
		return repository.ErrNotFound
	}
	product.Disabled = true
	product.UpdatedAt = time.Now()
	return nil
}

type fakeOrderStore struct {
	orders map[uuid.UUID]*models.Order
	// items keeps insertion order so GetOrderItems matches the
	// ORDER BY created_at of the real repository.
	items    []*models.Item
	products *fakeProductStore
}

func newFakeOrderStore(products *fakeProductStore) *fakeOrderStore {
	return &fakeOrderStore{
		orders:   make(map[uuid.UUID]*models.Order),
		products: products,
	}
}

func (s *fakeOrderStore) Create(ctx context.Context, table int, name string) (*models.Order, error) {
	order := &models.Order{
		ID:        uuid.New(),
		Table:     table,
		Name:      name,
		Status:    models.OrderStatusDraft,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	s.orders[order.ID] = order
	cp := *order
	return &cp, nil
}

func (s *fakeOrderStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order, ok := s.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *order
	return &cp, nil
}

func (s *fakeOrderStore) List(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	for _, order := range s.orders {
		if order.Status == models.OrderStatusSent {
			orders = append(orders, *order)
		}
	}
	return orders, nil
}

func (s *fakeOrderStore) GetOrderItems(ctx context.Context, orderID uuid.UUID) ([]models.Item, error) {
	items := make([]models.Item, 0)
	for _, item := range s.items {
		if item.OrderID != orderID {
			continue
		}
		cp := *item
		if product, ok := s.products.products[item.ProductID]; ok {
			cp.Product = &models.ProductSnapshot{
				ID:          product.ID,
				Name:        product.Name,
				Price:       product.Price,
				Description: product.Description,
				Banner:      product.Banner,
			}
		}
		items = append(items, cp)
	}
	return items, nil
}

func (s *fakeOrderStore) GetItem(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	for _, item := range s.items {
		if item.ID == id {
			cp := *item
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeOrderStore) AddItem(ctx context.Context, orderID, productID uuid.UUID, amount int) (*models.Item, error) {
	if _, ok := s.orders[orderID]; !ok {
		return nil, repository.ErrOrderNotFound
	}
	product, ok := s.products.products[productID]
	if !ok || product.Disabled {
		return nil, repository.ErrProductNotFound
	}

	item := &models.Item{
		ID:        uuid.New(),
		OrderID:   orderID,
		ProductID: productID,
		Amount:    amount,
		CreatedAt: time.Now(),
	}
	s.items = append(s.items, item)

	cp := *item
	cp.Product = &models.ProductSnapshot{
		ID:          product.ID,
		Name:        product.Name,
		Price:       product.Price,
		Description: product.Description,
		Banner:      product.Banner,
	}
	return &cp, nil
}

func (s *fakeOrderStore) RemoveItem(ctx context.Context, id uuid.UUID) error {
	for i, item := range s.items {
		if item.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *fakeOrderStore) Send(ctx context.Context, id uuid.UUID, name string) (*models.Order, error) {
	order, ok := s.orders[id]
	if !ok || order.Status != models.OrderStatusDraft {
		return nil, repository.ErrNotFound
	}
	order.Status = models.OrderStatusSent
	order.Name = name
	order.UpdatedAt = time.Now()
	cp := *order
	return &cp, nil
}

func (s *fakeOrderStore) Finish(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order, ok := s.orders[id]
	if !ok || order.Status != models.OrderStatusSent {
		return nil, repository.ErrNotFound
	}
	order.Status = models.OrderStatusFinished
	order.UpdatedAt = time.Now()
	cp := *order
	return &cp, nil
}

func (s *fakeOrderStore) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := s.orders[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.orders, id)
	remaining := s.items[:0]
	for _, item := range s.items {
		if item.OrderID != id {
			remaining = append(remaining, item)
		}
	}
	s.items = remaining
	return nil
}

// fixture wires the fakes into the services under test.
type fixture struct {
	users      *fakeUserStore
	categories *fakeCategoryStore
	products   *fakeProductStore
	orders     *fakeOrderStore
	validator  *Validator
}

func newFixture() *fixture {
	users := newFakeUserStore()
	categories := newFakeCategoryStore()
	products := newFakeProductStore()
	orders := newFakeOrderStore(products)
	return &fixture{
		users:      users,
		categories: categories,
		products:   products,
		orders:     orders,
		validator:  NewValidator(categories, orders),
	}
}
