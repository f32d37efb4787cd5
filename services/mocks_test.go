package services_test

import (
	"context"

	"github.com/CSCI-GA-2820-FA22-003/shopcarts/models"
	"github.com/CSCI-GA-2820-FA22-003/shopcarts/repository"
	"github.com/stretchr/testify/mock"
)

type MockShopcartRepository struct{ mock.Mock }

func (m *MockShopcartRepository) Create(ctx context.Context, cart *models.Shopcart) error {
	return m.Called(ctx, cart).Error(0)
}
func (m *MockShopcartRepository) Update(ctx context.Context, cart *models.Shopcart) error {
	return m.Called(ctx, cart).Error(0)
}
func (m *MockShopcartRepository) Delete(ctx context.Context, cart *models.Shopcart) error {
	return m.Called(ctx, cart).Error(0)
}
func (m *MockShopcartRepository) Find(ctx context.Context, id uint) (*models.Shopcart, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Shopcart), args.Error(1)
}
func (m *MockShopcartRepository) FindOrFail(ctx context.Context, id uint) (*models.Shopcart, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Shopcart), args.Error(1)
}
func (m *MockShopcartRepository) FindByUserID(ctx context.Context, userID string) (*models.Shopcart, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Shopcart), args.Error(1)
}
func (m *MockShopcartRepository) All(ctx context.Context) ([]models.Shopcart, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Shopcart), args.Error(1)
}
func (m *MockShopcartRepository) Empty(ctx context.Context, cart *models.Shopcart) error {
	return m.Called(ctx, cart).Error(0)
}
func (m *MockShopcartRepository) ReplaceProducts(ctx context.Context, cart *models.Shopcart, products []models.Product) error {
	return m.Called(ctx, cart, products).Error(0)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Create(ctx context.Context, product *models.Product) error {
	return m.Called(ctx, product).Error(0)
}
func (m *MockProductRepository) Update(ctx context.Context, product *models.Product) error {
	return m.Called(ctx, product).Error(0)
}
func (m *MockProductRepository) Delete(ctx context.Context, product *models.Product) error {
	return m.Called(ctx, product).Error(0)
}
func (m *MockProductRepository) Find(ctx context.Context, id uint) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}
func (m *MockProductRepository) FindOrFail(ctx context.Context, id uint) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}
func (m *MockProductRepository) FindByUserID(ctx context.Context, userID string) ([]models.Product, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}
func (m *MockProductRepository) FindByUserAndProduct(ctx context.Context, userID, productID string) (*models.Product, error) {
	args := m.Called(ctx, userID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}
func (m *MockProductRepository) FindByPriceRange(ctx context.Context, userID string, minPrice, maxPrice *float64) ([]models.Product, error) {
	args := m.Called(ctx, userID, minPrice, maxPrice)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}
func (m *MockProductRepository) FindByName(ctx context.Context, name string) ([]models.Product, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}
func (m *MockProductRepository) Search(ctx context.Context, userID string, q repository.ProductQuery) ([]models.Product, error) {
	args := m.Called(ctx, userID, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}
func (m *MockProductRepository) All(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}
