package services

import (
	"storefront/models"

	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repository.IProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(id uint) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) FindActive() ([]models.Product, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Save(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Deactivate(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockCartRepository is a mock implementation of repository.ICartRepository.
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) FindLine(userID int64, productID uint) (*models.CartLine, error) {
	args := m.Called(userID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CartLine), args.Error(1)
}

func (m *MockCartRepository) SaveLine(line *models.CartLine) error {
	args := m.Called(line)
	return args.Error(0)
}

func (m *MockCartRepository) DeleteLine(userID int64, productID uint) error {
	args := m.Called(userID, productID)
	return args.Error(0)
}

func (m *MockCartRepository) DeleteAll(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockCartRepository) ListEntries(userID int64) ([]models.CartEntry, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CartEntry), args.Error(1)
}

// MockOrderRepository is a mock implementation of repository.IOrderRepository.
// UpdateOrder mimics the real repository: the apply func runs against the
// canned order, and an error from it aborts the update.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) PlaceOrder(order *models.Order, userID int64) error {
	args := m.Called(order, userID)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByID(id uint) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByUser(userID int64, limit int) ([]models.Order, error) {
	args := m.Called(userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAll(limit int) ([]models.Order, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateOrder(id uint, apply func(order *models.Order) error) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	order := args.Get(0).(*models.Order)
	if err := apply(order); err != nil {
		return nil, err
	}
	return order, args.Error(1)
}

// MockSettingsRepository is a mock implementation of repository.ISettingsRepository.
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) Get(key string) (string, error) {
	args := m.Called(key)
	return args.String(0), args.Error(1)
}

func (m *MockSettingsRepository) Set(key, value string) error {
	args := m.Called(key, value)
	return args.Error(0)
}

// MockPublisher is a mock implementation of IEventPublisher.
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(topic string, key string, payload []byte) error {
	args := m.Called(topic, key, payload)
	return args.Error(0)
}

// MockNotifier is a mock implementation of INotifier.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(userID int64, text string) error {
	args := m.Called(userID, text)
	return args.Error(0)
}
