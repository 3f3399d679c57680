package controllers

import (
	"storefront/models"
	"storefront/services"

	"github.com/stretchr/testify/mock"
)

// MockCartService is a mock implementation of services.ICartService.
type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) Add(userID int64, productID uint, qty int) error {
	args := m.Called(userID, productID, qty)
	return args.Error(0)
}

func (m *MockCartService) Remove(userID int64, productID uint) error {
	args := m.Called(userID, productID)
	return args.Error(0)
}

func (m *MockCartService) List(userID int64) ([]models.CartEntry, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CartEntry), args.Error(1)
}

func (m *MockCartService) Total(userID int64) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCartService) Clear(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

// MockOrderService is a mock implementation of services.IOrderService.
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Checkout(userID int64, customerName, phone, address, note string) (*models.Order, error) {
	args := m.Called(userID, customerName, phone, address, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderService) GetOrder(orderID uint, requesterID int64) (*models.Order, error) {
	args := m.Called(orderID, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderService) MyOrders(userID int64) ([]models.Order, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderService) AllOrders(actorID int64) ([]models.Order, error) {
	args := m.Called(actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

// MockPaymentService is a mock implementation of services.IPaymentService.
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) SubmitPayment(orderID uint, requesterID int64, method, reference string) (*models.Order, error) {
	args := m.Called(orderID, requesterID, method, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockPaymentService) SubmitProof(orderID uint, requesterID int64, proofReference string) (*models.Order, error) {
	args := m.Called(orderID, requesterID, proofReference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

// MockStatusService is a mock implementation of services.IStatusService.
type MockStatusService struct {
	mock.Mock
}

func (m *MockStatusService) SetStatus(orderID uint, next models.OrderStatus, actorID int64) (*models.Order, error) {
	args := m.Called(orderID, next, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

// MockSettingsService is a mock implementation of services.ISettingsService.
type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) Get(key, fallback string) (string, error) {
	args := m.Called(key, fallback)
	return args.String(0), args.Error(1)
}

func (m *MockSettingsService) Set(actorID int64, key, value string) error {
	args := m.Called(actorID, key, value)
	return args.Error(0)
}

// MockCatalogService is a mock implementation of services.ICatalogService.
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ActiveProducts() ([]models.Product, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockCatalogService) GetProduct(id uint) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockCatalogService) AddProduct(actorID int64, name string, price int64, description, photoReference string) (*models.Product, error) {
	args := m.Called(actorID, name, price, description, photoReference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockCatalogService) UpdateProduct(actorID int64, id uint, update services.ProductUpdate) (*models.Product, error) {
	args := m.Called(actorID, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockCatalogService) DeactivateProduct(actorID int64, id uint) error {
	args := m.Called(actorID, id)
	return args.Error(0)
}
