package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"storefront/models"
	"storefront/repository"

	"gorm.io/gorm"
)

// Listing limits mirror what the storefront surfaces show.
const (
	myOrdersLimit  = 20
	allOrdersLimit = 50
)

var phoneDigits = regexp.MustCompile(`[0-9]{7,}`)

// IOrderService defines the interface for order business logic.
type IOrderService interface {
	Checkout(userID int64, customerName, phone, address, note string) (*models.Order, error)
	GetOrder(orderID uint, requesterID int64) (*models.Order, error)
	MyOrders(userID int64) ([]models.Order, error)
	AllOrders(actorID int64) ([]models.Order, error)
}

// OrderService implements IOrderService.
type OrderService struct {
	orderRepo repository.IOrderRepository
	cartRepo  repository.ICartRepository
	operators OperatorIdentity
}

// NewOrderService creates a new OrderService instance.
func NewOrderService(orderRepo repository.IOrderRepository, cartRepo repository.ICartRepository, operators OperatorIdentity) IOrderService {
	return &OrderService{orderRepo: orderRepo, cartRepo: cartRepo, operators: operators}
}

// Checkout turns the user's cart into an immutable order. Line items freeze
// the catalog name and price at this instant; the order lands in
// WAIT_PAYMENT and the cart is purged in the same transaction. An empty
// cart is a quiet no-op signalled by ErrEmptyCart, never a created order.
func (s *OrderService) Checkout(userID int64, customerName, phone, address, note string) (*models.Order, error) {
	// Defensive re-check; the transport is the primary validation site.
	if strings.TrimSpace(customerName) == "" {
		return nil, fmt.Errorf("customer name is required: %w", ErrInvalidCheckoutDetails)
	}
	if !phoneDigits.MatchString(phone) {
		return nil, fmt.Errorf("phone needs at least 7 digits: %w", ErrInvalidCheckoutDetails)
	}

	entries, err := s.cartRepo.ListEntries(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}
	if len(entries) == 0 {
		return nil, ErrEmptyCart
	}

	var total int64
	items := make([]models.OrderLineItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, models.OrderLineItem{
			ProductID: e.ProductID,
			Name:      e.Name,
			UnitPrice: e.UnitPrice,
			Quantity:  e.Quantity,
		})
		total += e.Subtotal()
	}

	order := &models.Order{
		UserID:       userID,
		CustomerName: customerName,
		Phone:        phone,
		Address:      address,
		Note:         note,
		TotalAmount:  total,
		Status:       models.StatusWaitPayment,
		Items:        items,
	}

	if err := s.orderRepo.PlaceOrder(order, userID); err != nil {
		return nil, fmt.Errorf("failed to place order: %w", err)
	}
	return order, nil
}

// GetOrder returns an order to its owner or to an operator.
func (s *OrderService) GetOrder(orderID uint, requesterID int64) (*models.Order, error) {
	order, err := s.orderRepo.FindByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order %d: %w", orderID, ErrOrderNotFound)
		}
		return nil, fmt.Errorf("failed to load order %d: %w", orderID, err)
	}
	if order.UserID != requesterID && !s.operators.IsOperator(requesterID) {
		return nil, fmt.Errorf("order %d: %w", orderID, ErrNotOrderOwner)
	}
	return order, nil
}

// MyOrders lists the user's latest orders.
func (s *OrderService) MyOrders(userID int64) ([]models.Order, error) {
	orders, err := s.orderRepo.FindByUser(userID, myOrdersLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// AllOrders lists the latest orders across users. Operator only.
func (s *OrderService) AllOrders(actorID int64) ([]models.Order, error) {
	if !s.operators.IsOperator(actorID) {
		return nil, fmt.Errorf("user %d: %w", actorID, ErrUnauthorized)
	}
	orders, err := s.orderRepo.FindAll(allOrdersLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}
