package repository

import (
	"storefront/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// IOrderRepository defines the interface for order data operations.
type IOrderRepository interface {
	PlaceOrder(order *models.Order, userID int64) error
	FindByID(id uint) (*models.Order, error)
	FindByUser(userID int64, limit int) ([]models.Order, error)
	FindAll(limit int) ([]models.Order, error)
	UpdateOrder(id uint, apply func(order *models.Order) error) (*models.Order, error)
}

// OrderRepository implements IOrderRepository for GORM.
type OrderRepository struct {
	DB *gorm.DB
}

// NewOrderRepository creates a new OrderRepository instance.
func NewOrderRepository(db *gorm.DB) IOrderRepository {
	return &OrderRepository{DB: db}
}

// PlaceOrder inserts the order with its line items and purges the user's
// cart in a single transaction. A crash mid-sequence leaves neither an order
// without items nor an emptied cart without an order.
func (r *OrderRepository) PlaceOrder(order *models.Order, userID int64) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", userID).Delete(&models.CartLine{}).Error
	})
}

// FindByID retrieves an order with its line items.
func (r *OrderRepository) FindByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.DB.Preload("Items").First(&order, id).Error
	return &order, err
}

// FindByUser lists a user's latest orders, newest first.
func (r *OrderRepository) FindByUser(userID int64, limit int) ([]models.Order, error) {
	var orders []models.Order
	err := r.DB.Preload("Items").Where("user_id = ?", userID).
		Order("id DESC").Limit(limit).Find(&orders).Error
	return orders, err
}

// FindAll lists the latest orders across all users, newest first.
func (r *OrderRepository) FindAll(limit int) ([]models.Order, error) {
	var orders []models.Order
	err := r.DB.Preload("Items").Order("id DESC").Limit(limit).Find(&orders).Error
	return orders, err
}

// UpdateOrder runs apply against the order inside a transaction holding a
// row lock, then writes the mutated fields back. Concurrent updates on the
// same order serialize on the lock, so apply always sees the latest state.
// An error from apply rolls everything back and is returned unwrapped so
// callers can branch on their own sentinels.
func (r *OrderRepository) UpdateOrder(id uint, apply func(order *models.Order) error) (*models.Order, error) {
	var order models.Order
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Preload("Items").First(&order, id).Error; err != nil {
			return err
		}
		if err := apply(&order); err != nil {
			return err
		}
		return tx.Model(&models.Order{}).Where("id = ?", id).Updates(map[string]interface{}{
			"status":                  order.Status,
			"payment_method":          order.PaymentMethod,
			"payment_reference":       order.PaymentReference,
			"payment_proof_reference": order.PaymentProofReference,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}
