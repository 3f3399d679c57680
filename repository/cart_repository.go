package repository

import (
	"storefront/models"

	"gorm.io/gorm"
)

// ICartRepository defines the interface for cart data operations.
type ICartRepository interface {
	FindLine(userID int64, productID uint) (*models.CartLine, error)
	SaveLine(line *models.CartLine) error
	DeleteLine(userID int64, productID uint) error
	DeleteAll(userID int64) error
	ListEntries(userID int64) ([]models.CartEntry, error)
}

// CartRepository implements ICartRepository for GORM.
type CartRepository struct {
	DB *gorm.DB
}

// NewCartRepository creates a new CartRepository instance.
func NewCartRepository(db *gorm.DB) ICartRepository {
	return &CartRepository{DB: db}
}

func (r *CartRepository) FindLine(userID int64, productID uint) (*models.CartLine, error) {
	var line models.CartLine
	err := r.DB.Where("user_id = ? AND product_id = ?", userID, productID).First(&line).Error
	return &line, err
}

func (r *CartRepository) SaveLine(line *models.CartLine) error {
	return r.DB.Save(line).Error
}

// DeleteLine removes one line. Deleting a line that does not exist is a
// no-op, not an error.
func (r *CartRepository) DeleteLine(userID int64, productID uint) error {
	return r.DB.Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.CartLine{}).Error
}

// DeleteAll purges every line for a user. Used by checkout.
func (r *CartRepository) DeleteAll(userID int64) error {
	return r.DB.Where("user_id = ?", userID).Delete(&models.CartLine{}).Error
}

// ListEntries joins cart lines against the current catalog so callers see
// today's names and prices, not frozen ones.
func (r *CartRepository) ListEntries(userID int64) ([]models.CartEntry, error) {
	var entries []models.CartEntry
	err := r.DB.Table("cart_lines").
		Select("cart_lines.product_id, products.name, products.price AS unit_price, cart_lines.quantity").
		Joins("JOIN products ON products.id = cart_lines.product_id").
		Where("cart_lines.user_id = ?", userID).
		Order("cart_lines.product_id DESC").
		Scan(&entries).Error
	return entries, err
}
