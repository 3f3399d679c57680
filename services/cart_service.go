package services

import (
	"errors"
	"fmt"

	"storefront/models"
	"storefront/repository"

	"gorm.io/gorm"
)

// ICartService defines the interface for cart business logic.
type ICartService interface {
	Add(userID int64, productID uint, qty int) error
	Remove(userID int64, productID uint) error
	List(userID int64) ([]models.CartEntry, error)
	Total(userID int64) (int64, error)
	Clear(userID int64) error
}

// CartService implements ICartService.
type CartService struct {
	cartRepo    repository.ICartRepository
	productRepo repository.IProductRepository
}

// NewCartService creates a new CartService instance.
func NewCartService(cartRepo repository.ICartRepository, productRepo repository.IProductRepository) ICartService {
	return &CartService{cartRepo: cartRepo, productRepo: productRepo}
}

// Add puts qty units of a product into the user's cart, incrementing an
// existing line if there is one. The product must exist and be active.
func (s *CartService) Add(userID int64, productID uint, qty int) error {
	if qty <= 0 {
		return fmt.Errorf("quantity must be positive: got %d", qty)
	}

	product, err := s.productRepo.FindByID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("product %d: %w", productID, ErrProductUnavailable)
		}
		return fmt.Errorf("failed to load product %d: %w", productID, err)
	}
	if !product.IsActive {
		return fmt.Errorf("product %d: %w", productID, ErrProductUnavailable)
	}

	line, err := s.cartRepo.FindLine(userID, productID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to load cart line: %w", err)
		}
		line = &models.CartLine{UserID: userID, ProductID: productID, Quantity: 0}
	}
	line.Quantity += qty

	if err := s.cartRepo.SaveLine(line); err != nil {
		return fmt.Errorf("failed to save cart line: %w", err)
	}
	return nil
}

// Remove drops a product from the cart. Removing a line that is not there
// is a no-op.
func (s *CartService) Remove(userID int64, productID uint) error {
	if err := s.cartRepo.DeleteLine(userID, productID); err != nil {
		return fmt.Errorf("failed to remove cart line: %w", err)
	}
	return nil
}

// List returns the cart joined with current catalog names and prices.
func (s *CartService) List(userID int64) ([]models.CartEntry, error) {
	entries, err := s.cartRepo.ListEntries(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart: %w", err)
	}
	return entries, nil
}

// Total sums current unit price times quantity across the cart. Integer
// arithmetic only.
func (s *CartService) Total(userID int64) (int64, error) {
	entries, err := s.cartRepo.ListEntries(userID)
	if err != nil {
		return 0, fmt.Errorf("failed to list cart: %w", err)
	}
	var total int64
	for _, e := range entries {
		total += e.Subtotal()
	}
	return total, nil
}

// Clear purges all cart lines for the user.
func (s *CartService) Clear(userID int64) error {
	if err := s.cartRepo.DeleteAll(userID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
