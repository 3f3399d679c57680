package services

import (
	"errors"
	"fmt"
	"strings"

	"storefront/models"
	"storefront/repository"

	"gorm.io/gorm"
)

// ProductUpdate carries optional field changes for a catalog edit. Nil
// fields are left untouched.
type ProductUpdate struct {
	Name           *string
	Price          *int64
	Description    *string
	PhotoReference *string
}

// ICatalogService defines the interface for catalog reads and operator
// mutations.
type ICatalogService interface {
	ActiveProducts() ([]models.Product, error)
	GetProduct(id uint) (*models.Product, error)
	AddProduct(actorID int64, name string, price int64, description, photoReference string) (*models.Product, error)
	UpdateProduct(actorID int64, id uint, update ProductUpdate) (*models.Product, error)
	DeactivateProduct(actorID int64, id uint) error
}

// CatalogService implements ICatalogService.
type CatalogService struct {
	productRepo repository.IProductRepository
	operators   OperatorIdentity
}

// NewCatalogService creates a new CatalogService instance.
func NewCatalogService(productRepo repository.IProductRepository, operators OperatorIdentity) ICatalogService {
	return &CatalogService{productRepo: productRepo, operators: operators}
}

// ActiveProducts lists the browsable catalog, newest first.
func (s *CatalogService) ActiveProducts() ([]models.Product, error) {
	products, err := s.productRepo.FindActive()
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// GetProduct reads one product, active or not.
func (s *CatalogService) GetProduct(id uint) (*models.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %d: %w", id, ErrProductUnavailable)
		}
		return nil, fmt.Errorf("failed to load product %d: %w", id, err)
	}
	return product, nil
}

// AddProduct creates an active catalog entry. Operator only.
func (s *CatalogService) AddProduct(actorID int64, name string, price int64, description, photoReference string) (*models.Product, error) {
	if !s.operators.IsOperator(actorID) {
		return nil, fmt.Errorf("user %d: %w", actorID, ErrUnauthorized)
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("product name is required")
	}
	if price < 0 {
		return nil, fmt.Errorf("product price cannot be negative")
	}

	product := &models.Product{
		Name:           name,
		Price:          price,
		Description:    description,
		PhotoReference: photoReference,
		IsActive:       true,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

// UpdateProduct applies field edits to a product. Operator only. Edits do
// not reach already-placed orders; those hold frozen line items.
func (s *CatalogService) UpdateProduct(actorID int64, id uint, update ProductUpdate) (*models.Product, error) {
	if !s.operators.IsOperator(actorID) {
		return nil, fmt.Errorf("user %d: %w", actorID, ErrUnauthorized)
	}

	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %d: %w", id, ErrProductUnavailable)
		}
		return nil, fmt.Errorf("failed to load product %d: %w", id, err)
	}

	if update.Name != nil {
		if strings.TrimSpace(*update.Name) == "" {
			return nil, fmt.Errorf("product name is required")
		}
		product.Name = *update.Name
	}
	if update.Price != nil {
		if *update.Price < 0 {
			return nil, fmt.Errorf("product price cannot be negative")
		}
		product.Price = *update.Price
	}
	if update.Description != nil {
		product.Description = *update.Description
	}
	if update.PhotoReference != nil {
		product.PhotoReference = *update.PhotoReference
	}

	if err := s.productRepo.Save(product); err != nil {
		return nil, fmt.Errorf("failed to update product %d: %w", id, err)
	}
	return product, nil
}

// DeactivateProduct soft-deletes a product from the storefront. Operator
// only.
func (s *CatalogService) DeactivateProduct(actorID int64, id uint) error {
	if !s.operators.IsOperator(actorID) {
		return fmt.Errorf("user %d: %w", actorID, ErrUnauthorized)
	}
	if err := s.productRepo.Deactivate(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("product %d: %w", id, ErrProductUnavailable)
		}
		return fmt.Errorf("failed to deactivate product %d: %w", id, err)
	}
	return nil
}
