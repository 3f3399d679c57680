package repository

import (
	"storefront/models"

	"gorm.io/gorm"
)

// IProductRepository defines the interface for catalog data operations.
type IProductRepository interface {
	FindByID(id uint) (*models.Product, error)
	FindActive() ([]models.Product, error)
	Create(product *models.Product) error
	Save(product *models.Product) error
	Deactivate(id uint) error
}

// ProductRepository implements IProductRepository for GORM.
type ProductRepository struct {
	DB *gorm.DB
}

// NewProductRepository creates a new ProductRepository instance.
func NewProductRepository(db *gorm.DB) IProductRepository {
	return &ProductRepository{DB: db}
}

// FindByID retrieves a product by id, active or not.
func (r *ProductRepository) FindByID(id uint) (*models.Product, error) {
	var product models.Product
	err := r.DB.First(&product, id).Error
	return &product, err
}

// FindActive lists active products, newest first.
func (r *ProductRepository) FindActive() ([]models.Product, error) {
	var products []models.Product
	err := r.DB.Where("is_active = ?", true).Order("id DESC").Find(&products).Error
	return products, err
}

func (r *ProductRepository) Create(product *models.Product) error {
	return r.DB.Create(product).Error
}

func (r *ProductRepository) Save(product *models.Product) error {
	return r.DB.Save(product).Error
}

// Deactivate soft-deletes a product. The row stays, historical orders keep
// pointing at it.
func (r *ProductRepository) Deactivate(id uint) error {
	result := r.DB.Model(&models.Product{}).Where("id = ?", id).Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
