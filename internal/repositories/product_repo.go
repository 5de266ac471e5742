package repositories

import (
	"katalog/internal/models"
)

// ProductRepository defines the interface for product data access. Two
// implementations exist: the JSON document store (default) and GORM.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
}
