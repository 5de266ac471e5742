package services

import (
	"log"

	"katalog/internal/models"
	"katalog/internal/repositories"
)

// EventPublisher publishes catalog events to the message broker. Satisfied by
// *rabbitmq.Client; a nil publisher disables eventing (tests, local runs
// without a broker).
type EventPublisher interface {
	PublishProductCreated(event map[string]interface{}) error
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo      repositories.ProductRepository
	publisher EventPublisher
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, publisher EventPublisher) *ProductService {
	return &ProductService{
		repo:      repo,
		publisher: publisher,
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct persists a validated product and publishes a product.created
// event. The record reaching this point has already passed intake validation;
// no checks are repeated here. Publishing is best-effort: a broker failure is
// logged and never fails the request.
func (s *ProductService) CreateProduct(product *models.Product) error {
	if err := s.repo.Create(product); err != nil {
		return err
	}

	if s.publisher != nil {
		event := map[string]interface{}{
			"productID": product.ID,
			"name":      product.Name,
			"brand":     product.Brand,
			"category":  product.Category,
			"price":     product.Price,
			"createdAt": product.CreatedAt,
		}
		if err := s.publisher.PublishProductCreated(event); err != nil {
			log.Printf("Warning: Failed to publish product created event for product %s: %v", product.ID, err)
		}
	}
	return nil
}

// UpdateProduct updates an existing product.
func (s *ProductService) UpdateProduct(product *models.Product) error {
	return s.repo.Update(product)
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(id string) error {
	return s.repo.Delete(id)
}
