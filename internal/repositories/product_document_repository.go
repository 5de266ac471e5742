package repositories

import (
	"encoding/json"
	"fmt"

	"katalog/internal/models"
)

const productsCollection = "products"

// DocumentProductRepository is a ProductRepository over the generic
// DocumentStore, keeping products in the "products" collection.
type DocumentProductRepository struct {
	store *DocumentStore
}

// NewDocumentProductRepository creates a new instance of DocumentProductRepository.
func NewDocumentProductRepository(store *DocumentStore) *DocumentProductRepository {
	return &DocumentProductRepository{
		store: store,
	}
}

// GetAll retrieves all products from the document store.
func (r *DocumentProductRepository) GetAll() ([]models.Product, error) {
	docs, err := r.store.List(productsCollection)
	if err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}

	products := make([]models.Product, 0, len(docs))
	for _, doc := range docs {
		product, err := docToProduct(doc)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID from the document store.
func (r *DocumentProductRepository) GetByID(id string) (*models.Product, error) {
	doc, err := r.store.Get(productsCollection, id)
	if err != nil {
		return nil, fmt.Errorf("product with ID %s not found", id)
	}
	product, err := docToProduct(doc)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Create inserts a new product; the store assigns the ID when empty.
func (r *DocumentProductRepository) Create(product *models.Product) error {
	doc, err := productToDoc(*product)
	if err != nil {
		return err
	}
	stored, err := r.store.Insert(productsCollection, doc)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	product.ID = docID(stored)
	return nil
}

// Update replaces an existing product in the document store.
func (r *DocumentProductRepository) Update(product *models.Product) error {
	doc, err := productToDoc(*product)
	if err != nil {
		return err
	}
	if _, err := r.store.Replace(productsCollection, product.ID, doc); err != nil {
		return fmt.Errorf("product with ID %s not found for update", product.ID)
	}
	return nil
}

// Delete removes a product by its ID from the document store.
func (r *DocumentProductRepository) Delete(id string) error {
	if err := r.store.Delete(productsCollection, id); err != nil {
		return fmt.Errorf("product with ID %s not found for deletion", id)
	}
	return nil
}

// The Product struct and Document share the same JSON shape, so conversion is
// a marshal round-trip rather than a hand-maintained field list.
func productToDoc(product models.Product) (Document, error) {
	data, err := json.Marshal(product)
	if err != nil {
		return nil, fmt.Errorf("failed to encode product: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to encode product: %w", err)
	}
	return doc, nil
}

func docToProduct(doc Document) (models.Product, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return models.Product{}, fmt.Errorf("failed to decode product: %w", err)
	}
	var product models.Product
	if err := json.Unmarshal(data, &product); err != nil {
		return models.Product{}, fmt.Errorf("failed to decode product: %w", err)
	}
	return product, nil
}
