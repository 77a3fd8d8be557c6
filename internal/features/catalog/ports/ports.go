package ports

import "lightspace/internal/features/catalog/domain"

// CatalogProvider defines the interface for reading product data.
// This is a Secondary Port (Driven Port); the core never mutates the catalog.
type CatalogProvider interface {
	// ListProducts returns all products in catalog order.
	ListProducts() []domain.Product

	// GetProduct returns the product with the given ID, or nil if absent.
	GetProduct(id int) *domain.Product

	// ListCategories returns all browsable categories.
	ListCategories() []domain.Category
}

// CatalogService defines the primary port for catalog queries.
type CatalogService interface {
	// Search returns products matching the category filter and name query.
	Search(category, query string) []domain.Product

	// GetProduct returns the product with the given ID.
	GetProduct(id int) (*domain.Product, error)

	// ListCategories returns all browsable categories.
	ListCategories() []domain.Category
}
