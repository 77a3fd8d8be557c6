package service

import (
	"errors"
	"strings"

	"lightspace/internal/features/catalog/domain"
	"lightspace/internal/features/catalog/ports"
)

// ErrProductNotFound is returned when the requested product does not exist.
var ErrProductNotFound = errors.New("product not found")

// CatalogServiceImpl implements ports.CatalogService over a CatalogProvider.
type CatalogServiceImpl struct {
	provider ports.CatalogProvider
}

// NewCatalogService creates a new CatalogServiceImpl.
func NewCatalogService(provider ports.CatalogProvider) *CatalogServiceImpl {
	return &CatalogServiceImpl{
		provider: provider,
	}
}

// Search returns products matching the category filter and a case-insensitive
// name query. Category "all" (or empty) matches every category. Results keep
// catalog order.
func (s *CatalogServiceImpl) Search(category, query string) []domain.Product {
	products := s.provider.ListProducts()
	query = strings.ToLower(strings.TrimSpace(query))

	matched := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if category != "" && category != "all" && p.Category != category {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(p.Name), query) {
			continue
		}
		matched = append(matched, p)
	}

	return matched
}

// GetProduct returns the product with the given ID.
func (s *CatalogServiceImpl) GetProduct(id int) (*domain.Product, error) {
	p := s.provider.GetProduct(id)
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}

// ListCategories returns all browsable categories.
func (s *CatalogServiceImpl) ListCategories() []domain.Category {
	return s.provider.ListCategories()
}
