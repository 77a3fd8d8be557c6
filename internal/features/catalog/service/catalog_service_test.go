package service

import (
	"testing"

	"lightspace/internal/features/catalog/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCatalog is a minimal CatalogProvider for service tests.
type stubCatalog struct {
	products   []domain.Product
	categories []domain.Category
}

func (s *stubCatalog) ListProducts() []domain.Product { return s.products }

func (s *stubCatalog) GetProduct(id int) *domain.Product {
	for i := range s.products {
		if s.products[i].ID == id {
			p := s.products[i]
			return &p
		}
	}
	return nil
}

func (s *stubCatalog) ListCategories() []domain.Category { return s.categories }

func testProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Nordic Pendant Light", Category: "pendant", Price: 299},
		{ID: 2, Name: "Modern Floor Lamp", Category: "floor", Price: 399},
		{ID: 3, Name: "Crystal Chandelier", Category: "chandelier", Price: 899},
	}
}

func TestCatalogService_Search_All(t *testing.T) {
	svc := NewCatalogService(&stubCatalog{products: testProducts()})

	results := svc.Search("all", "")
	assert.Len(t, results, 3)
	// Catalog order is preserved.
	assert.Equal(t, 1, results[0].ID)
	assert.Equal(t, 3, results[2].ID)
}

func TestCatalogService_Search_Category(t *testing.T) {
	svc := NewCatalogService(&stubCatalog{products: testProducts()})

	results := svc.Search("floor", "")
	require.Len(t, results, 1)
	assert.Equal(t, "Modern Floor Lamp", results[0].Name)
}

func TestCatalogService_Search_Query(t *testing.T) {
	svc := NewCatalogService(&stubCatalog{products: testProducts()})

	t.Run("CaseInsensitive", func(t *testing.T) {
		results := svc.Search("all", "CRYSTAL")
		require.Len(t, results, 1)
		assert.Equal(t, 3, results[0].ID)
	})

	t.Run("NoMatch", func(t *testing.T) {
		results := svc.Search("all", "desk fan")
		assert.Empty(t, results)
	})

	t.Run("CategoryAndQuery", func(t *testing.T) {
		results := svc.Search("pendant", "lamp")
		assert.Empty(t, results)
	})
}

func TestCatalogService_GetProduct(t *testing.T) {
	svc := NewCatalogService(&stubCatalog{products: testProducts()})

	p, err := svc.GetProduct(2)
	require.NoError(t, err)
	assert.Equal(t, "Modern Floor Lamp", p.Name)

	_, err = svc.GetProduct(999)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCatalogService_ListCategories(t *testing.T) {
	cats := []domain.Category{{ID: "all", Name: "All"}, {ID: "led", Name: "LED"}}
	svc := NewCatalogService(&stubCatalog{categories: cats})

	assert.Equal(t, cats, svc.ListCategories())
}
