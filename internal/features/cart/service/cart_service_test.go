package service

import (
	"context"
	"errors"
	"testing"

	cartdomain "lightspace/internal/features/cart/domain"
	catalog "lightspace/internal/features/catalog/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCartRepository is a mock implementation of ports.CartRepository.
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) Get(ctx context.Context, sessionID string) (*cartdomain.Cart, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cartdomain.Cart), args.Error(1)
}

func (m *MockCartRepository) Save(ctx context.Context, sessionID string, cart *cartdomain.Cart) error {
	args := m.Called(ctx, sessionID, cart)
	return args.Error(0)
}

func (m *MockCartRepository) Delete(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

// stubCatalog resolves a fixed set of products.
type stubCatalog struct {
	products map[int]catalog.Product
}

func (s *stubCatalog) ListProducts() []catalog.Product { return nil }

func (s *stubCatalog) GetProduct(id int) *catalog.Product {
	if p, ok := s.products[id]; ok {
		return &p
	}
	return nil
}

func (s *stubCatalog) ListCategories() []catalog.Category { return nil }

func TestCartService_AddItem(t *testing.T) {
	ctx := context.Background()
	cat := &stubCatalog{products: map[int]catalog.Product{
		1: {ID: 1, Name: "Nordic Pendant Light", Price: 299},
	}}

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockCartRepository)
		mockRepo.On("Get", ctx, "s1").Return(cartdomain.NewCart(), nil).Once()
		mockRepo.On("Save", ctx, "s1", mock.AnythingOfType("*domain.Cart")).Return(nil).Once()

		svc := NewCartService(mockRepo, cat)
		cart, err := svc.AddItem(ctx, "s1", 1)

		require.NoError(t, err)
		require.Len(t, cart.Lines, 1)
		assert.Equal(t, 1, cart.Lines[0].Quantity)
		mockRepo.AssertExpectations(t)
	})

	t.Run("UnknownProduct", func(t *testing.T) {
		mockRepo := new(MockCartRepository)

		svc := NewCartService(mockRepo, cat)
		_, err := svc.AddItem(ctx, "s1", 42)

		assert.ErrorIs(t, err, ErrProductNotFound)
		mockRepo.AssertNotCalled(t, "Save")
	})

	t.Run("RepoError", func(t *testing.T) {
		mockRepo := new(MockCartRepository)
		mockRepo.On("Get", ctx, "s1").Return(nil, errors.New("redis down")).Once()

		svc := NewCartService(mockRepo, cat)
		_, err := svc.AddItem(ctx, "s1", 1)

		assert.Error(t, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestCartService_RemoveItem(t *testing.T) {
	ctx := context.Background()
	cat := &stubCatalog{products: map[int]catalog.Product{
		1: {ID: 1, Name: "Nordic Pendant Light", Price: 299},
	}}

	existing := cartdomain.NewCart()
	existing.Add(catalog.Product{ID: 1, Name: "Nordic Pendant Light", Price: 299})
	existing.Add(catalog.Product{ID: 1, Name: "Nordic Pendant Light", Price: 299})

	mockRepo := new(MockCartRepository)
	mockRepo.On("Get", ctx, "s1").Return(existing, nil).Once()
	mockRepo.On("Save", ctx, "s1", mock.AnythingOfType("*domain.Cart")).Return(nil).Once()

	svc := NewCartService(mockRepo, cat)
	cart, err := svc.RemoveItem(ctx, "s1", 1)

	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 1, cart.Lines[0].Quantity)
	mockRepo.AssertExpectations(t)
}

func TestCartService_RemoveItem_AbsentIsNoOp(t *testing.T) {
	ctx := context.Background()
	cat := &stubCatalog{products: map[int]catalog.Product{}}

	mockRepo := new(MockCartRepository)
	mockRepo.On("Get", ctx, "s1").Return(cartdomain.NewCart(), nil).Once()
	mockRepo.On("Save", ctx, "s1", mock.AnythingOfType("*domain.Cart")).Return(nil).Once()

	svc := NewCartService(mockRepo, cat)
	cart, err := svc.RemoveItem(ctx, "s1", 42)

	require.NoError(t, err)
	assert.Empty(t, cart.Lines)
	mockRepo.AssertExpectations(t)
}

func TestCartService_Clear(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockCartRepository)
	mockRepo.On("Delete", ctx, "s1").Return(nil).Once()

	svc := NewCartService(mockRepo, &stubCatalog{})
	assert.NoError(t, svc.Clear(ctx, "s1"))
	mockRepo.AssertExpectations(t)
}

func TestCartService_GetCart(t *testing.T) {
	ctx := context.Background()

	existing := cartdomain.NewCart()
	existing.Add(catalog.Product{ID: 5, Name: "Smart LED Strip", Price: 99})

	mockRepo := new(MockCartRepository)
	mockRepo.On("Get", ctx, "s1").Return(existing, nil).Once()

	svc := NewCartService(mockRepo, &stubCatalog{})
	cart, err := svc.GetCart(ctx, "s1")

	require.NoError(t, err)
	assert.Equal(t, 1, cart.ItemCount())
	assert.Equal(t, 99.0, cart.Total())
	mockRepo.AssertExpectations(t)
}
