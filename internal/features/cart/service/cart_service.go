package service

import (
	"context"
	"errors"
	"fmt"

	cartdomain "lightspace/internal/features/cart/domain"
	"lightspace/internal/features/cart/ports"
	catalogports "lightspace/internal/features/catalog/ports"
)

// ErrProductNotFound is returned when the product is not in the catalog.
var ErrProductNotFound = errors.New("product not found")

// CartServiceImpl implements ports.CartService.
// Each call loads the session's cart, applies one mutation and saves it
// back; the repository's last-write-wins semantics match the one-user-per-
// session interaction model.
type CartServiceImpl struct {
	repo    ports.CartRepository
	catalog catalogports.CatalogProvider
}

// NewCartService creates a new CartServiceImpl.
func NewCartService(repo ports.CartRepository, catalog catalogports.CatalogProvider) *CartServiceImpl {
	return &CartServiceImpl{
		repo:    repo,
		catalog: catalog,
	}
}

// AddItem puts one unit of the product into the session's cart.
func (s *CartServiceImpl) AddItem(ctx context.Context, sessionID string, productID int) (*cartdomain.Cart, error) {
	product := s.catalog.GetProduct(productID)
	if product == nil {
		return nil, ErrProductNotFound
	}

	cart, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load cart: %w", err)
	}

	cart.Add(*product)

	if err := s.repo.Save(ctx, sessionID, cart); err != nil {
		return nil, fmt.Errorf("service: failed to save cart: %w", err)
	}

	return cart, nil
}

// RemoveItem takes one unit of the product out of the session's cart.
// Removing an absent product leaves the cart unchanged.
func (s *CartServiceImpl) RemoveItem(ctx context.Context, sessionID string, productID int) (*cartdomain.Cart, error) {
	cart, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load cart: %w", err)
	}

	cart.Remove(productID)

	if err := s.repo.Save(ctx, sessionID, cart); err != nil {
		return nil, fmt.Errorf("service: failed to save cart: %w", err)
	}

	return cart, nil
}

// Clear empties the session's cart.
func (s *CartServiceImpl) Clear(ctx context.Context, sessionID string) error {
	if err := s.repo.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("service: failed to clear cart: %w", err)
	}
	return nil
}

// GetCart returns the session's cart.
func (s *CartServiceImpl) GetCart(ctx context.Context, sessionID string) (*cartdomain.Cart, error) {
	cart, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load cart: %w", err)
	}
	return cart, nil
}
