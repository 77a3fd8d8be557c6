package service

import (
	"context"
	"errors"
	"fmt"

	catalogdomain "lightspace/internal/features/catalog/domain"
	catalogports "lightspace/internal/features/catalog/ports"
	"lightspace/internal/features/wishlist/ports"
)

// ErrProductNotFound is returned when the product is not in the catalog.
var ErrProductNotFound = errors.New("product not found")

// WishlistServiceImpl implements ports.WishlistService.
type WishlistServiceImpl struct {
	repo    ports.WishlistRepository
	catalog catalogports.CatalogProvider
}

// NewWishlistService creates a new WishlistServiceImpl.
func NewWishlistService(repo ports.WishlistRepository, catalog catalogports.CatalogProvider) *WishlistServiceImpl {
	return &WishlistServiceImpl{
		repo:    repo,
		catalog: catalog,
	}
}

// Toggle flips the product's wishlist membership.
func (s *WishlistServiceImpl) Toggle(ctx context.Context, sessionID string, productID int) (bool, error) {
	if s.catalog.GetProduct(productID) == nil {
		return false, ErrProductNotFound
	}

	w, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return false, fmt.Errorf("service: failed to load wishlist: %w", err)
	}

	added := w.Toggle(productID)

	if err := s.repo.Save(ctx, sessionID, w); err != nil {
		return false, fmt.Errorf("service: failed to save wishlist: %w", err)
	}

	return added, nil
}

// Contains reports whether the product is in the session's wishlist.
func (s *WishlistServiceImpl) Contains(ctx context.Context, sessionID string, productID int) (bool, error) {
	w, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return false, fmt.Errorf("service: failed to load wishlist: %w", err)
	}
	return w.Contains(productID), nil
}

// List resolves the session's wishlist into full products in saved order.
// Products that have since left the catalog are silently skipped.
func (s *WishlistServiceImpl) List(ctx context.Context, sessionID string) ([]catalogdomain.Product, error) {
	w, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load wishlist: %w", err)
	}

	products := make([]catalogdomain.Product, 0, w.Len())
	for _, id := range w.ProductIDs {
		if p := s.catalog.GetProduct(id); p != nil {
			products = append(products, *p)
		}
	}

	return products, nil
}
