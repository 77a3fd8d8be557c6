package ports

import (
	"context"

	catalog "lightspace/internal/features/catalog/domain"
	"lightspace/internal/features/wishlist/domain"
)

// WishlistService defines the primary port for wishlist operations.
type WishlistService interface {
	// Toggle flips the product's wishlist membership and reports true when
	// the product was added, false when removed.
	Toggle(ctx context.Context, sessionID string, productID int) (bool, error)

	// Contains reports whether the product is in the session's wishlist.
	Contains(ctx context.Context, sessionID string, productID int) (bool, error)

	// List resolves the session's wishlist into full products, in the
	// order they were saved.
	List(ctx context.Context, sessionID string) ([]catalog.Product, error)
}

// WishlistRepository defines the secondary port for wishlist storage.
type WishlistRepository interface {
	// Get loads the session's wishlist. An absent session yields an empty one.
	Get(ctx context.Context, sessionID string) (*domain.Wishlist, error)

	// Save persists the session's wishlist.
	Save(ctx context.Context, sessionID string, w *domain.Wishlist) error

	// Delete removes the session's wishlist.
	Delete(ctx context.Context, sessionID string) error
}
