package ports

import (
	"context"

	"lightspace/internal/features/cart/domain"
)

// CartService defines the primary port for cart operations.
type CartService interface {
	// AddItem puts one unit of the product into the session's cart.
	AddItem(ctx context.Context, sessionID string, productID int) (*domain.Cart, error)

	// RemoveItem takes one unit of the product out of the session's cart.
	// Removing an absent product is not an error.
	RemoveItem(ctx context.Context, sessionID string, productID int) (*domain.Cart, error)

	// Clear empties the session's cart.
	Clear(ctx context.Context, sessionID string) error

	// GetCart returns the session's cart (empty cart if none exists yet).
	GetCart(ctx context.Context, sessionID string) (*domain.Cart, error)
}

// CartRepository defines the secondary port for cart storage.
type CartRepository interface {
	// Get loads the session's cart. An absent session yields an empty cart.
	Get(ctx context.Context, sessionID string) (*domain.Cart, error)

	// Save persists the session's cart.
	Save(ctx context.Context, sessionID string, cart *domain.Cart) error

	// Delete removes the session's cart.
	Delete(ctx context.Context, sessionID string) error
}
