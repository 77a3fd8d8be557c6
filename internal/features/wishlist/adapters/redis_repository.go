package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"lightspace/internal/core/cache"
	"lightspace/internal/features/wishlist/domain"
)

const wishlistKeyPrefix = "wishlist:"

// RedisWishlistRepository implements ports.WishlistRepository over the cache port.
type RedisWishlistRepository struct {
	cache cache.Cache
	ttl   time.Duration
}

// NewRedisWishlistRepository creates a new RedisWishlistRepository.
// A ttl of 0 keeps wishlists until explicitly deleted.
func NewRedisWishlistRepository(c cache.Cache, ttl time.Duration) *RedisWishlistRepository {
	return &RedisWishlistRepository{
		cache: c,
		ttl:   ttl,
	}
}

// Get loads the session's wishlist. An absent session yields an empty one.
func (r *RedisWishlistRepository) Get(ctx context.Context, sessionID string) (*domain.Wishlist, error) {
	data, err := r.cache.Get(ctx, wishlistKeyPrefix+sessionID)
	if err != nil {
		if errors.Is(err, cache.ErrKeyNotFound) {
			return domain.NewWishlist(), nil
		}
		return nil, fmt.Errorf("failed to load wishlist: %w", err)
	}

	var w domain.Wishlist
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wishlist: %w", err)
	}

	return &w, nil
}

// Save persists the session's wishlist, refreshing its TTL.
func (r *RedisWishlistRepository) Save(ctx context.Context, sessionID string, w *domain.Wishlist) error {
	data, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("failed to marshal wishlist: %w", err)
	}

	if err := r.cache.Set(ctx, wishlistKeyPrefix+sessionID, data, r.ttl); err != nil {
		return fmt.Errorf("failed to save wishlist: %w", err)
	}

	return nil
}

// Delete removes the session's wishlist.
func (r *RedisWishlistRepository) Delete(ctx context.Context, sessionID string) error {
	if err := r.cache.Delete(ctx, wishlistKeyPrefix+sessionID); err != nil {
		return fmt.Errorf("failed to delete wishlist: %w", err)
	}
	return nil
}
