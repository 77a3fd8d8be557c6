package domain

// Wishlist is a session's saved-for-later product set.
// Insertion order is preserved for display; membership is unique.
type Wishlist struct {
	ProductIDs []int `json:"product_ids"`
}

// NewWishlist returns an empty wishlist.
func NewWishlist() *Wishlist {
	return &Wishlist{}
}

// Toggle flips the product's membership. It reports true when the product
// was added, false when it was removed, so callers can pick the right
// notification message.
func (w *Wishlist) Toggle(productID int) bool {
	for i, id := range w.ProductIDs {
		if id == productID {
			w.ProductIDs = append(w.ProductIDs[:i], w.ProductIDs[i+1:]...)
			return false
		}
	}

	w.ProductIDs = append(w.ProductIDs, productID)
	return true
}

// Contains reports whether the product is in the wishlist.
func (w *Wishlist) Contains(productID int) bool {
	for _, id := range w.ProductIDs {
		if id == productID {
			return true
		}
	}
	return false
}

// Len returns the number of saved products.
func (w *Wishlist) Len() int {
	return len(w.ProductIDs)
}
