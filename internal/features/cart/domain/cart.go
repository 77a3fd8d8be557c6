package domain

import (
	catalog "lightspace/internal/features/catalog/domain"
)

// CartLine is one product's aggregated quantity entry in the cart.
// Price and display fields are snapshotted at add time and never re-synced
// with the catalog (price-lock semantics).
type CartLine struct {
	// ProductID identifies the product this line aggregates.
	ProductID int `json:"product_id"`
	// Name is the product name at the time of adding.
	Name string `json:"name"`
	// Price is the unit price locked in at the time of adding.
	Price float64 `json:"price"`
	// Image is the primary product image URL.
	Image string `json:"image"`
	// Category is the product category tag.
	Category string `json:"category"`
	// FreeShipping marks products that always ship free.
	FreeShipping bool `json:"free_shipping,omitempty"`
	// Quantity is the number of units in the cart. Always >= 1; a line
	// whose quantity would reach 0 is removed instead.
	Quantity int `json:"quantity"`
}

// Cart holds the ordered cart lines for one session.
// Insertion order is significant for display. At most one line exists per
// product ID. ItemCount and Total are always derived from the lines, never
// stored, so they cannot drift.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// Add puts one unit of the product into the cart: an existing line is
// incremented, otherwise a new line with quantity 1 is appended.
func (c *Cart) Add(p catalog.Product) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == p.ID {
			c.Lines[i].Quantity++
			return
		}
	}

	c.Lines = append(c.Lines, CartLine{
		ProductID:    p.ID,
		Name:         p.Name,
		Price:        p.Price,
		Image:        p.Image,
		Category:     p.Category,
		FreeShipping: p.FreeShipping,
		Quantity:     1,
	})
}

// Remove takes one unit of the product out of the cart. A line with
// quantity 1 is dropped entirely; an absent product ID is a no-op.
func (c *Cart) Remove(productID int) {
	for i := range c.Lines {
		if c.Lines[i].ProductID != productID {
			continue
		}

		if c.Lines[i].Quantity > 1 {
			c.Lines[i].Quantity--
			return
		}

		c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
		return
	}
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.Lines = nil
}

// ItemCount is the sum of all line quantities.
func (c *Cart) ItemCount() int {
	count := 0
	for _, l := range c.Lines {
		count += l.Quantity
	}
	return count
}

// Total is the sum of price times quantity over all lines.
func (c *Cart) Total() float64 {
	total := 0.0
	for _, l := range c.Lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}

// Snapshot returns a deep copy of the cart lines, decoupled from the live
// cart. Checkout sessions are built from snapshots so later cart mutations
// cannot affect an in-flight purchase.
func (c *Cart) Snapshot() []CartLine {
	out := make([]CartLine, len(c.Lines))
	copy(out, c.Lines)
	return out
}
