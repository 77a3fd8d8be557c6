package domain

// Product represents a single catalog entry.
// The catalog is static and read-only: products are never mutated after load.
type Product struct {
	// ID is the unique identifier for the product.
	ID int `json:"id"`
	// Name is the display name of the product.
	Name string `json:"name"`
	// Price is the current unit price.
	Price float64 `json:"price"`
	// OriginalPrice is the pre-discount price, if the product is discounted.
	OriginalPrice float64 `json:"original_price,omitempty"`
	// Image is the primary product image URL.
	Image string `json:"image"`
	// Images holds all product image URLs.
	Images []string `json:"images"`
	// Category is the category tag (e.g., pendant, floor, table).
	Category string `json:"category"`
	// Rating is the average review score.
	Rating float64 `json:"rating"`
	// Reviews is the number of reviews behind the rating.
	Reviews int `json:"reviews"`
	// Description is the marketing copy for the product.
	Description string `json:"description"`
	// Specs maps spec names to values (material, height, bulb type, ...).
	Specs map[string]string `json:"specs"`
	// IsNew marks recently added products.
	IsNew bool `json:"is_new,omitempty"`
	// IsBestseller marks top-selling products.
	IsBestseller bool `json:"is_bestseller,omitempty"`
	// IsPremium marks premium-tier products.
	IsPremium bool `json:"is_premium,omitempty"`
	// IsSmart marks app-controllable products.
	IsSmart bool `json:"is_smart,omitempty"`
	// Discount is the discount percentage, if any.
	Discount int `json:"discount,omitempty"`
	// FreeShipping marks products that always ship free.
	FreeShipping bool `json:"free_shipping,omitempty"`
	// Stock is the number of units available.
	Stock int `json:"stock"`
}

// Category represents a browsable product category.
type Category struct {
	// ID is the category tag matched against Product.Category.
	ID string `json:"id"`
	// Name is the display name.
	Name string `json:"name"`
	// Icon is the display glyph for the category.
	Icon string `json:"icon"`
}
