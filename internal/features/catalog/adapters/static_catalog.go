package adapters

import "lightspace/internal/features/catalog/domain"

// StaticCatalog implements ports.CatalogProvider from an in-memory product list.
// This is the only catalog source: the shop has no product backend.
type StaticCatalog struct {
	products   []domain.Product
	categories []domain.Category
	byID       map[int]int
}

// NewStaticCatalog creates a catalog pre-loaded with the LightSpace seed data.
func NewStaticCatalog() *StaticCatalog {
	c := &StaticCatalog{
		products:   seedProducts(),
		categories: seedCategories(),
	}

	c.byID = make(map[int]int, len(c.products))
	for i, p := range c.products {
		c.byID[p.ID] = i
	}

	return c
}

// ListProducts returns all products in catalog order.
func (c *StaticCatalog) ListProducts() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// GetProduct returns the product with the given ID, or nil if absent.
func (c *StaticCatalog) GetProduct(id int) *domain.Product {
	i, ok := c.byID[id]
	if !ok {
		return nil
	}

	p := c.products[i]
	return &p
}

// ListCategories returns all browsable categories.
func (c *StaticCatalog) ListCategories() []domain.Category {
	out := make([]domain.Category, len(c.categories))
	copy(out, c.categories)
	return out
}

func seedCategories() []domain.Category {
	return []domain.Category{
		{ID: "all", Name: "All", Icon: "💡"},
		{ID: "pendant", Name: "Pendant", Icon: "🔆"},
		{ID: "floor", Name: "Floor", Icon: "🏠"},
		{ID: "table", Name: "Table", Icon: "💻"},
		{ID: "wall", Name: "Wall", Icon: "🏛️"},
		{ID: "chandelier", Name: "Chandelier", Icon: "✨"},
		{ID: "led", Name: "LED", Icon: "🌈"},
	}
}

func seedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:            1,
			Name:          "Nordic Pendant Light",
			Price:         299,
			OriginalPrice: 349,
			Image:         "https://images.unsplash.com/photo-1721146378270-1b93839f7ae7?w=1080",
			Images: []string{
				"https://images.unsplash.com/photo-1721146378270-1b93839f7ae7?w=1080",
				"https://images.unsplash.com/photo-1560448204-603b3fc33ddc?w=1080",
			},
			Category:    "pendant",
			Rating:      4.8,
			Reviews:     124,
			Description: "Minimalist pendant light with natural wood finish. Perfect for modern dining rooms and kitchen islands.",
			Specs: map[string]string{
				"material": "Oak Wood",
				"height":   "30cm",
				"width":    "25cm",
				"bulb":     "E27 LED",
			},
			IsNew:        true,
			Discount:     15,
			FreeShipping: true,
			Stock:        12,
		},
		{
			ID:    2,
			Name:  "Modern Floor Lamp",
			Price: 399,
			Image: "https://images.unsplash.com/photo-1560448204-603b3fc33ddc?w=1080",
			Images: []string{
				"https://images.unsplash.com/photo-1560448204-603b3fc33ddc?w=1080",
			},
			Category:    "floor",
			Rating:      4.6,
			Reviews:     89,
			Description: "Sleek floor lamp perfect for reading corners and ambient lighting",
			Specs: map[string]string{
				"material": "Metal",
				"height":   "150cm",
				"base":     "30cm",
				"bulb":     "E27 LED",
			},
			IsBestseller: true,
			FreeShipping: true,
			Stock:        8,
		},
		{
			ID:    3,
			Name:  "Crystal Chandelier",
			Price: 899,
			Image: "https://images.unsplash.com/photo-1745816698779-4b43418cf432?w=1080",
			Images: []string{
				"https://images.unsplash.com/photo-1745816698779-4b43418cf432?w=1080",
			},
			Category:    "chandelier",
			Rating:      4.9,
			Reviews:     67,
			Description: "Elegant crystal chandelier for dining rooms",
			Specs: map[string]string{
				"material": "Crystal & Brass",
				"diameter": "80cm",
				"height":   "100cm",
				"bulbs":    "8x E14 LED",
			},
			IsPremium: true,
			Stock:     3,
		},
		{
			ID:            4,
			Name:          "Industrial Table Lamp",
			Price:         199,
			OriginalPrice: 249,
			Image:         "https://images.unsplash.com/photo-1648083411102-bcac221d3bc2?w=1080",
			Images: []string{
				"https://images.unsplash.com/photo-1648083411102-bcac221d3bc2?w=1080",
			},
			Category:    "table",
			Rating:      4.5,
			Reviews:     156,
			Description: "Vintage industrial design table lamp",
			Specs: map[string]string{
				"material": "Iron",
				"height":   "45cm",
				"base":     "15cm",
				"bulb":     "E27 Edison",
			},
			Discount:     20,
			FreeShipping: true,
			Stock:        15,
		},
		{
			ID:    5,
			Name:  "Smart LED Strip",
			Price: 99,
			Image: "https://images.unsplash.com/photo-1528922087877-3f44f53a8f7d?w=1080",
			Images: []string{
				"https://images.unsplash.com/photo-1528922087877-3f44f53a8f7d?w=1080",
			},
			Category:    "led",
			Rating:      4.7,
			Reviews:     203,
			Description: "RGB smart LED strip with app control",
			Specs: map[string]string{
				"length":  "5m",
				"width":   "10mm",
				"voltage": "12V",
				"colors":  "16M RGB",
			},
			IsSmart:      true,
			FreeShipping: true,
			Stock:        25,
		},
		{
			ID:    6,
			Name:  "Rustic Wall Sconce",
			Price: 149,
			Image: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=1080",
			Images: []string{
				"https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=1080",
			},
			Category:    "wall",
			Rating:      4.4,
			Reviews:     78,
			Description: "Rustic wood and metal wall mounted light",
			Specs: map[string]string{
				"material": "Wood & Metal",
				"width":    "20cm",
				"depth":    "15cm",
				"bulb":     "E14 LED",
			},
			Stock: 6,
		},
	}
}
