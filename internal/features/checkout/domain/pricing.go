package domain

import "math"

// ShippingPolicy holds the fee schedule for orders below the free threshold.
type ShippingPolicy struct {
	// FreeThreshold is the subtotal at which shipping becomes free.
	FreeThreshold float64
	// BaseFee is the flat fee charged below the threshold.
	BaseFee float64
	// PerItemFee is added per cart item below the threshold.
	PerItemFee float64
	// MaxFee caps the computed shipping cost.
	MaxFee float64
}

// DefaultShippingPolicy mirrors the storefront defaults: free over $500,
// otherwise $15 base plus $2 per item, capped at $50.
func DefaultShippingPolicy() ShippingPolicy {
	return ShippingPolicy{
		FreeThreshold: 500,
		BaseFee:       15,
		PerItemFee:    2,
		MaxFee:        50,
	}
}

// Calculate returns the shipping cost for the given subtotal and item count.
func (p ShippingPolicy) Calculate(subtotal float64, itemCount int) float64 {
	if subtotal >= p.FreeThreshold {
		return 0
	}
	return math.Min(p.BaseFee+p.PerItemFee*float64(itemCount), p.MaxFee)
}

// CalculateTax applies a flat rate to the subtotal, rounded to cents.
func CalculateTax(subtotal, rate float64) float64 {
	return math.Round(subtotal*rate*100) / 100
}
