package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShippingPolicy_Calculate(t *testing.T) {
	p := DefaultShippingPolicy()

	t.Run("FreeAtThreshold", func(t *testing.T) {
		assert.Equal(t, 0.0, p.Calculate(500, 3))
	})

	t.Run("FreeAboveThreshold", func(t *testing.T) {
		assert.Equal(t, 0.0, p.Calculate(899, 1))
	})

	t.Run("BasePlusPerItem", func(t *testing.T) {
		// 15 + 3*2 = 21, under the cap.
		assert.Equal(t, 21.0, p.Calculate(100, 3))
	})

	t.Run("CappedAtMax", func(t *testing.T) {
		// 15 + 20*2 = 55 would exceed the $50 cap.
		assert.Equal(t, 50.0, p.Calculate(499, 20))
	})

	t.Run("SingleItem", func(t *testing.T) {
		assert.Equal(t, 17.0, p.Calculate(100, 1))
	})
}

func TestCalculateTax(t *testing.T) {
	assert.Equal(t, 8.0, CalculateTax(100, 0.08))
	assert.Equal(t, 0.0, CalculateTax(0, 0.08))

	// Rounded to cents, not truncated.
	assert.Equal(t, 7.99, CalculateTax(99.9, 0.08))
	assert.Equal(t, 0.08, CalculateTax(0.99, 0.08))
}
