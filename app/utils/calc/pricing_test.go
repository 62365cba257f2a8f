package calc

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromoPricingDeterministic(t *testing.T) {
	price := decimal.NewFromFloat(349.90)

	original1, discount1 := PromoPricing("product-abc", price)
	original2, discount2 := PromoPricing("product-abc", price)

	assert.True(t, original1.Equal(original2))
	assert.Equal(t, discount1, discount2)
}

func TestPromoPricingVariesByProduct(t *testing.T) {
	price := decimal.NewFromFloat(349.90)

	_, discountA := PromoPricing("a", price)
	_, discountB := PromoPricing("zzzz", price)

	// Different ids land on different spots in the promo band.
	assert.NotEqual(t, discountA, discountB)
}

func TestPromoPricingInvariants(t *testing.T) {
	ids := []string{"", "x", "camisa-brasil-home-2024", "9f8a7b6c-1d2e-3f4a-5b6c-7d8e9f0a1b2c"}
	prices := []decimal.Decimal{
		decimal.NewFromFloat(9.99),
		decimal.NewFromFloat(199.99),
		decimal.NewFromFloat(349.90),
		decimal.NewFromFloat(419.90),
		decimal.NewFromFloat(1299.00),
	}

	for _, id := range ids {
		for _, price := range prices {
			original, discount := PromoPricing(id, price)

			assert.True(t, original.GreaterThanOrEqual(price),
				"id=%q price=%s original=%s", id, price, original)
			assert.GreaterOrEqual(t, discount, 10, "id=%q price=%s", id, price)
			assert.LessOrEqual(t, discount, 30, "id=%q price=%s", id, price)
		}
	}
}

func TestPromoPricingStepSelection(t *testing.T) {
	tests := []struct {
		name  string
		price decimal.Decimal
		step  int64
	}{
		{"under 200 rounds to 10", decimal.NewFromFloat(150.00), 10},
		{"under 500 rounds to 20", decimal.NewFromFloat(349.90), 20},
		{"500 and above rounds to 50", decimal.NewFromFloat(750.00), 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original, _ := PromoPricing("some-product", tt.price)
			mod := original.Mod(decimal.NewFromInt(tt.step))
			assert.True(t, mod.IsZero(), "original %s not a multiple of %d", original, tt.step)
		})
	}
}

func TestPromoPricingZeroPrice(t *testing.T) {
	original, discount := PromoPricing("free-item", decimal.Zero)

	require.True(t, original.IsZero())
	assert.GreaterOrEqual(t, discount, 10)
	assert.LessOrEqual(t, discount, 30)
}
