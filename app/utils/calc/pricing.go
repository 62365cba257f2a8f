package calc

import "github.com/shopspring/decimal"

const (
	minDiscountPercent = 10
	maxDiscountPercent = 30
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)

	stepSmall  = decimal.NewFromInt(10)
	stepMedium = decimal.NewFromInt(20)
	stepLarge  = decimal.NewFromInt(50)

	stepSmallLimit  = decimal.NewFromInt(200)
	stepMediumLimit = decimal.NewFromInt(500)
)

// PromoPricing fabricates a display-only "original price" and discount
// percentage for a product. It is pure: the same (productID, price) pair
// always yields the same output, and no persisted discount state is read
// or written anywhere.
func PromoPricing(productID string, price decimal.Decimal) (originalPrice decimal.Decimal, discountPercent int) {
	target := minDiscountPercent + promoHash(productID)%21

	multiplier := decimal.NewFromInt(int64(100 - target)).Div(hundred)
	targetOriginal := price.Div(multiplier)

	// The rounding step is chosen from the real price, not the inflated target.
	step := friendlyStep(price)
	originalPrice = targetOriginal.Div(step).Ceil().Mul(step)
	if originalPrice.IsZero() {
		return originalPrice, target
	}

	// Re-derive the displayed percentage from the rounded original so the
	// two numbers agree, clamped back into the promo band.
	displayed := one.Sub(price.Div(originalPrice)).Mul(hundred).Round(0).IntPart()
	if displayed < minDiscountPercent {
		displayed = minDiscountPercent
	}
	if displayed > maxDiscountPercent {
		displayed = maxDiscountPercent
	}
	return originalPrice, int(displayed)
}

// promoHash sums the character code of every rune in the product id.
func promoHash(productID string) int {
	sum := 0
	for _, r := range productID {
		sum += int(r)
	}
	return sum
}

func friendlyStep(price decimal.Decimal) decimal.Decimal {
	switch {
	case price.LessThan(stepSmallLimit):
		return stepSmall
	case price.LessThan(stepMediumLimit):
		return stepMedium
	default:
		return stepLarge
	}
}
