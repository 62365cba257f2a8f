package calc

import "github.com/shopspring/decimal"

// AverageRating returns the mean of the given review ratings rounded to
// one decimal place, half away from zero. An empty slice yields 0.
func AverageRating(ratings []int) decimal.Decimal {
	if len(ratings) == 0 {
		return decimal.Zero
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return decimal.NewFromInt(int64(sum)).
		Div(decimal.NewFromInt(int64(len(ratings)))).
		Round(1)
}
