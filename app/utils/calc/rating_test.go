package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAverageRating(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		want    string
	}{
		{"empty", nil, "0"},
		{"single", []int{4}, "4"},
		{"two ratings", []int{5, 4}, "4.5"},
		{"rounds to one decimal", []int{5, 4, 4}, "4.3"},
		{"rounds half up", []int{5, 4, 4, 4}, "4.3"},
		{"all fives", []int{5, 5, 5}, "5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AverageRating(tt.ratings)
			assert.Equal(t, tt.want, got.String())
		})
	}
}
