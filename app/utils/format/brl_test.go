package format

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBRL(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"349.90", "R$ 349,90"},
		{"1234.56", "R$ 1.234,56"},
		{"0", "R$ 0,00"},
		{"379.9", "R$ 379,90"},
	}

	for _, tt := range tests {
		amount, err := decimal.NewFromString(tt.amount)
		assert.NoError(t, err)
		assert.Equal(t, tt.want, BRL(amount))
	}
}
