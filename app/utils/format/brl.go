package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

var brl = accounting.Accounting{Symbol: "R$ ", Precision: 2, Thousand: ".", Decimal: ","}

// BRL formats an amount in Brazilian real, e.g. "R$ 1.234,56".
func BRL(amount decimal.Decimal) string {
	return brl.FormatMoneyDecimal(amount)
}
