package cart

import "github.com/shopspring/decimal"

// ShippingFee is the flat delivery fee charged on any non-empty cart.
var ShippingFee = decimal.NewFromInt(30)

// Line is one cart entry. Lines are keyed by (ProductID, Size): the same
// product in two sizes makes two lines.
type Line struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Team      string          `json:"team"`
	Image     string          `json:"image"`
	Size      string          `json:"size"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int             `json:"quantity"`
}

// Cart is a value type; every reducer returns a new Cart and leaves the
// receiver untouched, so mutations stay independently testable.
type Cart struct {
	Lines []Line `json:"lines"`
}

func (c Cart) clone() Cart {
	lines := make([]Line, len(c.Lines))
	copy(lines, c.Lines)
	return Cart{Lines: lines}
}

// Add merges the line into an existing one with the same (ProductID, Size)
// key, incrementing its quantity, or appends a new line. A non-positive
// quantity on the added line defaults to 1.
func (c Cart) Add(line Line) Cart {
	if line.Quantity <= 0 {
		line.Quantity = 1
	}
	next := c.clone()
	for i := range next.Lines {
		if next.Lines[i].ProductID == line.ProductID && next.Lines[i].Size == line.Size {
			next.Lines[i].Quantity += line.Quantity
			return next
		}
	}
	next.Lines = append(next.Lines, line)
	return next
}

// UpdateQuantity sets the quantity of the matching line; a quantity of
// zero or less removes the line. No upper bound is enforced here.
func (c Cart) UpdateQuantity(productID, size string, quantity int) Cart {
	if quantity <= 0 {
		return c.Remove(productID, size)
	}
	next := c.clone()
	for i := range next.Lines {
		if next.Lines[i].ProductID == productID && next.Lines[i].Size == size {
			next.Lines[i].Quantity = quantity
		}
	}
	return next
}

// Remove drops the matching line; no-op when absent.
func (c Cart) Remove(productID, size string) Cart {
	lines := make([]Line, 0, len(c.Lines))
	for _, l := range c.Lines {
		if l.ProductID == productID && l.Size == size {
			continue
		}
		lines = append(lines, l)
	}
	return Cart{Lines: lines}
}

func (c Cart) IsEmpty() bool { return len(c.Lines) == 0 }

func (c Cart) TotalItems() int {
	total := 0
	for _, l := range c.Lines {
		total += l.Quantity
	}
	return total
}

func (c Cart) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, l := range c.Lines {
		subtotal = subtotal.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return subtotal
}

// Shipping is the flat fee, charged only when the cart holds something.
func (c Cart) Shipping() decimal.Decimal {
	if c.IsEmpty() {
		return decimal.Zero
	}
	return ShippingFee
}

func (c Cart) Total() decimal.Decimal {
	return c.Subtotal().Add(c.Shipping())
}
