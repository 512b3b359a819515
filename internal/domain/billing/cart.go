// Package billing holds the in-memory sale that a cashier builds up before it
// is committed as an invoice. Everything here is pure computation on cent
// amounts; persistence and stock movements live elsewhere.
package billing

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/dukapoint/dukapoint-api/pkg/apperror"
)

// Line is one product in the cart with its pricing captured at the time it was
// added. Available is the stock level seen at that moment and caps how many
// units may be requested.
type Line struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	BatchCode   string    `json:"batch_code"`
	UnitPrice   int64     `json:"unit_price"`  // cents
	CostPrice   int64     `json:"cost_price"`  // cents
	VatPercent  int       `json:"vat_percent"` // whole percent
	Quantity    int       `json:"quantity"`
	Available   int       `json:"available"`
}

// Total is the line amount before VAT.
func (l Line) Total() int64 {
	return l.UnitPrice * int64(l.Quantity)
}

// CostTotal is the line amount at cost.
func (l Line) CostTotal() int64 {
	return l.CostPrice * int64(l.Quantity)
}

// VatAmount is the VAT charged on this line, truncated to the cent.
func (l Line) VatAmount() int64 {
	return l.Total() * int64(l.VatPercent) / 100
}

// Cart is an ordered list of lines. Operations return a new cart and never
// mutate the receiver, so a failed update leaves the caller's cart intact.
type Cart struct {
	Lines []Line `json:"lines"`
}

// NewCart returns an empty cart.
func NewCart() Cart {
	return Cart{}
}

func (c Cart) clone() Cart {
	lines := make([]Line, len(c.Lines))
	copy(lines, c.Lines)
	return Cart{Lines: lines}
}

func (c Cart) indexOf(productID uuid.UUID) int {
	for i, l := range c.Lines {
		if l.ProductID == productID {
			return i
		}
	}
	return -1
}

// AddLine appends a line to the cart. If the product is already in the cart
// the quantities are merged into the existing line. The add is rejected when
// the requested quantity is not positive or the resulting quantity would
// exceed the available stock.
func (c Cart) AddLine(line Line) (Cart, error) {
	if line.Quantity <= 0 {
		return c, apperror.NewValidationError("Quantity must be greater than zero", nil)
	}
	if i := c.indexOf(line.ProductID); i >= 0 {
		merged := c.Lines[i].Quantity + line.Quantity
		if merged > c.Lines[i].Available {
			return c, apperror.NewValidationError(
				fmt.Sprintf("Only %d units of %s available", c.Lines[i].Available, c.Lines[i].ProductName), nil)
		}
		next := c.clone()
		next.Lines[i].Quantity = merged
		return next, nil
	}
	if line.Quantity > line.Available {
		return c, apperror.NewValidationError(
			fmt.Sprintf("Only %d units of %s available", line.Available, line.ProductName), nil)
	}
	next := c.clone()
	next.Lines = append(next.Lines, line)
	return next, nil
}

// UpdateQuantity replaces the quantity of an existing line. Setting it to
// zero removes the line.
func (c Cart) UpdateQuantity(productID uuid.UUID, quantity int) (Cart, error) {
	i := c.indexOf(productID)
	if i < 0 {
		return c, apperror.NewNotFoundError("Product is not in the cart")
	}
	if quantity < 0 {
		return c, apperror.NewValidationError("Quantity cannot be negative", nil)
	}
	if quantity == 0 {
		return c.RemoveLine(productID)
	}
	if quantity > c.Lines[i].Available {
		return c, apperror.NewValidationError(
			fmt.Sprintf("Only %d units of %s available", c.Lines[i].Available, c.Lines[i].ProductName), nil)
	}
	next := c.clone()
	next.Lines[i].Quantity = quantity
	return next, nil
}

// RemoveLine drops a line from the cart.
func (c Cart) RemoveLine(productID uuid.UUID) (Cart, error) {
	i := c.indexOf(productID)
	if i < 0 {
		return c, apperror.NewNotFoundError("Product is not in the cart")
	}
	next := Cart{Lines: make([]Line, 0, len(c.Lines)-1)}
	next.Lines = append(next.Lines, c.Lines[:i]...)
	next.Lines = append(next.Lines, c.Lines[i+1:]...)
	return next, nil
}

// IsEmpty reports whether the cart has no lines.
func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// SubTotal is the sum of line totals before VAT.
func (c Cart) SubTotal() int64 {
	var sum int64
	for _, l := range c.Lines {
		sum += l.Total()
	}
	return sum
}

// SubCost is the sum of line totals at cost.
func (c Cart) SubCost() int64 {
	var sum int64
	for _, l := range c.Lines {
		sum += l.CostTotal()
	}
	return sum
}

// VatTotal is the sum of per-line VAT amounts.
func (c Cart) VatTotal() int64 {
	var sum int64
	for _, l := range c.Lines {
		sum += l.VatAmount()
	}
	return sum
}
