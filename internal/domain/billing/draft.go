package billing

import (
	"github.com/dukapoint/dukapoint-api/internal/domain/enum"
	"github.com/dukapoint/dukapoint-api/pkg/apperror"
)

// Draft is the priced summary of a cart plus the cashier's discount input.
// Recalculate derives every amount from the cart in a fixed order: aggregate
// the lines, apply the discount, then round the payable total up to the next
// whole currency unit. All fields are cents.
type Draft struct {
	Cart Cart `json:"cart"`

	Discount     int64             `json:"discount"` // raw input: cents, or percent when type is percentage
	DiscountType enum.DiscountType `json:"discount_type"`

	SubTotal           int64 `json:"sub_total"`
	SubCost            int64 `json:"sub_cost"`
	VatTotal           int64 `json:"vat_total"`
	CalculatedDiscount int64 `json:"calculated_discount"`
	RoundOff           int64 `json:"round_off"`
	GrandTotal         int64 `json:"grand_total"`
}

// NewDraft prices a cart with no discount.
func NewDraft(cart Cart) Draft {
	d := Draft{Cart: cart, DiscountType: enum.DiscountTypeFixed}
	d.Recalculate()
	return d
}

// ceilToUnit rounds cents up to the next whole currency unit.
func ceilToUnit(cents int64) int64 {
	return (cents + 99) / 100 * 100
}

// Recalculate re-derives the totals from the cart. The discount is clamped to
// the subtotal so the payable amount never goes negative, and the rounded
// difference is carried in RoundOff so that
// GrandTotal = SubTotal - CalculatedDiscount + VatTotal + RoundOff holds
// exactly.
func (d *Draft) Recalculate() {
	d.SubTotal = d.Cart.SubTotal()
	d.SubCost = d.Cart.SubCost()
	d.VatTotal = d.Cart.VatTotal()

	switch d.DiscountType {
	case enum.DiscountTypePercentage:
		d.CalculatedDiscount = d.SubTotal * d.Discount / 100
	default:
		d.CalculatedDiscount = d.Discount
	}
	if d.CalculatedDiscount > d.SubTotal {
		d.CalculatedDiscount = d.SubTotal
	}

	payable := d.SubTotal - d.CalculatedDiscount + d.VatTotal
	d.GrandTotal = ceilToUnit(payable)
	d.RoundOff = d.GrandTotal - payable
}

// SetDiscount validates and applies a discount input. Invalid input is
// rejected and the previous discount stays in effect. A fixed discount larger
// than the subtotal is accepted; Recalculate clamps it.
func (d *Draft) SetDiscount(value int64, discountType enum.DiscountType) error {
	if !discountType.Valid() {
		return apperror.NewValidationError("Unknown discount type", nil)
	}
	if value < 0 {
		return apperror.NewValidationError("Discount cannot be negative", nil)
	}
	if discountType == enum.DiscountTypePercentage && value > 100 {
		return apperror.NewValidationError("Percentage discount cannot exceed 100", nil)
	}
	d.Discount = value
	d.DiscountType = discountType
	d.Recalculate()
	return nil
}

// SetCart swaps the cart and reprices.
func (d *Draft) SetCart(cart Cart) {
	d.Cart = cart
	d.Recalculate()
}
