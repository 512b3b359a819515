package enum

// DiscountType selects how an invoice discount input is interpreted.
type DiscountType string

const (
	// DiscountTypeFixed treats the discount value as a currency amount.
	DiscountTypeFixed DiscountType = "fixed"
	// DiscountTypePercentage treats the discount value as a percentage of the subtotal.
	DiscountTypePercentage DiscountType = "percentage"
)

// Valid reports whether the discount type is a known value.
func (d DiscountType) Valid() bool {
	return d == DiscountTypeFixed || d == DiscountTypePercentage
}
