package enum

// PaymentMethod is how an invoice was (partially) paid.
type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "cash"
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodMpesa  PaymentMethod = "mpesa"
	PaymentMethodCheque PaymentMethod = "cheque"
)

// Valid reports whether the payment method is a known value.
func (p PaymentMethod) Valid() bool {
	switch p {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodMpesa, PaymentMethodCheque:
		return true
	}
	return false
}
