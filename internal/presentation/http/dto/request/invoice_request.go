package request

// CartItemRequest is one line of the submitted cart
type CartItemRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

// PriceCartRequest asks for live totals without committing
type PriceCartRequest struct {
	Items        []CartItemRequest `json:"items" binding:"required,min=1,dive"`
	Discount     float64           `json:"discount" binding:"gte=0"`
	DiscountType string            `json:"discount_type" binding:"omitempty,oneof=fixed percentage"`
}

// CommitInvoiceRequest is the checkout payload. Amounts are in currency units.
type CommitInvoiceRequest struct {
	Items           []CartItemRequest `json:"items" binding:"required,min=1,dive"`
	CustomerName    string            `json:"customer_name"`
	CustomerPhone   string            `json:"customer_phone"`
	CustomerAddress string            `json:"customer_address"`
	Discount        float64           `json:"discount" binding:"gte=0"`
	DiscountType    string            `json:"discount_type" binding:"omitempty,oneof=fixed percentage"`
	PaidAmount      float64           `json:"paid_amount" binding:"gte=0"`
	PaymentMethod   string            `json:"payment_method" binding:"omitempty,oneof=cash card mpesa cheque"`
	IsCredit        bool              `json:"is_credit"`
}

// SettleCreditRequest records a payment against a credit invoice
type SettleCreditRequest struct {
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	PaymentMethod string  `json:"payment_method" binding:"required,oneof=cash card mpesa cheque"`
}

// EmailReceiptRequest asks for the receipt to be emailed
type EmailReceiptRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ExpenseRequest is the create/update expense payload
type ExpenseRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	SpentAt     *string `json:"spent_at"` // YYYY-MM-DD
}

// StoreRequest is the create/update store payload
type StoreRequest struct {
	Name    string  `json:"name" binding:"required"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email" binding:"omitempty,email"`
	TaxID   *string `json:"tax_id"`
}
