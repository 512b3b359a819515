package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dukapoint/dukapoint-api/internal/domain/enum"
)

// Invoice is a committed sale. Amounts are stored in cents; GrandTotal is
// always a whole currency unit because the billed total is rounded up at
// checkout and the difference is kept in RoundOff.
//
// Customer details are recorded inline rather than against a customer table.
// Walk-in sales leave them empty; credit sales must carry all three.
type Invoice struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceNo string    `gorm:"size:50;unique;not null" json:"invoice_no"`

	CustomerName    string `gorm:"size:255" json:"customer_name"`
	CustomerPhone   string `gorm:"size:50" json:"customer_phone"`
	CustomerAddress string `gorm:"type:text" json:"customer_address"`

	SubTotal           int64              `gorm:"not null" json:"sub_total"`
	SubCost            int64              `gorm:"not null" json:"-"`
	Discount           int64              `gorm:"not null;default:0" json:"discount"`
	DiscountType       enum.DiscountType  `gorm:"size:20;default:'fixed'" json:"discount_type"`
	CalculatedDiscount int64              `gorm:"not null;default:0" json:"calculated_discount"`
	VatTotal           int64              `gorm:"not null;default:0" json:"vat_total"`
	RoundOff           int64              `gorm:"not null;default:0" json:"round_off"`
	GrandTotal         int64              `gorm:"not null" json:"grand_total"`
	PaidAmount         int64              `gorm:"not null;default:0" json:"paid_amount"`
	DueAmount          int64              `gorm:"not null;default:0" json:"due_amount"`
	PaymentMethod      enum.PaymentMethod `gorm:"size:20" json:"payment_method"`
	IsCredit           bool               `gorm:"not null;default:false" json:"is_credit"`

	CashierName string         `gorm:"size:255" json:"cashier_name"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	StoreID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"store_id"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Items []InvoiceItem `gorm:"foreignKey:InvoiceID" json:"items,omitempty"`
	User  User          `gorm:"foreignKey:UserID" json:"-"`
	Store Store         `gorm:"foreignKey:StoreID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new invoice
func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

// Profit is the margin on this sale after the discount.
func (i *Invoice) Profit() int64 {
	return i.SubTotal - i.SubCost - i.CalculatedDiscount
}

// MarshalJSON customizes JSON serialization to display amounts in currency units
func (i Invoice) MarshalJSON() ([]byte, error) {
	type Alias Invoice
	return json.Marshal(&struct {
		Alias
		SubTotal           float64 `json:"sub_total"`
		Discount           float64 `json:"discount"`
		CalculatedDiscount float64 `json:"calculated_discount"`
		VatTotal           float64 `json:"vat_total"`
		RoundOff           float64 `json:"round_off"`
		GrandTotal         float64 `json:"grand_total"`
		PaidAmount         float64 `json:"paid_amount"`
		DueAmount          float64 `json:"due_amount"`
	}{
		Alias:              (Alias)(i),
		SubTotal:           float64(i.SubTotal) / 100,
		Discount:           float64(i.Discount) / 100,
		CalculatedDiscount: float64(i.CalculatedDiscount) / 100,
		VatTotal:           float64(i.VatTotal) / 100,
		RoundOff:           float64(i.RoundOff) / 100,
		GrandTotal:         float64(i.GrandTotal) / 100,
		PaidAmount:         float64(i.PaidAmount) / 100,
		DueAmount:          float64(i.DueAmount) / 100,
	})
}

// InvoiceItem is one sold line, priced at the moment of sale. Unit price, VAT
// and cost are copied from the product so later price changes do not rewrite
// history.
type InvoiceItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID uuid.UUID `gorm:"type:uuid;not null;index" json:"invoice_id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`

	ProductName string `gorm:"size:255;not null" json:"product_name"`
	BatchCode   string `gorm:"size:100" json:"batch_code"`
	UnitPrice   int64  `gorm:"not null" json:"unit_price"`
	CostPrice   int64  `gorm:"not null" json:"-"`
	VatPercent  int    `gorm:"not null;default:0" json:"vat_percent"`
	VatAmount   int64  `gorm:"not null;default:0" json:"vat_amount"`
	Quantity    int    `gorm:"not null" json:"quantity"`
	Total       int64  `gorm:"not null" json:"total"`

	CreatedAt time.Time `json:"created_at"`

	Product Product `gorm:"foreignKey:ProductID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new invoice item
func (it *InvoiceItem) BeforeCreate(tx *gorm.DB) error {
	if it.ID == uuid.Nil {
		it.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InvoiceItem model
func (InvoiceItem) TableName() string {
	return "invoice_items"
}

// MarshalJSON customizes JSON serialization to display amounts in currency units
func (it InvoiceItem) MarshalJSON() ([]byte, error) {
	type Alias InvoiceItem
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unit_price"`
		VatAmount float64 `json:"vat_amount"`
		Total     float64 `json:"total"`
	}{
		Alias:     (Alias)(it),
		UnitPrice: float64(it.UnitPrice) / 100,
		VatAmount: float64(it.VatAmount) / 100,
		Total:     float64(it.Total) / 100,
	})
}
