package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category groups products for browsing and dashboard breakdowns.
type Category struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Slug      string         `gorm:"size:255;unique;not null" json:"slug"`
	StoreID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"store_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Products []Product `gorm:"foreignKey:CategoryID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Category model
func (Category) TableName() string {
	return "categories"
}

// Product is a stocked item. Monetary amounts are stored in cents and
// quantities are whole units. A product is sellable while Quantity > 0 and it
// has not passed its expiry date.
type Product struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Name        string     `gorm:"size:255;not null" json:"name"`
	Slug        string     `gorm:"size:255;unique;not null" json:"slug"`
	ProductCode string     `gorm:"size:50;unique;not null" json:"product_code"`
	BatchCode   string     `gorm:"size:100" json:"batch_code"`
	Description *string    `gorm:"type:text" json:"description,omitempty"`
	Price       int64      `gorm:"not null" json:"price"`      // selling price in cents
	CostPrice   int64      `gorm:"not null" json:"cost_price"` // purchase price in cents
	VatPercent  int        `gorm:"not null;default:0" json:"vat_percent"`
	Quantity    int        `gorm:"not null;default:0" json:"quantity"`
	AlertQty    int        `gorm:"not null;default:5" json:"alert_qty"`
	Unit        string     `gorm:"size:50;default:'pcs'" json:"unit"`
	ExpireDate  *time.Time `gorm:"type:date" json:"expire_date,omitempty"`
	RestockDate *time.Time `json:"restock_date,omitempty"`
	CategoryID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"category_id"`
	SupplierID  *uuid.UUID `gorm:"type:uuid;index" json:"supplier_id,omitempty"`
	StoreID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"store_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Category Category  `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Supplier *Supplier `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	Store    Store     `gorm:"foreignKey:StoreID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// InStock reports whether the product can be sold today.
func (p *Product) InStock(now time.Time) bool {
	if p.Quantity <= 0 {
		return false
	}
	if p.ExpireDate == nil {
		return true
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return !p.ExpireDate.Before(today)
}

// LowStock reports whether the quantity has fallen to the alert threshold.
func (p *Product) LowStock() bool {
	return p.Quantity <= p.AlertQty
}

// MarshalJSON customizes JSON serialization to display amounts in currency units
func (p Product) MarshalJSON() ([]byte, error) {
	type Alias Product
	return json.Marshal(&struct {
		Alias
		Price     float64 `json:"price"`
		CostPrice float64 `json:"cost_price"`
	}{
		Alias:     (Alias)(p),
		Price:     float64(p.Price) / 100,
		CostPrice: float64(p.CostPrice) / 100,
	})
}
