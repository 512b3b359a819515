package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store represents a retail outlet. Every cashier is assigned to exactly one
// store and every product and invoice belongs to one.
type Store struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Slug      string         `gorm:"size:255;unique;not null" json:"slug"`
	Address   *string        `gorm:"type:text" json:"address,omitempty"`
	Phone     *string        `gorm:"size:50" json:"phone,omitempty"`
	Email     *string        `gorm:"size:255" json:"email,omitempty"`
	TaxID     *string        `gorm:"size:50;column:tax_id" json:"tax_id,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Users    []User    `gorm:"foreignKey:StoreID" json:"-"`
	Products []Product `gorm:"foreignKey:StoreID" json:"-"`
	Invoices []Invoice `gorm:"foreignKey:StoreID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new store
func (s *Store) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Store model
func (Store) TableName() string {
	return "stores"
}
