package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dukapoint/dukapoint-api/internal/domain/enum"
)

// Supplier is a source of stock for a store.
type Supplier struct {
	ID        uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	Name      string            `gorm:"size:255;not null" json:"name"`
	Slug      string            `gorm:"size:255;unique;not null" json:"slug"`
	Type      enum.SupplierType `gorm:"size:50;not null" json:"type"`
	Phone     string            `gorm:"size:50" json:"phone"`
	Email     *string           `gorm:"size:255" json:"email,omitempty"`
	Address   *string           `gorm:"type:text" json:"address,omitempty"`
	StoreID   uuid.UUID         `gorm:"type:uuid;not null;index" json:"store_id"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
	DeletedAt gorm.DeletedAt    `gorm:"index" json:"-"`

	Products []Product `gorm:"foreignKey:SupplierID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new supplier
func (s *Supplier) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Supplier model
func (Supplier) TableName() string {
	return "suppliers"
}
