package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Expense is an operating cost recorded against a store, deducted from profit
// on the dashboard.
type Expense struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	Description *string        `gorm:"type:text" json:"description,omitempty"`
	Amount      int64          `gorm:"not null" json:"amount"` // cents
	SpentAt     time.Time      `gorm:"not null;index" json:"spent_at"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	StoreID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"store_id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	User  User  `gorm:"foreignKey:UserID" json:"-"`
	Store Store `gorm:"foreignKey:StoreID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new expense
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Expense model
func (Expense) TableName() string {
	return "expenses"
}

// MarshalJSON customizes JSON serialization to display amounts in currency units
func (e Expense) MarshalJSON() ([]byte, error) {
	type Alias Expense
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  (Alias)(e),
		Amount: float64(e.Amount) / 100,
	})
}
