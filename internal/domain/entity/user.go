package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a cashier or back-office admin.
type User struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	FirstName  string         `gorm:"size:255;not null" json:"first_name"`
	LastName   string         `gorm:"size:255;not null" json:"last_name"`
	Email      string         `gorm:"size:255;unique;not null" json:"email"`
	Password   string         `gorm:"size:255" json:"-"`
	Provider   string         `gorm:"size:50;default:'local'" json:"provider"`
	ProviderID *string        `gorm:"size:255" json:"-"`
	Photo      *string        `gorm:"size:255" json:"photo,omitempty"`
	StoreID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"store_id"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Store Store  `gorm:"foreignKey:StoreID" json:"-"`
	Roles []Role `gorm:"many2many:user_roles;" json:"roles,omitempty"`
}

// BeforeCreate generates a UUID before creating a new user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}

// DisplayName is the cashier name recorded on invoices and receipts.
func (u *User) DisplayName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// HasRole checks if the user has a specific role
func (u *User) HasRole(roleName string) bool {
	for _, role := range u.Roles {
		if role.Name == roleName {
			return true
		}
	}
	return false
}

// RoleNames returns the names of all roles assigned to the user.
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, role := range u.Roles {
		names = append(names, role.Name)
	}
	return names
}

// Role is a coarse access level: "admin" manages the store and sees the full
// dashboard, "cashier" runs the point of sale.
type Role struct {
	ID        uint      `gorm:"primary_key" json:"id"`
	Name      string    `gorm:"size:255;unique;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for the Role model
func (Role) TableName() string {
	return "roles"
}
