package models

import (
	"github.com/google/uuid"
)

// Well-known role names reconciled at startup.
const (
	RoleAdmin      = "Admin"
	RoleCustomer   = "Customer"
	RoleSuperAdmin = "SuperAdmin"
)

// User represents a registered account, customer or staff.
type User struct {
	BaseModel
	Email        string     `gorm:"uniqueIndex" json:"email"`
	Username     string     `json:"username"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	PasswordHash string     `json:"-"`
	Address      string     `json:"address"`
	City         string     `json:"city"`
	Country      string     `json:"country"`
	PostalCode   string     `json:"postal_code"`
	CartID       *uuid.UUID `gorm:"type:uuid" json:"cart_id"`
	Cart         *Cart      `json:"cart,omitempty"`
	Roles        []Role     `gorm:"many2many:user_roles;" json:"roles,omitempty"`
	Orders       []Order    `json:"orders,omitempty"`
	Reviews      []Review   `json:"reviews,omitempty"`
}

type Role struct {
	BaseModel
	Name  string `gorm:"uniqueIndex" json:"name"`
	Users []User `gorm:"many2many:user_roles;" json:"users,omitempty"`
}
