package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Cart struct {
	BaseModel
	UserID   *uuid.UUID    `gorm:"type:uuid;index" json:"user_id"`
	Products []CartProduct `json:"products,omitempty"`
}

type CartProduct struct {
	BaseModel
	CartID         uuid.UUID     `gorm:"type:uuid;index" json:"cart_id"`
	ProductStockID uuid.UUID     `gorm:"type:uuid;index" json:"product_stock_id"`
	ProductStock   *ProductStock `json:"product_stock,omitempty"`
	Quantity       int           `json:"quantity"`
}

type Order struct {
	BaseModel
	UserID      uuid.UUID       `gorm:"type:uuid;index" json:"user_id"`
	User        *User           `json:"user,omitempty"`
	Status      string          `json:"status"`
	PlacedAt    time.Time       `json:"placed_at"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(12,2)" json:"total_amount"`
	Details     []OrderDetail   `json:"details,omitempty"`
}

type OrderDetail struct {
	BaseModel
	OrderID        uuid.UUID       `gorm:"type:uuid;index" json:"order_id"`
	ProductStockID uuid.UUID       `gorm:"type:uuid;index" json:"product_stock_id"`
	ProductStock   *ProductStock   `json:"product_stock,omitempty"`
	Quantity       int             `json:"quantity"`
	UnitPrice      decimal.Decimal `gorm:"type:decimal(12,2)" json:"unit_price"`
}
