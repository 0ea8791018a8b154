package models

import (
	"time"
)

// Order status constants
const (
	OrderStatusCreated = "created"
)

// MinOrderAmount is the smallest accepted order amount in the smallest
// currency unit (paise for INR).
const MinOrderAmount = 100

type Order struct {
	ID         string            `gorm:"size:64;primaryKey" json:"id"`
	MerchantID string            `gorm:"type:uuid;index;not null" json:"merchant_id"`
	Merchant   Merchant          `json:"-" gorm:"foreignKey:MerchantID"`
	Amount     int64             `gorm:"not null" json:"amount"`
	Currency   string            `gorm:"size:3;default:INR" json:"currency"`
	Receipt    string            `json:"receipt,omitempty"`
	Notes      map[string]string `gorm:"serializer:json" json:"notes,omitempty"`
	Status     string            `gorm:"size:20;default:created" json:"status"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`

	Payments []Payment `json:"-" gorm:"foreignKey:OrderID"`
}
