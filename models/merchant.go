package models

import (
	"time"
)

// Merchant represents an API consumer of the gateway. Merchants are seeded
// once and never mutated through the API.
type Merchant struct {
	ID         string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string    `gorm:"not null" json:"name"`
	Email      string    `gorm:"uniqueIndex;not null" json:"email"`
	APIKey     string    `gorm:"column:api_key;size:64;uniqueIndex;not null" json:"api_key"`
	APISecret  string    `gorm:"column:api_secret;size:64;not null" json:"-"`
	WebhookURL string    `gorm:"column:webhook_url" json:"webhook_url,omitempty"`
	IsActive   bool      `gorm:"default:true" json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Orders   []Order   `json:"-" gorm:"foreignKey:MerchantID"`
	Payments []Payment `json:"-" gorm:"foreignKey:MerchantID"`
}
