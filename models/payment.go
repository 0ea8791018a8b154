package models

import (
	"time"
)

// Payment status constants. A payment enters "processing" atomically with
// creation and moves exactly once to one of the terminal states.
const (
	PaymentStatusProcessing = "processing"
	PaymentStatusSuccess    = "success"
	PaymentStatusFailed     = "failed"
)

// Payment method constants
const (
	PaymentMethodUPI  = "upi"
	PaymentMethodCard = "card"
)

// Card network constants
const (
	CardNetworkVisa       = "visa"
	CardNetworkMastercard = "mastercard"
	CardNetworkAmex       = "amex"
	CardNetworkRupay      = "rupay"
	CardNetworkUnknown    = "unknown"
)

type Payment struct {
	ID         string   `gorm:"size:64;primaryKey" json:"id"`
	OrderID    string   `gorm:"size:64;index;not null" json:"order_id"`
	Order      Order    `json:"-" gorm:"foreignKey:OrderID"`
	MerchantID string   `gorm:"type:uuid;index;not null" json:"merchant_id"`
	Merchant   Merchant `json:"-" gorm:"foreignKey:MerchantID"`
	// Amount and currency are copied from the order at creation time and
	// never settable by the caller.
	Amount   int64  `gorm:"not null" json:"amount"`
	Currency string `gorm:"size:3;default:INR" json:"currency"`
	Method   string `gorm:"size:20;not null" json:"method"`
	Status   string `gorm:"size:20;index;default:processing" json:"status"`
	// Set only for method "upi".
	VPA string `gorm:"column:vpa" json:"vpa,omitempty"`
	// Set only for method "card". The raw card number and CVV are never
	// persisted.
	CardNetwork      string    `gorm:"size:20" json:"card_network,omitempty"`
	CardLast4        string    `gorm:"size:4" json:"card_last4,omitempty"`
	ErrorCode        string    `gorm:"size:50" json:"error_code,omitempty"`
	ErrorDescription string    `json:"error_description,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
