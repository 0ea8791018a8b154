package utils

// Application constants
const (
	// Application name
	AppName = "PaySphere"

	// API version
	APIVersion = "v1"

	// Default port
	DefaultPort = "8000"

	// Default currency for orders and payments
	DefaultCurrency = "INR"

	// Header carrying the merchant API key
	HeaderAPIKey = "X-Api-Key"

	// Header carrying the merchant API secret
	HeaderAPISecret = "X-Api-Secret"

	// Error code recorded on declined payments
	PaymentFailedCode = "PAYMENT_FAILED"

	// Description recorded on declined payments
	PaymentFailedDescription = "Transaction declined by bank"
)
