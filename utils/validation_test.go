package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateVPA(t *testing.T) {
	cases := []struct {
		vpa   string
		valid bool
	}{
		{"user@bank", true},
		{"user.name-1@bank", true},
		{"user_name@okhdfc", true},
		{"9876543210@upi", true},
		{"user@@bank", false},
		{"nodomain", false},
		{"@bank", false},
		{"user@", false},
		{"user@bank.co", false},
		{"", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.valid, ValidateVPA(tc.vpa), "vpa %q", tc.vpa)
	}
}

func TestValidateCardLuhn(t *testing.T) {
	valid := []string{
		"4532015112830366",
		"4111111111111111",
		"5500000000000004",
		"340000000000009",
		"4532 0151 1283 0366",
		"4532-0151-1283-0366",
	}
	for _, number := range valid {
		assert.True(t, ValidateCardLuhn(number), "number %q", number)
	}

	invalid := []string{
		"4532015112830367", // single digit mutated
		"4111111111111112",
		"411111111111",        // 12 digits, too short
		"41111111111111111111", // 20 digits, too long
		"4111x11111111111",
		"",
	}
	for _, number := range invalid {
		assert.False(t, ValidateCardLuhn(number), "number %q", number)
	}
}

func TestDetectCardNetwork(t *testing.T) {
	cases := []struct {
		number  string
		network string
	}{
		{"4111111111111111", "visa"},
		{"5500000000000004", "mastercard"},
		{"340000000000009", "amex"},
		{"370000000000002", "amex"},
		{"6521111111111117", "rupay"},
		{"6011111111111117", "rupay"},
		{"8111111111111111", "rupay"},
		{"1234567890123456", "unknown"},
		{"5600000000000000", "unknown"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.network, DetectCardNetwork(tc.number), "number %q", tc.number)
	}

	// Detection works on digits alone, independent of Luhn validity
	assert.Equal(t, "visa", DetectCardNetwork("4111-1111-1111-1112"))
}

func TestCardLast4(t *testing.T) {
	assert.Equal(t, "0366", CardLast4("4532 0151 1283 0366"))
	assert.Equal(t, "1111", CardLast4("4111111111111111"))
}

func TestValidateCardExpiry(t *testing.T) {
	now := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)

	// Current month is valid, one month earlier is not
	assert.True(t, validateCardExpiryAt(6, 2026, now))
	assert.False(t, validateCardExpiryAt(5, 2026, now))

	// Any future year is valid regardless of month
	assert.True(t, validateCardExpiryAt(1, 2027, now))
	assert.True(t, validateCardExpiryAt(12, 2099, now))

	// Past year is invalid
	assert.False(t, validateCardExpiryAt(12, 2025, now))

	// Two-digit years are normalized to 20xx
	assert.True(t, validateCardExpiryAt(6, 26, now))
	assert.False(t, validateCardExpiryAt(5, 26, now))
	assert.True(t, validateCardExpiryAt(1, 27, now))

	// Month bounds
	assert.False(t, validateCardExpiryAt(0, 2030, now))
	assert.False(t, validateCardExpiryAt(13, 2030, now))
}
