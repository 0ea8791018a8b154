package utils

import (
	"regexp"
	"strconv"
	"time"
)

var (
	vpaRegex        = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9]+$`)
	cardDigitsRegex = regexp.MustCompile(`^\d{13,19}$`)
	cardSeparators  = regexp.MustCompile(`[\s-]`)
)

// ValidateVPA checks a UPI virtual payment address against the
// local-part@handle form.
func ValidateVPA(vpa string) bool {
	return vpaRegex.MatchString(vpa)
}

// stripCardNumber removes spaces and hyphens from a card number.
func stripCardNumber(number string) string {
	return cardSeparators.ReplaceAllString(number, "")
}

// ValidateCardLuhn checks a card number against the Luhn checksum. Spaces and
// hyphens are stripped first; anything that is not 13-19 digits is rejected
// outright.
func ValidateCardLuhn(number string) bool {
	cleaned := stripCardNumber(number)
	if !cardDigitsRegex.MatchString(cleaned) {
		return false
	}

	sum := 0
	shouldDouble := false
	// Scan from the rightmost digit; every second digit is doubled.
	for i := len(cleaned) - 1; i >= 0; i-- {
		digit := int(cleaned[i] - '0')
		if shouldDouble {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		shouldDouble = !shouldDouble
	}

	return sum%10 == 0
}

// DetectCardNetwork identifies the card network from the leading digits.
// Detection is independent of Luhn validity.
func DetectCardNetwork(number string) string {
	cleaned := stripCardNumber(number)

	if len(cleaned) > 0 && cleaned[0] == '4' {
		return "visa"
	}
	if len(cleaned) < 2 {
		return "unknown"
	}

	firstTwo, err := strconv.Atoi(cleaned[:2])
	if err != nil {
		return "unknown"
	}

	switch {
	case firstTwo >= 51 && firstTwo <= 55:
		return "mastercard"
	case firstTwo == 34 || firstTwo == 37:
		return "amex"
	case firstTwo == 60 || firstTwo == 65 || (firstTwo >= 81 && firstTwo <= 89):
		return "rupay"
	}

	return "unknown"
}

// CardLast4 returns the last four digits of a card number with separators
// stripped.
func CardLast4(number string) string {
	cleaned := stripCardNumber(number)
	if len(cleaned) <= 4 {
		return cleaned
	}
	return cleaned[len(cleaned)-4:]
}

// ValidateCardExpiry reports whether the month/year pair is the current month
// or later. A two-digit year is treated as 20xx.
func ValidateCardExpiry(month, year int) bool {
	return validateCardExpiryAt(month, year, time.Now())
}

func validateCardExpiryAt(month, year int, now time.Time) bool {
	if month < 1 || month > 12 {
		return false
	}
	if year < 100 {
		year += 2000
	}

	currentYear := now.Year()
	currentMonth := int(now.Month())

	if year < currentYear {
		return false
	}
	if year == currentYear && month < currentMonth {
		return false
	}
	return true
}
