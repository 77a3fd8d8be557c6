package domain

import (
	"strconv"
	"strings"
	"time"
)

// stripNonDigits drops everything but 0-9 from a card-ish input string.
func stripNonDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidateCardNumber checks the card number with the Luhn checksum after
// stripping non-digits. Numbers outside 13-19 digits are rejected outright.
func ValidateCardNumber(number string) bool {
	clean := stripNonDigits(number)

	if len(clean) < 13 || len(clean) > 19 {
		return false
	}

	sum := 0
	double := false
	for i := len(clean) - 1; i >= 0; i-- {
		digit := int(clean[i] - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		double = !double
	}

	return sum%10 == 0
}

// ValidateExpiry checks that the month is 1-12 and that (year, month) is not
// strictly before now's (year, month). The current month is still valid.
func ValidateExpiry(month, year string, now time.Time) bool {
	expMonth, err := strconv.Atoi(strings.TrimSpace(month))
	if err != nil {
		return false
	}
	expYear, err := strconv.Atoi(strings.TrimSpace(year))
	if err != nil {
		return false
	}

	if expMonth < 1 || expMonth > 12 {
		return false
	}

	if expYear < now.Year() {
		return false
	}
	if expYear == now.Year() && expMonth < int(now.Month()) {
		return false
	}

	return true
}

// ValidateCVV checks the security code length: American Express uses 4
// digits, every other brand uses 3.
func ValidateCVV(cvv string, brand CardBrand) bool {
	clean := stripNonDigits(cvv)

	if brand == BrandAmex {
		return len(clean) == 4
	}
	return len(clean) == 3
}

// DetectBrand classifies a card number by its prefix.
func DetectBrand(number string) CardBrand {
	clean := stripNonDigits(number)
	if clean == "" {
		return BrandUnknown
	}

	switch {
	case clean[0] == '4':
		return BrandVisa
	case len(clean) >= 2 && clean[0] == '5' && clean[1] >= '1' && clean[1] <= '5':
		return BrandMastercard
	case len(clean) >= 2 && clean[0] == '2' && clean[1] >= '2' && clean[1] <= '7':
		return BrandMastercard
	case len(clean) >= 2 && clean[0] == '3' && (clean[1] == '4' || clean[1] == '7'):
		return BrandAmex
	case clean[0] == '6':
		return BrandDiscover
	default:
		return BrandUnknown
	}
}

// FormatCardNumber groups digits for display: amex as 4-6-5, everything
// else in groups of four.
func FormatCardNumber(number string) string {
	clean := stripNonDigits(number)

	if DetectBrand(clean) == BrandAmex && len(clean) == 15 {
		return clean[:4] + " " + clean[4:10] + " " + clean[10:]
	}

	var b strings.Builder
	for i, r := range clean {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// MaskCardNumber hides all but the last four digits.
func MaskCardNumber(number string) string {
	clean := stripNonDigits(number)
	if len(clean) <= 4 {
		return clean
	}

	masked := strings.Repeat("*", len(clean)-4) + clean[len(clean)-4:]

	var b strings.Builder
	for i, r := range masked {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
