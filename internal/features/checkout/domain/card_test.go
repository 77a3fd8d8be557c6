package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateCardNumber(t *testing.T) {
	tests := []struct {
		name   string
		number string
		want   bool
	}{
		{"ValidVisa", "4242424242424242", true},
		{"BadChecksum", "4242424242424241", false},
		{"ValidWithSpaces", "4242 4242 4242 4242", true},
		{"ValidAmex", "378282246310005", true},
		{"TooShort", "424242424242", false},
		{"TooLong", "42424242424242424242", false},
		{"Empty", "", false},
		{"Letters", "abcd", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateCardNumber(tt.number))
		})
	}
}

func TestValidateExpiry(t *testing.T) {
	// Fixed clock so the table is stable.
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		month string
		year  string
		want  bool
	}{
		{"PastMonthSameYear", "05", "2025", false},
		{"CurrentMonth", "06", "2025", true},
		{"FutureYear", "12", "2030", true},
		{"PastYear", "12", "2024", false},
		{"MonthZero", "0", "2030", false},
		{"MonthThirteen", "13", "2030", false},
		{"NonNumericMonth", "ab", "2030", false},
		{"NonNumericYear", "12", "soon", false},
		{"Empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateExpiry(tt.month, tt.year, now))
		})
	}
}

func TestValidateCVV(t *testing.T) {
	tests := []struct {
		name  string
		cvv   string
		brand CardBrand
		want  bool
	}{
		{"AmexFourDigits", "1234", BrandAmex, true},
		{"AmexThreeDigits", "123", BrandAmex, false},
		{"VisaThreeDigits", "123", BrandVisa, true},
		{"VisaFourDigits", "1234", BrandVisa, false},
		{"UnknownThreeDigits", "123", BrandUnknown, true},
		{"Empty", "", BrandVisa, false},
		{"NonDigits", "12a", BrandVisa, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateCVV(tt.cvv, tt.brand))
		})
	}
}

func TestDetectBrand(t *testing.T) {
	tests := []struct {
		number string
		want   CardBrand
	}{
		{"4242424242424242", BrandVisa},
		{"5100000000000000", BrandMastercard},
		{"5500000000000000", BrandMastercard},
		{"2200000000000000", BrandMastercard},
		{"2700000000000000", BrandMastercard},
		{"340000000000000", BrandAmex},
		{"370000000000000", BrandAmex},
		{"6011000000000000", BrandDiscover},
		{"1234", BrandUnknown},
		{"", BrandUnknown},
		{"5600000000000000", BrandUnknown},
		{"2800000000000000", BrandUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DetectBrand(tt.number), "number %q", tt.number)
	}
}

func TestFormatCardNumber(t *testing.T) {
	assert.Equal(t, "4242 4242 4242 4242", FormatCardNumber("4242424242424242"))
	assert.Equal(t, "3782 822463 10005", FormatCardNumber("378282246310005"))
	assert.Equal(t, "4242", FormatCardNumber("4242"))
	assert.Equal(t, "", FormatCardNumber(""))
}

func TestMaskCardNumber(t *testing.T) {
	assert.Equal(t, "**** **** **** 4242", MaskCardNumber("4242424242424242"))
	assert.Equal(t, "4242", MaskCardNumber("4242"))
}
