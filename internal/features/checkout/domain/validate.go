package domain

import (
	"regexp"
	"strings"
	"time"
)

// Loose email shape: something@something.something.
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// ValidateAddress checks a billing address for completeness. All fields
// except Country are required; the email must look like an address.
// Violations are returned as user-facing strings, all of them collected.
func ValidateAddress(a Address) []string {
	var errs []string

	if strings.TrimSpace(a.Name) == "" {
		errs = append(errs, "Full name is required")
	}
	if strings.TrimSpace(a.Email) == "" || !emailPattern.MatchString(strings.TrimSpace(a.Email)) {
		errs = append(errs, "Valid email address is required")
	}
	if strings.TrimSpace(a.Phone) == "" {
		errs = append(errs, "Phone number is required")
	}
	if strings.TrimSpace(a.Street) == "" {
		errs = append(errs, "Street address is required")
	}
	if strings.TrimSpace(a.City) == "" {
		errs = append(errs, "City is required")
	}
	if strings.TrimSpace(a.State) == "" {
		errs = append(errs, "State is required")
	}
	if strings.TrimSpace(a.ZipCode) == "" {
		errs = append(errs, "ZIP code is required")
	}

	return errs
}

// ValidatePayment checks the payment step's inputs at submission time.
// It is pure: it inspects the state and reports an ordered list of
// user-facing violations without mutating anything.
//
// A missing method short-circuits; every other rule collects all violations
// so the user can fix them in one pass. Non-card methods need no card data.
func ValidatePayment(state PaymentState, now time.Time) (bool, []string) {
	if state.SelectedMethod == nil {
		return false, []string{"Please select a payment method"}
	}

	if state.SelectedMethod.Kind != MethodKindCard {
		return true, nil
	}

	switch state.Selection.Kind {
	case SelectionSavedCard:
		// Card on file: nothing further to check.
		return true, nil

	case SelectionNewCard:
		var errs []string
		card := state.Selection.NewCard

		if !ValidateCardNumber(card.Number) {
			errs = append(errs, "Invalid card number")
		}
		if !ValidateExpiry(card.ExpiryMonth, card.ExpiryYear, now) {
			errs = append(errs, "Invalid or expired card")
		}
		if !ValidateCVV(card.CVV, DetectBrand(card.Number)) {
			errs = append(errs, "Invalid CVV code")
		}
		if strings.TrimSpace(card.HolderName) == "" {
			errs = append(errs, "Cardholder name is required")
		}

		if state.BillingAddress == nil {
			errs = append(errs, "Billing address is required")
		} else {
			errs = append(errs, ValidateAddress(*state.BillingAddress)...)
		}

		return len(errs) == 0, errs

	default:
		return false, []string{"Please select a card or add a new one"}
	}
}
