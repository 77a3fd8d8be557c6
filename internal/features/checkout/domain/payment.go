package domain

import (
	cart "lightspace/internal/features/cart/domain"
)

// Step is the checkout flow position.
type Step string

const (
	// StepSummary shows the order summary before payment.
	StepSummary Step = "summary"
	// StepPayment collects the payment method and card details.
	StepPayment Step = "payment"
	// StepProcessing is the in-flight gateway call. Not user-interruptible.
	StepProcessing Step = "processing"
	// StepComplete is the terminal success state.
	StepComplete Step = "complete"
)

// MethodKind classifies a payment method.
type MethodKind string

const (
	MethodKindCard         MethodKind = "card"
	MethodKindPayPal       MethodKind = "paypal"
	MethodKindApplePay     MethodKind = "apple-pay"
	MethodKindGooglePay    MethodKind = "google-pay"
	MethodKindBankTransfer MethodKind = "bank-transfer"
)

// PaymentMethod is one way of paying, supplied by a static provider.
type PaymentMethod struct {
	ID        string     `json:"id"`
	Kind      MethodKind `json:"kind"`
	Name      string     `json:"name"`
	Icon      string     `json:"icon"`
	IsDefault bool       `json:"is_default,omitempty"`
}

// CardBrand is a detected or stored card network.
type CardBrand string

const (
	BrandVisa       CardBrand = "visa"
	BrandMastercard CardBrand = "mastercard"
	BrandAmex       CardBrand = "amex"
	BrandDiscover   CardBrand = "discover"
	BrandUnknown    CardBrand = "unknown"
)

// SavedCard is a stored card on file. Read-only mock data.
type SavedCard struct {
	ID          string    `json:"id"`
	Last4       string    `json:"last4"`
	Brand       CardBrand `json:"brand"`
	ExpiryMonth int       `json:"expiry_month"`
	ExpiryYear  int       `json:"expiry_year"`
	HolderName  string    `json:"holder_name"`
	IsDefault   bool      `json:"is_default,omitempty"`
}

// NewCardInput is the transient card entry form. It exists only during the
// payment step and is discarded on completion or abandonment.
type NewCardInput struct {
	Number      string `json:"number"`
	ExpiryMonth string `json:"expiry_month"`
	ExpiryYear  string `json:"expiry_year"`
	CVV         string `json:"cvv"`
	HolderName  string `json:"holder_name"`
}

// Address is a shipping or billing address.
type Address struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
}

// SelectionKind tags the PaymentSelection variant.
type SelectionKind string

const (
	SelectionNone      SelectionKind = "none"
	SelectionSavedCard SelectionKind = "saved_card"
	SelectionNewCard   SelectionKind = "new_card"
)

// PaymentSelection is a tagged variant: a saved card, a new-card entry, or
// nothing. Constructing through the helpers below makes "both populated at
// once" unrepresentable.
type PaymentSelection struct {
	Kind      SelectionKind `json:"kind"`
	SavedCard *SavedCard    `json:"saved_card,omitempty"`
	NewCard   *NewCardInput `json:"new_card,omitempty"`
}

// NoSelection returns the empty payment selection.
func NoSelection() PaymentSelection {
	return PaymentSelection{Kind: SelectionNone}
}

// SelectSaved returns a selection holding the given saved card, dropping any
// new-card entry.
func SelectSaved(card SavedCard) PaymentSelection {
	return PaymentSelection{Kind: SelectionSavedCard, SavedCard: &card}
}

// SelectNew returns a selection holding the given new-card entry, dropping
// any saved card.
func SelectNew(input NewCardInput) PaymentSelection {
	return PaymentSelection{Kind: SelectionNewCard, NewCard: &input}
}

// PaymentState is the mutable step/selection/error state driving the
// checkout UI. The error field overlays the payment step; it is never a
// separate state.
type PaymentState struct {
	Step           Step             `json:"step"`
	SelectedMethod *PaymentMethod   `json:"selected_method,omitempty"`
	Selection      PaymentSelection `json:"selection"`
	BillingAddress *Address         `json:"billing_address,omitempty"`
	IsProcessing   bool             `json:"is_processing"`
	Error          string           `json:"error,omitempty"`
}

// NewPaymentState returns the initial state at the summary step.
func NewPaymentState() PaymentState {
	return PaymentState{
		Step:      StepSummary,
		Selection: NoSelection(),
	}
}

// CheckoutSession is an immutable snapshot of the cart plus computed totals
// and the shipping address, created once per purchase attempt.
type CheckoutSession struct {
	Items           []cart.CartLine `json:"items"`
	Subtotal        float64         `json:"subtotal"`
	Shipping        float64         `json:"shipping"`
	Tax             float64         `json:"tax"`
	Total           float64         `json:"total"`
	ShippingAddress Address         `json:"shipping_address"`
}

// PaymentResult is the outcome of a payment submission. Failures are data,
// not Go errors: the caller shows Error and stays on the payment step.
type PaymentResult struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transaction_id,omitempty"`
	Error         string `json:"error,omitempty"`
}

// ChargeRequest is what the state machine hands to a payment gateway.
type ChargeRequest struct {
	// Amount is the total to charge, in currency units.
	Amount float64 `json:"amount"`
	// MethodKind is the selected payment method's kind.
	MethodKind MethodKind `json:"method_kind"`
	// CardRef is a masked human-readable card reference (never the PAN).
	CardRef string `json:"card_ref,omitempty"`
}

// ChargeResult is a gateway's answer. A decline is a normal result, not an
// error; errors are reserved for transport failures.
type ChargeResult struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transaction_id,omitempty"`
	DeclineReason string `json:"decline_reason,omitempty"`
}

// DefaultShippingAddress is substituted when checkout starts without one.
func DefaultShippingAddress() Address {
	return Address{
		Name:    "John Doe",
		Email:   "john.doe@example.com",
		Phone:   "+1 (555) 123-4567",
		Street:  "123 Main Street, Apt 4B",
		City:    "New York",
		State:   "NY",
		ZipCode: "10001",
		Country: "United States",
	}
}
