package ports

import (
	"context"

	"lightspace/internal/features/checkout/domain"
)

// PaymentGateway is the charge capability behind the checkout state machine.
// The shipped adapter simulates a processor; a real client can be swapped in
// without touching the state machine.
// This is a Secondary Port (Driven Port).
type PaymentGateway interface {
	// Charge attempts to collect the given amount. A decline comes back as
	// a normal ChargeResult; an error means the attempt itself failed
	// (transport, cancellation) and nothing can be said about the charge.
	Charge(ctx context.Context, req domain.ChargeRequest) (*domain.ChargeResult, error)
}

// TransactionIDGenerator mints identifiers for successful charges.
// Injectable so tests can pin the output.
type TransactionIDGenerator interface {
	NewTransactionID() string
}

// PaymentMethodProvider supplies the static payment methods and the
// shopper's cards on file.
type PaymentMethodProvider interface {
	// Methods returns the available payment methods.
	Methods() []domain.PaymentMethod

	// GetMethod returns the method with the given ID, or nil if absent.
	GetMethod(id string) *domain.PaymentMethod

	// SavedCards returns the shopper's cards on file.
	SavedCards() []domain.SavedCard

	// GetSavedCard returns the card with the given ID, or nil if absent.
	GetSavedCard(id string) *domain.SavedCard
}

// CheckoutService is the primary port driving a purchase from cart snapshot
// to a terminal success or failure outcome.
type CheckoutService interface {
	// InitializeCheckout snapshots the session's cart and computes totals.
	// A nil address substitutes the default placeholder.
	InitializeCheckout(ctx context.Context, sessionID string, addr *domain.Address) (*domain.CheckoutSession, error)

	// Snapshot returns the session's checkout and payment state for rendering.
	Snapshot(sessionID string) (*domain.CheckoutSession, *domain.PaymentState, error)

	// GoToPayment moves summary -> payment, clearing any error.
	GoToPayment(sessionID string) (*domain.PaymentState, error)

	// BackToSummary moves payment -> summary, clearing any error.
	BackToSummary(sessionID string) (*domain.PaymentState, error)

	// SelectMethod picks a payment method and resets any card selection.
	SelectMethod(sessionID, methodID string) (*domain.PaymentState, error)

	// SelectSavedCard picks a card on file, dropping any new-card entry.
	SelectSavedCard(sessionID, cardID string) (*domain.PaymentState, error)

	// UpdateNewCard merge-patches the transient new-card entry.
	UpdateNewCard(sessionID string, patch domain.NewCardPatch) (*domain.PaymentState, error)

	// UpdateBillingAddress merge-patches the billing address.
	UpdateBillingAddress(sessionID string, patch domain.AddressPatch) (*domain.PaymentState, error)

	// Validate runs the submission-time checks without side effects.
	Validate(sessionID string) (bool, []string, error)

	// ProcessPayment validates and submits the charge. Every failure is a
	// normal PaymentResult; the error return is reserved for storage faults.
	ProcessPayment(ctx context.Context, sessionID string) (*domain.PaymentResult, error)

	// ResetPayment discards the checkout session and returns to summary.
	ResetPayment(sessionID string) error

	// ClearError nulls the state's error field.
	ClearError(sessionID string) (*domain.PaymentState, error)

	// Methods returns the available payment methods.
	Methods() []domain.PaymentMethod

	// SavedCards returns the shopper's cards on file.
	SavedCards() []domain.SavedCard
}
