package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"lightspace/internal/core/logger"
	cartports "lightspace/internal/features/cart/ports"
	"lightspace/internal/features/checkout/domain"
	"lightspace/internal/features/checkout/ports"

	"go.uber.org/zap"
)

var (
	// ErrEmptyCart is returned when checkout starts with nothing to buy.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrNoCheckout is returned by operations on a session that never
	// initialized a checkout (or already reset it).
	ErrNoCheckout = errors.New("no active checkout for session")
	// ErrUnknownMethod is returned when the method ID is not offered.
	ErrUnknownMethod = errors.New("unknown payment method")
	// ErrUnknownCard is returned when the saved-card ID is not on file.
	ErrUnknownCard = errors.New("unknown saved card")
)

// missingDataError is the user-facing message for submitting a payment
// without an initialized checkout.
const missingDataError = "Missing checkout or payment data"

// processingFailedError is the user-facing message when the gateway call
// itself fails (transport error, cancellation) rather than declining.
const processingFailedError = "Payment processing failed. Please try again."

// machine is one session's checkout state. Access is guarded by the
// service mutex; the gateway call happens outside the lock.
type machine struct {
	checkout *domain.CheckoutSession
	state    domain.PaymentState
}

// CheckoutServiceImpl implements ports.CheckoutService: a four-step state
// machine (summary, payment, processing, complete) with an error overlay on
// the payment step. Every user-facing failure is recorded as state data;
// Go errors are reserved for misuse and storage faults.
type CheckoutServiceImpl struct {
	mu       sync.Mutex
	sessions map[string]*machine

	carts    cartports.CartService
	provider ports.PaymentMethodProvider
	gateway  ports.PaymentGateway

	shipping domain.ShippingPolicy
	taxRate  float64

	// now is injectable so expiry validation is testable with a fixed clock.
	now func() time.Time
}

// NewCheckoutService creates a new CheckoutServiceImpl.
func NewCheckoutService(
	carts cartports.CartService,
	provider ports.PaymentMethodProvider,
	gateway ports.PaymentGateway,
	shipping domain.ShippingPolicy,
	taxRate float64,
) *CheckoutServiceImpl {
	return &CheckoutServiceImpl{
		sessions: make(map[string]*machine),
		carts:    carts,
		provider: provider,
		gateway:  gateway,
		shipping: shipping,
		taxRate:  taxRate,
		now:      time.Now,
	}
}

// InitializeCheckout snapshots the session's cart, computes the totals and
// resets the payment state to the summary step. The snapshot is a copy: the
// live cart can keep changing without affecting this checkout.
func (s *CheckoutServiceImpl) InitializeCheckout(ctx context.Context, sessionID string, addr *domain.Address) (*domain.CheckoutSession, error) {
	cart, err := s.carts.GetCart(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load cart for checkout: %w", err)
	}

	if cart.ItemCount() == 0 {
		return nil, ErrEmptyCart
	}

	items := cart.Snapshot()
	subtotal := cart.Total()
	shipping := s.shipping.Calculate(subtotal, cart.ItemCount())
	tax := domain.CalculateTax(subtotal, s.taxRate)

	address := domain.DefaultShippingAddress()
	if addr != nil {
		address = *addr
	}

	checkout := &domain.CheckoutSession{
		Items:           items,
		Subtotal:        subtotal,
		Shipping:        shipping,
		Tax:             tax,
		Total:           subtotal + shipping + tax,
		ShippingAddress: address,
	}

	s.mu.Lock()
	s.sessions[sessionID] = &machine{
		checkout: checkout,
		state:    domain.NewPaymentState(),
	}
	s.mu.Unlock()

	logger.Get().Info("Checkout initialized",
		zap.String("session_id", sessionID),
		zap.Float64("total", checkout.Total),
		zap.Int("items", len(items)),
	)

	return checkout, nil
}

// Snapshot returns the session's checkout and payment state for rendering.
func (s *CheckoutServiceImpl) Snapshot(sessionID string) (*domain.CheckoutSession, *domain.PaymentState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.sessions[sessionID]
	if !ok {
		return nil, nil, ErrNoCheckout
	}

	state := m.state
	return m.checkout, &state, nil
}

// GoToPayment moves summary -> payment, clearing any error.
func (s *CheckoutServiceImpl) GoToPayment(sessionID string) (*domain.PaymentState, error) {
	return s.step(sessionID, domain.StepPayment)
}

// BackToSummary moves payment -> summary, clearing any error.
func (s *CheckoutServiceImpl) BackToSummary(sessionID string) (*domain.PaymentState, error) {
	return s.step(sessionID, domain.StepSummary)
}

func (s *CheckoutServiceImpl) step(sessionID string, to domain.Step) (*domain.PaymentState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrNoCheckout
	}

	// Processing is not user-interruptible; complete is terminal.
	if m.state.Step == domain.StepProcessing || m.state.Step == domain.StepComplete {
		state := m.state
		return &state, nil
	}

	m.state.Step = to
	m.state.Error = ""

	state := m.state
	return &state, nil
}

// SelectMethod picks a payment method. Any previously selected card and any
// in-progress new-card entry are dropped so stale card data never leaks
// across method switches.
func (s *CheckoutServiceImpl) SelectMethod(sessionID, methodID string) (*domain.PaymentState, error) {
	method := s.provider.GetMethod(methodID)
	if method == nil {
		return nil, ErrUnknownMethod
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrNoCheckout
	}

	m.state.SelectedMethod = method
	m.state.Selection = domain.NoSelection()
	m.state.Error = ""

	state := m.state
	return &state, nil
}

// SelectSavedCard picks a card on file, dropping any new-card entry.
func (s *CheckoutServiceImpl) SelectSavedCard(sessionID, cardID string) (*domain.PaymentState, error) {
	card := s.provider.GetSavedCard(cardID)
	if card == nil {
		return nil, ErrUnknownCard
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrNoCheckout
	}

	m.state.Selection = domain.SelectSaved(*card)
	m.state.Error = ""

	state := m.state
	return &state, nil
}

// UpdateNewCard merge-patches the transient new-card entry, implicitly
// switching the selection to it. Validation waits until submission.
func (s *CheckoutServiceImpl) UpdateNewCard(sessionID string, patch domain.NewCardPatch) (*domain.PaymentState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrNoCheckout
	}

	var card domain.NewCardInput
	if m.state.Selection.Kind == domain.SelectionNewCard {
		card = *m.state.Selection.NewCard
	}
	patch.Apply(&card)

	m.state.Selection = domain.SelectNew(card)
	m.state.Error = ""

	state := m.state
	return &state, nil
}

// UpdateBillingAddress merge-patches the billing address.
func (s *CheckoutServiceImpl) UpdateBillingAddress(sessionID string, patch domain.AddressPatch) (*domain.PaymentState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrNoCheckout
	}

	var addr domain.Address
	if m.state.BillingAddress != nil {
		addr = *m.state.BillingAddress
	} else {
		addr.Country = "United States"
	}
	patch.Apply(&addr)

	m.state.BillingAddress = &addr
	m.state.Error = ""

	state := m.state
	return &state, nil
}

// Validate runs the submission-time checks without side effects.
func (s *CheckoutServiceImpl) Validate(sessionID string) (bool, []string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.sessions[sessionID]
	if !ok {
		return false, nil, ErrNoCheckout
	}

	valid, errs := domain.ValidatePayment(m.state, s.now())
	return valid, errs, nil
}

// ProcessPayment validates the payment data and submits the charge.
//
// Every outcome is a normal PaymentResult: validation failures and declines
// return the session to the payment step with an error message and all
// entered data intact, so the user can correct and resubmit. The lock is
// released for the duration of the gateway call; the presentation layer is
// expected to withhold further submissions while processing.
func (s *CheckoutServiceImpl) ProcessPayment(ctx context.Context, sessionID string) (*domain.PaymentResult, error) {
	s.mu.Lock()

	m, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return &domain.PaymentResult{Success: false, Error: missingDataError}, nil
	}

	valid, errs := domain.ValidatePayment(m.state, s.now())
	if !valid {
		joined := strings.Join(errs, ", ")
		m.state.Step = domain.StepPayment
		m.state.Error = joined
		s.mu.Unlock()
		return &domain.PaymentResult{Success: false, Error: joined}, nil
	}

	m.state.Step = domain.StepProcessing
	m.state.IsProcessing = true
	m.state.Error = ""

	req := domain.ChargeRequest{
		Amount:     m.checkout.Total,
		MethodKind: m.state.SelectedMethod.Kind,
		CardRef:    cardRef(m.state.Selection),
	}

	s.mu.Unlock()

	result, err := s.gateway.Charge(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()

	// The session may have been reset while the charge was in flight.
	current, ok := s.sessions[sessionID]
	if !ok || current != m {
		return &domain.PaymentResult{Success: false, Error: missingDataError}, nil
	}

	m.state.IsProcessing = false

	if err != nil {
		logger.Get().Error("Payment gateway call failed",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
		m.state.Step = domain.StepPayment
		m.state.Error = processingFailedError
		return &domain.PaymentResult{Success: false, Error: processingFailedError}, nil
	}

	if !result.Success {
		m.state.Step = domain.StepPayment
		m.state.Error = result.DeclineReason
		return &domain.PaymentResult{Success: false, Error: result.DeclineReason}, nil
	}

	m.state.Step = domain.StepComplete
	logger.Get().Info("Payment complete",
		zap.String("session_id", sessionID),
		zap.String("transaction_id", result.TransactionID),
	)

	return &domain.PaymentResult{Success: true, TransactionID: result.TransactionID}, nil
}

// ResetPayment discards the checkout session. Used when abandoning checkout;
// the next purchase starts over with InitializeCheckout.
func (s *CheckoutServiceImpl) ResetPayment(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
	return nil
}

// ClearError nulls the state's error field without touching anything else.
func (s *CheckoutServiceImpl) ClearError(sessionID string) (*domain.PaymentState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrNoCheckout
	}

	m.state.Error = ""

	state := m.state
	return &state, nil
}

// Methods returns the available payment methods.
func (s *CheckoutServiceImpl) Methods() []domain.PaymentMethod {
	return s.provider.Methods()
}

// SavedCards returns the shopper's cards on file.
func (s *CheckoutServiceImpl) SavedCards() []domain.SavedCard {
	return s.provider.SavedCards()
}

// cardRef builds a masked card reference for gateway logs. Never the PAN.
func cardRef(sel domain.PaymentSelection) string {
	switch sel.Kind {
	case domain.SelectionSavedCard:
		return fmt.Sprintf("%s ****%s", sel.SavedCard.Brand, sel.SavedCard.Last4)
	case domain.SelectionNewCard:
		return string(domain.DetectBrand(sel.NewCard.Number)) + " " + domain.MaskCardNumber(sel.NewCard.Number)
	default:
		return ""
	}
}
