package adapters

import "lightspace/internal/features/checkout/domain"

// StaticPaymentMethods implements ports.PaymentMethodProvider with the
// storefront's fixed method list and mock cards on file.
type StaticPaymentMethods struct {
	methods []domain.PaymentMethod
	cards   []domain.SavedCard
}

// NewStaticPaymentMethods creates the provider with the seed data.
func NewStaticPaymentMethods() *StaticPaymentMethods {
	return &StaticPaymentMethods{
		methods: []domain.PaymentMethod{
			{ID: "card", Kind: domain.MethodKindCard, Name: "Credit/Debit Card", Icon: "💳", IsDefault: true},
			{ID: "paypal", Kind: domain.MethodKindPayPal, Name: "PayPal", Icon: "🅿️"},
			{ID: "apple-pay", Kind: domain.MethodKindApplePay, Name: "Apple Pay", Icon: "🍎"},
			{ID: "google-pay", Kind: domain.MethodKindGooglePay, Name: "Google Pay", Icon: "🅖"},
		},
		cards: []domain.SavedCard{
			{ID: "card-1", Last4: "4242", Brand: domain.BrandVisa, ExpiryMonth: 12, ExpiryYear: 2030, HolderName: "John Doe", IsDefault: true},
			{ID: "card-2", Last4: "8888", Brand: domain.BrandMastercard, ExpiryMonth: 8, ExpiryYear: 2031, HolderName: "John Doe"},
		},
	}
}

// Methods returns the available payment methods.
func (s *StaticPaymentMethods) Methods() []domain.PaymentMethod {
	out := make([]domain.PaymentMethod, len(s.methods))
	copy(out, s.methods)
	return out
}

// GetMethod returns the method with the given ID, or nil if absent.
func (s *StaticPaymentMethods) GetMethod(id string) *domain.PaymentMethod {
	for i := range s.methods {
		if s.methods[i].ID == id {
			m := s.methods[i]
			return &m
		}
	}
	return nil
}

// SavedCards returns the shopper's cards on file.
func (s *StaticPaymentMethods) SavedCards() []domain.SavedCard {
	out := make([]domain.SavedCard, len(s.cards))
	copy(out, s.cards)
	return out
}

// GetSavedCard returns the card with the given ID, or nil if absent.
func (s *StaticPaymentMethods) GetSavedCard(id string) *domain.SavedCard {
	for i := range s.cards {
		if s.cards[i].ID == id {
			c := s.cards[i]
			return &c
		}
	}
	return nil
}
