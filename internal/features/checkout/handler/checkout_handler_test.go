package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"lightspace/internal/core/session"
	cartdomain "lightspace/internal/features/cart/domain"
	catalog "lightspace/internal/features/catalog/domain"
	"lightspace/internal/features/checkout/adapters"
	"lightspace/internal/features/checkout/domain"
	"lightspace/internal/features/checkout/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCarts serves a fixed cart and records Clear calls.
type stubCarts struct {
	cart    *cartdomain.Cart
	cleared bool
}

func (s *stubCarts) AddItem(ctx context.Context, sessionID string, productID int) (*cartdomain.Cart, error) {
	return s.cart, nil
}

func (s *stubCarts) RemoveItem(ctx context.Context, sessionID string, productID int) (*cartdomain.Cart, error) {
	return s.cart, nil
}

func (s *stubCarts) Clear(ctx context.Context, sessionID string) error {
	s.cleared = true
	return nil
}

func (s *stubCarts) GetCart(ctx context.Context, sessionID string) (*cartdomain.Cart, error) {
	return s.cart, nil
}

// scriptedGateway returns a preset charge outcome.
type scriptedGateway struct {
	result *domain.ChargeResult
	err    error
}

func (g *scriptedGateway) Charge(ctx context.Context, req domain.ChargeRequest) (*domain.ChargeResult, error) {
	return g.result, g.err
}

func newTestApp(gw *scriptedGateway) (*fiber.App, *stubCarts) {
	cart := cartdomain.NewCart()
	cart.Add(catalog.Product{ID: 1, Name: "Nordic Pendant Light", Price: 100})

	carts := &stubCarts{cart: cart}
	svc := service.NewCheckoutService(
		carts,
		adapters.NewStaticPaymentMethods(),
		gw,
		domain.DefaultShippingPolicy(),
		0.08,
	)
	h := NewCheckoutHandler(svc, carts)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("requestid", "test-ray-id")
		return c.Next()
	})
	app.Post("/checkout", h.Initialize)
	app.Get("/checkout", h.GetCheckout)
	app.Post("/checkout/payment", h.GoToPayment)
	app.Post("/checkout/summary", h.BackToSummary)
	app.Post("/checkout/method", h.SelectMethod)
	app.Post("/checkout/card", h.SelectSavedCard)
	app.Patch("/checkout/new-card", h.UpdateNewCard)
	app.Patch("/checkout/billing-address", h.UpdateBillingAddress)
	app.Post("/checkout/validate", h.Validate)
	app.Post("/checkout/process", h.ProcessPayment)
	app.Post("/checkout/reset", h.Reset)
	app.Delete("/checkout/error", h.ClearError)
	app.Get("/checkout/methods", h.GetPaymentMethods)

	return app, carts
}

func request(t *testing.T, app *fiber.App, method, target, body string) (int, []byte) {
	t.Helper()

	var req = httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(session.Header, "s1")
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, payload
}

func TestCheckoutHandler_Initialize(t *testing.T) {
	app, _ := newTestApp(&scriptedGateway{})

	status, body := request(t, app, "POST", "/checkout", "")
	assert.Equal(t, fiber.StatusOK, status)

	var result CheckoutResponse
	require.NoError(t, json.Unmarshal(body, &result))
	assert.Equal(t, 125.0, result.Checkout.Total)
	assert.Equal(t, domain.StepSummary, result.State.Step)
	assert.Equal(t, "John Doe", result.Checkout.ShippingAddress.Name)
}

func TestCheckoutHandler_Initialize_EmptyCart(t *testing.T) {
	app, carts := newTestApp(&scriptedGateway{})
	carts.cart = cartdomain.NewCart()

	status, body := request(t, app, "POST", "/checkout", "")
	assert.Equal(t, fiber.StatusConflict, status)

	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp))
	assert.Equal(t, "Cart is empty", errResp.Message)
	assert.Equal(t, "test-ray-id", errResp.RayID)
}

func TestCheckoutHandler_GetCheckout_NoneActive(t *testing.T) {
	app, _ := newTestApp(&scriptedGateway{})

	status, body := request(t, app, "GET", "/checkout", "")
	assert.Equal(t, fiber.StatusNotFound, status)

	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp))
	assert.Equal(t, "No active checkout", errResp.Message)
}

func TestCheckoutHandler_StepNavigation(t *testing.T) {
	app, _ := newTestApp(&scriptedGateway{})

	status, _ := request(t, app, "POST", "/checkout", "")
	require.Equal(t, fiber.StatusOK, status)

	status, body := request(t, app, "POST", "/checkout/payment", "")
	require.Equal(t, fiber.StatusOK, status)

	var state domain.PaymentState
	require.NoError(t, json.Unmarshal(body, &state))
	assert.Equal(t, domain.StepPayment, state.Step)

	status, body = request(t, app, "POST", "/checkout/summary", "")
	require.Equal(t, fiber.StatusOK, status)
	require.NoError(t, json.Unmarshal(body, &state))
	assert.Equal(t, domain.StepSummary, state.Step)
}

func TestCheckoutHandler_SelectMethod(t *testing.T) {
	app, _ := newTestApp(&scriptedGateway{})
	request(t, app, "POST", "/checkout", "")

	status, body := request(t, app, "POST", "/checkout/method", `{"method_id":"card"}`)
	require.Equal(t, fiber.StatusOK, status)

	var state domain.PaymentState
	require.NoError(t, json.Unmarshal(body, &state))
	require.NotNil(t, state.SelectedMethod)
	assert.Equal(t, "card", state.SelectedMethod.ID)

	status, _ = request(t, app, "POST", "/checkout/method", `{"method_id":"crypto"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestCheckoutHandler_NewCardAndBillingPatches(t *testing.T) {
	app, _ := newTestApp(&scriptedGateway{})
	request(t, app, "POST", "/checkout", "")

	status, body := request(t, app, "PATCH", "/checkout/new-card", `{"number":"4242424242424242","holder_name":"Jane Smith"}`)
	require.Equal(t, fiber.StatusOK, status)

	var state domain.PaymentState
	require.NoError(t, json.Unmarshal(body, &state))
	require.Equal(t, domain.SelectionNewCard, state.Selection.Kind)
	assert.Equal(t, "4242424242424242", state.Selection.NewCard.Number)

	status, body = request(t, app, "PATCH", "/checkout/billing-address", `{"city":"Chicago"}`)
	require.Equal(t, fiber.StatusOK, status)
	require.NoError(t, json.Unmarshal(body, &state))
	require.NotNil(t, state.BillingAddress)
	assert.Equal(t, "Chicago", state.BillingAddress.City)
}

func TestCheckoutHandler_Validate(t *testing.T) {
	app, _ := newTestApp(&scriptedGateway{})
	request(t, app, "POST", "/checkout", "")

	status, body := request(t, app, "POST", "/checkout/validate", "")
	require.Equal(t, fiber.StatusOK, status)

	var result ValidationResponse
	require.NoError(t, json.Unmarshal(body, &result))
	assert.False(t, result.Valid)
	assert.Equal(t, []string{"Please select a payment method"}, result.Errors)
}

func TestCheckoutHandler_ProcessPayment_Success(t *testing.T) {
	gw := &scriptedGateway{result: &domain.ChargeResult{Success: true, TransactionID: "TXN_1718452800000_a1b2c3d4e"}}
	app, carts := newTestApp(gw)

	request(t, app, "POST", "/checkout", "")
	request(t, app, "POST", "/checkout/method", `{"method_id":"card"}`)
	request(t, app, "POST", "/checkout/card", `{"card_id":"card-1"}`)

	status, body := request(t, app, "POST", "/checkout/process", "")
	require.Equal(t, fiber.StatusOK, status)

	var result domain.PaymentResult
	require.NoError(t, json.Unmarshal(body, &result))
	assert.True(t, result.Success)
	assert.Equal(t, "TXN_1718452800000_a1b2c3d4e", result.TransactionID)

	// The completed purchase emptied the cart.
	assert.True(t, carts.cleared)

	status, body = request(t, app, "GET", "/checkout", "")
	require.Equal(t, fiber.StatusOK, status)
	var view CheckoutResponse
	require.NoError(t, json.Unmarshal(body, &view))
	assert.Equal(t, domain.StepComplete, view.State.Step)
}

func TestCheckoutHandler_ProcessPayment_Decline(t *testing.T) {
	gw := &scriptedGateway{result: &domain.ChargeResult{Success: false, DeclineReason: "Card declined by issuer"}}
	app, carts := newTestApp(gw)

	request(t, app, "POST", "/checkout", "")
	request(t, app, "POST", "/checkout/method", `{"method_id":"card"}`)
	request(t, app, "POST", "/checkout/card", `{"card_id":"card-1"}`)

	status, body := request(t, app, "POST", "/checkout/process", "")
	require.Equal(t, fiber.StatusOK, status)

	var result domain.PaymentResult
	require.NoError(t, json.Unmarshal(body, &result))
	assert.False(t, result.Success)
	assert.Equal(t, "Card declined by issuer", result.Error)
	assert.False(t, carts.cleared)

	// Dismissing the error keeps the step and selection.
	status, body = request(t, app, "DELETE", "/checkout/error", "")
	require.Equal(t, fiber.StatusOK, status)
	var state domain.PaymentState
	require.NoError(t, json.Unmarshal(body, &state))
	assert.Empty(t, state.Error)
	assert.Equal(t, domain.StepPayment, state.Step)
	assert.Equal(t, domain.SelectionSavedCard, state.Selection.Kind)
}

func TestCheckoutHandler_ProcessPayment_NoCheckout(t *testing.T) {
	app, _ := newTestApp(&scriptedGateway{})

	status, body := request(t, app, "POST", "/checkout/process", "")
	require.Equal(t, fiber.StatusOK, status)

	var result domain.PaymentResult
	require.NoError(t, json.Unmarshal(body, &result))
	assert.False(t, result.Success)
	assert.Equal(t, "Missing checkout or payment data", result.Error)
}

func TestCheckoutHandler_Reset(t *testing.T) {
	app, _ := newTestApp(&scriptedGateway{})
	request(t, app, "POST", "/checkout", "")

	status, _ := request(t, app, "POST", "/checkout/reset", "")
	assert.Equal(t, fiber.StatusNoContent, status)

	status, _ = request(t, app, "GET", "/checkout", "")
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestCheckoutHandler_GetPaymentMethods(t *testing.T) {
	app, _ := newTestApp(&scriptedGateway{})

	status, body := request(t, app, "GET", "/checkout/methods", "")
	require.Equal(t, fiber.StatusOK, status)

	var result MethodsResponse
	require.NoError(t, json.Unmarshal(body, &result))
	assert.Len(t, result.Methods, 4)
	assert.Len(t, result.SavedCards, 2)
}
