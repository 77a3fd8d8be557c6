package handler

import (
	"errors"
	"net/http"

	"lightspace/internal/core/logger"
	"lightspace/internal/core/session"
	cartports "lightspace/internal/features/cart/ports"
	"lightspace/internal/features/checkout/domain"
	"lightspace/internal/features/checkout/ports"
	"lightspace/internal/features/checkout/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CheckoutHandler handles HTTP requests for the checkout flow.
type CheckoutHandler struct {
	service ports.CheckoutService
	carts   cartports.CartService
}

// NewCheckoutHandler creates a new CheckoutHandler. The cart service is
// needed to empty the cart once a payment succeeds.
func NewCheckoutHandler(s ports.CheckoutService, carts cartports.CartService) *CheckoutHandler {
	return &CheckoutHandler{
		service: s,
		carts:   carts,
	}
}

// CheckoutResponse is the full checkout view: the immutable order snapshot
// plus the mutable payment state.
type CheckoutResponse struct {
	Checkout *domain.CheckoutSession `json:"checkout"`
	State    *domain.PaymentState    `json:"state"`
}

// InitializeRequest optionally overrides the placeholder shipping address.
type InitializeRequest struct {
	ShippingAddress *domain.Address `json:"shipping_address,omitempty"`
}

// SelectMethodRequest picks a payment method by ID.
type SelectMethodRequest struct {
	MethodID string `json:"method_id"`
}

// SelectCardRequest picks a saved card by ID.
type SelectCardRequest struct {
	CardID string `json:"card_id"`
}

// ValidationResponse reports submission-time checks without side effects.
type ValidationResponse struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// MethodsResponse lists the available payment options.
type MethodsResponse struct {
	Methods    []domain.PaymentMethod `json:"methods"`
	SavedCards []domain.SavedCard     `json:"saved_cards"`
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
}

func rayID(c *fiber.Ctx) string {
	id, ok := c.Locals("requestid").(string)
	if !ok {
		return "unknown"
	}
	return id
}

func (h *CheckoutHandler) internalError(c *fiber.Ctx, msg string, err error) error {
	logger.Get().Error(msg,
		zap.String("ray_id", rayID(c)),
		zap.Error(err),
	)
	return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
		Message: "Internal Server Error",
		RayID:   rayID(c),
	})
}

func noCheckout(c *fiber.Ctx) error {
	return c.Status(http.StatusNotFound).JSON(ErrorResponse{
		Message: "No active checkout",
		RayID:   rayID(c),
	})
}

// stateOrError maps the common (state, err) service result to a response.
func (h *CheckoutHandler) stateOrError(c *fiber.Ctx, state *domain.PaymentState, err error, logMsg string) error {
	if err != nil {
		if errors.Is(err, service.ErrNoCheckout) {
			return noCheckout(c)
		}
		return h.internalError(c, logMsg, err)
	}
	return c.Status(http.StatusOK).JSON(state)
}

// Initialize handles POST /checkout.
// @Summary Start a checkout from the session cart
// @Tags Checkout
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Session ID"
// @Param body body InitializeRequest false "Optional shipping address"
// @Success 200 {object} CheckoutResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /checkout [post]
func (h *CheckoutHandler) Initialize(c *fiber.Ctx) error {
	var req InitializeRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Message: "Invalid request body",
				RayID:   rayID(c),
			})
		}
	}

	sessionID := session.FromCtx(c)

	checkout, err := h.service.InitializeCheckout(c.Context(), sessionID, req.ShippingAddress)
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) {
			return c.Status(http.StatusConflict).JSON(ErrorResponse{
				Message: "Cart is empty",
				RayID:   rayID(c),
			})
		}
		return h.internalError(c, "Failed to initialize checkout", err)
	}

	_, state, err := h.service.Snapshot(sessionID)
	if err != nil {
		return h.internalError(c, "Failed to load checkout state", err)
	}

	return c.Status(http.StatusOK).JSON(CheckoutResponse{Checkout: checkout, State: state})
}

// GetCheckout handles GET /checkout.
// @Summary Get the current checkout and payment state
// @Tags Checkout
// @Produce json
// @Param X-Session-ID header string false "Session ID"
// @Success 200 {object} CheckoutResponse
// @Failure 404 {object} ErrorResponse
// @Router /checkout [get]
func (h *CheckoutHandler) GetCheckout(c *fiber.Ctx) error {
	sessionID := session.FromCtx(c)

	checkout, state, err := h.service.Snapshot(sessionID)
	if err != nil {
		if errors.Is(err, service.ErrNoCheckout) {
			return noCheckout(c)
		}
		return h.internalError(c, "Failed to load checkout", err)
	}

	return c.Status(http.StatusOK).JSON(CheckoutResponse{Checkout: checkout, State: state})
}

// GoToPayment handles POST /checkout/payment.
// @Summary Advance from the summary to the payment step
// @Tags Checkout
// @Produce json
// @Param X-Session-ID header string false "Session ID"
// @Success 200 {object} domain.PaymentState
// @Failure 404 {object} ErrorResponse
// @Router /checkout/payment [post]
func (h *CheckoutHandler) GoToPayment(c *fiber.Ctx) error {
	state, err := h.service.GoToPayment(session.FromCtx(c))
	return h.stateOrError(c, state, err, "Failed to advance to payment")
}

// BackToSummary handles POST /checkout/summary.
// @Summary Return from the payment to the summary step
// @Tags Checkout
// @Produce json
// @Param X-Session-ID header string false "Session ID"
// @Success 200 {object} domain.PaymentState
// @Failure 404 {object} ErrorResponse
// @Router /checkout/summary [post]
func (h *CheckoutHandler) BackToSummary(c *fiber.Ctx) error {
	state, err := h.service.BackToSummary(session.FromCtx(c))
	return h.stateOrError(c, state, err, "Failed to return to summary")
}

// SelectMethod handles POST /checkout/method.
// @Summary Select a payment method
// @Tags Checkout
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Session ID"
// @Param body body SelectMethodRequest true "Method to select"
// @Success 200 {object} domain.PaymentState
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /checkout/method [post]
func (h *CheckoutHandler) SelectMethod(c *fiber.Ctx) error {
	var req SelectMethodRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID(c),
		})
	}

	state, err := h.service.SelectMethod(session.FromCtx(c), req.MethodID)
	if err != nil {
		if errors.Is(err, service.ErrUnknownMethod) {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Message: "Unknown payment method",
				RayID:   rayID(c),
			})
		}
		if errors.Is(err, service.ErrNoCheckout) {
			return noCheckout(c)
		}
		return h.internalError(c, "Failed to select payment method", err)
	}

	return c.Status(http.StatusOK).JSON(state)
}

// SelectSavedCard handles POST /checkout/card.
// @Summary Select a saved card
// @Tags Checkout
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Session ID"
// @Param body body SelectCardRequest true "Card to select"
// @Success 200 {object} domain.PaymentState
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /checkout/card [post]
func (h *CheckoutHandler) SelectSavedCard(c *fiber.Ctx) error {
	var req SelectCardRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID(c),
		})
	}

	state, err := h.service.SelectSavedCard(session.FromCtx(c), req.CardID)
	if err != nil {
		if errors.Is(err, service.ErrUnknownCard) {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Message: "Unknown saved card",
				RayID:   rayID(c),
			})
		}
		if errors.Is(err, service.ErrNoCheckout) {
			return noCheckout(c)
		}
		return h.internalError(c, "Failed to select saved card", err)
	}

	return c.Status(http.StatusOK).JSON(state)
}

// UpdateNewCard handles PATCH /checkout/new-card.
// @Summary Merge-patch the new-card entry
// @Tags Checkout
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Session ID"
// @Param body body domain.NewCardPatch true "Fields to update"
// @Success 200 {object} domain.PaymentState
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /checkout/new-card [patch]
func (h *CheckoutHandler) UpdateNewCard(c *fiber.Ctx) error {
	var patch domain.NewCardPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID(c),
		})
	}

	state, err := h.service.UpdateNewCard(session.FromCtx(c), patch)
	return h.stateOrError(c, state, err, "Failed to update card entry")
}

// UpdateBillingAddress handles PATCH /checkout/billing-address.
// @Summary Merge-patch the billing address
// @Tags Checkout
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Session ID"
// @Param body body domain.AddressPatch true "Fields to update"
// @Success 200 {object} domain.PaymentState
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /checkout/billing-address [patch]
func (h *CheckoutHandler) UpdateBillingAddress(c *fiber.Ctx) error {
	var patch domain.AddressPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID(c),
		})
	}

	state, err := h.service.UpdateBillingAddress(session.FromCtx(c), patch)
	return h.stateOrError(c, state, err, "Failed to update billing address")
}

// Validate handles POST /checkout/validate.
// @Summary Check the payment inputs without submitting
// @Tags Checkout
// @Produce json
// @Param X-Session-ID header string false "Session ID"
// @Success 200 {object} ValidationResponse
// @Failure 404 {object} ErrorResponse
// @Router /checkout/validate [post]
func (h *CheckoutHandler) Validate(c *fiber.Ctx) error {
	valid, errs, err := h.service.Validate(session.FromCtx(c))
	if err != nil {
		if errors.Is(err, service.ErrNoCheckout) {
			return noCheckout(c)
		}
		return h.internalError(c, "Failed to validate payment", err)
	}

	if errs == nil {
		errs = []string{}
	}
	return c.Status(http.StatusOK).JSON(ValidationResponse{Valid: valid, Errors: errs})
}

// ProcessPayment handles POST /checkout/process.
// @Summary Submit the payment
// @Tags Checkout
// @Produce json
// @Param X-Session-ID header string false "Session ID"
// @Success 200 {object} domain.PaymentResult
// @Failure 500 {object} ErrorResponse
// @Router /checkout/process [post]
func (h *CheckoutHandler) ProcessPayment(c *fiber.Ctx) error {
	sessionID := session.FromCtx(c)

	result, err := h.service.ProcessPayment(c.Context(), sessionID)
	if err != nil {
		return h.internalError(c, "Failed to process payment", err)
	}

	// A completed purchase empties the cart; failing to do so is logged but
	// never turns a successful charge into an error response.
	if result.Success {
		if err := h.carts.Clear(c.Context(), sessionID); err != nil {
			logger.Get().Error("Failed to clear cart after payment",
				zap.String("ray_id", rayID(c)),
				zap.Error(err),
			)
		}
	}

	return c.Status(http.StatusOK).JSON(result)
}

// Reset handles POST /checkout/reset.
// @Summary Abandon the checkout
// @Tags Checkout
// @Produce json
// @Param X-Session-ID header string false "Session ID"
// @Success 204
// @Router /checkout/reset [post]
func (h *CheckoutHandler) Reset(c *fiber.Ctx) error {
	if err := h.service.ResetPayment(session.FromCtx(c)); err != nil {
		return h.internalError(c, "Failed to reset checkout", err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// ClearError handles DELETE /checkout/error.
// @Summary Dismiss the payment error
// @Tags Checkout
// @Produce json
// @Param X-Session-ID header string false "Session ID"
// @Success 200 {object} domain.PaymentState
// @Failure 404 {object} ErrorResponse
// @Router /checkout/error [delete]
func (h *CheckoutHandler) ClearError(c *fiber.Ctx) error {
	state, err := h.service.ClearError(session.FromCtx(c))
	return h.stateOrError(c, state, err, "Failed to clear payment error")
}

// GetPaymentMethods handles GET /checkout/methods.
// @Summary List payment methods and saved cards
// @Tags Checkout
// @Produce json
// @Success 200 {object} MethodsResponse
// @Router /checkout/methods [get]
func (h *CheckoutHandler) GetPaymentMethods(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(MethodsResponse{
		Methods:    h.service.Methods(),
		SavedCards: h.service.SavedCards(),
	})
}
