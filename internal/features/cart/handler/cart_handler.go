package handler

import (
	"errors"
	"net/http"
	"strconv"

	"lightspace/internal/core/logger"
	"lightspace/internal/core/session"
	"lightspace/internal/features/cart/domain"
	"lightspace/internal/features/cart/ports"
	"lightspace/internal/features/cart/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CartHandler handles HTTP requests for the session cart.
type CartHandler struct {
	service ports.CartService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(s ports.CartService) *CartHandler {
	return &CartHandler{
		service: s,
	}
}

// CartResponse is the cart snapshot returned to the presentation layer.
// ItemCount and Total are derived server-side so clients never compute them.
type CartResponse struct {
	Lines     []domain.CartLine `json:"lines"`
	ItemCount int               `json:"item_count"`
	Total     float64           `json:"total"`
	// Message is the transient notification text for the action just taken.
	Message string `json:"message,omitempty"`
}

// AddItemRequest represents the request body for adding a cart item.
type AddItemRequest struct {
	ProductID int `json:"product_id"`
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

func cartResponse(cart *domain.Cart, message string) CartResponse {
	lines := cart.Lines
	if lines == nil {
		lines = []domain.CartLine{}
	}
	return CartResponse{
		Lines:     lines,
		ItemCount: cart.ItemCount(),
		Total:     cart.Total(),
		Message:   message,
	}
}

// GetCart handles GET /cart.
// @Summary Get the session cart
// @Tags Cart
// @Produce json
// @Param X-Session-ID header string false "Session ID"
// @Success 200 {object} CartResponse
// @Failure 500 {object} ErrorResponse
// @Router /cart [get]
func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	sessionID := session.FromCtx(c)

	cart, err := h.service.GetCart(c.Context(), sessionID)
	if err != nil {
		logger.Get().Error("Failed to load cart",
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal Server Error",
			RayID:   rayID(c),
		})
	}

	return c.Status(http.StatusOK).JSON(cartResponse(cart, ""))
}

// AddItem handles POST /cart/items.
// @Summary Add a product to the cart
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Session ID"
// @Param item body AddItemRequest true "Product to add"
// @Success 200 {object} CartResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var req AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID(c),
		})
	}

	sessionID := session.FromCtx(c)

	cart, err := h.service.AddItem(c.Context(), sessionID, req.ProductID)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			return c.Status(http.StatusNotFound).JSON(ErrorResponse{
				Message: "Product not found",
				RayID:   rayID(c),
			})
		}
		logger.Get().Error("Failed to add cart item",
			zap.Int("product_id", req.ProductID),
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal Server Error",
			RayID:   rayID(c),
		})
	}

	return c.Status(http.StatusOK).JSON(cartResponse(cart, "Added to cart"))
}

// RemoveItem handles DELETE /cart/items/:id.
// @Summary Remove one unit of a product from the cart
// @Tags Cart
// @Produce json
// @Param X-Session-ID header string false "Session ID"
// @Param id path int true "Product ID"
// @Success 200 {object} CartResponse
// @Failure 400 {object} ErrorResponse
// @Router /cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	productID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Product ID must be an integer",
			RayID:   rayID(c),
		})
	}

	sessionID := session.FromCtx(c)

	cart, err := h.service.RemoveItem(c.Context(), sessionID, productID)
	if err != nil {
		logger.Get().Error("Failed to remove cart item",
			zap.Int("product_id", productID),
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal Server Error",
			RayID:   rayID(c),
		})
	}

	return c.Status(http.StatusOK).JSON(cartResponse(cart, "Removed from cart"))
}

// ClearCart handles DELETE /cart.
// @Summary Clear the session cart
// @Tags Cart
// @Produce json
// @Param X-Session-ID header string false "Session ID"
// @Success 200 {object} CartResponse
// @Failure 500 {object} ErrorResponse
// @Router /cart [delete]
func (h *CartHandler) ClearCart(c *fiber.Ctx) error {
	sessionID := session.FromCtx(c)

	if err := h.service.Clear(c.Context(), sessionID); err != nil {
		logger.Get().Error("Failed to clear cart",
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal Server Error",
			RayID:   rayID(c),
		})
	}

	return c.Status(http.StatusOK).JSON(cartResponse(domain.NewCart(), "Cart cleared"))
}
