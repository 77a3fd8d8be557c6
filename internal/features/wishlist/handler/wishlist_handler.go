package handler

import (
	"errors"
	"net/http"

	"lightspace/internal/core/logger"
	"lightspace/internal/core/session"
	"lightspace/internal/features/wishlist/ports"
	"lightspace/internal/features/wishlist/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// WishlistHandler handles HTTP requests for the session wishlist.
type WishlistHandler struct {
	service ports.WishlistService
}

// NewWishlistHandler creates a new WishlistHandler.
func NewWishlistHandler(s ports.WishlistService) *WishlistHandler {
	return &WishlistHandler{
		service: s,
	}
}

// ToggleRequest represents the request body for toggling a wishlist entry.
type ToggleRequest struct {
	ProductID int `json:"product_id"`
}

// ToggleResponse reports which branch the toggle took so the presentation
// layer can show "Added to wishlist" vs "Removed from wishlist".
type ToggleResponse struct {
	Added   bool   `json:"added"`
	Message string `json:"message"`
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

// Toggle handles POST /wishlist/toggle.
// @Summary Toggle a product in the wishlist
// @Tags Wishlist
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Session ID"
// @Param item body ToggleRequest true "Product to toggle"
// @Success 200 {object} ToggleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /wishlist/toggle [post]
func (h *WishlistHandler) Toggle(c *fiber.Ctx) error {
	var req ToggleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID(c),
		})
	}

	sessionID := session.FromCtx(c)

	added, err := h.service.Toggle(c.Context(), sessionID, req.ProductID)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			return c.Status(http.StatusNotFound).JSON(ErrorResponse{
				Message: "Product not found",
				RayID:   rayID(c),
			})
		}
		logger.Get().Error("Failed to toggle wishlist",
			zap.Int("product_id", req.ProductID),
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal Server Error",
			RayID:   rayID(c),
		})
	}

	message := "Removed from wishlist"
	if added {
		message = "Added to wishlist"
	}

	return c.Status(http.StatusOK).JSON(ToggleResponse{
		Added:   added,
		Message: message,
	})
}

// List handles GET /wishlist.
// @Summary List wishlist products
// @Tags Wishlist
// @Produce json
// @Param X-Session-ID header string false "Session ID"
// @Success 200 {array} domain.Product
// @Failure 500 {object} ErrorResponse
// @Router /wishlist [get]
func (h *WishlistHandler) List(c *fiber.Ctx) error {
	sessionID := session.FromCtx(c)

	products, err := h.service.List(c.Context(), sessionID)
	if err != nil {
		logger.Get().Error("Failed to list wishlist",
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal Server Error",
			RayID:   rayID(c),
		})
	}

	return c.Status(http.StatusOK).JSON(products)
}
