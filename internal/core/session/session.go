package session

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header carries the shopper's session identifier.
// Carts, wishlists and checkout sessions are all keyed by it.
const Header = "X-Session-ID"

// FromCtx returns the request's session ID, minting a fresh one when the
// client did not send the header. The ID is always echoed on the response
// so first-time clients can pick it up.
func FromCtx(c *fiber.Ctx) string {
	id := c.Get(Header)
	if id == "" {
		id = uuid.NewString()
	}

	c.Set(Header, id)
	return id
}
