package handler

import "github.com/gofiber/fiber/v2"

// UserIDHeader carries the authenticated user's ID. Session validation is
// handled upstream by the auth gateway; this API trusts the header.
const UserIDHeader = "X-User-ID"

func userIDFromHeader(c *fiber.Ctx) string {
	return c.Get(UserIDHeader)
}
