package handler

import (
	"github.com/gofiber/fiber/v2"

	"bizgenius/internal/service"
)

// GetProfile returns the authenticated user's profile.
func GetProfile(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := userIDFromHeader(c)
		if userID == "" {
			return writeError(c, fiber.StatusUnauthorized, "USER_REQUIRED", "missing user identity")
		}

		user, err := svc.Get(c.UserContext(), userID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(user)
	}
}

// UpdateProfile overwrites the editable profile fields.
func UpdateProfile(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := userIDFromHeader(c)
		if userID == "" {
			return writeError(c, fiber.StatusUnauthorized, "USER_REQUIRED", "missing user identity")
		}

		var upd service.ProfileUpdate
		if err := c.BodyParser(&upd); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		user, err := svc.Update(c.UserContext(), userID, upd)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(user)
	}
}
