package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"bizgenius/internal/service"
)

type sendMessageRequest struct {
	Message string `json:"message"`
}

// SendChatMessage forwards the user's message to the mentor and returns the reply.
func SendChatMessage(svc service.ChatService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := userIDFromHeader(c)
		if userID == "" {
			return writeError(c, fiber.StatusUnauthorized, "USER_REQUIRED", "missing user identity")
		}

		var req sendMessageRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		reply, err := svc.Send(c.UserContext(), userID, req.Message)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(reply)
	}
}

// ChatHistory returns the user's recent conversation, oldest first.
func ChatHistory(svc service.ChatService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := userIDFromHeader(c)
		if userID == "" {
			return writeError(c, fiber.StatusUnauthorized, "USER_REQUIRED", "missing user identity")
		}

		limit, err := strconv.Atoi(c.Query("limit", "50"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}

		msgs, err := svc.History(c.UserContext(), userID, limit)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"data": msgs})
	}
}

// ClearChat wipes the user's conversation.
func ClearChat(svc service.ChatService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := userIDFromHeader(c)
		if userID == "" {
			return writeError(c, fiber.StatusUnauthorized, "USER_REQUIRED", "missing user identity")
		}

		if err := svc.Clear(c.UserContext(), userID); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
