package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"bizgenius/internal/service"
)

type updateProgressRequest struct {
	Progress int `json:"progress"`
}

// EnrollCourse enrolls the user in a course at 0% progress.
func EnrollCourse(svc service.ProgressService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := userIDFromHeader(c)
		if userID == "" {
			return writeError(c, fiber.StatusUnauthorized, "USER_REQUIRED", "missing user identity")
		}

		courseID := c.Params("id")
		if _, err := uuid.Parse(courseID); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		enr, err := svc.Enroll(c.UserContext(), userID, courseID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(enr)
	}
}

// UpdateCourseProgress sets the completion percentage for an enrollment.
func UpdateCourseProgress(svc service.ProgressService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := userIDFromHeader(c)
		if userID == "" {
			return writeError(c, fiber.StatusUnauthorized, "USER_REQUIRED", "missing user identity")
		}

		courseID := c.Params("id")
		if _, err := uuid.Parse(courseID); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		var req updateProgressRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		enr, err := svc.UpdateProgress(c.UserContext(), userID, courseID, req.Progress)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(enr)
	}
}

// ProgressOverview returns the user's learning summary for the dashboard.
func ProgressOverview(svc service.ProgressService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := userIDFromHeader(c)
		if userID == "" {
			return writeError(c, fiber.StatusUnauthorized, "USER_REQUIRED", "missing user identity")
		}

		summary, err := svc.Summary(c.UserContext(), userID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(summary)
	}
}
