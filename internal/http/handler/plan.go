package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"bizgenius/internal/model"
	"bizgenius/internal/service"
)

type revisePlanRequest struct {
	Instructions string `json:"instructions"`
}

type setPlanStatusRequest struct {
	Status string `json:"status"`
}

// GeneratePlan creates a new business plan from the posted profile.
func GeneratePlan(svc service.PlanService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := userIDFromHeader(c)
		if userID == "" {
			return writeError(c, fiber.StatusUnauthorized, "USER_REQUIRED", "missing user identity")
		}

		var profile model.BusinessProfile
		if err := c.BodyParser(&profile); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		plan, err := svc.Generate(c.UserContext(), userID, profile)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(plan)
	}
}

// RevisePlan generates a new plan from an existing one plus instructions.
func RevisePlan(svc service.PlanService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := userIDFromHeader(c)
		if userID == "" {
			return writeError(c, fiber.StatusUnauthorized, "USER_REQUIRED", "missing user identity")
		}

		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		var req revisePlanRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		plan, err := svc.Revise(c.UserContext(), userID, id, req.Instructions)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(plan)
	}
}

// ListPlans returns the user's plans with limit & offset.
func ListPlans(svc service.PlanService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := userIDFromHeader(c)
		if userID == "" {
			return writeError(c, fiber.StatusUnauthorized, "USER_REQUIRED", "missing user identity")
		}

		limit, err := strconv.Atoi(c.Query("limit", "10"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		res, err := svc.List(c.UserContext(), userID, limit, offset)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// GetPlan returns one of the user's plans by ID.
func GetPlan(svc service.PlanService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := userIDFromHeader(c)
		if userID == "" {
			return writeError(c, fiber.StatusUnauthorized, "USER_REQUIRED", "missing user identity")
		}

		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		plan, err := svc.Get(c.UserContext(), userID, id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(plan)
	}
}

// SetPlanStatus moves a plan between draft and complete.
func SetPlanStatus(svc service.PlanService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := userIDFromHeader(c)
		if userID == "" {
			return writeError(c, fiber.StatusUnauthorized, "USER_REQUIRED", "missing user identity")
		}

		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		var req setPlanStatusRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		if err := svc.SetStatus(c.UserContext(), userID, id, req.Status); err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"id": id, "status": req.Status})
	}
}

// DeletePlan removes a plan and its export object.
func DeletePlan(svc service.PlanService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := userIDFromHeader(c)
		if userID == "" {
			return writeError(c, fiber.StatusUnauthorized, "USER_REQUIRED", "missing user identity")
		}

		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		if err := svc.Delete(c.UserContext(), userID, id); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// ExportPlan returns a time-limited download URL for the flat-text export.
func ExportPlan(svc service.PlanService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := userIDFromHeader(c)
		if userID == "" {
			return writeError(c, fiber.StatusUnauthorized, "USER_REQUIRED", "missing user identity")
		}

		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		url, err := svc.Export(c.UserContext(), userID, id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"url": url})
	}
}
