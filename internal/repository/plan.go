package repository

import (
	"context"

	"bizgenius/internal/model"
)

// PlanRepository defines data access for generated business plans using SQL
// queries only. No business logic here — strictly persistence operations.
type PlanRepository interface {
	// Create inserts a new plan record and returns the stored row.
	Create(ctx context.Context, p *model.Plan) (*model.Plan, error)

	// FindByID returns a plan by its ID.
	FindByID(ctx context.Context, id string) (*model.Plan, error)

	// ListByUser returns a paginated list of a user's plans, newest first,
	// and the total row count.
	ListByUser(ctx context.Context, userID string, pq PageQuery) (*PageResult[model.Plan], error)

	// UpdateStatus sets the status column for a plan.
	UpdateStatus(ctx context.Context, id, status string) error

	// Delete removes a plan by ID. It returns nil if the row was deleted or did not exist.
	Delete(ctx context.Context, id string) error
}
