package repository

import (
	"context"

	"bizgenius/internal/model"
)

// UserRepository defines data access for profile records.
type UserRepository interface {
	// FindByID returns a user by ID.
	FindByID(ctx context.Context, id string) (*model.User, error)

	// Update persists the editable profile fields and returns the stored row.
	Update(ctx context.Context, u *model.User) (*model.User, error)
}
