package repository

import (
	"context"
	"time"

	"bizgenius/internal/model"
)

// CourseRepository defines read access to the course catalog.
// Catalog rows are seeded by the migration; the API never writes them.
type CourseRepository interface {
	// FindByID returns a course by its ID.
	FindByID(ctx context.Context, id string) (*model.Course, error)

	// List returns a paginated catalog page, optionally filtered by category.
	// An empty category matches all courses.
	List(ctx context.Context, category string, pq PageQuery) (*PageResult[model.Course], error)
}

// EnrollmentRepository defines data access for course enrollments.
type EnrollmentRepository interface {
	// Create inserts a new enrollment row.
	Create(ctx context.Context, e *model.Enrollment) (*model.Enrollment, error)

	// FindByUserAndCourse returns the enrollment for a (user, course) pair.
	FindByUserAndCourse(ctx context.Context, userID, courseID string) (*model.Enrollment, error)

	// UpdateProgress sets progress and completion time for an enrollment and
	// returns the updated row.
	UpdateProgress(ctx context.Context, id string, progress int, completedAt *time.Time) (*model.Enrollment, error)

	// ListByUser returns all of a user's enrollments, newest first.
	ListByUser(ctx context.Context, userID string) ([]model.Enrollment, error)
}
