package postgres

import (
	"context"
	"database/sql"
	"time"

	"bizgenius/internal/model"
	"bizgenius/internal/repository"
)

// EnrollmentPostgres is a PostgreSQL implementation of repository.EnrollmentRepository.
type EnrollmentPostgres struct {
	db *sql.DB
}

// NewEnrollmentPostgres creates a new EnrollmentPostgres repository.
func NewEnrollmentPostgres(db *sql.DB) *EnrollmentPostgres {
	return &EnrollmentPostgres{db: db}
}

var _ repository.EnrollmentRepository = (*EnrollmentPostgres)(nil)

// Create inserts a new enrollment row and returns the stored record.
func (r *EnrollmentPostgres) Create(ctx context.Context, e *model.Enrollment) (*model.Enrollment, error) {
	const q = `
		INSERT INTO enrollments (id, user_id, course_id, progress, enrolled_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, course_id, progress, completed_at, enrolled_at, updated_at
	`
	row := r.db.QueryRowContext(ctx, q,
		e.ID,
		e.UserID,
		e.CourseID,
		e.Progress,
		e.EnrolledAt,
		e.UpdatedAt,
	)
	return scanEnrollment(row)
}

// FindByUserAndCourse fetches the enrollment for a (user, course) pair.
func (r *EnrollmentPostgres) FindByUserAndCourse(ctx context.Context, userID, courseID string) (*model.Enrollment, error) {
	const q = `
		SELECT id, user_id, course_id, progress, completed_at, enrolled_at, updated_at
		FROM enrollments
		WHERE user_id = $1 AND course_id = $2
	`
	return scanEnrollment(r.db.QueryRowContext(ctx, q, userID, courseID))
}

// UpdateProgress sets progress and completion time and returns the updated row.
func (r *EnrollmentPostgres) UpdateProgress(ctx context.Context, id string, progress int, completedAt *time.Time) (*model.Enrollment, error) {
	const q = `
		UPDATE enrollments
		SET progress = $2, completed_at = $3, updated_at = now()
		WHERE id = $1
		RETURNING id, user_id, course_id, progress, completed_at, enrolled_at, updated_at
	`
	return scanEnrollment(r.db.QueryRowContext(ctx, q, id, progress, completedAt))
}

// ListByUser returns all of a user's enrollments, newest first.
func (r *EnrollmentPostgres) ListByUser(ctx context.Context, userID string) ([]model.Enrollment, error) {
	const q = `
		SELECT id, user_id, course_id, progress, completed_at, enrolled_at, updated_at
		FROM enrollments
		WHERE user_id = $1
		ORDER BY enrolled_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Enrollment, 0)
	for rows.Next() {
		e, err := scanEnrollment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func scanEnrollment(row rowScanner) (*model.Enrollment, error) {
	var (
		e           model.Enrollment
		completedAt sql.NullTime
	)
	if err := row.Scan(
		&e.ID,
		&e.UserID,
		&e.CourseID,
		&e.Progress,
		&completedAt,
		&e.EnrolledAt,
		&e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if completedAt.Valid {
		t := completedAt.Time
		e.CompletedAt = &t
	}
	return &e, nil
}
