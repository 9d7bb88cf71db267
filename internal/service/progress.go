package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"bizgenius/internal/model"
	"bizgenius/internal/repository"
)

// ProgressSummary aggregates a user's learning state for the dashboard.
type ProgressSummary struct {
	Enrolled    int                `json:"enrolled"`
	Completed   int                `json:"completed"`
	Enrollments []model.Enrollment `json:"enrollments"`
}

// ProgressService defines the use cases for course enrollment and progress.
type ProgressService interface {
	// Enroll creates a new enrollment at 0% progress.
	Enroll(ctx context.Context, userID, courseID string) (*model.Enrollment, error)

	// UpdateProgress sets the completion percentage for an enrollment.
	// Values are clamped to [0, 100]; reaching 100 stamps CompletedAt.
	UpdateProgress(ctx context.Context, userID, courseID string, progress int) (*model.Enrollment, error)

	// Summary returns enrollment counts plus the per-course breakdown.
	Summary(ctx context.Context, userID string) (*ProgressSummary, error)
}

type progressService struct {
	enrollments repository.EnrollmentRepository
	courses     repository.CourseRepository
}

// NewProgressService constructs a new ProgressService.
func NewProgressService(enrollments repository.EnrollmentRepository, courses repository.CourseRepository) ProgressService {
	return &progressService{enrollments: enrollments, courses: courses}
}

func (s *progressService) Enroll(ctx context.Context, userID, courseID string) (*model.Enrollment, error) {
	if userID == "" || courseID == "" {
		return nil, ErrIDRequired
	}

	// The course must exist before an enrollment row references it.
	if _, err := s.courses.FindByID(ctx, courseID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if _, err := s.enrollments.FindByUserAndCourse(ctx, userID, courseID); err == nil {
		return nil, ErrAlreadyEnrolled
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	now := time.Now().UTC()
	stored, err := s.enrollments.Create(ctx, &model.Enrollment{
		ID:         uuid.New().String(),
		UserID:     userID,
		CourseID:   courseID,
		Progress:   0,
		EnrolledAt: now,
		UpdatedAt:  now,
	})
	if err != nil {
		return nil, fmt.Errorf("save enrollment: %w", err)
	}
	return stored, nil
}

func (s *progressService) UpdateProgress(ctx context.Context, userID, courseID string, progress int) (*model.Enrollment, error) {
	if userID == "" || courseID == "" {
		return nil, ErrIDRequired
	}

	enr, err := s.enrollments.FindByUserAndCourse(ctx, userID, courseID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotEnrolled
		}
		return nil, err
	}

	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}

	var completedAt *time.Time
	if progress == 100 {
		if enr.CompletedAt != nil {
			completedAt = enr.CompletedAt
		} else {
			now := time.Now().UTC()
			completedAt = &now
		}
	}

	return s.enrollments.UpdateProgress(ctx, enr.ID, progress, completedAt)
}

func (s *progressService) Summary(ctx context.Context, userID string) (*ProgressSummary, error) {
	if userID == "" {
		return nil, ErrIDRequired
	}

	items, err := s.enrollments.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := &ProgressSummary{Enrolled: len(items), Enrollments: items}
	for _, e := range items {
		if e.CompletedAt != nil {
			summary.Completed++
		}
	}
	return summary, nil
}
