package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"bizgenius/internal/model"
	repoMocks "bizgenius/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProgressService_Enroll(t *testing.T) {
	ctx := context.Background()
	course := &model.Course{ID: "course-id", Title: "Business Fundamentals"}

	t.Run("happy path", func(t *testing.T) {
		mEnr := new(repoMocks.MockEnrollmentRepository)
		mCourses := new(repoMocks.MockCourseRepository)
		svc := NewProgressService(mEnr, mCourses)

		mCourses.On("FindByID", ctx, "course-id").Return(course, nil)
		mEnr.On("FindByUserAndCourse", ctx, "user-id", "course-id").Return(nil, sql.ErrNoRows)
		mEnr.On("Create", ctx, mock.MatchedBy(func(e *model.Enrollment) bool {
			return e.UserID == "user-id" && e.CourseID == "course-id" && e.Progress == 0
		})).Return(&model.Enrollment{ID: "enr-id", Progress: 0}, nil)

		got, err := svc.Enroll(ctx, "user-id", "course-id")

		require.NoError(t, err)
		assert.Equal(t, "enr-id", got.ID)
		mEnr.AssertExpectations(t)
	})

	t.Run("unknown course", func(t *testing.T) {
		mCourses := new(repoMocks.MockCourseRepository)
		svc := NewProgressService(new(repoMocks.MockEnrollmentRepository), mCourses)

		mCourses.On("FindByID", ctx, "missing").Return(nil, sql.ErrNoRows)

		_, err := svc.Enroll(ctx, "user-id", "missing")

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("double enrollment", func(t *testing.T) {
		mEnr := new(repoMocks.MockEnrollmentRepository)
		mCourses := new(repoMocks.MockCourseRepository)
		svc := NewProgressService(mEnr, mCourses)

		mCourses.On("FindByID", ctx, "course-id").Return(course, nil)
		mEnr.On("FindByUserAndCourse", ctx, "user-id", "course-id").
			Return(&model.Enrollment{ID: "enr-id"}, nil)

		_, err := svc.Enroll(ctx, "user-id", "course-id")

		assert.ErrorIs(t, err, ErrAlreadyEnrolled)
	})
}

func TestProgressService_UpdateProgress(t *testing.T) {
	ctx := context.Background()

	t.Run("clamps and completes at 100", func(t *testing.T) {
		mEnr := new(repoMocks.MockEnrollmentRepository)
		svc := NewProgressService(mEnr, new(repoMocks.MockCourseRepository))

		mEnr.On("FindByUserAndCourse", ctx, "user-id", "course-id").
			Return(&model.Enrollment{ID: "enr-id", Progress: 80}, nil)
		mEnr.On("UpdateProgress", ctx, "enr-id", 100, mock.MatchedBy(func(ts *time.Time) bool {
			return ts != nil
		})).Return(&model.Enrollment{ID: "enr-id", Progress: 100}, nil)

		got, err := svc.UpdateProgress(ctx, "user-id", "course-id", 140)

		require.NoError(t, err)
		assert.Equal(t, 100, got.Progress)
		mEnr.AssertExpectations(t)
	})

	t.Run("negative input clamps to zero", func(t *testing.T) {
		mEnr := new(repoMocks.MockEnrollmentRepository)
		svc := NewProgressService(mEnr, new(repoMocks.MockCourseRepository))

		mEnr.On("FindByUserAndCourse", ctx, "user-id", "course-id").
			Return(&model.Enrollment{ID: "enr-id", Progress: 10}, nil)
		mEnr.On("UpdateProgress", ctx, "enr-id", 0, (*time.Time)(nil)).
			Return(&model.Enrollment{ID: "enr-id", Progress: 0}, nil)

		got, err := svc.UpdateProgress(ctx, "user-id", "course-id", -3)

		require.NoError(t, err)
		assert.Equal(t, 0, got.Progress)
	})

	t.Run("not enrolled", func(t *testing.T) {
		mEnr := new(repoMocks.MockEnrollmentRepository)
		svc := NewProgressService(mEnr, new(repoMocks.MockCourseRepository))

		mEnr.On("FindByUserAndCourse", ctx, "user-id", "course-id").Return(nil, sql.ErrNoRows)

		_, err := svc.UpdateProgress(ctx, "user-id", "course-id", 50)

		assert.ErrorIs(t, err, ErrNotEnrolled)
	})
}

func TestProgressService_Summary(t *testing.T) {
	ctx := context.Background()

	done := time.Now().UTC()
	mEnr := new(repoMocks.MockEnrollmentRepository)
	svc := NewProgressService(mEnr, new(repoMocks.MockCourseRepository))

	mEnr.On("ListByUser", ctx, "user-id").Return([]model.Enrollment{
		{ID: "e1", Progress: 100, CompletedAt: &done},
		{ID: "e2", Progress: 30},
	}, nil)

	got, err := svc.Summary(ctx, "user-id")

	require.NoError(t, err)
	assert.Equal(t, 2, got.Enrolled)
	assert.Equal(t, 1, got.Completed)
	assert.Len(t, got.Enrollments, 2)
}
