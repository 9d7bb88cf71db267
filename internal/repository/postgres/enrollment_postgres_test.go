package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"bizgenius/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var enrollmentColumns = []string{"id", "user_id", "course_id", "progress", "completed_at", "enrolled_at", "updated_at"}

func TestEnrollmentPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewEnrollmentPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	e := &model.Enrollment{
		ID:         "enr-id",
		UserID:     "user-id",
		CourseID:   "course-id",
		Progress:   0,
		EnrolledAt: now,
		UpdatedAt:  now,
	}

	mock.ExpectQuery("INSERT INTO enrollments").
		WithArgs(e.ID, e.UserID, e.CourseID, e.Progress, e.EnrolledAt, e.UpdatedAt).
		WillReturnRows(sqlmock.NewRows(enrollmentColumns).
			AddRow(e.ID, e.UserID, e.CourseID, e.Progress, nil, e.EnrolledAt, e.UpdatedAt))

	got, err := repo.Create(ctx, e)

	assert.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, e.CourseID, got.CourseID)
	assert.Nil(t, got.CompletedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollmentPostgres_FindByUserAndCourse(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewEnrollmentPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		now := time.Now().UTC()
		mock.ExpectQuery("SELECT (.+) FROM enrollments").
			WithArgs("user-id", "course-id").
			WillReturnRows(sqlmock.NewRows(enrollmentColumns).
				AddRow("enr-id", "user-id", "course-id", 40, nil, now, now))

		got, err := repo.FindByUserAndCourse(ctx, "user-id", "course-id")

		assert.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 40, got.Progress)
	})

	t.Run("not enrolled", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM enrollments").
			WithArgs("user-id", "other-course").
			WillReturnError(sql.ErrNoRows)

		got, err := repo.FindByUserAndCourse(ctx, "user-id", "other-course")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, got)
	})
}

func TestEnrollmentPostgres_UpdateProgress(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewEnrollmentPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	completed := now

	mock.ExpectQuery("UPDATE enrollments").
		WithArgs("enr-id", 100, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(enrollmentColumns).
			AddRow("enr-id", "user-id", "course-id", 100, completed, now, now))

	got, err := repo.UpdateProgress(ctx, "enr-id", 100, &completed)

	assert.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 100, got.Progress)
	require.NotNil(t, got.CompletedAt)
	assert.WithinDuration(t, completed, *got.CompletedAt, time.Second)
	assert.NoError(t, mock.ExpectationsWereMet())
}
