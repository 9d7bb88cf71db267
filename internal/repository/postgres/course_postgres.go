package postgres

import (
	"context"
	"database/sql"

	"bizgenius/internal/model"
	"bizgenius/internal/repository"
)

// CoursePostgres is a PostgreSQL implementation of repository.CourseRepository.
type CoursePostgres struct {
	db *sql.DB
}

// NewCoursePostgres creates a new CoursePostgres repository.
func NewCoursePostgres(db *sql.DB) *CoursePostgres {
	return &CoursePostgres{db: db}
}

var _ repository.CourseRepository = (*CoursePostgres)(nil)

// FindByID fetches a single course by its ID.
func (r *CoursePostgres) FindByID(ctx context.Context, id string) (*model.Course, error) {
	const q = `
		SELECT id, title, description, category, level, duration_minutes, lessons, created_at
		FROM courses
		WHERE id = $1
	`
	row := r.db.QueryRowContext(ctx, q, id)
	var c model.Course
	if err := row.Scan(
		&c.ID,
		&c.Title,
		&c.Description,
		&c.Category,
		&c.Level,
		&c.DurationMinutes,
		&c.Lessons,
		&c.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns catalog rows using LIMIT/OFFSET pagination and a total count.
// An empty category matches every course.
func (r *CoursePostgres) List(ctx context.Context, category string, pq repository.PageQuery) (*repository.PageResult[model.Course], error) {
	const qCount = `SELECT COUNT(*) FROM courses WHERE ($1 = '' OR category = $1)`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount, category).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT id, title, description, category, level, duration_minutes, lessons, created_at
		FROM courses
		WHERE ($1 = '' OR category = $1)
		ORDER BY title ASC, id ASC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.QueryContext(ctx, qList, category, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Course, 0)
	for rows.Next() {
		var c model.Course
		if err := rows.Scan(
			&c.ID,
			&c.Title,
			&c.Description,
			&c.Category,
			&c.Level,
			&c.DurationMinutes,
			&c.Lessons,
			&c.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Course]{
		Items: items,
		Total: total,
	}, nil
}
