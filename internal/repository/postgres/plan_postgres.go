package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"bizgenius/internal/model"
	"bizgenius/internal/repository"
)

// PlanPostgres is a PostgreSQL implementation of repository.PlanRepository.
// Profile and sections are stored as JSONB columns; the rest of the row is
// flat. It uses database/sql with parameterized queries and contains no
// business logic.
type PlanPostgres struct {
	db *sql.DB
}

// NewPlanPostgres creates a new PlanPostgres repository.
func NewPlanPostgres(db *sql.DB) *PlanPostgres {
	return &PlanPostgres{db: db}
}

var _ repository.PlanRepository = (*PlanPostgres)(nil)

// Create inserts a new plan row and returns the stored record.
func (r *PlanPostgres) Create(ctx context.Context, p *model.Plan) (*model.Plan, error) {
	profileJSON, err := json.Marshal(p.Profile)
	if err != nil {
		return nil, fmt.Errorf("marshal profile: %w", err)
	}
	sectionsJSON, err := json.Marshal(p.Sections)
	if err != nil {
		return nil, fmt.Errorf("marshal sections: %w", err)
	}

	const q = `
		INSERT INTO business_plans (id, user_id, title, industry, status, profile, sections, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, user_id, title, industry, status, profile, sections, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		p.ID,
		p.UserID,
		p.Title,
		p.Industry,
		p.Status,
		profileJSON,
		sectionsJSON,
		p.CreatedAt,
	)
	return scanPlan(row)
}

// FindByID fetches a single plan by its ID.
func (r *PlanPostgres) FindByID(ctx context.Context, id string) (*model.Plan, error) {
	const q = `
		SELECT id, user_id, title, industry, status, profile, sections, created_at
		FROM business_plans
		WHERE id = $1
	`
	return scanPlan(r.db.QueryRowContext(ctx, q, id))
}

// ListByUser returns a user's plans using LIMIT/OFFSET pagination and a total count.
func (r *PlanPostgres) ListByUser(ctx context.Context, userID string, pq repository.PageQuery) (*repository.PageResult[model.Plan], error) {
	const qCount = `SELECT COUNT(*) FROM business_plans WHERE user_id = $1`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount, userID).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT id, user_id, title, industry, status, profile, sections, created_at
		FROM business_plans
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.QueryContext(ctx, qList, userID, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Plan, 0)
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Plan]{
		Items: items,
		Total: total,
	}, nil
}

// UpdateStatus sets the status column; it reports sql.ErrNoRows when the plan
// does not exist.
func (r *PlanPostgres) UpdateStatus(ctx context.Context, id, status string) error {
	const q = `UPDATE business_plans SET status = $2 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id, status)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a plan by ID. It does not return an error if the row does not exist.
func (r *PlanPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM business_plans WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}

// rowScanner lets scanPlan work with both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlan(row rowScanner) (*model.Plan, error) {
	var (
		p            model.Plan
		profileJSON  []byte
		sectionsJSON []byte
	)
	if err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Title,
		&p.Industry,
		&p.Status,
		&profileJSON,
		&sectionsJSON,
		&p.CreatedAt,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(profileJSON, &p.Profile); err != nil {
		return nil, fmt.Errorf("unmarshal profile: %w", err)
	}
	if err := json.Unmarshal(sectionsJSON, &p.Sections); err != nil {
		return nil, fmt.Errorf("unmarshal sections: %w", err)
	}
	return &p, nil
}
