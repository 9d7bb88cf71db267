package postgres

import (
	"context"
	"database/sql"

	"bizgenius/internal/model"
	"bizgenius/internal/repository"
)

// ChatPostgres is a PostgreSQL implementation of repository.ChatRepository.
type ChatPostgres struct {
	db *sql.DB
}

// NewChatPostgres creates a new ChatPostgres repository.
func NewChatPostgres(db *sql.DB) *ChatPostgres {
	return &ChatPostgres{db: db}
}

var _ repository.ChatRepository = (*ChatPostgres)(nil)

// Create inserts a new chat message row and returns the stored record.
func (r *ChatPostgres) Create(ctx context.Context, m *model.ChatMessage) (*model.ChatMessage, error) {
	const q = `
		INSERT INTO chat_messages (id, user_id, role, content, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, role, content, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		m.ID,
		m.UserID,
		m.Role,
		m.Content,
		m.CreatedAt,
	)
	var out model.ChatMessage
	if err := row.Scan(
		&out.ID,
		&out.UserID,
		&out.Role,
		&out.Content,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListRecent returns the user's last limit messages in chronological order.
// The inner query selects newest-first; the outer one flips the page so the
// result reads oldest to newest.
func (r *ChatPostgres) ListRecent(ctx context.Context, userID string, limit int) ([]model.ChatMessage, error) {
	const q = `
		SELECT id, user_id, role, content, created_at FROM (
			SELECT id, user_id, role, content, created_at
			FROM chat_messages
			WHERE user_id = $1
			ORDER BY created_at DESC, id DESC
			LIMIT $2
		) AS recent
		ORDER BY created_at ASC, id ASC
	`
	rows, err := r.db.QueryContext(ctx, q, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ChatMessage, 0)
	for rows.Next() {
		var m model.ChatMessage
		if err := rows.Scan(
			&m.ID,
			&m.UserID,
			&m.Role,
			&m.Content,
			&m.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// DeleteByUser removes the user's entire history. Missing rows are not an error.
func (r *ChatPostgres) DeleteByUser(ctx context.Context, userID string) error {
	const q = `DELETE FROM chat_messages WHERE user_id = $1`
	res, err := r.db.ExecContext(ctx, q, userID)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}
