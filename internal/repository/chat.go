package repository

import (
	"context"

	"bizgenius/internal/model"
)

// ChatRepository defines data access for assistant conversation history.
type ChatRepository interface {
	// Create inserts a new chat message row.
	Create(ctx context.Context, m *model.ChatMessage) (*model.ChatMessage, error)

	// ListRecent returns up to limit of the user's most recent messages in
	// chronological order (oldest first), ready to replay to the model.
	ListRecent(ctx context.Context, userID string, limit int) ([]model.ChatMessage, error)

	// DeleteByUser removes the user's entire history.
	DeleteByUser(ctx context.Context, userID string) error
}
