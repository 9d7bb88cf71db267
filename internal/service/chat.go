package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/eino/schema"
	"github.com/google/uuid"

	"bizgenius/internal/llm"
	"bizgenius/internal/model"
	"bizgenius/internal/repository"
)

const mentorSystemPrompt = "You are BizGenius, a friendly business mentor. Answer questions about entrepreneurship, strategy, marketing, and finance with practical, concrete advice. Keep answers focused and avoid filler."

// ChatService defines the use cases for the assistant conversation.
type ChatService interface {
	// Send records the user message, replays recent history to the model,
	// and returns the persisted assistant reply.
	Send(ctx context.Context, userID, content string) (*model.ChatMessage, error)

	// History returns up to limit recent messages, oldest first.
	History(ctx context.Context, userID string, limit int) ([]model.ChatMessage, error)

	// Clear wipes the user's conversation.
	Clear(ctx context.Context, userID string) error
}

// chatService is a concrete implementation of ChatService.
type chatService struct {
	chat         llm.Chat
	repo         repository.ChatRepository
	historyLimit int
}

// NewChatService constructs a new ChatService. historyLimit caps how many
// stored messages are replayed to the model per request.
func NewChatService(chat llm.Chat, repo repository.ChatRepository, historyLimit int) ChatService {
	if historyLimit <= 0 {
		historyLimit = 20
	}
	return &chatService{chat: chat, repo: repo, historyLimit: historyLimit}
}

func (s *chatService) Send(ctx context.Context, userID, content string) (*model.ChatMessage, error) {
	if userID == "" {
		return nil, ErrIDRequired
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrMessageRequired
	}

	history, err := s.repo.ListRecent(ctx, userID, s.historyLimit)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	messages := make([]*schema.Message, 0, len(history)+2)
	messages = append(messages, &schema.Message{Role: schema.System, Content: mentorSystemPrompt})
	for _, m := range history {
		role := schema.User
		if m.Role == model.ChatRoleAssistant {
			role = schema.Assistant
		}
		messages = append(messages, &schema.Message{Role: role, Content: m.Content})
	}
	messages = append(messages, &schema.Message{Role: schema.User, Content: content})

	reply, err := s.chat.Complete(ctx, messages)
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if strings.TrimSpace(reply) == "" {
		return nil, ErrEmptyCompletion
	}

	now := time.Now().UTC()
	if _, err := s.repo.Create(ctx, &model.ChatMessage{
		ID:        uuid.New().String(),
		UserID:    userID,
		Role:      model.ChatRoleUser,
		Content:   content,
		CreatedAt: now,
	}); err != nil {
		return nil, fmt.Errorf("save user message: %w", err)
	}

	// The assistant row must sort strictly after the user row; history reads
	// order by created_at, and IDs are random.
	stored, err := s.repo.Create(ctx, &model.ChatMessage{
		ID:        uuid.New().String(),
		UserID:    userID,
		Role:      model.ChatRoleAssistant,
		Content:   reply,
		CreatedAt: now.Add(time.Microsecond),
	})
	if err != nil {
		return nil, fmt.Errorf("save assistant message: %w", err)
	}
	return stored, nil
}

func (s *chatService) History(ctx context.Context, userID string, limit int) ([]model.ChatMessage, error) {
	if userID == "" {
		return nil, ErrIDRequired
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.repo.ListRecent(ctx, userID, limit)
}

func (s *chatService) Clear(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrIDRequired
	}
	return s.repo.DeleteByUser(ctx, userID)
}
