package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/eino/schema"
	"github.com/google/uuid"

	"bizgenius/internal/llm"
	"bizgenius/internal/model"
	"bizgenius/internal/plan"
	"bizgenius/internal/repository"
	"bizgenius/internal/storage"
)

const planSystemPrompt = "You are an experienced business consultant who writes clear, actionable business plans."

const exportURLExpiry = time.Hour

// PlanListResult is the service-level DTO for paginated plans.
type PlanListResult struct {
	Items []model.Plan `json:"data"`
	Total int          `json:"total"`
}

// PlanService defines the use cases for generating and managing business plans.
type PlanService interface {
	// Generate builds the prompt from the profile, runs one completion, and
	// persists the parsed result as a new draft plan.
	Generate(ctx context.Context, userID string, profile model.BusinessProfile) (*model.Plan, error)

	// Revise re-runs generation for an existing plan with extra instructions.
	// The result is stored as a brand new plan; the original is untouched.
	Revise(ctx context.Context, userID, planID, instructions string) (*model.Plan, error)

	// List returns the user's plans using limit/offset and a total count.
	List(ctx context.Context, userID string, limit, offset int) (*PlanListResult, error)

	// Get returns one of the user's plans by ID.
	Get(ctx context.Context, userID, id string) (*model.Plan, error)

	// SetStatus moves a plan between draft and complete.
	SetStatus(ctx context.Context, userID, id, status string) error

	// Delete removes a plan and its export object, if one exists.
	Delete(ctx context.Context, userID, id string) error

	// Export uploads the flat-text rendering to object storage and returns a
	// time-limited download URL.
	Export(ctx context.Context, userID, id string) (string, error)
}

// planService is a concrete implementation of PlanService.
type planService struct {
	chat  llm.Chat
	repo  repository.PlanRepository
	store storage.Storage
}

// NewPlanService constructs a new PlanService.
func NewPlanService(chat llm.Chat, repo repository.PlanRepository, store storage.Storage) PlanService {
	return &planService{chat: chat, repo: repo, store: store}
}

func (s *planService) Generate(ctx context.Context, userID string, profile model.BusinessProfile) (*model.Plan, error) {
	if userID == "" {
		return nil, ErrIDRequired
	}
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	raw, err := s.complete(ctx, plan.BuildPrompt(profile))
	if err != nil {
		return nil, err
	}

	doc := &model.Plan{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     profile.BusinessName + " Business Plan",
		Industry:  profile.Industry,
		Status:    model.PlanStatusDraft,
		Profile:   profile,
		Sections:  plan.ParseSections(raw),
		CreatedAt: time.Now().UTC(),
	}
	stored, err := s.repo.Create(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("save plan: %w", err)
	}
	return stored, nil
}

func (s *planService) Revise(ctx context.Context, userID, planID, instructions string) (*model.Plan, error) {
	if strings.TrimSpace(instructions) == "" {
		return nil, ErrInstructionsRequired
	}
	existing, err := s.ownedPlan(ctx, userID, planID)
	if err != nil {
		return nil, err
	}

	raw, err := s.complete(ctx, plan.BuildRevisionPrompt(*existing, instructions))
	if err != nil {
		return nil, err
	}

	// A revision is a new row; the prior plan stays in the user's list.
	doc := &model.Plan{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     existing.Title,
		Industry:  existing.Industry,
		Status:    model.PlanStatusDraft,
		Profile:   existing.Profile,
		Sections:  plan.ParseSections(raw),
		CreatedAt: time.Now().UTC(),
	}
	stored, err := s.repo.Create(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("save plan: %w", err)
	}
	return stored, nil
}

// List returns paginated plans without exposing repository types.
func (s *planService) List(ctx context.Context, userID string, limit, offset int) (*PlanListResult, error) {
	if userID == "" {
		return nil, ErrIDRequired
	}
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.ListByUser(ctx, userID, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &PlanListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *planService) Get(ctx context.Context, userID, id string) (*model.Plan, error) {
	return s.ownedPlan(ctx, userID, id)
}

func (s *planService) SetStatus(ctx context.Context, userID, id, status string) error {
	if status != model.PlanStatusDraft && status != model.PlanStatusComplete {
		return ErrInvalidStatus
	}
	if _, err := s.ownedPlan(ctx, userID, id); err != nil {
		return err
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *planService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.ownedPlan(ctx, userID, id); err != nil {
		return err
	}
	// The export object may never have been created; its removal is best
	// effort and must not block deleting the row.
	_ = s.store.Delete(ctx, exportKey(id))
	return s.repo.Delete(ctx, id)
}

func (s *planService) Export(ctx context.Context, userID, id string) (string, error) {
	doc, err := s.ownedPlan(ctx, userID, id)
	if err != nil {
		return "", err
	}

	text := plan.RenderText(*doc)
	key := exportKey(id)
	_, err = s.store.Put(ctx, key, strings.NewReader(text), storage.PutObjectOptions{
		Size:        int64(len(text)),
		ContentType: "text/plain; charset=utf-8",
		Metadata: map[string]string{
			"plan-title": doc.Title,
		},
	})
	if err != nil {
		return "", fmt.Errorf("upload export: %w", err)
	}

	url, err := s.store.PresignGet(ctx, key, exportURLExpiry)
	if err != nil {
		return "", fmt.Errorf("presign export: %w", err)
	}
	return url, nil
}

// complete runs one completion and rejects blank output.
func (s *planService) complete(ctx context.Context, prompt string) (string, error) {
	messages := []*schema.Message{
		{Role: schema.System, Content: planSystemPrompt},
		{Role: schema.User, Content: prompt},
	}
	raw, err := s.chat.Complete(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("generate plan: %w", err)
	}
	if strings.TrimSpace(raw) == "" {
		return "", ErrEmptyCompletion
	}
	return raw, nil
}

// ownedPlan loads a plan and verifies it belongs to the caller. Plans of
// other users are reported as not found rather than forbidden.
func (s *planService) ownedPlan(ctx context.Context, userID, id string) (*model.Plan, error) {
	if userID == "" || id == "" {
		return nil, ErrIDRequired
	}
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if doc.UserID != userID {
		return nil, ErrNotFound
	}
	return doc, nil
}

func validateProfile(p model.BusinessProfile) error {
	required := []string{
		p.BusinessName,
		p.Industry,
		p.BusinessType,
		p.Location,
		p.TargetAudience,
		p.UniqueValue,
	}
	for _, v := range required {
		if strings.TrimSpace(v) == "" {
			return ErrProfileIncomplete
		}
	}
	return nil
}

func exportKey(planID string) string {
	return "exports/" + planID + ".txt"
}
