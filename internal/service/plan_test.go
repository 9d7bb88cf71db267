package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"bizgenius/internal/model"
	"bizgenius/internal/repository"
	repoMocks "bizgenius/internal/repository/mocks"
	"bizgenius/internal/storage"
	storeMocks "bizgenius/internal/storage/mocks"

	llmMocks "bizgenius/internal/llm/mocks"

	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func completeProfile() model.BusinessProfile {
	return model.BusinessProfile{
		BusinessName:   "Widget Works",
		Industry:       "Manufacturing",
		BusinessType:   "LLC",
		Location:       "Nairobi",
		TargetAudience: "Hardware startups",
		UniqueValue:    "Same-day prototyping",
	}
}

const generatedPlanText = "1. Executive Summary\nWe sell widgets.\n\n2. Market Analysis\nGrowing market.\n"

func TestPlanService_Generate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		userID     string
		profile    model.BusinessProfile
		setupMocks func(mChat *llmMocks.MockChat, mRepo *repoMocks.MockPlanRepository)
		wantErr    error
		check      func(t *testing.T, p *model.Plan)
	}{
		{
			name:    "happy path",
			userID:  "user-id",
			profile: completeProfile(),
			setupMocks: func(mChat *llmMocks.MockChat, mRepo *repoMocks.MockPlanRepository) {
				mChat.On("Complete", ctx, mock.MatchedBy(func(msgs []*schema.Message) bool {
					return len(msgs) == 2 && msgs[0].Role == schema.System && msgs[1].Role == schema.User
				})).Return(generatedPlanText, nil)
				mRepo.On("Create", ctx, mock.MatchedBy(func(p *model.Plan) bool {
					return p.UserID == "user-id" &&
						p.Status == model.PlanStatusDraft &&
						len(p.Sections) == 2
				})).Return(func(ctx context.Context, p *model.Plan) *model.Plan { return p }, nil)
			},
			check: func(t *testing.T, p *model.Plan) {
				require.Len(t, p.Sections, 2)
				assert.Equal(t, "Executive Summary", p.Sections[0].Title)
				assert.Equal(t, "Widget Works Business Plan", p.Title)
			},
		},
		{
			name:    "missing user id",
			profile: completeProfile(),
			wantErr: ErrIDRequired,
		},
		{
			name:    "incomplete profile",
			userID:  "user-id",
			profile: model.BusinessProfile{BusinessName: "Widget Works"},
			wantErr: ErrProfileIncomplete,
		},
		{
			name:    "completion error",
			userID:  "user-id",
			profile: completeProfile(),
			setupMocks: func(mChat *llmMocks.MockChat, mRepo *repoMocks.MockPlanRepository) {
				mChat.On("Complete", ctx, mock.Anything).Return("", errors.New("backend down"))
			},
			wantErr: nil, // wrapped, checked by message below
		},
		{
			name:    "empty completion",
			userID:  "user-id",
			profile: completeProfile(),
			setupMocks: func(mChat *llmMocks.MockChat, mRepo *repoMocks.MockPlanRepository) {
				mChat.On("Complete", ctx, mock.Anything).Return("   \n  ", nil)
			},
			wantErr: ErrEmptyCompletion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mChat := new(llmMocks.MockChat)
			mRepo := new(repoMocks.MockPlanRepository)
			mStore := new(storeMocks.MockStorage)
			svc := NewPlanService(mChat, mRepo, mStore)

			if tt.setupMocks != nil {
				tt.setupMocks(mChat, mRepo)
			}

			got, err := svc.Generate(ctx, tt.userID, tt.profile)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			case tt.name == "completion error":
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "backend down")
				assert.Nil(t, got)
			default:
				require.NoError(t, err)
				require.NotNil(t, got)
				if tt.check != nil {
					tt.check(t, got)
				}
			}
			mChat.AssertExpectations(t)
			mRepo.AssertExpectations(t)
		})
	}
}

func TestPlanService_Revise(t *testing.T) {
	ctx := context.Background()

	existing := &model.Plan{
		ID:       "plan-id",
		UserID:   "user-id",
		Title:    "Widget Works Business Plan",
		Industry: "Manufacturing",
		Status:   model.PlanStatusComplete,
		Profile:  completeProfile(),
		Sections: []model.Section{{Title: "Executive Summary", Content: "We sell widgets."}},
	}

	t.Run("creates a new plan row", func(t *testing.T) {
		mChat := new(llmMocks.MockChat)
		mRepo := new(repoMocks.MockPlanRepository)
		svc := NewPlanService(mChat, mRepo, new(storeMocks.MockStorage))

		mRepo.On("FindByID", ctx, "plan-id").Return(existing, nil)
		mChat.On("Complete", ctx, mock.Anything).Return(generatedPlanText, nil)
		mRepo.On("Create", ctx, mock.MatchedBy(func(p *model.Plan) bool {
			return p.ID != existing.ID && p.Status == model.PlanStatusDraft && p.Title == existing.Title
		})).Return(func(ctx context.Context, p *model.Plan) *model.Plan { return p }, nil)

		got, err := svc.Revise(ctx, "user-id", "plan-id", "Add a competitor comparison.")

		require.NoError(t, err)
		assert.NotEqual(t, existing.ID, got.ID)
		mRepo.AssertExpectations(t)
	})

	t.Run("blank instructions", func(t *testing.T) {
		svc := NewPlanService(new(llmMocks.MockChat), new(repoMocks.MockPlanRepository), new(storeMocks.MockStorage))

		_, err := svc.Revise(ctx, "user-id", "plan-id", "   ")

		assert.ErrorIs(t, err, ErrInstructionsRequired)
	})

	t.Run("plan of another user is not found", func(t *testing.T) {
		mRepo := new(repoMocks.MockPlanRepository)
		svc := NewPlanService(new(llmMocks.MockChat), mRepo, new(storeMocks.MockStorage))

		mRepo.On("FindByID", ctx, "plan-id").Return(existing, nil)

		_, err := svc.Revise(ctx, "other-user", "plan-id", "tweak it")

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("missing plan", func(t *testing.T) {
		mRepo := new(repoMocks.MockPlanRepository)
		svc := NewPlanService(new(llmMocks.MockChat), mRepo, new(storeMocks.MockStorage))

		mRepo.On("FindByID", ctx, "missing").Return(nil, sql.ErrNoRows)

		_, err := svc.Revise(ctx, "user-id", "missing", "tweak it")

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestPlanService_Export(t *testing.T) {
	ctx := context.Background()

	doc := &model.Plan{
		ID:        "plan-id",
		UserID:    "user-id",
		Title:     "Widget Works Business Plan",
		Industry:  "Manufacturing",
		CreatedAt: time.Now().UTC(),
		Sections:  []model.Section{{Title: "Executive Summary", Content: "We sell widgets."}},
	}

	t.Run("happy path", func(t *testing.T) {
		mRepo := new(repoMocks.MockPlanRepository)
		mStore := new(storeMocks.MockStorage)
		svc := NewPlanService(new(llmMocks.MockChat), mRepo, mStore)

		mRepo.On("FindByID", ctx, "plan-id").Return(doc, nil)
		mStore.On("Put", ctx, "exports/plan-id.txt", mock.Anything, mock.Anything).
			Return(storage.ObjectInfo{Key: "exports/plan-id.txt"}, nil)
		mStore.On("PresignGet", ctx, "exports/plan-id.txt", time.Hour).
			Return("https://minio.local/exports/plan-id.txt?sig=abc", nil)

		url, err := svc.Export(ctx, "user-id", "plan-id")

		require.NoError(t, err)
		assert.Contains(t, url, "exports/plan-id.txt")
		mStore.AssertExpectations(t)
	})

	t.Run("storage failure", func(t *testing.T) {
		mRepo := new(repoMocks.MockPlanRepository)
		mStore := new(storeMocks.MockStorage)
		svc := NewPlanService(new(llmMocks.MockChat), mRepo, mStore)

		mRepo.On("FindByID", ctx, "plan-id").Return(doc, nil)
		mStore.On("Put", ctx, "exports/plan-id.txt", mock.Anything, mock.Anything).
			Return(storage.ObjectInfo{}, errors.New("bucket gone"))

		_, err := svc.Export(ctx, "user-id", "plan-id")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "upload export")
	})
}

func TestPlanService_SetStatus(t *testing.T) {
	ctx := context.Background()

	doc := &model.Plan{ID: "plan-id", UserID: "user-id", Status: model.PlanStatusDraft}

	t.Run("valid transition", func(t *testing.T) {
		mRepo := new(repoMocks.MockPlanRepository)
		svc := NewPlanService(new(llmMocks.MockChat), mRepo, new(storeMocks.MockStorage))

		mRepo.On("FindByID", ctx, "plan-id").Return(doc, nil)
		mRepo.On("UpdateStatus", ctx, "plan-id", model.PlanStatusComplete).Return(nil)

		assert.NoError(t, svc.SetStatus(ctx, "user-id", "plan-id", model.PlanStatusComplete))
		mRepo.AssertExpectations(t)
	})

	t.Run("invalid status", func(t *testing.T) {
		svc := NewPlanService(new(llmMocks.MockChat), new(repoMocks.MockPlanRepository), new(storeMocks.MockStorage))

		assert.ErrorIs(t, svc.SetStatus(ctx, "user-id", "plan-id", "archived"), ErrInvalidStatus)
	})
}

func TestPlanService_List(t *testing.T) {
	ctx := context.Background()

	mRepo := new(repoMocks.MockPlanRepository)
	svc := NewPlanService(new(llmMocks.MockChat), mRepo, new(storeMocks.MockStorage))

	// Defaults are applied before the repository sees the query.
	mRepo.On("ListByUser", ctx, "user-id", repository.PageQuery{Limit: 10, Offset: 0}).
		Return(&repository.PageResult[model.Plan]{Items: []model.Plan{{ID: "p1"}}, Total: 1}, nil)

	res, err := svc.List(ctx, "user-id", 0, -5)

	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)
	require.Len(t, res.Items, 1)
	mRepo.AssertExpectations(t)
}

func TestPlanService_Delete(t *testing.T) {
	ctx := context.Background()

	doc := &model.Plan{ID: "plan-id", UserID: "user-id"}

	mRepo := new(repoMocks.MockPlanRepository)
	mStore := new(storeMocks.MockStorage)
	svc := NewPlanService(new(llmMocks.MockChat), mRepo, mStore)

	mRepo.On("FindByID", ctx, "plan-id").Return(doc, nil)
	// Export object removal is best effort; a failure must not block the delete.
	mStore.On("Delete", ctx, "exports/plan-id.txt").Return(errors.New("no such key"))
	mRepo.On("Delete", ctx, "plan-id").Return(nil)

	assert.NoError(t, svc.Delete(ctx, "user-id", "plan-id"))
	mRepo.AssertExpectations(t)
	mStore.AssertExpectations(t)
}
