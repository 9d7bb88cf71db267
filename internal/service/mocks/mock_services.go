package mocks

import (
	"context"

	"bizgenius/internal/model"
	"bizgenius/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockPlanService struct {
	mock.Mock
}

func (m *MockPlanService) Generate(ctx context.Context, userID string, profile model.BusinessProfile) (*model.Plan, error) {
	args := m.Called(ctx, userID, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Plan), args.Error(1)
}

func (m *MockPlanService) Revise(ctx context.Context, userID, planID, instructions string) (*model.Plan, error) {
	args := m.Called(ctx, userID, planID, instructions)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Plan), args.Error(1)
}

func (m *MockPlanService) List(ctx context.Context, userID string, limit, offset int) (*service.PlanListResult, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PlanListResult), args.Error(1)
}

func (m *MockPlanService) Get(ctx context.Context, userID, id string) (*model.Plan, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Plan), args.Error(1)
}

func (m *MockPlanService) SetStatus(ctx context.Context, userID, id, status string) error {
	args := m.Called(ctx, userID, id, status)
	return args.Error(0)
}

func (m *MockPlanService) Delete(ctx context.Context, userID, id string) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockPlanService) Export(ctx context.Context, userID, id string) (string, error) {
	args := m.Called(ctx, userID, id)
	return args.String(0), args.Error(1)
}

type MockChatService struct {
	mock.Mock
}

func (m *MockChatService) Send(ctx context.Context, userID, content string) (*model.ChatMessage, error) {
	args := m.Called(ctx, userID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ChatMessage), args.Error(1)
}

func (m *MockChatService) History(ctx context.Context, userID string, limit int) ([]model.ChatMessage, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ChatMessage), args.Error(1)
}

func (m *MockChatService) Clear(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockCourseService struct {
	mock.Mock
}

func (m *MockCourseService) List(ctx context.Context, category string, limit, offset int) (*service.CourseListResult, error) {
	args := m.Called(ctx, category, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CourseListResult), args.Error(1)
}

func (m *MockCourseService) Get(ctx context.Context, id string) (*model.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Course), args.Error(1)
}

type MockProgressService struct {
	mock.Mock
}

func (m *MockProgressService) Enroll(ctx context.Context, userID, courseID string) (*model.Enrollment, error) {
	args := m.Called(ctx, userID, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Enrollment), args.Error(1)
}

func (m *MockProgressService) UpdateProgress(ctx context.Context, userID, courseID string, progress int) (*model.Enrollment, error) {
	args := m.Called(ctx, userID, courseID, progress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Enrollment), args.Error(1)
}

func (m *MockProgressService) Summary(ctx context.Context, userID string) (*service.ProgressSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ProgressSummary), args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Get(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) Update(ctx context.Context, id string, upd service.ProfileUpdate) (*model.User, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}
