package mocks

import (
	"context"

	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/mock"
)

type MockChat struct {
	mock.Mock
}

func (m *MockChat) Complete(ctx context.Context, messages []*schema.Message) (string, error) {
	args := m.Called(ctx, messages)
	return args.String(0), args.Error(1)
}
