package mocks

import (
	"context"
	"encoding/json"

	"github.com/404DEVR/gym-agent/internal/assistant"
	"github.com/404DEVR/gym-agent/internal/genai"
	"github.com/stretchr/testify/mock"
)

// MockAgentClient stands in for the conversational agent API.
type MockAgentClient struct {
	mock.Mock
}

func (m *MockAgentClient) Chat(ctx context.Context, message, userID string) (*assistant.ChatResponse, error) {
	args := m.Called(message, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assistant.ChatResponse), args.Error(1)
}

func (m *MockAgentClient) MealPlan(ctx context.Context, req assistant.MealPlanRequest) (json.RawMessage, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

// MockPlanGenerator stands in for the Gemini client.
type MockPlanGenerator struct {
	mock.Mock
}

func (m *MockPlanGenerator) GenerateMealPlan(ctx context.Context, req genai.MealPlanRequest) (json.RawMessage, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockPlanGenerator) GenerateWorkoutPlan(ctx context.Context, req genai.WorkoutPlanRequest) (json.RawMessage, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}
