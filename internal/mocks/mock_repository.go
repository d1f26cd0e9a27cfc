package mocks

import (
	"context"

	"github.com/404DEVR/gym-agent/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Shared MockUserProfileRepository
type MockUserProfileRepository struct {
	mock.Mock
}

func (m *MockUserProfileRepository) Create(profile *models.UserProfile) error {
	args := m.Called(profile)
	return args.Error(0)
}

func (m *MockUserProfileRepository) FindByUserID(userID uuid.UUID) (*models.UserProfile, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

func (m *MockUserProfileRepository) Update(profile *models.UserProfile) error {
	args := m.Called(profile)
	return args.Error(0)
}

func (m *MockUserProfileRepository) Upsert(profile *models.UserProfile) error {
	args := m.Called(profile)
	return args.Error(0)
}

func (m *MockUserProfileRepository) DeleteByUserID(userID uuid.UUID) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockUserProfileRepository) Patch(userID uuid.UUID, data map[string]interface{}) error {
	args := m.Called(userID, data)
	return args.Error(0)
}

// Shared MockMealPlanRepository
type MockMealPlanRepository struct {
	mock.Mock
}

func (m *MockMealPlanRepository) Create(plan *models.MealPlan) error {
	args := m.Called(plan)
	return args.Error(0)
}

func (m *MockMealPlanRepository) FindByID(id uuid.UUID) (*models.MealPlan, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MealPlan), args.Error(1)
}

func (m *MockMealPlanRepository) FindAllByUserID(userID uuid.UUID) ([]models.MealPlan, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MealPlan), args.Error(1)
}

func (m *MockMealPlanRepository) DeleteByIDAndUserID(id, userID uuid.UUID) error {
	args := m.Called(id, userID)
	return args.Error(0)
}

// Shared MockWorkoutPlanRepository
type MockWorkoutPlanRepository struct {
	mock.Mock
}

func (m *MockWorkoutPlanRepository) Create(plan *models.WorkoutPlan) error {
	args := m.Called(plan)
	return args.Error(0)
}

func (m *MockWorkoutPlanRepository) FindByID(id uuid.UUID) (*models.WorkoutPlan, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WorkoutPlan), args.Error(1)
}

func (m *MockWorkoutPlanRepository) FindAllByUserID(userID uuid.UUID) ([]models.WorkoutPlan, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WorkoutPlan), args.Error(1)
}

func (m *MockWorkoutPlanRepository) FindLatestByUserID(userID uuid.UUID) (*models.WorkoutPlan, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WorkoutPlan), args.Error(1)
}

func (m *MockWorkoutPlanRepository) Update(plan *models.WorkoutPlan) error {
	args := m.Called(plan)
	return args.Error(0)
}

func (m *MockWorkoutPlanRepository) DeleteByIDAndUserID(id, userID uuid.UUID) error {
	args := m.Called(id, userID)
	return args.Error(0)
}

// MockDraftStore stands in for the redis-backed session store.
type MockDraftStore struct {
	mock.Mock
}

func (m *MockDraftStore) GetDraft(ctx context.Context, userID string) (*models.ProfileDraft, bool, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.ProfileDraft), args.Bool(1), args.Error(2)
}

func (m *MockDraftStore) SaveDraft(ctx context.Context, userID string, draft *models.ProfileDraft) error {
	args := m.Called(userID, draft)
	return args.Error(0)
}

func (m *MockDraftStore) DeleteDraft(ctx context.Context, userID string) error {
	args := m.Called(userID)
	return args.Error(0)
}
