package services

import (
	"context"
	"errors"
	"testing"

	"github.com/404DEVR/gym-agent/internal/mocks"
	"github.com/404DEVR/gym-agent/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// fakeDraftStore keeps drafts in memory so multi-turn tests can observe the
// accumulated state between calls.
type fakeDraftStore struct {
	drafts map[string]*models.ProfileDraft
}

func newFakeDraftStore() *fakeDraftStore {
	return &fakeDraftStore{drafts: make(map[string]*models.ProfileDraft)}
}

func (f *fakeDraftStore) GetDraft(ctx context.Context, userID string) (*models.ProfileDraft, bool, error) {
	d, ok := f.drafts[userID]
	if !ok {
		return nil, false, nil
	}
	cp := *d
	return &cp, true, nil
}

func (f *fakeDraftStore) SaveDraft(ctx context.Context, userID string, draft *models.ProfileDraft) error {
	cp := *draft
	f.drafts[userID] = &cp
	return nil
}

func (f *fakeDraftStore) DeleteDraft(ctx context.Context, userID string) error {
	delete(f.drafts, userID)
	return nil
}

func TestApplyMessageNoPersonalInfo(t *testing.T) {
	mockRepo := new(mocks.MockUserProfileRepository)
	store := newFakeDraftStore()
	service := NewProfileService(mockRepo, store)
	userID := uuid.New()

	result, err := service.ApplyMessage(context.Background(), userID, "What should I train today?")

	assert.NoError(t, err)
	assert.Equal(t, models.DraftEmpty, result.State)
	assert.True(t, result.Update.IsEmpty())
	assert.Nil(t, result.Profile)
	assert.Empty(t, store.drafts)
	mockRepo.AssertNotCalled(t, "Upsert", mock.Anything)
}

func TestApplyMessageSingleMessageCompletes(t *testing.T) {
	mockRepo := new(mocks.MockUserProfileRepository)
	store := newFakeDraftStore()
	service := NewProfileService(mockRepo, store)
	userID := uuid.New()

	mockRepo.On("FindByUserID", userID).Return(nil, gorm.ErrRecordNotFound)
	mockRepo.On("Upsert", mock.AnythingOfType("*models.UserProfile")).Return(nil)

	result, err := service.ApplyMessage(context.Background(), userID,
		"I'm 25 years old, 72kg, 175cm tall, male, want to build muscle")

	assert.NoError(t, err)
	assert.Equal(t, models.DraftComplete, result.State)
	assert.True(t, result.Saved)
	assert.NoError(t, result.SaveErr)
	assert.NotNil(t, result.Profile)

	profile := result.Profile
	assert.Equal(t, userID, profile.UserID)
	assert.Equal(t, 25, *profile.Age)
	assert.Equal(t, 72.0, *profile.Weight)
	assert.Equal(t, 175.0, *profile.Height)
	assert.Equal(t, "male", *profile.Gender)
	assert.Equal(t, "build muscle", *profile.FitnessGoal)
	assert.Equal(t, models.ActivityModeratelyActive, *profile.ActivityLevel)

	assert.Equal(t, 1694, *profile.BMR)
	assert.Equal(t, 2626, *profile.TDEE)
	assert.Equal(t, 2926, *profile.TargetCalories)
	assert.Equal(t, 219, *profile.TargetProtein)
	assert.Equal(t, 329, *profile.TargetCarbs)
	assert.Equal(t, 81, *profile.TargetFat)

	mockRepo.AssertExpectations(t)
}

func TestApplyMessageAccumulatesAcrossTurns(t *testing.T) {
	mockRepo := new(mocks.MockUserProfileRepository)
	store := newFakeDraftStore()
	service := NewProfileService(mockRepo, store)
	userID := uuid.New()

	mockRepo.On("FindByUserID", userID).Return(nil, gorm.ErrRecordNotFound)
	mockRepo.On("Upsert", mock.AnythingOfType("*models.UserProfile")).Return(nil)

	first, err := service.ApplyMessage(context.Background(), userID,
		"I'm 25 years old and I weigh 72 kg")
	assert.NoError(t, err)
	assert.Equal(t, models.DraftPartial, first.State)
	assert.Nil(t, first.Profile)
	mockRepo.AssertNotCalled(t, "Upsert", mock.Anything)

	second, err := service.ApplyMessage(context.Background(), userID,
		"I'm a male, 175 cm tall, and I want to build muscle")
	assert.NoError(t, err)
	assert.Equal(t, models.DraftComplete, second.State)
	assert.True(t, second.Saved)

	profile := second.Profile
	assert.Equal(t, 25, *profile.Age)
	assert.Equal(t, 72.0, *profile.Weight)
	assert.Equal(t, 175.0, *profile.Height)
	assert.Equal(t, "male", *profile.Gender)
	assert.Equal(t, "build muscle", *profile.FitnessGoal)
}

func TestApplyMessageLastWriteWins(t *testing.T) {
	mockRepo := new(mocks.MockUserProfileRepository)
	store := newFakeDraftStore()
	service := NewProfileService(mockRepo, store)
	userID := uuid.New()

	mockRepo.On("FindByUserID", userID).Return(nil, gorm.ErrRecordNotFound)

	_, err := service.ApplyMessage(context.Background(), userID, "I weigh 70 kg")
	assert.NoError(t, err)

	result, err := service.ApplyMessage(context.Background(), userID, "Actually I weigh 80 kg")
	assert.NoError(t, err)
	assert.Equal(t, 80.0, *result.Draft.Weight)
}

func TestApplyMessagePersistFailure(t *testing.T) {
	mockRepo := new(mocks.MockUserProfileRepository)
	store := newFakeDraftStore()
	service := NewProfileService(mockRepo, store)
	userID := uuid.New()

	saveErr := errors.New("connection refused")
	mockRepo.On("FindByUserID", userID).Return(nil, gorm.ErrRecordNotFound)
	mockRepo.On("Upsert", mock.AnythingOfType("*models.UserProfile")).Return(saveErr)

	result, err := service.ApplyMessage(context.Background(), userID,
		"I'm 25 years old, 72kg, 175cm tall, male, want to build muscle")

	assert.NoError(t, err)
	assert.Equal(t, models.DraftComplete, result.State)
	assert.False(t, result.Saved)
	assert.Equal(t, saveErr, result.SaveErr)

	// Targets are still computed and returned for this turn.
	assert.NotNil(t, result.Profile)
	assert.Equal(t, 2926, *result.Profile.TargetCalories)

	// The draft survives for a retry on the next message.
	_, found, _ := store.GetDraft(context.Background(), userID.String())
	assert.True(t, found)
}

func TestApplyMessageSeedsFromStoredProfile(t *testing.T) {
	mockRepo := new(mocks.MockUserProfileRepository)
	store := newFakeDraftStore()
	service := NewProfileService(mockRepo, store)
	userID := uuid.New()

	age, weight, height := 30, 85.0, 180.0
	gender, activity := "male", models.ActivityVeryActive
	stored := &models.UserProfile{
		UserID:        userID,
		Age:           &age,
		Weight:        &weight,
		Height:        &height,
		Gender:        &gender,
		ActivityLevel: &activity,
	}
	mockRepo.On("FindByUserID", userID).Return(stored, nil)
	mockRepo.On("Upsert", mock.AnythingOfType("*models.UserProfile")).Return(nil)

	// The goal was the only missing attribute; one message completes it.
	result, err := service.ApplyMessage(context.Background(), userID, "I want to lose weight")

	assert.NoError(t, err)
	assert.Equal(t, models.DraftComplete, result.State)
	assert.True(t, result.Saved)
	assert.Equal(t, 30, *result.Profile.Age)
	assert.Equal(t, "lose weight", *result.Profile.FitnessGoal)
	// The stored activity level is user-supplied and must not be replaced
	// by the default.
	assert.Equal(t, models.ActivityVeryActive, *result.Profile.ActivityLevel)
}

func TestApplyMessageKeepsFormActivityOverDefault(t *testing.T) {
	mockRepo := new(mocks.MockUserProfileRepository)
	store := newFakeDraftStore()
	service := NewProfileService(mockRepo, store)
	userID := uuid.New()

	activity := models.ActivityVeryActive
	stored := &models.UserProfile{UserID: userID, ActivityLevel: &activity}
	mockRepo.On("FindByUserID", userID).Return(stored, nil)
	mockRepo.On("Upsert", mock.AnythingOfType("*models.UserProfile")).Return(nil)

	result, err := service.ApplyMessage(context.Background(), userID,
		"I'm 25 years old, 72kg, 175cm tall, male, want to build muscle")

	assert.NoError(t, err)
	assert.Equal(t, models.DraftComplete, result.State)
	assert.Equal(t, models.ActivityVeryActive, *result.Profile.ActivityLevel)
}

func TestApplyMessageIllFormedNumbersStayPartial(t *testing.T) {
	mockRepo := new(mocks.MockUserProfileRepository)
	store := newFakeDraftStore()
	service := NewProfileService(mockRepo, store)
	userID := uuid.New()

	mockRepo.On("FindByUserID", userID).Return(nil, gorm.ErrRecordNotFound)

	result, err := service.ApplyMessage(context.Background(), userID,
		"I'm 0 years old, 72kg, 175cm tall, male, want to build muscle")

	assert.NoError(t, err)
	assert.Equal(t, models.DraftPartial, result.State)
	assert.Nil(t, result.Profile)
	mockRepo.AssertNotCalled(t, "Upsert", mock.Anything)
}

func TestRecomputeTargetsIdempotent(t *testing.T) {
	age, weight, height := 25, 72.0, 175.0
	gender, activity, goal := "male", models.ActivityModeratelyActive, "build muscle"
	profile := &models.UserProfile{
		Age: &age, Weight: &weight, Height: &height,
		Gender: &gender, ActivityLevel: &activity, FitnessGoal: &goal,
	}

	assert.NoError(t, RecomputeTargets(profile))
	first := *profile.TargetCalories

	assert.NoError(t, RecomputeTargets(profile))
	assert.Equal(t, first, *profile.TargetCalories)
	assert.Equal(t, 1694, *profile.BMR)
}

func TestRecomputeTargetsIncompleteProfile(t *testing.T) {
	age := 25
	profile := &models.UserProfile{Age: &age}
	assert.Error(t, RecomputeTargets(profile))
	assert.Nil(t, profile.BMR)
}

func TestContextMessage(t *testing.T) {
	age, weight, height := 25, 72.0, 175.0
	gender, activity, goal := "male", models.ActivityModeratelyActive, "build muscle"
	profile := &models.UserProfile{
		Age: &age, Weight: &weight, Height: &height,
		Gender: &gender, ActivityLevel: &activity, FitnessGoal: &goal,
	}
	assert.NoError(t, RecomputeTargets(profile))

	got := ContextMessage(profile, "What should I eat before training?")
	expected := "User Profile: Age: 25, Weight: 72kg, Height: 175cm, Gender: male, " +
		"Goal: build muscle, Activity Level: moderately_active, " +
		"Daily Targets: 2926 calories, 219g protein, 329g carbs, 81g fat. " +
		"User Message: What should I eat before training?"
	assert.Equal(t, expected, got)
}

func TestContextMessagePassthrough(t *testing.T) {
	assert.Equal(t, "hello", ContextMessage(nil, "hello"))

	age := 25
	incomplete := &models.UserProfile{Age: &age}
	assert.Equal(t, "hello", ContextMessage(incomplete, "hello"))
}
