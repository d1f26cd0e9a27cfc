package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/404DEVR/gym-agent/internal/genai"
	"github.com/404DEVR/gym-agent/internal/mocks"
	"github.com/404DEVR/gym-agent/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func workoutPlanRouter(userID uuid.UUID, repo *mocks.MockWorkoutPlanRepository, profiles *mocks.MockUserProfileRepository, generator *mocks.MockPlanGenerator) *gin.Engine {
	router := authedRouter(userID)
	controller := NewWorkoutPlanController(repo, profiles, generator)
	router.POST("/workout-plans/generate", controller.GenerateWorkoutPlan)
	router.POST("/workout-plans", controller.SaveWorkoutPlan)
	router.GET("/workout-plans", controller.ListWorkoutPlans)
	router.DELETE("/workout-plans/:id", controller.DeleteWorkoutPlan)
	return router
}

func TestGenerateWorkoutPlan(t *testing.T) {
	userID := uuid.New()
	mockRepo := new(mocks.MockWorkoutPlanRepository)
	mockProfiles := new(mocks.MockUserProfileRepository)
	mockGenerator := new(mocks.MockPlanGenerator)

	mockProfiles.On("FindByUserID", userID).Return(nil, gorm.ErrRecordNotFound)
	mockGenerator.On("GenerateWorkoutPlan", mock.MatchedBy(func(req genai.WorkoutPlanRequest) bool {
		return req.Goal == "build muscle" && req.DaysAvailable == 4
	})).Return(json.RawMessage(`{"split":["push","pull"]}`), nil)

	router := workoutPlanRouter(userID, mockRepo, mockProfiles, mockGenerator)
	w := doJSON(router, http.MethodPost, "/workout-plans/generate",
		`{"goal":"build muscle","days_available":4}`)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Contains(t, data, "workout_plan")
}

func TestGenerateWorkoutPlanPrefillsFromProfile(t *testing.T) {
	userID := uuid.New()
	mockRepo := new(mocks.MockWorkoutPlanRepository)
	mockProfiles := new(mocks.MockUserProfileRepository)
	mockGenerator := new(mocks.MockPlanGenerator)

	profile := completeProfile(userID)
	profile.PreferredWorkoutDays = 5
	profile.EquipmentAvailable = models.StringList{"dumbbells"}
	mockProfiles.On("FindByUserID", userID).Return(profile, nil)
	mockGenerator.On("GenerateWorkoutPlan", mock.MatchedBy(func(req genai.WorkoutPlanRequest) bool {
		return req.Goal == "build muscle" &&
			req.DaysAvailable == 5 &&
			req.BodyData["age"] == 25 &&
			req.BodyData["gender"] == "male"
	})).Return(json.RawMessage(`{"split":["upper","lower"]}`), nil)

	router := workoutPlanRouter(userID, mockRepo, mockProfiles, mockGenerator)
	w := doJSON(router, http.MethodPost, "/workout-plans/generate", `{}`)

	assert.Equal(t, http.StatusOK, w.Code)
	mockGenerator.AssertExpectations(t)
}

func TestGenerateWorkoutPlanMissingGoalNoProfile(t *testing.T) {
	userID := uuid.New()
	mockRepo := new(mocks.MockWorkoutPlanRepository)
	mockProfiles := new(mocks.MockUserProfileRepository)
	mockGenerator := new(mocks.MockPlanGenerator)

	mockProfiles.On("FindByUserID", userID).Return(nil, gorm.ErrRecordNotFound)

	router := workoutPlanRouter(userID, mockRepo, mockProfiles, mockGenerator)
	w := doJSON(router, http.MethodPost, "/workout-plans/generate", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockGenerator.AssertNotCalled(t, "GenerateWorkoutPlan", mock.Anything)
}

func TestGenerateWorkoutPlanGeneratorFails(t *testing.T) {
	userID := uuid.New()
	mockRepo := new(mocks.MockWorkoutPlanRepository)
	mockProfiles := new(mocks.MockUserProfileRepository)
	mockGenerator := new(mocks.MockPlanGenerator)

	mockProfiles.On("FindByUserID", userID).Return(nil, gorm.ErrRecordNotFound)
	mockGenerator.On("GenerateWorkoutPlan", mock.AnythingOfType("genai.WorkoutPlanRequest")).
		Return(nil, assert.AnError)

	router := workoutPlanRouter(userID, mockRepo, mockProfiles, mockGenerator)
	w := doJSON(router, http.MethodPost, "/workout-plans/generate",
		`{"goal":"build muscle","days_available":3}`)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestSaveWorkoutPlanAdd(t *testing.T) {
	userID := uuid.New()
	mockRepo := new(mocks.MockWorkoutPlanRepository)
	mockRepo.On("Create", mock.MatchedBy(func(plan *models.WorkoutPlan) bool {
		return plan.UserID == userID && plan.Goal == "build muscle" && plan.Days == 3
	})).Return(nil)

	router := workoutPlanRouter(userID, mockRepo, new(mocks.MockUserProfileRepository), new(mocks.MockPlanGenerator))
	w := doJSON(router, http.MethodPost, "/workout-plans",
		`{"goal":"build muscle","split":["push","pull","legs"],"days":3,"exercises":{"push":["bench press"]}}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockRepo.AssertExpectations(t)
	mockRepo.AssertNotCalled(t, "FindLatestByUserID", mock.Anything)
}

func TestSaveWorkoutPlanUpdateReplacesLatest(t *testing.T) {
	userID := uuid.New()
	existing := &models.WorkoutPlan{ID: uuid.New(), UserID: userID, Goal: "lose weight", Days: 2}
	mockRepo := new(mocks.MockWorkoutPlanRepository)
	mockRepo.On("FindLatestByUserID", userID).Return(existing, nil)
	mockRepo.On("Update", mock.MatchedBy(func(plan *models.WorkoutPlan) bool {
		return plan.ID == existing.ID && plan.Goal == "build muscle" && plan.Days == 4
	})).Return(nil)

	router := workoutPlanRouter(userID, mockRepo, new(mocks.MockUserProfileRepository), new(mocks.MockPlanGenerator))
	w := doJSON(router, http.MethodPost, "/workout-plans",
		`{"action":"update","goal":"build muscle","split":["upper","lower"],"days":4,"exercises":{}}`)

	assert.Equal(t, http.StatusOK, w.Code)
	mockRepo.AssertExpectations(t)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestSaveWorkoutPlanUpdateWithoutExistingAdds(t *testing.T) {
	userID := uuid.New()
	mockRepo := new(mocks.MockWorkoutPlanRepository)
	mockRepo.On("FindLatestByUserID", userID).Return(nil, gorm.ErrRecordNotFound)
	mockRepo.On("Create", mock.AnythingOfType("*models.WorkoutPlan")).Return(nil)

	router := workoutPlanRouter(userID, mockRepo, new(mocks.MockUserProfileRepository), new(mocks.MockPlanGenerator))
	w := doJSON(router, http.MethodPost, "/workout-plans",
		`{"action":"update","goal":"build muscle","days":3,"exercises":{}}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockRepo.AssertExpectations(t)
}

func TestSaveWorkoutPlanInvalidAction(t *testing.T) {
	userID := uuid.New()
	mockRepo := new(mocks.MockWorkoutPlanRepository)

	router := workoutPlanRouter(userID, mockRepo, new(mocks.MockUserProfileRepository), new(mocks.MockPlanGenerator))
	w := doJSON(router, http.MethodPost, "/workout-plans",
		`{"action":"replace","goal":"build muscle","exercises":{}}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestListWorkoutPlans(t *testing.T) {
	userID := uuid.New()
	mockRepo := new(mocks.MockWorkoutPlanRepository)
	mockRepo.On("FindAllByUserID", userID).Return([]models.WorkoutPlan{
		{ID: uuid.New(), UserID: userID, Goal: "build muscle"},
	}, nil)

	router := workoutPlanRouter(userID, mockRepo, new(mocks.MockUserProfileRepository), new(mocks.MockPlanGenerator))
	w := doJSON(router, http.MethodGet, "/workout-plans", "")

	assert.Equal(t, http.StatusOK, w.Code)
	resp := parseBody(t, w)
	assert.Len(t, resp["data"], 1)
}

func TestDeleteWorkoutPlanNotFound(t *testing.T) {
	userID := uuid.New()
	planID := uuid.New()
	mockRepo := new(mocks.MockWorkoutPlanRepository)
	mockRepo.On("DeleteByIDAndUserID", planID, userID).Return(gorm.ErrRecordNotFound)

	router := workoutPlanRouter(userID, mockRepo, new(mocks.MockUserProfileRepository), new(mocks.MockPlanGenerator))
	w := doJSON(router, http.MethodDelete, "/workout-plans/"+planID.String(), "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}
