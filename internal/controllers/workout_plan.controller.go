package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/404DEVR/gym-agent/internal/genai"
	"github.com/404DEVR/gym-agent/internal/models"
	"github.com/404DEVR/gym-agent/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkoutPlanGenerator is the generative surface for workout plans.
type WorkoutPlanGenerator interface {
	GenerateWorkoutPlan(ctx context.Context, req genai.WorkoutPlanRequest) (json.RawMessage, error)
}

type WorkoutPlanController struct {
	repo      repository.WorkoutPlanRepository
	profiles  repository.UserProfileRepository
	generator WorkoutPlanGenerator
}

func NewWorkoutPlanController(repo repository.WorkoutPlanRepository, profiles repository.UserProfileRepository, generator WorkoutPlanGenerator) *WorkoutPlanController {
	return &WorkoutPlanController{
		repo:      repo,
		profiles:  profiles,
		generator: generator,
	}
}

type generateWorkoutPlanRequest struct {
	Goal          string `json:"goal"`
	DaysAvailable int    `json:"days_available"`
	Preferences   string `json:"preferences"`
}

// GenerateWorkoutPlan godoc
// @Summary Generate a workout plan
// @Description Generate a workout split. Goal, training days and body data are pre-filled from the stored profile when omitted.
// @Tags workout-plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body generateWorkoutPlanRequest true "Generation request"
// @Success 200 {object} map[string]interface{} "Generated workout plan"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 502 {object} map[string]interface{} "Generation failed"
// @Router /workout-plans/generate [post]
func (wc *WorkoutPlanController) GenerateWorkoutPlan(c *gin.Context) {
	var req generateWorkoutPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	bodyData := map[string]interface{}{}
	if profile, err := wc.profiles.FindByUserID(userID); err == nil {
		if req.Goal == "" && profile.FitnessGoal != nil {
			req.Goal = *profile.FitnessGoal
		}
		if req.DaysAvailable == 0 {
			req.DaysAvailable = profile.PreferredWorkoutDays
		}
		bodyData = profileBodyData(profile)
	} else if err != gorm.ErrRecordNotFound {
		log.Printf("Failed to load profile for workout plan prefill (%s): %v", userID, err)
	}

	if req.Goal == "" || req.DaysAvailable == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Goal, body data, and days available are required",
			"error":   "Provide goal and days_available, or save a profile first",
		})
		return
	}

	plan, err := wc.generator.GenerateWorkoutPlan(c.Request.Context(), genai.WorkoutPlanRequest{
		Goal:          req.Goal,
		BodyData:      bodyData,
		DaysAvailable: req.DaysAvailable,
		Preferences:   req.Preferences,
	})
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"status":  "error",
			"message": "Failed to generate workout plan",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Workout plan generated successfully",
		"data":    gin.H{"workout_plan": plan},
	})
}

// profileBodyData flattens the stored attributes into the body-data map the
// generation prompt consumes.
func profileBodyData(p *models.UserProfile) map[string]interface{} {
	data := map[string]interface{}{
		"experience_level": p.ExperienceLevel,
		"gym_access":       p.GymAccess,
	}
	if p.Age != nil {
		data["age"] = *p.Age
	}
	if p.Weight != nil {
		data["weight_kg"] = *p.Weight
	}
	if p.Height != nil {
		data["height_cm"] = *p.Height
	}
	if p.Gender != nil {
		data["gender"] = *p.Gender
	}
	if p.ActivityLevel != nil {
		data["activity_level"] = *p.ActivityLevel
	}
	if len(p.EquipmentAvailable) > 0 {
		data["equipment_available"] = []string(p.EquipmentAvailable)
	}
	if len(p.MedicalConditions) > 0 {
		data["medical_conditions"] = []string(p.MedicalConditions)
	}
	return data
}

type saveWorkoutPlanRequest struct {
	Action    string          `json:"action"` // "add" (default) or "update"
	Goal      string          `json:"goal" binding:"required"`
	Split     []string        `json:"split"`
	Days      int             `json:"days"`
	Exercises json.RawMessage `json:"exercises" binding:"required"`
}

// SaveWorkoutPlan godoc
// @Summary Save a workout plan
// @Description Save a generated workout plan. With action "update" the most recently saved plan is replaced instead of adding a new one.
// @Tags workout-plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param plan body saveWorkoutPlanRequest true "Workout plan"
// @Success 201 {object} map[string]interface{} "Workout plan saved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Failed to save workout plan"
// @Router /workout-plans [post]
func (wc *WorkoutPlanController) SaveWorkoutPlan(c *gin.Context) {
	var req saveWorkoutPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}
	if req.Action != "" && req.Action != "add" && req.Action != "update" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   "action must be \"add\" or \"update\"",
		})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if req.Action == "update" {
		if existing, err := wc.repo.FindLatestByUserID(userID); err == nil {
			existing.Goal = req.Goal
			existing.Split = req.Split
			existing.Days = req.Days
			existing.Exercises = models.JSONB(req.Exercises)
			if err := wc.repo.Update(existing); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{
					"status":  "error",
					"message": "Failed to save workout plan",
					"error":   err.Error(),
				})
				return
			}
			c.JSON(http.StatusOK, gin.H{
				"status":  "success",
				"message": "Workout plan updated successfully",
				"data":    existing,
			})
			return
		}
		// Nothing to replace yet; fall through to a plain add.
	}

	plan := models.WorkoutPlan{
		UserID:    userID,
		Goal:      req.Goal,
		Split:     req.Split,
		Days:      req.Days,
		Exercises: models.JSONB(req.Exercises),
	}

	if err := wc.repo.Create(&plan); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to save workout plan",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Workout plan saved successfully",
		"data":    plan,
	})
}

// ListWorkoutPlans godoc
// @Summary List saved workout plans
// @Description List the authenticated user's saved workout plans, newest first
// @Tags workout-plans
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Workout plans retrieved successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve workout plans"
// @Router /workout-plans [get]
func (wc *WorkoutPlanController) ListWorkoutPlans(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	plans, err := wc.repo.FindAllByUserID(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve workout plans",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Workout plans retrieved successfully",
		"data":    plans,
	})
}

// DeleteWorkoutPlan godoc
// @Summary Delete a saved workout plan
// @Description Delete one of the authenticated user's saved workout plans
// @Tags workout-plans
// @Produce json
// @Security BearerAuth
// @Param id path string true "Workout plan ID"
// @Success 200 {object} map[string]interface{} "Workout plan deleted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid plan ID"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 404 {object} map[string]interface{} "Workout plan not found"
// @Router /workout-plans/{id} [delete]
func (wc *WorkoutPlanController) DeleteWorkoutPlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid plan ID",
			"error":   err.Error(),
		})
		return
	}

	if err := wc.repo.DeleteByIDAndUserID(planID, userID); err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Workout plan not found",
				"error":   "No workout plan with this id exists for this user",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete workout plan",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Workout plan deleted successfully",
		"data":    nil,
	})
}
