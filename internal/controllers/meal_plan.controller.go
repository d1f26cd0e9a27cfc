package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/404DEVR/gym-agent/internal/assistant"
	"github.com/404DEVR/gym-agent/internal/genai"
	"github.com/404DEVR/gym-agent/internal/models"
	"github.com/404DEVR/gym-agent/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MealPlanGenerator is the generative surface for meal plans.
type MealPlanGenerator interface {
	GenerateMealPlan(ctx context.Context, req genai.MealPlanRequest) (json.RawMessage, error)
}

// MealPlanAgent is the agent-side meal plan endpoint tried before falling
// back to the generative API.
type MealPlanAgent interface {
	MealPlan(ctx context.Context, req assistant.MealPlanRequest) (json.RawMessage, error)
}

type MealPlanController struct {
	repo      repository.MealPlanRepository
	profiles  repository.UserProfileRepository
	agent     MealPlanAgent
	generator MealPlanGenerator
}

func NewMealPlanController(repo repository.MealPlanRepository, profiles repository.UserProfileRepository, agent MealPlanAgent, generator MealPlanGenerator) *MealPlanController {
	return &MealPlanController{
		repo:      repo,
		profiles:  profiles,
		agent:     agent,
		generator: generator,
	}
}

type generateMealPlanRequest struct {
	Goal                string   `json:"goal" binding:"required"`
	Ingredients         []string `json:"ingredients" binding:"required"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
	TargetCalories      *int     `json:"target_calories"`
}

// GenerateMealPlan godoc
// @Summary Generate a meal plan
// @Description Generate a daily meal plan from a goal and available ingredients. Dietary restrictions and target calories are pre-filled from the stored profile when omitted.
// @Tags meal-plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body generateMealPlanRequest true "Generation request"
// @Success 200 {object} map[string]interface{} "Generated meal plan"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 502 {object} map[string]interface{} "Generation failed"
// @Router /meal-plans/generate [post]
func (mc *MealPlanController) GenerateMealPlan(c *gin.Context) {
	var req generateMealPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Goal and ingredients array are required",
			"error":   err.Error(),
		})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	mc.prefillFromProfile(userID, &req)

	// The agent owns richer retrieval-backed plans; the generative API is
	// the fallback when it is unreachable.
	plan, err := mc.agent.MealPlan(c.Request.Context(), assistant.MealPlanRequest{
		Goal:                req.Goal,
		Ingredients:         req.Ingredients,
		DietaryRestrictions: req.DietaryRestrictions,
		TargetCalories:      req.TargetCalories,
	})
	if err != nil {
		log.Printf("Agent meal plan unavailable, falling back to Gemini: %v", err)
		plan, err = mc.generator.GenerateMealPlan(c.Request.Context(), genai.MealPlanRequest{
			Goal:                req.Goal,
			Ingredients:         req.Ingredients,
			DietaryRestrictions: req.DietaryRestrictions,
			TargetCalories:      req.TargetCalories,
		})
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"status":  "error",
			"message": "Failed to generate meal plan",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Meal plan generated successfully",
		"data":    gin.H{"meal_plan": plan},
	})
}

func (mc *MealPlanController) prefillFromProfile(userID uuid.UUID, req *generateMealPlanRequest) {
	if req.TargetCalories != nil && req.DietaryRestrictions != nil {
		return
	}
	profile, err := mc.profiles.FindByUserID(userID)
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Printf("Failed to load profile for meal plan prefill (%s): %v", userID, err)
		}
		return
	}
	if req.TargetCalories == nil {
		req.TargetCalories = profile.TargetCalories
	}
	if req.DietaryRestrictions == nil {
		req.DietaryRestrictions = profile.DietaryRestrictions
	}
}

type saveMealPlanRequest struct {
	Goal                string          `json:"goal" binding:"required"`
	Ingredients         []string        `json:"ingredients"`
	DietaryRestrictions []string        `json:"dietary_restrictions"`
	TargetCalories      *int            `json:"target_calories"`
	Meals               json.RawMessage `json:"meals" binding:"required"`
}

// SaveMealPlan godoc
// @Summary Save a meal plan
// @Description Save a generated meal plan to the user's collection
// @Tags meal-plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param plan body saveMealPlanRequest true "Meal plan"
// @Success 201 {object} map[string]interface{} "Meal plan saved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Failed to save meal plan"
// @Router /meal-plans [post]
func (mc *MealPlanController) SaveMealPlan(c *gin.Context) {
	var req saveMealPlanRequest
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

	plan := models.MealPlan{
		UserID:              userID,
		Goal:                req.Goal,
		Ingredients:         req.Ingredients,
		DietaryRestrictions: req.DietaryRestrictions,
		TargetCalories:      req.TargetCalories,
		Meals:               models.JSONB(req.Meals),
	}

	if err := mc.repo.Create(&plan); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to save meal plan",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Meal plan saved successfully",
		"data":    plan,
	})
}

// ListMealPlans godoc
// @Summary List saved meal plans
// @Description List the authenticated user's saved meal plans, newest first
// @Tags meal-plans
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Meal plans retrieved successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve meal plans"
// @Router /meal-plans [get]
func (mc *MealPlanController) ListMealPlans(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	plans, err := mc.repo.FindAllByUserID(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve meal plans",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Meal plans retrieved successfully",
		"data":    plans,
	})
}

// DeleteMealPlan godoc
// @Summary Delete a saved meal plan
// @Description Delete one of the authenticated user's saved meal plans
// @Tags meal-plans
// @Produce json
// @Security BearerAuth
// @Param id path string true "Meal plan ID"
// @Success 200 {object} map[string]interface{} "Meal plan deleted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid plan ID"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 404 {object} map[string]interface{} "Meal plan not found"
// @Router /meal-plans/{id} [delete]
func (mc *MealPlanController) DeleteMealPlan(c *gin.Context) {
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

	if err := mc.repo.DeleteByIDAndUserID(planID, userID); err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Meal plan not found",
				"error":   "No meal plan with this id exists for this user",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete meal plan",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Meal plan deleted successfully",
		"data":    nil,
	})
}
