package controllers

import (
	"net/http"

	"github.com/404DEVR/gym-agent/internal/models"
	"github.com/404DEVR/gym-agent/internal/repository"
	"github.com/404DEVR/gym-agent/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UserProfileController struct {
	repo repository.UserProfileRepository
}

func NewUserProfileController(repo repository.UserProfileRepository) *UserProfileController {
	return &UserProfileController{repo: repo}
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return uuid.Nil, false
	}
	return v.(uuid.UUID), true
}

// GetUserProfile godoc
// @Summary Get user profile
// @Description Retrieve the authenticated user's profile
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "User profile retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /profile [get]
func (pc *UserProfileController) GetUserProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	profile, err := pc.repo.FindByUserID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Profile not found",
			"error":   "No profile exists for this user",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User profile retrieved successfully",
		"data":    profile,
	})
}

// CreateOrUpdateUserProfile godoc
// @Summary Create or update user profile
// @Description Save the authenticated user's profile from the profile form and recompute daily targets
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body models.UserProfile true "Profile data"
// @Success 200 {object} map[string]interface{} "Profile saved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Failed to save profile"
// @Router /profile [post]
func (pc *UserProfileController) CreateOrUpdateUserProfile(c *gin.Context) {
	var profile models.UserProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
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
	profile.ID = 0
	profile.UserID = userID
	if profile.PreferredWorkoutDays == 0 {
		// The gorm column default only applies on insert.
		profile.PreferredWorkoutDays = 3
	}

	if !profile.HasRequiredFields() {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   "Missing required fields: age, weight, height, gender, activity_level, fitness_goal",
		})
		return
	}
	if msg := validateProfileEnums(&profile); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   msg,
		})
		return
	}

	// Derived fields are only ever written as a unit, together with the
	// attributes they came from.
	if err := services.RecomputeTargets(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   "age, weight and height must be positive numbers",
		})
		return
	}

	if err := pc.repo.Upsert(&profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to save profile",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile saved successfully",
		"data":    profile,
	})
}

// PatchUserProfile godoc
// @Summary Patch user profile
// @Description Update specific fields of the authenticated user's profile; daily targets are recomputed when any physical or behavioral attribute changes
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body map[string]interface{} true "Profile fields to update"
// @Success 200 {object} map[string]interface{} "Profile patched successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Failure 500 {object} map[string]interface{} "Failed to update profile"
// @Router /profile [patch]
func (pc *UserProfileController) PatchUserProfile(c *gin.Context) {
	var patchData map[string]interface{}
	if err := c.ShouldBindJSON(&patchData); err != nil {
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

	existing, err := pc.repo.FindByUserID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Profile not found",
			"error":   "No profile exists for this user",
		})
		return
	}

	merged := *existing
	updates, touched, msg := applyPatch(&merged, patchData)
	if msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   msg,
		})
		return
	}

	// Recompute the derived fields whenever an attribute they depend on
	// changed, and write them in the same patch.
	if touched && merged.HasRequiredFields() {
		if err := services.RecomputeTargets(&merged); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid request data",
				"error":   "age, weight and height must be positive numbers",
			})
			return
		}
		updates["bmr"] = *merged.BMR
		updates["tdee"] = *merged.TDEE
		updates["target_calories"] = *merged.TargetCalories
		updates["target_protein"] = *merged.TargetProtein
		updates["target_carbs"] = *merged.TargetCarbs
		updates["target_fat"] = *merged.TargetFat
	}

	if err := pc.repo.Patch(userID, updates); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update profile",
			"error":   err.Error(),
		})
		return
	}

	updated, err := pc.repo.FindByUserID(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve updated profile",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile patched successfully",
		"data":    updated,
	})
}

// DeleteUserProfile godoc
// @Summary Delete user profile
// @Description Delete the authenticated user's profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Profile deleted successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Failed to delete profile"
// @Router /profile [delete]
func (pc *UserProfileController) DeleteUserProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := pc.repo.DeleteByUserID(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete profile",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile deleted successfully",
		"data":    nil,
	})
}

func validateProfileEnums(p *models.UserProfile) string {
	if p.Gender != nil && !models.ValidGender(*p.Gender) {
		return "gender must be one of: male, female, other"
	}
	if p.ActivityLevel != nil && !models.ValidActivityLevel(*p.ActivityLevel) {
		return "activity_level must be one of: sedentary, lightly_active, moderately_active, very_active, extremely_active"
	}
	if p.ExperienceLevel != "" && !models.ValidExperienceLevel(p.ExperienceLevel) {
		return "experience_level must be one of: beginner, intermediate, advanced"
	}
	if p.PreferredWorkoutDays < 1 || p.PreferredWorkoutDays > 7 {
		return "preferred_workout_days must be between 1 and 7"
	}
	return ""
}

// applyPatch overlays the JSON patch onto the profile copy and builds the
// column update map from scratch. Only keys the switch accepts ever reach
// the database; everything else is rejected, so a request cannot smuggle
// id, user_id or arbitrary column names into the update. It also reports
// whether any target-affecting attribute changed.
func applyPatch(p *models.UserProfile, data map[string]interface{}) (updates map[string]interface{}, touched bool, msg string) {
	updates = make(map[string]interface{}, len(data))
	for key, val := range data {
		switch key {
		case "age":
			f, ok := val.(float64)
			if !ok {
				return nil, false, "age must be a number"
			}
			age := int(f)
			p.Age = &age
			updates[key] = age
			touched = true
		case "weight":
			f, ok := val.(float64)
			if !ok {
				return nil, false, "weight must be a number"
			}
			p.Weight = &f
			updates[key] = f
			touched = true
		case "height":
			f, ok := val.(float64)
			if !ok {
				return nil, false, "height must be a number"
			}
			p.Height = &f
			updates[key] = f
			touched = true
		case "gender":
			s, ok := val.(string)
			if !ok || !models.ValidGender(s) {
				return nil, false, "gender must be one of: male, female, other"
			}
			p.Gender = &s
			updates[key] = s
			touched = true
		case "activity_level":
			s, ok := val.(string)
			if !ok || !models.ValidActivityLevel(s) {
				return nil, false, "activity_level must be one of: sedentary, lightly_active, moderately_active, very_active, extremely_active"
			}
			p.ActivityLevel = &s
			updates[key] = s
			touched = true
		case "fitness_goal":
			s, ok := val.(string)
			if !ok || s == "" {
				return nil, false, "fitness_goal must be a non-empty string"
			}
			p.FitnessGoal = &s
			updates[key] = s
			touched = true
		case "experience_level":
			s, ok := val.(string)
			if !ok || !models.ValidExperienceLevel(s) {
				return nil, false, "experience_level must be one of: beginner, intermediate, advanced"
			}
			p.ExperienceLevel = s
			updates[key] = s
		case "preferred_workout_days":
			f, ok := val.(float64)
			if !ok || f < 1 || f > 7 {
				return nil, false, "preferred_workout_days must be between 1 and 7"
			}
			p.PreferredWorkoutDays = int(f)
			updates[key] = int(f)
		case "dietary_restrictions", "medical_conditions", "equipment_available":
			list, ok := toStringList(val)
			if !ok {
				return nil, false, key + " must be a list of strings"
			}
			// The typed list is what the column driver needs to see.
			updates[key] = list
			switch key {
			case "dietary_restrictions":
				p.DietaryRestrictions = list
			case "medical_conditions":
				p.MedicalConditions = list
			case "equipment_available":
				p.EquipmentAvailable = list
			}
		case "gym_access":
			b, ok := val.(bool)
			if !ok {
				return nil, false, "gym_access must be a boolean"
			}
			p.GymAccess = b
			updates[key] = b
		case "bmr", "tdee", "target_calories", "target_protein", "target_carbs", "target_fat":
			// Derived fields are never patched directly.
			return nil, false, "derived fields cannot be updated directly"
		case "id", "user_id", "created_at", "updated_at", "deleted_at":
			return nil, false, key + " cannot be updated"
		default:
			return nil, false, "unknown field: " + key
		}
	}
	return updates, touched, ""
}

func toStringList(val interface{}) (models.StringList, bool) {
	items, ok := val.([]interface{})
	if !ok {
		return nil, false
	}
	list := make(models.StringList, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		list = append(list, s)
	}
	return list, true
}
