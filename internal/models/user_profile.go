package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Activity levels accepted on a profile.
const (
	ActivitySedentary        = "sedentary"
	ActivityLightlyActive    = "lightly_active"
	ActivityModeratelyActive = "moderately_active"
	ActivityVeryActive       = "very_active"
	ActivityExtremelyActive  = "extremely_active"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

const (
	ExperienceBeginner     = "beginner"
	ExperienceIntermediate = "intermediate"
	ExperienceAdvanced     = "advanced"
)

type UserProfile struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID    uuid.UUID      `gorm:"type:uuid;uniqueIndex" json:"user_id" example:"8f7d2c1e-4b3a-4c5d-9e6f-0a1b2c3d4e5f"`

	Age           *int     `json:"age" example:"25"`
	Weight        *float64 `json:"weight" example:"70"`
	Height        *float64 `json:"height" example:"175"`
	Gender        *string  `json:"gender" example:"male"`
	ActivityLevel *string  `json:"activity_level" example:"moderately_active"`
	FitnessGoal   *string  `json:"fitness_goal" example:"build muscle"`

	DietaryRestrictions StringList `json:"dietary_restrictions"`
	MedicalConditions   StringList `json:"medical_conditions"`
	ExperienceLevel     string     `gorm:"default:beginner" json:"experience_level" example:"beginner"`

	// Derived from the physical/behavioral attributes above. Always written
	// together, never updated individually.
	BMR            *int `json:"bmr" example:"1694"`
	TDEE           *int `json:"tdee" example:"2626"`
	TargetCalories *int `json:"target_calories" example:"2926"`
	TargetProtein  *int `json:"target_protein" example:"219"`
	TargetCarbs    *int `json:"target_carbs" example:"329"`
	TargetFat      *int `json:"target_fat" example:"81"`

	PreferredWorkoutDays int        `gorm:"default:3" json:"preferred_workout_days" example:"3"`
	GymAccess            bool       `json:"gym_access" example:"true"`
	EquipmentAvailable   StringList `json:"equipment_available"`
}

// HasRequiredFields reports whether every field needed by the nutrition
// calculation is present. Derived fields must never be computed or stored
// while this is false.
func (p *UserProfile) HasRequiredFields() bool {
	return p.Age != nil && p.Weight != nil && p.Height != nil &&
		p.Gender != nil && p.ActivityLevel != nil && p.FitnessGoal != nil
}

func ValidGender(g string) bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

func ValidActivityLevel(a string) bool {
	switch a {
	case ActivitySedentary, ActivityLightlyActive, ActivityModeratelyActive,
		ActivityVeryActive, ActivityExtremelyActive:
		return true
	}
	return false
}

func ValidExperienceLevel(e string) bool {
	switch e {
	case ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced:
		return true
	}
	return false
}
