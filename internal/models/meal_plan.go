package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MealPlan is a generated daily meal plan a user chose to save. The meal
// breakdown comes back from the generative API as JSON and is stored as-is.
type MealPlan struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID    uuid.UUID      `gorm:"type:uuid;index" json:"user_id"`

	Goal                string     `json:"goal" example:"lose weight"`
	Ingredients         StringList `json:"ingredients"`
	DietaryRestrictions StringList `json:"dietary_restrictions"`
	TargetCalories      *int       `json:"target_calories" example:"2000"`
	Meals               JSONB      `json:"meals" swaggertype:"object"`
}

func (p *MealPlan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
