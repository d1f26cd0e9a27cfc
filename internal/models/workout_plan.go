package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkoutPlan is a generated workout split a user chose to save.
type WorkoutPlan struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID    uuid.UUID      `gorm:"type:uuid;index" json:"user_id"`

	Goal      string     `json:"goal" example:"build muscle"`
	Split     StringList `json:"split"`
	Days      int        `json:"days" example:"3"`
	Exercises JSONB      `json:"exercises" swaggertype:"object"`
}

func (p *WorkoutPlan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
