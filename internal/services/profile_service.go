package services

import (
	"context"
	"fmt"
	"log"

	"github.com/404DEVR/gym-agent/internal/extractor"
	"github.com/404DEVR/gym-agent/internal/models"
	"github.com/404DEVR/gym-agent/internal/nutrition"
	"github.com/404DEVR/gym-agent/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DraftStore holds per-user profile drafts between chat turns. Implemented
// by cache.RedisDraftStore.
type DraftStore interface {
	GetDraft(ctx context.Context, userID string) (*models.ProfileDraft, bool, error)
	SaveDraft(ctx context.Context, userID string, draft *models.ProfileDraft) error
	DeleteDraft(ctx context.Context, userID string) error
}

// ApplyResult reports what one chat message did to the user's profile.
type ApplyResult struct {
	Update  extractor.Update
	Draft   *models.ProfileDraft
	State   models.DraftState
	Profile *models.UserProfile // full profile with targets, when complete
	Saved   bool                // remote persist succeeded this turn
	SaveErr error               // terminal persistence failure, if any
}

// ProfileService runs the extract → merge → complete → persist pipeline and
// owns the derived-fields invariant for the form endpoints as well.
type ProfileService struct {
	profiles repository.UserProfileRepository
	drafts   DraftStore
}

func NewProfileService(profiles repository.UserProfileRepository, drafts DraftStore) *ProfileService {
	return &ProfileService{profiles: profiles, drafts: drafts}
}

// ApplyMessage extracts personal attributes from one chat message, merges
// them into the user's draft and, once the draft is complete, computes
// nutrition targets and upserts the full profile. Partial drafts stay in the
// session store only. A single persistence attempt is made per message;
// retry is left to the caller.
func (s *ProfileService) ApplyMessage(ctx context.Context, userID uuid.UUID, message string) (*ApplyResult, error) {
	if !extractor.ContainsPersonalInfo(message) {
		return &ApplyResult{State: models.DraftEmpty}, nil
	}

	update := extractor.Extract(message)
	if update.IsEmpty() {
		return &ApplyResult{Update: update, State: models.DraftEmpty}, nil
	}

	draft, found, err := s.drafts.GetDraft(ctx, userID.String())
	if err != nil {
		return nil, fmt.Errorf("load draft: %w", err)
	}
	if !found {
		draft = s.seedDraft(userID)
	}

	mergeUpdate(draft, update)

	// Default activity level so the completeness check can pass; the flag
	// keeps a later user-supplied value authoritative.
	if draft.ActivityLevel == nil {
		level := models.ActivityModeratelyActive
		draft.ActivityLevel = &level
		draft.ActivityDefaulted = true
	}

	result := &ApplyResult{Update: update, Draft: draft, State: draft.State()}

	if result.State != models.DraftComplete {
		if err := s.drafts.SaveDraft(ctx, userID.String(), draft); err != nil {
			log.Printf("Failed to save profile draft for %s: %v", userID, err)
		}
		return result, nil
	}

	profile, err := s.buildProfile(userID, draft)
	if err != nil {
		// Ill-formed numbers: report incomplete rather than persist
		// nonsense targets.
		result.State = models.DraftPartial
		if err := s.drafts.SaveDraft(ctx, userID.String(), draft); err != nil {
			log.Printf("Failed to save profile draft for %s: %v", userID, err)
		}
		return result, nil
	}

	result.Profile = profile
	if err := s.profiles.Upsert(profile); err != nil {
		// Keep the draft (and the computed targets on the returned
		// profile); the save just didn't reach the store this turn.
		result.SaveErr = err
		if err := s.drafts.SaveDraft(ctx, userID.String(), draft); err != nil {
			log.Printf("Failed to save profile draft for %s: %v", userID, err)
		}
		return result, nil
	}

	result.Saved = true
	if err := s.drafts.SaveDraft(ctx, userID.String(), draft); err != nil {
		log.Printf("Failed to save profile draft for %s: %v", userID, err)
	}
	return result, nil
}

// seedDraft starts a draft from the persisted profile when one exists, so a
// returning user's messages merge onto their stored attributes.
func (s *ProfileService) seedDraft(userID uuid.UUID) *models.ProfileDraft {
	draft := &models.ProfileDraft{}
	profile, err := s.profiles.FindByUserID(userID)
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Printf("Failed to load profile for draft seed (%s): %v", userID, err)
		}
		return draft
	}
	draft.Age = profile.Age
	draft.Weight = profile.Weight
	draft.Height = profile.Height
	draft.Gender = profile.Gender
	draft.ActivityLevel = profile.ActivityLevel
	draft.FitnessGoal = profile.FitnessGoal
	return draft
}

// mergeUpdate overlays extracted values onto the draft. New values replace
// old ones per field; absent fields leave the draft untouched.
func mergeUpdate(draft *models.ProfileDraft, update extractor.Update) {
	if update.Age != nil {
		draft.Age = update.Age
	}
	if update.Weight != nil {
		draft.Weight = update.Weight
	}
	if update.Height != nil {
		draft.Height = update.Height
	}
	if update.Gender != nil {
		draft.Gender = update.Gender
	}
	if update.FitnessGoal != nil {
		draft.FitnessGoal = update.FitnessGoal
	}
}

// buildProfile turns a complete draft into a persistable profile, preserving
// form-entered fields (restrictions, equipment, preferences) from any
// existing record.
func (s *ProfileService) buildProfile(userID uuid.UUID, draft *models.ProfileDraft) (*models.UserProfile, error) {
	profile := &models.UserProfile{
		UserID:               userID,
		ExperienceLevel:      models.ExperienceBeginner,
		PreferredWorkoutDays: 3,
		GymAccess:            true,
	}
	if existing, err := s.profiles.FindByUserID(userID); err == nil {
		profile = existing
	}

	profile.UserID = userID
	profile.Age = draft.Age
	profile.Weight = draft.Weight
	profile.Height = draft.Height
	profile.Gender = draft.Gender
	profile.FitnessGoal = draft.FitnessGoal
	// Only take the defaulted activity level when the stored profile has no
	// user-supplied value of its own.
	if !draft.ActivityDefaulted || profile.ActivityLevel == nil {
		profile.ActivityLevel = draft.ActivityLevel
	}

	if err := RecomputeTargets(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// RecomputeTargets derives bmr, tdee, target calories and macros from the
// profile's attributes, writing all six together. It is the single place
// the derived-fields invariant is enforced; the chat pipeline and the form
// endpoints both go through it.
func RecomputeTargets(profile *models.UserProfile) error {
	if !profile.HasRequiredFields() {
		return nutrition.ErrInvalidInput
	}

	targets, err := nutrition.Calculate(nutrition.Input{
		WeightKg:      *profile.Weight,
		HeightCm:      *profile.Height,
		AgeYears:      *profile.Age,
		Gender:        *profile.Gender,
		ActivityLevel: *profile.ActivityLevel,
		Goal:          *profile.FitnessGoal,
	})
	if err != nil {
		return err
	}

	profile.BMR = &targets.BMR
	profile.TDEE = &targets.TDEE
	profile.TargetCalories = &targets.TargetCalories
	profile.TargetProtein = &targets.TargetProtein
	profile.TargetCarbs = &targets.TargetCarbs
	profile.TargetFat = &targets.TargetFat
	return nil
}

// ContextMessage prefixes the outbound agent message with the user's stored
// attributes and daily targets so the conversation stays personalized.
func ContextMessage(profile *models.UserProfile, message string) string {
	if profile == nil || !profile.HasRequiredFields() || profile.TargetCalories == nil {
		return message
	}
	return fmt.Sprintf(
		"User Profile: Age: %d, Weight: %vkg, Height: %vcm, Gender: %s, Goal: %s, Activity Level: %s, "+
			"Daily Targets: %d calories, %dg protein, %dg carbs, %dg fat. User Message: %s",
		*profile.Age, *profile.Weight, *profile.Height, *profile.Gender, *profile.FitnessGoal,
		*profile.ActivityLevel, *profile.TargetCalories, *profile.TargetProtein,
		*profile.TargetCarbs, *profile.TargetFat, message,
	)
}
