package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfileDraftState(t *testing.T) {
	age, weight, height := 25, 72.0, 175.0
	gender, goal := "male", "build muscle"
	activity := ActivityModeratelyActive

	tests := []struct {
		name     string
		draft    *ProfileDraft
		expected DraftState
	}{
		{"nil draft", nil, DraftEmpty},
		{"zero draft", &ProfileDraft{}, DraftEmpty},
		{"single field", &ProfileDraft{Age: &age}, DraftPartial},
		{
			"defaulted activity alone does not count",
			&ProfileDraft{ActivityLevel: &activity, ActivityDefaulted: true},
			DraftEmpty,
		},
		{
			"user-supplied activity alone counts as progress",
			&ProfileDraft{ActivityLevel: &activity},
			DraftPartial,
		},
		{
			"four of five",
			&ProfileDraft{Age: &age, Weight: &weight, Height: &height, Gender: &gender},
			DraftPartial,
		},
		{
			"all five with defaulted activity",
			&ProfileDraft{
				Age: &age, Weight: &weight, Height: &height,
				Gender: &gender, FitnessGoal: &goal,
				ActivityLevel: &activity, ActivityDefaulted: true,
			},
			DraftComplete,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.draft.State())
		})
	}
}

func TestDraftStateString(t *testing.T) {
	assert.Equal(t, "empty", DraftEmpty.String())
	assert.Equal(t, "partial", DraftPartial.String())
	assert.Equal(t, "complete", DraftComplete.String())
}
