package models

// DraftState tags how far an in-progress profile has come. Keeping the
// state explicit makes the completeness gate checkable in one place.
type DraftState int

const (
	DraftEmpty DraftState = iota
	DraftPartial
	DraftComplete
)

func (s DraftState) String() string {
	switch s {
	case DraftEmpty:
		return "empty"
	case DraftPartial:
		return "partial"
	case DraftComplete:
		return "complete"
	}
	return "unknown"
}

// ProfileDraft accumulates extracted attributes across chat turns. It lives
// in the session cache, never in postgres; only a complete draft is turned
// into a persisted UserProfile.
type ProfileDraft struct {
	Age           *int     `json:"age,omitempty"`
	Weight        *float64 `json:"weight,omitempty"`
	Height        *float64 `json:"height,omitempty"`
	Gender        *string  `json:"gender,omitempty"`
	ActivityLevel *string  `json:"activity_level,omitempty"`
	FitnessGoal   *string  `json:"fitness_goal,omitempty"`

	// ActivityDefaulted records that activity_level was filled with the
	// default to satisfy the completeness check, so a user-supplied value
	// later still wins.
	ActivityDefaulted bool `json:"activity_defaulted,omitempty"`
}

// State classifies the draft. Completeness requires age, weight, height,
// gender and fitness goal; activity_level may be the filled default.
func (d *ProfileDraft) State() DraftState {
	if d == nil {
		return DraftEmpty
	}
	set := 0
	for _, ok := range []bool{
		d.Age != nil, d.Weight != nil, d.Height != nil,
		d.Gender != nil, d.FitnessGoal != nil,
	} {
		if ok {
			set++
		}
	}
	switch {
	case set == 5:
		return DraftComplete
	case set > 0 || (d.ActivityLevel != nil && !d.ActivityDefaulted):
		return DraftPartial
	default:
		return DraftEmpty
	}
}
