// Package extractor pulls personal attributes (age, weight, height, gender,
// fitness goal) out of free-text chat messages. Matching is best effort:
// a field with no match is simply absent from the result, never an error.
package extractor

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

const lbsToKg = 0.453592

// Update is the set of attributes recognized in a single message. Nil means
// the message said nothing about that field.
type Update struct {
	Age         *int     `json:"age,omitempty"`
	Weight      *float64 `json:"weight,omitempty"` // kilograms
	Height      *float64 `json:"height,omitempty"` // centimeters
	Gender      *string  `json:"gender,omitempty"`
	FitnessGoal *string  `json:"fitness_goal,omitempty"`
}

// IsEmpty reports whether no field was recognized.
func (u Update) IsEmpty() bool {
	return u.Age == nil && u.Weight == nil && u.Height == nil &&
		u.Gender == nil && u.FitnessGoal == nil
}

var (
	detectAgeRe    = regexp.MustCompile(`\b(?:i am|i'm)\s+\d+|\d+\s+(?:years old|year old|yo)\b|\bage\s*:?\s*\d+`)
	detectWeightRe = regexp.MustCompile(`\b\d+(?:\.\d+)?\s*(?:kg|kgs|kilos?|pounds?|lbs?)\b`)
	detectHeightRe = regexp.MustCompile(`\b\d+(?:\.\d+)?\s*(?:cm|centimeters?|ft|feet|inches?|'|")\b|\b(?:tall|height)\s+\d+`)
	detectGenderRe = regexp.MustCompile(`\b(?:male|female|man|woman|boy|girl)\b`)
	detectGoalRe   = regexp.MustCompile(`\b(?:lose weight|gain weight|build muscle|lose fat|bulk|cut|maintain)\b`)

	ageRe      = regexp.MustCompile(`(?i)\b(?:i am|i'm)\s+(\d+)(?:\s+(?:years old|year old|yo))?|\b(\d+)\s+(?:years old|year old|yo)\b|\bage\s*:?\s*(\d+)`)
	weightRe   = regexp.MustCompile(`(?i)\b(?:weigh|weight)\s*(?:is\s*)?(\d+(?:\.\d+)?)\s*(?:kg|kgs|kilos?|pounds?|lbs?)\b|\b(\d+(?:\.\d+)?)\s*(?:kg|kgs|kilos?|pounds?|lbs?)\b`)
	heightCmRe = regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)\s*(?:cm|centimeters?)\s*(?:tall|height)?|\b(?:height|tall)\s*(?:is\s*)?(\d+(?:\.\d+)?)\s*(?:cm|centimeters?)\b`)
	heightFtRe = regexp.MustCompile(`(?i)\b(\d+)\s*(?:ft|feet|')\s*(\d+)?\s*(?:in|inches?|")?\s*(?:tall|height)?|\b(?:height|tall)\s*(?:is\s*)?(\d+)\s*(?:ft|feet|')\s*(\d+)?\s*(?:in|inches?|")?\b`)

	maleRe   = regexp.MustCompile(`(?i)\b(?:i am|i'm)\s*(?:a\s*)?(?:male|man|boy|guy)\b|\b(?:male|man|boy|guy)\b`)
	femaleRe = regexp.MustCompile(`(?i)\b(?:i am|i'm)\s*(?:a\s*)?(?:female|woman|girl|lady)\b|\b(?:female|woman|girl|lady)\b`)
)

// goalPatterns are tested in order; the first matching group wins.
var goalPatterns = []struct {
	re   *regexp.Regexp
	goal string
}{
	{regexp.MustCompile(`(?i)\b(?:lose weight|weight loss|losing weight|shed weight|drop weight)\b`), "lose weight"},
	{regexp.MustCompile(`(?i)\b(?:gain weight|weight gain|gaining weight|bulk|bulking)\b`), "gain weight"},
	{regexp.MustCompile(`(?i)\b(?:build muscle|muscle gain|gaining muscle|get stronger|strength|muscle building)\b`), "build muscle"},
	{regexp.MustCompile(`(?i)\b(?:maintain|maintenance|stay the same|keep weight)\b`), "maintain weight"},
}

// ContainsPersonalInfo is a cheap gate run before Extract. It only filters
// out messages that cannot possibly carry any of the five attributes; a
// false positive here is harmless.
func ContainsPersonalInfo(message string) bool {
	lower := strings.ToLower(message)
	return detectAgeRe.MatchString(lower) ||
		detectWeightRe.MatchString(lower) ||
		detectHeightRe.MatchString(lower) ||
		detectGenderRe.MatchString(lower) ||
		detectGoalRe.MatchString(lower)
}

// Extract scans one message and returns whatever attributes it mentions.
// Matchers are independent and applied in a fixed order; the first matching
// pattern wins per field.
func Extract(message string) Update {
	var u Update
	u.Age = extractAge(message)
	u.Weight = extractWeight(message)
	u.Height = extractHeight(message)
	u.Gender = extractGender(message)
	u.FitnessGoal = extractGoal(message)
	return u
}

func extractAge(message string) *int {
	m := ageRe.FindStringSubmatch(message)
	if m == nil {
		return nil
	}
	for _, g := range m[1:] {
		if g == "" {
			continue
		}
		age, err := strconv.Atoi(g)
		if err != nil {
			return nil
		}
		return &age
	}
	return nil
}

func extractWeight(message string) *float64 {
	m := weightRe.FindStringSubmatch(message)
	if m == nil {
		return nil
	}
	raw := m[1]
	if raw == "" {
		raw = m[2]
	}
	weight, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	lower := strings.ToLower(message)
	if strings.Contains(lower, "pound") || strings.Contains(lower, "lbs") {
		weight *= lbsToKg
	}
	weight = roundTo1(weight)
	return &weight
}

// extractHeight prefers the centimeter pattern; feet/inches is only
// consulted when no cm expression is present.
func extractHeight(message string) *float64 {
	if m := heightCmRe.FindStringSubmatch(message); m != nil {
		raw := m[1]
		if raw == "" {
			raw = m[2]
		}
		height, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil
		}
		return &height
	}

	m := heightFtRe.FindStringSubmatch(message)
	if m == nil {
		return nil
	}
	feetRaw, inchesRaw := m[1], m[2]
	if feetRaw == "" {
		feetRaw, inchesRaw = m[3], m[4]
	}
	feet, err := strconv.Atoi(feetRaw)
	if err != nil {
		return nil
	}
	inches := 0
	if inchesRaw != "" {
		if inches, err = strconv.Atoi(inchesRaw); err != nil {
			return nil
		}
	}
	height := roundTo1(float64(feet)*30.48 + float64(inches)*2.54)
	return &height
}

// extractGender checks male terms before female terms; when both appear in
// one message the male match wins. Fixed tie-break, not an error.
func extractGender(message string) *string {
	if maleRe.MatchString(message) {
		g := "male"
		return &g
	}
	if femaleRe.MatchString(message) {
		g := "female"
		return &g
	}
	return nil
}

func extractGoal(message string) *string {
	for _, p := range goalPatterns {
		if p.re.MatchString(message) {
			g := p.goal
			return &g
		}
	}
	return nil
}

func roundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}
