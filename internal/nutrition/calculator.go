// Package nutrition computes daily energy and macronutrient targets from a
// complete set of physical and behavioral attributes. Pure functions only.
package nutrition

import (
	"errors"
	"math"
	"strings"
)

// ErrInvalidInput is returned when weight, height or age is non-positive or
// non-finite. Callers must treat the profile as incomplete rather than
// persist nonsense targets.
var ErrInvalidInput = errors.New("nutrition: weight, height and age must be positive")

// Input is everything the calculation needs. Goal is matched
// case-insensitively; unknown activity levels fall back to sedentary.
type Input struct {
	WeightKg      float64
	HeightCm      float64
	AgeYears      int
	Gender        string
	ActivityLevel string
	Goal          string
}

// Targets are the derived daily values, each rounded to the nearest whole
// unit. They are internally consistent and only ever produced together.
type Targets struct {
	BMR            int `json:"bmr"`
	TDEE           int `json:"tdee"`
	TargetCalories int `json:"target_calories"`
	TargetProtein  int `json:"target_protein"`
	TargetCarbs    int `json:"target_carbs"`
	TargetFat      int `json:"target_fat"`
}

var activityMultipliers = map[string]float64{
	"sedentary":         1.2,
	"lightly_active":    1.375,
	"moderately_active": 1.55,
	"very_active":       1.725,
	"extremely_active":  1.9,
}

// Calculate derives BMR, TDEE, target calories and macro targets. It is
// deterministic and side-effect free; the only failure mode is ill-formed
// numeric input.
func Calculate(in Input) (Targets, error) {
	if !validNumber(in.WeightKg) || !validNumber(in.HeightCm) || in.AgeYears <= 0 {
		return Targets{}, ErrInvalidInput
	}

	// BMR is rounded before it feeds the rest of the chain; the remaining
	// values stay unrounded until output so macros derive from the exact
	// calorie target.
	bmr := math.Round(calculateBMR(in.WeightKg, in.HeightCm, in.AgeYears, in.Gender))
	tdee := calculateTDEE(bmr, in.ActivityLevel)
	calories := calculateTargetCalories(tdee, in.Goal)
	protein, carbs, fat := calculateMacros(calories, in.Goal)

	return Targets{
		BMR:            int(bmr),
		TDEE:           int(math.Round(tdee)),
		TargetCalories: int(math.Round(calories)),
		TargetProtein:  int(math.Round(protein)),
		TargetCarbs:    int(math.Round(carbs)),
		TargetFat:      int(math.Round(fat)),
	}, nil
}

// calculateBMR uses the Mifflin-St Jeor equation. Anything other than
// "male" (female, other) takes the female constant.
func calculateBMR(weight, height float64, age int, gender string) float64 {
	base := 10*weight + 6.25*height - 5*float64(age)
	if gender == "male" {
		return base + 5
	}
	return base - 161
}

func calculateTDEE(bmr float64, activityLevel string) float64 {
	mult, ok := activityMultipliers[activityLevel]
	if !ok {
		mult = 1.2
	}
	return bmr * mult
}

func calculateTargetCalories(tdee float64, goal string) float64 {
	switch strings.ToLower(goal) {
	case "lose weight", "weight loss", "cut":
		return tdee - 500
	case "gain weight", "weight gain", "bulk":
		return tdee + 500
	case "build muscle", "muscle gain":
		return tdee + 300
	default:
		// "maintain weight", "maintenance" and anything unrecognized.
		return tdee
	}
}

// calculateMacros splits target calories into grams of protein, carbs and
// fat (4 kcal/g for protein and carbs, 9 kcal/g for fat).
func calculateMacros(targetCalories float64, goal string) (protein, carbs, fat float64) {
	var proteinRatio, carbRatio, fatRatio float64
	switch strings.ToLower(goal) {
	case "lose weight", "weight loss", "cut":
		proteinRatio, fatRatio, carbRatio = 0.35, 0.25, 0.40
	case "build muscle", "muscle gain", "bulk":
		proteinRatio, fatRatio, carbRatio = 0.30, 0.25, 0.45
	default:
		proteinRatio, fatRatio, carbRatio = 0.30, 0.30, 0.40
	}

	protein = targetCalories * proteinRatio / 4
	carbs = targetCalories * carbRatio / 4
	fat = targetCalories * fatRatio / 9
	return protein, carbs, fat
}

func validNumber(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
