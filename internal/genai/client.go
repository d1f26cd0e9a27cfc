// Package genai calls the Gemini generateContent API to produce structured
// meal and workout plans. Prompts demand strict JSON; responses are cleaned
// of markdown fences and validated before being handed back.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const defaultModel = "gemini-1.5-flash"

type Client struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewClient(apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is not set")
	}
	return &Client{
		apiKey:     apiKey,
		model:      defaultModel,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}, nil
}

type generateContentRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type MealPlanRequest struct {
	Goal                string   `json:"goal"`
	Ingredients         []string `json:"ingredients"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
	TargetCalories      *int     `json:"target_calories,omitempty"`
}

type WorkoutPlanRequest struct {
	Goal          string                 `json:"goal"`
	BodyData      map[string]interface{} `json:"body_data"`
	DaysAvailable int                    `json:"days_available"`
	Preferences   string                 `json:"preferences,omitempty"`
}

// GenerateMealPlan returns the generated plan as raw JSON with at least a
// "meals" array; the payload shape is owned by the prompt contract.
func (c *Client) GenerateMealPlan(ctx context.Context, req MealPlanRequest) (json.RawMessage, error) {
	ingredientsJSON, _ := json.Marshal(req.Ingredients)

	var extras strings.Builder
	if len(req.DietaryRestrictions) > 0 {
		fmt.Fprintf(&extras, "Dietary Restrictions: %s\n", strings.Join(req.DietaryRestrictions, ", "))
	}
	if req.TargetCalories != nil {
		fmt.Fprintf(&extras, "Target Daily Calories: %d\n", *req.TargetCalories)
	}

	prompt := fmt.Sprintf(`
You are a professional nutritionist and chef with access to a comprehensive food database. Create a detailed daily meal plan based on the following:

Goal: %s
Available Ingredients: %s
%s
Please provide a JSON response with the following structure:
{
  "goal": "%s",
  "ingredients": %s,
  "meals": [
    {
      "name": "Meal name",
      "type": "breakfast|lunch|dinner|snack",
      "calories": number,
      "protein": number (in grams),
      "carbs": number (in grams),
      "fat": number (in grams),
      "fiber": number (in grams),
      "ingredients_used": ["ingredient1", "ingredient2"],
      "steps": ["Step 1", "Step 2", "Step 3"],
      "prep_time": number (in minutes),
      "cook_time": number (in minutes),
      "tips": "Optional cooking tips or modifications"
    }
  ]
}

Requirements:
- Create 3-4 meals (breakfast, lunch, dinner, and optionally a snack)
- Use primarily the provided ingredients
- Ensure meals align with the fitness goal
- Respect dietary restrictions if provided
- Provide realistic macro calculations based on actual food nutrition data
- Include detailed cooking steps for each meal
- Add prep and cook times for meal planning
- Include helpful cooking tips where relevant
- Make sure total daily calories match target if provided, otherwise appropriate for the goal

Respond ONLY with valid JSON, no additional text.
`, req.Goal, strings.Join(req.Ingredients, ", "), extras.String(), req.Goal, string(ingredientsJSON))

	return c.generateJSON(ctx, prompt)
}

// GenerateWorkoutPlan returns a generated workout split as raw JSON.
func (c *Client) GenerateWorkoutPlan(ctx context.Context, req WorkoutPlanRequest) (json.RawMessage, error) {
	bodyData, _ := json.Marshal(req.BodyData)
	preferences := req.Preferences
	if preferences == "" {
		preferences = "None specified"
	}

	prompt := fmt.Sprintf(`
You are a professional fitness trainer and exercise physiologist. Create a detailed workout plan based on the following:

Goal: %s
Body Data: %s
Days Available: %d
Preferences: %s

Please provide a JSON response with the following structure:
{
  "goal": "%s",
  "split": ["Day 1 name", "Day 2 name", "Day 3 name"],
  "days": %d,
  "exercises": [
    {
      "day": "Day name (e.g., Push Day, Pull Day, Legs)",
      "exercises": [
        {
          "name": "Exercise name",
          "sets": number,
          "reps": "rep range (e.g., 8-12, 15-20)",
          "rest": "rest time (e.g., 60-90s, 2-3min)",
          "notes": "optional form tips or modifications"
        }
      ]
    }
  ]
}

Requirements:
- Create a workout split appropriate for %d days per week
- Include compound and isolation exercises
- Provide proper rep ranges and rest times for the goal
- Include form tips and modifications where helpful
- Ensure the plan is progressive and sustainable
- Consider the user's experience level from body data

Respond ONLY with valid JSON, no additional text.
`, req.Goal, string(bodyData), req.DaysAvailable, preferences, req.Goal, req.DaysAvailable, req.DaysAvailable)

	return c.generateJSON(ctx, prompt)
}

func (c *Client) generateJSON(ctx context.Context, prompt string) (json.RawMessage, error) {
	text, err := c.generateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	cleaned := stripCodeFences(text)
	if !json.Valid([]byte(cleaned)) {
		return nil, fmt.Errorf("model returned invalid JSON")
	}
	return json.RawMessage(cleaned), nil
}

func (c *Client) generateContent(ctx context.Context, prompt string) (string, error) {
	reqBody := generateContentRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			Temperature:     0.7,
			TopK:            40,
			TopP:            0.95,
			MaxOutputTokens: 2048,
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf(
		"https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s",
		c.model, c.apiKey,
	)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini returned status %d", resp.StatusCode)
	}

	var genResp generateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return "", fmt.Errorf("failed to decode gemini response: %w", err)
	}
	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}
	return genResp.Candidates[0].Content.Parts[0].Text, nil
}

// stripCodeFences removes a wrapping ```json ... ``` block the model
// sometimes adds despite the prompt.
func stripCodeFences(text string) string {
	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "```json") {
		trimmed = strings.TrimPrefix(trimmed, "```json")
	} else if strings.HasPrefix(trimmed, "```") {
		trimmed = strings.TrimPrefix(trimmed, "```")
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
