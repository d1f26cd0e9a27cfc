// Package assistant wraps the external conversational agent API. The agent
// owns the generated text; this client is plain request/response HTTP.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

type ChatRequest struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

// ChatResponse mirrors the agent's reply. Plan payloads are relayed opaque;
// their shape belongs to the agent.
type ChatResponse struct {
	Response        string          `json:"response"`
	WorkoutPlan     json.RawMessage `json:"workout_plan,omitempty"`
	NutritionPlan   json.RawMessage `json:"nutrition_plan,omitempty"`
	ShowBothButtons bool            `json:"show_both_buttons,omitempty"`
}

func (c *Client) Chat(ctx context.Context, message, userID string) (*ChatResponse, error) {
	var resp ChatResponse
	if err := c.post(ctx, "/chat", ChatRequest{Message: message, UserID: userID}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

type MealPlanRequest struct {
	Goal                string   `json:"goal"`
	Ingredients         []string `json:"ingredients"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
	TargetCalories      *int     `json:"target_calories,omitempty"`
}

// MealPlan asks the agent for a structured meal plan. Callers fall back to
// the generative API when the agent is unreachable.
func (c *Client) MealPlan(ctx context.Context, req MealPlanRequest) (json.RawMessage, error) {
	var resp json.RawMessage
	if err := c.post(ctx, "/meal-plan", req, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("assistant request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("assistant returned status %d: %s", resp.StatusCode, string(data))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode assistant response: %w", err)
	}
	return nil
}
