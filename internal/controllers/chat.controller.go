package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/404DEVR/gym-agent/internal/assistant"
	"github.com/404DEVR/gym-agent/internal/models"
	"github.com/404DEVR/gym-agent/internal/repository"
	"github.com/404DEVR/gym-agent/internal/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AgentClient is the conversational agent surface the chat endpoint needs.
type AgentClient interface {
	Chat(ctx context.Context, message, userID string) (*assistant.ChatResponse, error)
}

type ChatController struct {
	profileService *services.ProfileService
	profiles       repository.UserProfileRepository
	agent          AgentClient
}

func NewChatController(profileService *services.ProfileService, profiles repository.UserProfileRepository, agent AgentClient) *ChatController {
	return &ChatController{
		profileService: profileService,
		profiles:       profiles,
		agent:          agent,
	}
}

type chatRequest struct {
	Message string `json:"message" binding:"required"`
}

// HandleMessage godoc
// @Summary Send a chat message
// @Description Forward a message to the fitness agent. Personal attributes mentioned in the message are merged into the user's profile; once complete, daily targets are computed and the profile is saved.
// @Tags chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param message body chatRequest true "Chat message"
// @Success 200 {object} map[string]interface{} "Agent reply"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 502 {object} map[string]interface{} "Agent unavailable"
// @Router /chat [post]
func (cc *ChatController) HandleMessage(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	// Extraction is best effort and never blocks the conversation; a
	// session-store failure just means this message contributes nothing to
	// the draft.
	result, err := cc.profileService.ApplyMessage(c.Request.Context(), userID, req.Message)
	if err != nil {
		log.Printf("Profile extraction skipped for %s: %v", userID, err)
		result = &services.ApplyResult{State: models.DraftEmpty}
	}

	profile := result.Profile
	if profile == nil {
		if stored, err := cc.profiles.FindByUserID(userID); err == nil {
			profile = stored
		} else if err != gorm.ErrRecordNotFound {
			log.Printf("Failed to load profile for chat context (%s): %v", userID, err)
		}
	}

	outbound := services.ContextMessage(profile, req.Message)
	agentResp, err := cc.agent.Chat(c.Request.Context(), outbound, userID.String())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"status":  "error",
			"message": "The assistant is unavailable right now, please try again",
			"error":   err.Error(),
		})
		return
	}

	data := gin.H{
		"response":      agentResp.Response,
		"profile_state": result.State.String(),
		"profile_saved": result.Saved,
	}
	if profile != nil {
		data["profile"] = profile
	}
	if len(agentResp.WorkoutPlan) > 0 {
		data["workout_plan"] = json.RawMessage(agentResp.WorkoutPlan)
		data["show_both_buttons"] = agentResp.ShowBothButtons
	}
	if len(agentResp.NutritionPlan) > 0 {
		data["nutrition_plan"] = json.RawMessage(agentResp.NutritionPlan)
	}
	if result.SaveErr != nil {
		data["notice"] = "Your info wasn't saved, please try again"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Message processed successfully",
		"data":    data,
	})
}
