package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthController struct{}

func NewAuthController() *AuthController {
	return &AuthController{}
}

// GetCurrentUser godoc
// @Summary Get current user
// @Description Return the identity carried by the bearer token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Current user"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /auth/user [get]
func (ac *AuthController) GetCurrentUser(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user := gin.H{"id": userID}
	if email, exists := c.Get("email"); exists {
		user["email"] = email
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Current user retrieved successfully",
		"data":    gin.H{"user": user},
	})
}
