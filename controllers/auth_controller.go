package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/moto-workshop/mws-dashboard-api/services"
)

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /api/v1/auth/login - the backend is the credential
// authority; this endpoint forwards the login and relays whatever token the
// backend issues. A copy of the token feeds the background notifier.
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Email y contrasena son requeridos")
		return
	}

	client := services.GetBackendClient()
	body, err := services.PostRaw(c.Request.Context(), client, "", "/users/login", req)
	if err != nil {
		respondBackendError(c, err)
		return
	}

	var session struct {
		Token string          `json:"token"`
		User  json.RawMessage `json:"user"`
	}
	if err := json.Unmarshal(body, &session); err != nil || session.Token == "" {
		c.JSON(http.StatusBadGateway, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "BACKEND_ERROR",
				"message": "Respuesta de inicio de sesion invalida",
			},
		})
		return
	}

	services.SetSessionToken(session.Token)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"token": session.Token,
			"user":  session.User,
		},
	})
}

// RegisterAuthRoutes mounts the auth routes
func RegisterAuthRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/login", Login)
}
