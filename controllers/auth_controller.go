package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/dhruvahir777/billoza-backend/errors"
	"github.com/dhruvahir777/billoza-backend/models"
	"github.com/dhruvahir777/billoza-backend/services"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	auth   AuthManager
	tokens *services.TokenManager
}

func NewAuthController(auth AuthManager, tokens *services.TokenManager) *AuthController {
	return &AuthController{
		auth:   auth,
		tokens: tokens,
	}
}

func (ac *AuthController) authResponse(message string, user *models.User, token string) gin.H {
	return gin.H{
		"message":      message,
		"access_token": token,
		"token_type":   "bearer",
		"user": gin.H{
			"id":              user.ID.Hex(),
			"user_id":         user.UserID,
			"email":           user.Email,
			"full_name":       user.FullName,
			"restaurant_name": user.RestaurantName,
			"phone":           user.Phone,
			"address":         user.Address,
			"profile_image":   user.ProfileImage,
		},
	}
}

// Register creates a new owner account and returns an access token.
func (ac *AuthController) Register(c *gin.Context) {
	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := ac.auth.Register(c.Request.Context(), &req)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	token, err := ac.tokens.GenerateToken(user)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, ac.authResponse("User registered successfully", user, token))
}

// Login authenticates an owner and returns an access token.
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := ac.auth.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	token, err := ac.tokens.GenerateToken(user)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, ac.authResponse("Login successful", user, token))
}
