package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/dhruvahir777/billoza-backend/errors"
	"github.com/dhruvahir777/billoza-backend/middleware"
	"github.com/dhruvahir777/billoza-backend/services"
)

type UserController struct {
	users UserManager
}

func NewUserController(users UserManager) *UserController {
	return &UserController{users: users}
}

// GetProfile returns the authenticated owner's profile.
func (uc *UserController) GetProfile(c *gin.Context) {
	user, err := uc.users.GetProfile(c.Request.Context(), c.GetString(middleware.CurrentUserIDKey))
	if err != nil {
		respondServiceError(c, err, "User")
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateProfile applies a partial patch to the authenticated owner's profile.
func (uc *UserController) UpdateProfile(c *gin.Context) {
	var req services.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := uc.users.UpdateProfile(c.Request.Context(), c.GetString(middleware.CurrentUserIDKey), &req)
	if err != nil {
		respondServiceError(c, err, "User")
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateProfileImage replaces the authenticated owner's profile image.
func (uc *UserController) UpdateProfileImage(c *gin.Context) {
	file, err := requireImageUpload(c)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	user, err := uc.users.UpdateProfileImage(c.Request.Context(), c.GetString(middleware.CurrentUserIDKey), file)
	if err != nil {
		respondServiceError(c, err, "User")
		return
	}
	c.JSON(http.StatusOK, user)
}
