package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/dhruvahir777/billoza-backend/errors"
	"github.com/dhruvahir777/billoza-backend/repository"
	"github.com/dhruvahir777/billoza-backend/services"
)

// Context keys set by AuthMiddleware.
const (
	CurrentUserIDKey = "current_user_id" // store-assigned id (hex)
	CurrentTenantKey = "current_tenant"  // human-facing tenant code
	CurrentUserKey   = "current_user"    // *models.User
)

// AuthMiddleware resolves the bearer token into the authenticated user and
// stores it on the request context.
func AuthMiddleware(tokens *services.TokenManager, users repository.UserRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrUnauthorized.Message})
			return
		}

		claims, err := tokens.ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrUnauthorized.Message})
			return
		}

		email, _ := claims["sub"].(string)
		if email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrUnauthorized.Message})
			return
		}

		user, err := users.FindByEmail(c.Request.Context(), email)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrUnauthorized.Message})
				return
			}
			apperrors.Respond(c, err)
			c.Abort()
			return
		}

		c.Set(CurrentUserIDKey, user.ID.Hex())
		c.Set(CurrentTenantKey, user.UserID)
		c.Set(CurrentUserKey, user)
		c.Next()
	}
}
