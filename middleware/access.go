package middleware

import (
	"github.com/gin-gonic/gin"

	apperrors "github.com/dhruvahir777/billoza-backend/errors"
)

// VerifyAccess compares the caller's tenant code against the tenant code in
// the request path. Any mismatch, including an empty caller code, denies.
func VerifyAccess(callerTenantCode, pathTenantCode string) error {
	if callerTenantCode == "" || callerTenantCode != pathTenantCode {
		return apperrors.ErrAccessDenied
	}
	return nil
}

// AccessGuard gates every tenant-scoped route: the authenticated caller may
// only reach their own tenant's resources. Runs after AuthMiddleware.
func AccessGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := c.GetString(CurrentTenantKey)
		if err := VerifyAccess(caller, c.Param("user_id")); err != nil {
			apperrors.Respond(c, err)
			c.Abort()
			return
		}
		c.Next()
	}
}
