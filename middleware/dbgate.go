package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/dhruvahir777/billoza-backend/errors"
)

// Pinger reports whether the store connection is alive.
type Pinger interface {
	Ping(ctx context.Context) error
}

// DatabaseGate rejects data-path requests with 503 when the store connection
// is down, before they reach any handler.
func DatabaseGate(store Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		// health checks must not depend on the store
		if c.Request.URL.Path == "/health" || c.Request.URL.Path == "/" {
			c.Next()
			return
		}
		if err := store.Ping(c.Request.Context()); err != nil {
			zap.L().Error("Database connection not available", zap.Error(err))
			apperrors.Respond(c, apperrors.ErrStoreUnavailable)
			c.Abort()
			return
		}
		c.Next()
	}
}
