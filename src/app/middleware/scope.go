package middleware

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	"bandquiz/src/infra/logger"
)

// AttachFunc adds request scoped values to ctx.
type AttachFunc func(ctx context.Context, log *slog.Logger) context.Context

// RequestScope stores a logger tagged with the request ID in the request
// context and then runs attach, which is where per-request state such as
// batch loaders is created. Must run after RequestID.
//
// Usage:
//
//	router.POST("/graphql", middleware.RequestScope(log, newLoaders), h.Post)
func RequestScope(log *slog.Logger, attach AttachFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.WithRequestID(log, GetRequestID(c))
		ctx := logger.IntoContext(c.Request.Context(), reqLog)
		if attach != nil {
			ctx = attach(ctx, reqLog)
		}
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
