package middleware

import (
	"log/slog"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"bandquiz/src/app/http/response"
	"bandquiz/src/infra/logger"
)

// Recovery turns a panic in any later handler into a 500 response and logs
// it with its stack trace. Register it first.
//
// Usage:
//
//	router.Use(middleware.Recovery(logger))
func Recovery(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				requestID := GetRequestID(c)

				logger.FromContext(c.Request.Context(), log).Error("panic recovered",
					"request_id", requestID,
					"error", err,
					"path", c.Request.URL.Path,
					"method", c.Request.Method,
					"stack", string(debug.Stack()),
				)

				response.InternalError(c, requestID)
			}
		}()

		c.Next()
	}
}
