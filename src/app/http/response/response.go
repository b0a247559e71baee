// Package response defines consistent HTTP response structures for the
// endpoints outside of GraphQL.
package response

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Error represents an error response.
type Error struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	// Code is a machine-readable error code (e.g., "NOT_FOUND", "BAD_REQUEST")
	Code string `json:"code"`

	// Message is a human-readable error description
	Message string `json:"message"`

	// RequestID is the request ID for debugging
	RequestID string `json:"request_id,omitempty"`
}

// BadRequest sends a 400 response.
func BadRequest(c *gin.Context, message string, requestID string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, Error{
		Error: ErrorDetail{
			Code:      "BAD_REQUEST",
			Message:   message,
			RequestID: requestID,
		},
	})
}

// NotFound sends a 404 response.
func NotFound(c *gin.Context, message, requestID string) {
	c.AbortWithStatusJSON(http.StatusNotFound, Error{
		Error: ErrorDetail{
			Code:      "NOT_FOUND",
			Message:   message,
			RequestID: requestID,
		},
	})
}

// MethodNotAllowed sends a 405 response listing the allowed methods.
func MethodNotAllowed(c *gin.Context, message, requestID string, allow ...string) {
	c.Header("Allow", strings.Join(allow, ", "))
	c.AbortWithStatusJSON(http.StatusMethodNotAllowed, Error{
		Error: ErrorDetail{
			Code:      "METHOD_NOT_ALLOWED",
			Message:   message,
			RequestID: requestID,
		},
	})
}

// InternalError sends a 500 response. Details are never exposed.
func InternalError(c *gin.Context, requestID string) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, Error{
		Error: ErrorDetail{
			Code:      "INTERNAL_ERROR",
			Message:   "An unexpected error occurred",
			RequestID: requestID,
		},
	})
}
