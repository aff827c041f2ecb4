package errors

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Debug controls whether internal error detail is included in responses.
// Set once at startup from config.
var Debug bool

// Error represents an application error with an HTTP status code.
type Error struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
	Err     error       `json:"-"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error.
func New(code int, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewValidation creates a validation error carrying field-level detail.
func NewValidation(message string, details interface{}) *Error {
	return &Error{
		Code:    http.StatusBadRequest,
		Message: message,
		Details: details,
	}
}

// NotFound creates a 404 for the named resource. A tenant-scoped lookup miss
// and a resource owned by another tenant are intentionally indistinguishable.
func NotFound(resource string) *Error {
	return &Error{
		Code:    http.StatusNotFound,
		Message: resource + " not found",
	}
}

// Common error values.
var (
	ErrAccessDenied = &Error{
		Code:    http.StatusForbidden,
		Message: "Access forbidden: you can only access your own resources",
	}
	ErrInvalidCredentials = &Error{
		Code:    http.StatusUnauthorized,
		Message: "Invalid email or password",
	}
	ErrUnauthorized = &Error{
		Code:    http.StatusUnauthorized,
		Message: "Could not validate credentials",
	}
	ErrStoreUnavailable = &Error{
		Code:    http.StatusServiceUnavailable,
		Message: "Database connection error. Please try again later.",
	}
)

// Respond writes err as a JSON response on c. Unrecognized errors become an
// opaque 500 with internal detail suppressed unless Debug is set.
func Respond(c *gin.Context, err error) {
	if appErr, ok := err.(*Error); ok {
		body := gin.H{"error": appErr.Message}
		if appErr.Details != nil {
			body["details"] = appErr.Details
		}
		c.JSON(appErr.Code, body)
		return
	}

	body := gin.H{"error": "Something went wrong. Please try again later."}
	if Debug && err != nil {
		body["details"] = err.Error()
	}
	c.JSON(http.StatusInternalServerError, body)
}
