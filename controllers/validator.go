package controllers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apperrors "github.com/dhruvahir777/billoza-backend/errors"
	"github.com/dhruvahir777/billoza-backend/repository"
)

const dateLayout = "2006-01-02"

// respondBindingError maps a request binding failure to a response: field
// validation failures get 422 with field-level detail, malformed payloads 400.
func respondBindingError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		details := make([]gin.H, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			details = append(details, gin.H{
				"field":   fieldErr.Field(),
				"message": "failed on '" + fieldErr.Tag() + "' validation",
			})
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "Validation Error",
			"message": "Please check the following fields:",
			"details": details,
		})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
}

// respondServiceError maps service and repository errors onto the wire.
func respondServiceError(c *gin.Context, err error, resource string) {
	if errors.Is(err, repository.ErrNotFound) {
		apperrors.Respond(c, apperrors.NotFound(resource))
		return
	}
	apperrors.Respond(c, err)
}

// parseDateQuery parses an optional YYYY-MM-DD query parameter.
func parseDateQuery(c *gin.Context, name string) (*time.Time, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.ParseInLocation(dateLayout, raw, time.UTC)
	if err != nil {
		return nil, apperrors.NewValidation("Invalid date, expected YYYY-MM-DD", name)
	}
	return &parsed, nil
}

// requireImageUpload extracts the uploaded file and checks it is an image.
func requireImageUpload(c *gin.Context) (*multipart.FileHeader, error) {
	file, err := c.FormFile("file")
	if err != nil {
		return nil, apperrors.NewValidation("A file upload is required", "file")
	}
	if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
		return nil, apperrors.NewValidation("File must be an image", "file")
	}
	return file, nil
}
