package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nekogravitycat/dineflex-backend/internal/pkg/apperror"
)

// Error sends a JSON error response.
// It checks if the error is an AppError to determine the status code and body.
// If it's not an AppError, it defaults to 500 with an UNKNOWN code.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		status := appErr.Status
		if status == 0 {
			status = http.StatusInternalServerError
		}
		c.JSON(status, appErr.Body())
		return
	}

	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, apperror.Body{
		Code:    apperror.CodeUnknown,
		Message: "internal server error",
	})
}

// BadRequest sends a VALIDATION_ERROR for a malformed request that never reached a service.
func BadRequest(c *gin.Context, field, message string) {
	Error(c, apperror.Validation(apperror.FieldError{
		Field:   field,
		Code:    apperror.FieldInvalidFormat,
		Message: message,
	}))
}
