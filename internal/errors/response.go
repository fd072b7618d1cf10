package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the standard error payload.
type ErrorResponse struct {
	Error   string `json:"error"`   // error code, for frontend mapping
	Message string `json:"message"` // user-facing message (Dutch)
}

// RespondWithError writes an error response.
func RespondWithError(c *gin.Context, statusCode int, errorCode string, message string) {
	c.JSON(statusCode, ErrorResponse{
		Error:   errorCode,
		Message: message,
	})
}

// Shorthands for the common cases.

func BadRequest(c *gin.Context, errorCode string, message string) {
	if message == "" {
		message = "Ongeldige invoer"
	}
	RespondWithError(c, http.StatusBadRequest, errorCode, message)
}

func NotFound(c *gin.Context, errorCode string, message string) {
	if message == "" {
		message = "Niet gevonden"
	}
	RespondWithError(c, http.StatusNotFound, errorCode, message)
}

func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "Er is een serverfout opgetreden. Probeer het later opnieuw"
	}
	RespondWithError(c, http.StatusInternalServerError, InternalServerError, message)
}
