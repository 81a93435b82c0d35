package httperr

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error is an operational error: safe to show the client, mapped to its
// own HTTP status. Anything else reaching Respond is treated as an
// internal fault.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

func BadRequest(message string) *Error {
	return New(http.StatusBadRequest, message)
}

func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, message)
}

func Forbidden(message string) *Error {
	return New(http.StatusForbidden, message)
}

func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

func Unavailable(message string) *Error {
	return New(http.StatusServiceUnavailable, message)
}

// Respond writes the error envelope. Unclassified errors are logged and
// hidden behind a generic 500.
func Respond(c *gin.Context, err error) {
	var opErr *Error
	if errors.As(err, &opErr) {
		c.JSON(opErr.Status, gin.H{
			"success": false,
			"error":   opErr.Message,
		})
		return
	}

	log.Printf("internal error: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error":   "Internal server error",
	})
}
