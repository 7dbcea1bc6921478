package types

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// CustomError is an error with an HTTP status and a dotted error type, rendered in the
// standard error envelope
type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}

// BadRequest reports invalid client input
func BadRequest(message, errorType string) *CustomError {
	return &CustomError{Code: fiber.StatusBadRequest, Message: message, Type: errorType}
}

// Forbidden reports a missing session flag or a refused account
func Forbidden(message, errorType string) *CustomError {
	return &CustomError{Code: fiber.StatusForbidden, Message: message, Type: errorType}
}

// Conflict reports a request that lost a race with another one
func Conflict(message, errorType string) *CustomError {
	return &CustomError{Code: fiber.StatusConflict, Message: message, Type: errorType}
}
