package utils

import (
	"errors"
	"net/http"
)

// APIError carries the HTTP status a failure should surface as. Handlers
// attach one to the gin context and the ErrorHandler middleware writes the
// response; nothing is dropped at the outer boundary.
type APIError struct {
	Status  int
	Message string
	// Errors carries per-field messages for multi-field validation
	// failures; nil otherwise.
	Errors []string
}

func (e *APIError) Error() string {
	return e.Message
}

func NewAPIError(status int, message string) *APIError {
	return &APIError{Status: status, Message: message}
}

func BadRequest(message string) *APIError {
	return NewAPIError(http.StatusBadRequest, message)
}

func Unauthorized(message string) *APIError {
	return NewAPIError(http.StatusUnauthorized, message)
}

func NotFound(message string) *APIError {
	return NewAPIError(http.StatusNotFound, message)
}

func Conflict(message string) *APIError {
	return NewAPIError(http.StatusConflict, message)
}

func ValidationError(message string) *APIError {
	return NewAPIError(http.StatusUnprocessableEntity, message)
}

func ValidationErrors(errs []string) *APIError {
	return &APIError{Status: http.StatusUnprocessableEntity, Message: "Validation error", Errors: errs}
}

func InternalError(message string) *APIError {
	return NewAPIError(http.StatusInternalServerError, message)
}

// UpstreamError classifies a failed external API call.
func UpstreamError(message string) *APIError {
	return NewAPIError(http.StatusInternalServerError, message)
}

// ParseError classifies an unparseable external response.
func ParseError(message string) *APIError {
	return NewAPIError(http.StatusInternalServerError, message)
}

// AsAPIError unwraps err into an *APIError, or wraps it as a 500.
func AsAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return InternalError("Internal Server Error")
}
