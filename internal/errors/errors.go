package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when no user exists for a subject.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserAlreadyExists is returned when registering a taken email.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrNotTutor is returned when a tutor-only operation is called without the TUTOR role.
	ErrNotTutor = errors.New("user does not have the tutor role")
	// ErrNotStudent is returned when a student-only operation is called without the STUDENT role.
	ErrNotStudent = errors.New("user does not have the student role")
	// ErrRoleMismatch is returned when a requested role is not held by the user.
	ErrRoleMismatch = errors.New("user does not have the requested role")
	// ErrRoleAlreadyAssigned is returned when adding a role the user already holds.
	ErrRoleAlreadyAssigned = errors.New("user already has the role")
	// ErrNoFiles is returned when a credential upload carries no files.
	ErrNoFiles = errors.New("at least one file is required")
	// ErrNoRoles is returned when a role update carries no roles.
	ErrNoRoles = errors.New("at least one role is required")
	// ErrUpstream is returned when document storage or persistence fails fatally.
	ErrUpstream = errors.New("upstream service failure")
	// ErrProtocol is returned when the classifier reply cannot be interpreted.
	ErrProtocol = errors.New("invalid classifier response")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrUserAlreadyExists):
		return NewHTTPError(http.StatusConflict, err.Error(), "USER_EXISTS")
	case errors.Is(err, ErrNotTutor):
		return NewHTTPError(http.StatusForbidden, err.Error(), "NOT_TUTOR")
	case errors.Is(err, ErrNotStudent):
		return NewHTTPError(http.StatusForbidden, err.Error(), "NOT_STUDENT")
	case errors.Is(err, ErrRoleMismatch):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "ROLE_MISMATCH")
	case errors.Is(err, ErrRoleAlreadyAssigned):
		return NewHTTPError(http.StatusConflict, err.Error(), "ROLE_EXISTS")
	case errors.Is(err, ErrNoFiles):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "NO_FILES")
	case errors.Is(err, ErrNoRoles):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "NO_ROLES")
	case errors.Is(err, ErrProtocol):
		return NewHTTPError(http.StatusBadGateway, err.Error(), "CLASSIFIER_PROTOCOL")
	case errors.Is(err, ErrUpstream):
		return NewHTTPError(http.StatusBadGateway, err.Error(), "UPSTREAM_FAILURE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
