package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionRequired    = errors.New("session ID required")
	ErrSessionInvalid     = errors.New("invalid session")
	ErrSessionExpired     = errors.New("session expired")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrInvalidRequest = errors.New("invalid request")

	// Server errors
	ErrInternal = errors.New("internal server error")
)

// Student errors
var (
	ErrStudentNotFound = errors.New("student not found")
	ErrStudentExists   = errors.New("student number or email already exists")
)

// Link errors
var (
	ErrLinkNotFound = errors.New("link not found or access denied")
	ErrSelfLink     = errors.New("cannot link with yourself")
	ErrLinkExists   = errors.New("link already exists")
)

// Group and event errors
var (
	ErrGroupNotFound = errors.New("group not found")
	ErrEventNotFound = errors.New("event not found")
)

// Class and enrollment errors
var (
	ErrClassNotFound      = errors.New("class not found")
	ErrAlreadyEnrolled    = errors.New("already enrolled in this class")
	ErrEnrollmentNotFound = errors.New("enrollment not found")
)

// Post, like and comment errors
var (
	ErrPostNotFound    = errors.New("post not found")
	ErrAlreadyLiked    = errors.New("post already liked")
	ErrLikeNotFound    = errors.New("like not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrEmptyComment    = errors.New("comment content is required")
)

// Notification and rating errors
var (
	ErrInvalidTarget = errors.New("notification target does not match target type")
	ErrInvalidRating = errors.New("rating value must be between 0 and 5")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// NewNotFoundError creates a new custom error for resource not found with a message
func NewNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewInvalidRequestError creates a new custom error for malformed input with a message
func NewInvalidRequestError(message string) error {
	return &CustomError{
		Err:     ErrInvalidRequest,
		Message: message,
	}
}
