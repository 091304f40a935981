package app

import "fmt"

// AppErrorType represents the type of application error.
type AppErrorType int

const (
	// GenerateFailed indicates the generate workflow failed.
	GenerateFailed AppErrorType = iota
	// ListFailed indicates generator listing failed.
	ListFailed
	// InspectFailed indicates template inspection failed.
	InspectFailed
	// InitFailed indicates generator scaffolding failed.
	InitFailed
	// VariableLoadFailed indicates variable loading failed.
	VariableLoadFailed
	// ValidationFailed indicates variable validation failed.
	ValidationFailed
	// WatchFailed indicates watch mode failed.
	WatchFailed
	// PackFailed indicates a pack operation failed.
	PackFailed
)

// AppError represents an application-layer error.
type AppError struct {
	// Type is the error type.
	Type AppErrorType
	// Message is the error message.
	Message string
	// Cause is the underlying error.
	Cause error
}

// Error returns the error message.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new AppError.
func NewAppError(errType AppErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// NewGenerateError creates a generate error.
func NewGenerateError(message string, cause error) *AppError {
	return NewAppError(GenerateFailed, message, cause)
}

// NewListError creates a list error.
func NewListError(message string, cause error) *AppError {
	return NewAppError(ListFailed, message, cause)
}

// NewInspectError creates an inspect error.
func NewInspectError(message string, cause error) *AppError {
	return NewAppError(InspectFailed, message, cause)
}

// NewInitError creates an init error.
func NewInitError(message string, cause error) *AppError {
	return NewAppError(InitFailed, message, cause)
}

// NewVariableLoadError creates a variable load error.
func NewVariableLoadError(message string, cause error) *AppError {
	return NewAppError(VariableLoadFailed, message, cause)
}

// NewValidationError creates a validation error.
func NewValidationError(message string, cause error) *AppError {
	return NewAppError(ValidationFailed, message, cause)
}

// NewWatchError creates a watch error.
func NewWatchError(message string, cause error) *AppError {
	return NewAppError(WatchFailed, message, cause)
}

// NewPackError creates a pack error.
func NewPackError(message string, cause error) *AppError {
	return NewAppError(PackFailed, message, cause)
}
