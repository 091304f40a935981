package injector

import "fmt"

// InjectError represents an injection failure.
type InjectError struct {
	// Message is the error message.
	Message string
}

// Error implements the error interface.
func (e *InjectError) Error() string {
	return "inject: " + e.Message
}

// NewAnchorError creates an error for an invalid anchor count.
func NewAnchorError(count int) *InjectError {
	return &InjectError{
		Message: fmt.Sprintf("exactly one anchor required, got %d", count),
	}
}

// NewAnchorNotFoundError creates an error for a missing anchor pattern.
func NewAnchorNotFoundError(pattern string) *InjectError {
	return &InjectError{
		Message: fmt.Sprintf("anchor pattern %q not found in target", pattern),
	}
}
