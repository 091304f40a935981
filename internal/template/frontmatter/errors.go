package frontmatter

import "fmt"

// ParseError represents a frontmatter parsing or validation error.
type ParseError struct {
	// Message is the error message.
	Message string
	// Cause is the underlying error (if any).
	Cause error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("frontmatter: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("frontmatter: %s", e.Message)
}

// Unwrap returns the underlying cause error.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

func newParseError(message string, cause error) *ParseError {
	return &ParseError{Message: message, Cause: cause}
}
