package generator

import "fmt"

// ErrorType categorizes generator errors.
type ErrorType int

const (
	// WriteFailed indicates a file write operation failed.
	WriteFailed ErrorType = iota
	// ProcessFailed indicates template rendering failed.
	ProcessFailed
	// PathInvalid indicates an invalid or unsafe output path.
	PathInvalid
	// InjectTargetMissing indicates an injection target does not exist.
	InjectTargetMissing
	// ShellHookFailed indicates a frontmatter shell hook failed.
	ShellHookFailed
)

// Error represents a generator error.
type Error struct {
	// Type categorizes the error.
	Type ErrorType
	// Message is the error message.
	Message string
	// File is the file path related to the error (if applicable).
	File string
	// Cause is the underlying error (if any).
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.File != "" {
		if e.Cause != nil {
			return fmt.Sprintf("%s (file: %s): %v", e.Message, e.File, e.Cause)
		}
		return fmt.Sprintf("%s (file: %s)", e.Message, e.File)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewWriteError creates a write failure error.
func NewWriteError(file string, cause error) *Error {
	return &Error{Type: WriteFailed, Message: "failed to write file", File: file, Cause: cause}
}

// NewProcessError creates a rendering failure error.
func NewProcessError(file string, cause error) *Error {
	return &Error{Type: ProcessFailed, Message: "failed to render template", File: file, Cause: cause}
}

// NewPathError creates an invalid output path error.
func NewPathError(file, message string) *Error {
	return &Error{Type: PathInvalid, Message: message, File: file}
}

// NewInjectTargetError creates a missing injection target error.
func NewInjectTargetError(file string) *Error {
	return &Error{Type: InjectTargetMissing, Message: "injection target does not exist (set createIfMissing to create it)", File: file}
}

// NewShellHookError creates a shell hook failure error.
func NewShellHookError(command string, cause error) *Error {
	return &Error{Type: ShellHookFailed, Message: fmt.Sprintf("shell hook %q failed", command), Cause: cause}
}
