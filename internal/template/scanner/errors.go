package scanner

import "fmt"

// ScanErrorType categorizes scanner errors.
type ScanErrorType int

const (
	// RootNotFound indicates no templates root could be located.
	RootNotFound ScanErrorType = iota
	// GeneratorNotFound indicates the named generator does not exist.
	GeneratorNotFound
	// TemplateNotFound indicates the named template does not exist.
	TemplateNotFound
	// EmptyTemplate indicates the template directory has no files.
	EmptyTemplate
	// ConfigParseFailed indicates unjucks.yaml could not be parsed.
	ConfigParseFailed
	// ScanFailed indicates a filesystem error during discovery.
	ScanFailed
)

// ScanError represents a template discovery error.
type ScanError struct {
	// Type categorizes the error.
	Type ScanErrorType
	// Path is the path related to the error.
	Path string
	// Message is the error message.
	Message string
	// Cause is the underlying error (if any).
	Cause error
}

// Error implements the error interface.
func (e *ScanError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %v", e.Message, e.Path, e.Cause)
	}
	return fmt.Sprintf("%s (%s)", e.Message, e.Path)
}

// Unwrap returns the underlying cause error.
func (e *ScanError) Unwrap() error {
	return e.Cause
}

// NewRootError creates a root resolution error.
func NewRootError(path string, cause error) *ScanError {
	return &ScanError{Type: ScanFailed, Path: path, Message: "failed to resolve templates root", Cause: cause}
}

// NewRootNotFoundError creates a root-not-found error.
func NewRootNotFoundError(path string) *ScanError {
	return &ScanError{Type: RootNotFound, Path: path, Message: "templates root not found"}
}

// NewGeneratorNotFoundError creates a generator-not-found error.
func NewGeneratorNotFoundError(name string) *ScanError {
	return &ScanError{Type: GeneratorNotFound, Path: name, Message: "generator not found"}
}

// NewTemplateNotFoundError creates a template-not-found error.
func NewTemplateNotFoundError(generator, name string) *ScanError {
	return &ScanError{Type: TemplateNotFound, Path: generator + "/" + name, Message: "template not found"}
}

// NewEmptyTemplateError creates an empty-template error.
func NewEmptyTemplateError(generator, name string) *ScanError {
	return &ScanError{Type: EmptyTemplate, Path: generator + "/" + name, Message: "template has no files"}
}

// NewConfigParseError creates a config parse error.
func NewConfigParseError(path string, cause error) *ScanError {
	return &ScanError{Type: ConfigParseFailed, Path: path, Message: "failed to parse template config", Cause: cause}
}

// NewScanError creates a generic scan error.
func NewScanError(path string, cause error) *ScanError {
	return &ScanError{Type: ScanFailed, Path: path, Message: "failed to scan templates", Cause: cause}
}
