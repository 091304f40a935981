package provider

import "fmt"

// ErrorType classifies provider failures.
type ErrorType int

const (
	// ErrorTypeFetch indicates a download or filesystem failure.
	ErrorTypeFetch ErrorType = iota
	// ErrorTypeNotFound indicates the pack does not exist.
	ErrorTypeNotFound
	// ErrorTypeAuth indicates missing or rejected credentials.
	ErrorTypeAuth
	// ErrorTypeInvalidURL indicates an unparseable pack reference.
	ErrorTypeInvalidURL
	// ErrorTypeInvalidPack indicates a corrupt or empty archive.
	ErrorTypeInvalidPack
)

func (t ErrorType) String() string {
	switch t {
	case ErrorTypeFetch:
		return "fetch"
	case ErrorTypeNotFound:
		return "not_found"
	case ErrorTypeAuth:
		return "auth"
	case ErrorTypeInvalidURL:
		return "invalid_url"
	case ErrorTypeInvalidPack:
		return "invalid_pack"
	default:
		return "unknown"
	}
}

// Error is a typed provider failure.
type Error struct {
	Type     ErrorType
	Provider string
	URL      string
	Message  string
	Cause    error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Type, e.Message)
	if e.URL != "" {
		msg += fmt.Sprintf(" (%s)", e.URL)
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// NewFetchError wraps a download or filesystem failure.
func NewFetchError(provider, url string, cause error) *Error {
	return &Error{
		Type:     ErrorTypeFetch,
		Provider: provider,
		URL:      url,
		Message:  "failed to fetch pack",
		Cause:    cause,
	}
}

// NewNotFoundError reports a missing pack.
func NewNotFoundError(provider, url string) *Error {
	return &Error{
		Type:     ErrorTypeNotFound,
		Provider: provider,
		URL:      url,
		Message:  "pack not found (check the owner/repo and ref, or set GITHUB_TOKEN for private repositories)",
	}
}

// NewAuthError reports rejected credentials.
func NewAuthError(provider, url string) *Error {
	return &Error{
		Type:     ErrorTypeAuth,
		Provider: provider,
		URL:      url,
		Message:  "authentication failed",
	}
}

// NewInvalidURLError reports an unparseable pack reference.
func NewInvalidURLError(url string, cause error) *Error {
	return &Error{
		Type:    ErrorTypeInvalidURL,
		URL:     url,
		Message: "invalid pack reference",
		Cause:   cause,
	}
}

// NewInvalidTemplateError reports a corrupt or unusable pack archive.
func NewInvalidTemplateError(url string, cause error) *Error {
	return &Error{
		Type:    ErrorTypeInvalidPack,
		URL:     url,
		Message: "invalid pack archive",
		Cause:   cause,
	}
}
