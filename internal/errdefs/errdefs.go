package errdefs

import (
	"errors"
	"fmt"
)

type ErrorType int

const (
	// ErrTypePlatform: the OS elevation facilities could not be queried or used.
	ErrTypePlatform ErrorType = iota
	// ErrTypeElevationDenied: the user declined the elevation prompt.
	ErrTypeElevationDenied
	ErrTypeDirectoryCreation
	ErrTypeWriteFailed
	ErrTypePayloadMissing
	ErrTypeGeneric
)

func (t ErrorType) String() string {
	switch t {
	case ErrTypePlatform:
		return "platform"
	case ErrTypeElevationDenied:
		return "elevation denied"
	case ErrTypeDirectoryCreation:
		return "directory creation"
	case ErrTypeWriteFailed:
		return "write failed"
	case ErrTypePayloadMissing:
		return "payload missing"
	default:
		return "generic"
	}
}

// CustomError carries a human-readable message, the filesystem path involved
// (if any) and the underlying OS-level cause.
type CustomError struct {
	Type    ErrorType
	Message string
	Path    string
	Cause   error
}

func (e *CustomError) Error() string {
	msg := e.Message
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Path)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *CustomError) Unwrap() error {
	return e.Cause
}

func NewCustomError(errType ErrorType, message string) error {
	return &CustomError{
		Type:    errType,
		Message: message,
	}
}

// Wrap builds a CustomError around an OS-level cause.
func Wrap(errType ErrorType, message, path string, cause error) error {
	return &CustomError{
		Type:    errType,
		Message: message,
		Path:    path,
		Cause:   cause,
	}
}

// IsType reports whether err, or anything it wraps, is a CustomError of errType.
func IsType(err error, errType ErrorType) bool {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Type == errType
	}
	return false
}

var ErrElevationDenied = NewCustomError(ErrTypeElevationDenied, "User rejected privilege request, installation cannot continue")
