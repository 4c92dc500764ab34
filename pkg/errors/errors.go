package errors

import (
	"errors"
	"fmt"
)

// Error codes carried by *Error.
const (
	CodeGeneration    = "generation"
	CodeAuth          = "auth"
	CodeAuthCancelled = "auth_cancelled"
	CodeUpload        = "upload"
	CodeConfiguration = "configuration"
	CodeInvalidInput  = "invalid_input"
	CodeNotFound      = "not_found"
	CodeWrongStep     = "wrong_step"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrGeneration    = errors.New("generation failed")
	ErrAuth          = errors.New("authentication failed")
	ErrAuthCancelled = errors.New("authentication cancelled")
	ErrUpload        = errors.New("upload failed")
	ErrConfiguration = errors.New("missing configuration")
	ErrWrongStep     = errors.New("not available in the current step")
)

var sentinels = map[string]error{
	CodeGeneration:    ErrGeneration,
	CodeAuth:          ErrAuth,
	CodeAuthCancelled: ErrAuthCancelled,
	CodeUpload:        ErrUpload,
	CodeConfiguration: ErrConfiguration,
	CodeInvalidInput:  ErrInvalidInput,
	CodeNotFound:      ErrNotFound,
	CodeWrongStep:     ErrWrongStep,
}

// Error represents a custom error type
type Error struct {
	Code    string
	Message string
	Err     error
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel registered for the error code, so
// errors.Is(Generation("x", nil), ErrGeneration) holds.
func (e *Error) Is(target error) bool {
	s, ok := sentinels[e.Code]
	return ok && s == target
}

// New creates a new error with a message
func New(message string) error {
	return &Error{
		Message: message,
	}
}

// Wrap wraps an error with additional message
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Message: message,
		Err:     err,
	}
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// GetCode returns the error code if it exists
func GetCode(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// GetMessage returns the error message
func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// Generation reports a failed or malformed generation response.
func Generation(message string, err error) error {
	return &Error{Code: CodeGeneration, Message: message, Err: err}
}

// Auth reports a failed authentication handshake.
func Auth(message string, err error) error {
	return &Error{Code: CodeAuth, Message: message, Err: err}
}

// AuthCancelled reports a handshake the user dismissed.
func AuthCancelled(message string) error {
	return &Error{Code: CodeAuthCancelled, Message: message}
}

// Upload reports a rejected or failed publish.
func Upload(message string, err error) error {
	return &Error{Code: CodeUpload, Message: message, Err: err}
}

// Configuration reports a missing credential or setting.
func Configuration(message string) error {
	return &Error{Code: CodeConfiguration, Message: message}
}

// InvalidInput reports a malformed request value.
func InvalidInput(message string) error {
	return &Error{Code: CodeInvalidInput, Message: message}
}

// NotFound reports a missing or expired resource.
func NotFound(message string) error {
	return &Error{Code: CodeNotFound, Message: message}
}

// WrongStep reports an action the current wizard step does not accept.
func WrongStep(message string) error {
	return &Error{Code: CodeWrongStep, Message: message}
}

// IsCancelled returns true if the user dismissed an auth handshake
func IsCancelled(err error) bool {
	return errors.Is(err, ErrAuthCancelled)
}

// IsConfiguration returns true if a required setting is missing
func IsConfiguration(err error) bool {
	return errors.Is(err, ErrConfiguration)
}
