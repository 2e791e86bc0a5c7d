package framework

import (
	"github.com/pkg/errors"
)

// ErrorResponse is the body sent back for errors raised by the framework itself, such as
// unknown routes. The crash route never uses it: its failure body is the fault payload.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SafeError carries an error and the status code it should be reported with. 'Safe' means the
// message holds nothing sensitive and may be sent back to the requester as is.
type SafeError struct {
	Err        error
	StatusCode int
}

func (err *SafeError) Error() string {
	return err.Err.Error()
}

func (err *SafeError) Unwrap() error {
	return err.Err
}

// NewRequestError wraps a provided error with an HTTP status code. Use it for expected errors
// whose message may be shown to the requester.
func NewRequestError(err error, statusCode int) error {
	return &SafeError{Err: err, StatusCode: statusCode}
}

// shutdown is a type used to help with graceful shutdown of a server.
type shutdown struct {
	Message string
}

func (s *shutdown) Error() string {
	return s.Message
}

// NewShutdownError returns an error that causes the framework to signal
// a graceful shutdown.
func NewShutdownError(message string) error {
	return &shutdown{message}
}

// IsShutdown checks to see if the shutdown error is contained in
// the specified error value.
func IsShutdown(err error) bool {
	var shutdownErr *shutdown
	return errors.As(errors.Cause(err), &shutdownErr)
}
