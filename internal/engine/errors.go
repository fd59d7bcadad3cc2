// Package engine builds and executes a FilterGraph: it selects the
// chain of colorspace/depth/resize filters needed to convert a source
// ImageFormat to a target ImageFormat, and drives that chain through
// an executor with optional unpack/pack callbacks.
package engine

import "github.com/pkg/errors"

// Code is the stable error taxonomy assigned to graph construction and
// execution failures.
type Code int

const (
	Unknown            Code = -1
	IllegalArgument    Code = 300
	Unsupported        Code = 400
	UserCallbackFailed Code = 401
	InternalError      Code = 402
)

// Error pairs a stable Code with a human-readable message.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string { return e.Message }

func newError(code Code, format string, args ...interface{}) error {
	return errors.WithStack(&Error{Code: code, Message: errors.Errorf(format, args...).Error()})
}

func illegalArgument(format string, args ...interface{}) error {
	return newError(IllegalArgument, format, args...)
}

func unsupported(format string, args ...interface{}) error {
	return newError(Unsupported, format, args...)
}
