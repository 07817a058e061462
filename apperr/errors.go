package apperr

import (
	"errors"
	"fmt"
)

// Code classifies a failure so the transport and the CLI can render it.
type Code int

const (
	CodeSuccess        Code = 0
	CodeInternal       Code = 1
	CodeUsage          Code = 2
	CodeConfig         Code = 10
	CodeValidation     Code = 11
	CodeMethodNotFound Code = 12
)

type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

func As(err error) (*Error, bool) {
	var target *Error
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

// Is reports whether err carries the given code anywhere in its chain.
func Is(err error, code Code) bool {
	e, ok := As(err)
	return ok && e.Code == code
}

func ExitCode(err error) int {
	if err == nil {
		return int(CodeSuccess)
	}
	if appErr, ok := As(err); ok {
		return int(appErr.Code)
	}
	return int(CodeInternal)
}
