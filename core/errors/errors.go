// Package errors carries the two failure classes tokenization surfaces:
// builder/configuration errors and dictionary-load errors. Tokenization
// itself never fails on input; see package lexi.
package errors

import (
	"errors"
	"fmt"
	"os"
)

// Error codes for lexi.
const (
	NOERROR        int = 0
	EINVALIDCONFIG int = 140 // builder received a malformed configuration
	ECORRUPTDICT   int = 141 // dictionary blob failed to parse
	EDUPLICATEKEY  int = 142 // duplicate key in a loaded dictionary
	EINTERNAL      int = 143
)

func errorText(ecode int) string {
	switch ecode {
	case NOERROR:
		return "OK"
	case EINVALIDCONFIG:
		return "invalid configuration"
	case ECORRUPTDICT:
		return "corrupt dictionary"
	case EDUPLICATEKEY:
		return "duplicate dictionary key"
	case EINTERNAL:
		return "internal error"
	}
	return "undefined error"
}

// AppError is an error with an associated error code and a user-message.
type AppError interface {
	error
	ErrorCode() int
	UserMessage() string
}

type appError struct {
	error
	code int
	msg  string
}

func (e appError) Unwrap() error {
	return e.error
}

func (e appError) Error() string {
	return fmt.Sprintf("[%d] %v", e.code, e.error)
}

func (e appError) ErrorCode() int {
	return e.code
}

func (e appError) UserMessage() string {
	return e.msg
}

var _ AppError = appError{}

// Error creates an AppError with an error code and a formatted user message.
func Error(code int, format string, v ...interface{}) error {
	return appError{
		errors.New(errorText(code)),
		code,
		fmt.Sprintf(format, v...),
	}
}

// WrapError wraps err in an AppError, attaching a code and a user message.
// If err is nil, an error carrying the standard text for code is created
// first.
func WrapError(err error, code int, format string, v ...interface{}) error {
	if err == nil {
		err = errors.New(errorText(code))
	}
	msg := fmt.Sprintf(format, v...)
	return appError{err, code, msg}
}

// Code returns the status code associated with err, or EINTERNAL if err
// carries none, or NOERROR if err is nil.
func Code(err error) int {
	if err == nil {
		return NOERROR
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.ErrorCode()
	}
	return EINTERNAL
}

// UserMessage returns the user-facing message associated with err.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.UserMessage()
	}
	return errorText(Code(err))
}

// Print writes err to stderr, preferring its user message when it carries one.
func Print(err error) {
	if e, ok := err.(AppError); ok {
		fmt.Fprintf(os.Stderr, "[%d] %s\n", e.ErrorCode(), e.UserMessage())
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
}
