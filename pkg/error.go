package pkg

// Sentinel errors for the stencil packages.
// These errors can be tested using errors.Is for reliable error checking.

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// Error represents a chain of errors.
type Error []error

// ErrTemplateNotFound is returned when a template cannot be located on the
// search path.
//
// This error should be wrapped with the name of the template.
var ErrTemplateNotFound = MakeErrorf("template not found")

// ErrParse is returned when parsing a template fails.
//
// This error should be wrapped with the underlying parse error
// to preserve the error chain and position information.
var ErrParse = MakeErrorf("parse error")

// ErrExecute is returned when executing a parsed template fails.
var ErrExecute = MakeErrorf("execute error")

// ErrReadData is returned when reading or decoding a data file fails.
//
// This error should be wrapped with the underlying I/O or decode error
// to preserve the error chain.
var ErrReadData = MakeErrorf("failed to read data")

// ErrExpr is returned when a template expression cannot be compiled
// or evaluated.
var ErrExpr = MakeErrorf("expression error")

// ErrWorker is returned when a template worker subprocess fails.
//
// This error should be wrapped with the text the worker wrote to its
// standard error.
var ErrWorker = MakeErrorf("template worker failed")

// ErrJSONMarshal is returned when JSON marshaling fails.
//
// This error should be wrapped with the underlying marshaling error
// to preserve the error chain.
var ErrJSONMarshal = MakeErrorf("JSON marshal error")

// ErrYAMLMarshal is returned when YAML marshaling fails.
//
// This error should be wrapped with the underlying marshaling error
// to preserve the error chain.
var ErrYAMLMarshal = MakeErrorf("YAML marshal error")

// ErrInvalidFormat is returned when an invalid format is specified.
//
// This error should be wrapped with additional context that specifies the
// invalid format along with a list of valid formats.
var ErrInvalidFormat = MakeErrorf("invalid format")

// Text is a plain string that signals a failure.
type Text string

// Error implements error.
func (t Text) Error() string { return string(t) }

// MakeError constructs an Error from the given errors.
// The errors are stored in the order they are provided:
// the first argument is the innermost error in the chain.
// Nil is returned if no errors are provided.
func MakeError(errs ...error) Error {
	var e Error

	for _, err := range errs {
		if err != nil {
			e = append(e, UnwrapErrors(err)...)
		}
	}

	return e
}

// MakeErrorf constructs an Error from a formatted error message.
func MakeErrorf(format string, args ...any) Error {
	return MakeError(fmt.Errorf(format, args...))
}

// Error returns a concatenated string representation of all errors
// in the error chain, separated by ": ", in the order they were added.
func (e Error) Error() string {
	var sb strings.Builder

	for i, err := range slices.All(e) {
		if i > 0 {
			sb.WriteString(": ")
		}

		sb.WriteString(err.Error())
	}

	return sb.String()
}

// Wrap returns a copy of the receiver with one or more errors appended.
// Nil errors are skipped and nested [Error] chains are flattened.
func (e Error) Wrap(err ...error) Error {
	out := slices.Clone(e)

	for _, x := range err {
		switch x := x.(type) {
		case nil:
		case Error:
			out = append(out, x...)
		default:
			out = append(out, x)
		}
	}

	return out
}

// Is reports whether every error of target, which must be an [Error],
// appears in the receiver. It lets sentinel chains match with [errors.Is].
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	if !ok || len(t) == 0 {
		return false
	}

	for _, want := range t {
		if !slices.ContainsFunc(e, func(err error) bool { return same(err, want) }) {
			return false
		}
	}

	return true
}

// same compares two errors by identity without panicking on uncomparable
// dynamic types.
func same(a, b error) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}

	return a == b
}

// Wrapf returns a copy of the receiver with a formatted error appended.
func (e Error) Wrapf(format string, args ...any) Error {
	return e.Wrap(fmt.Errorf(format, args...))
}

// Unwrap returns the slice of errors contained in the receiver.
func (e Error) Unwrap() []error {
	return e
}

// UnwrapErrors recursively unwraps an error chain and returns a slice
// containing all errors in the chain, starting from the innermost error.
func UnwrapErrors(err error) Error {
	if err == nil {
		return nil
	}

	chain := Error{}

	if e, ok := err.(interface{ Unwrap() []error }); ok {
		for _, wrapped := range e.Unwrap() {
			chain = append(chain, UnwrapErrors(wrapped)...)
		}

		return chain
	} else if e, ok := err.(interface{ Unwrap() error }); ok {
		chain = append(chain, UnwrapErrors(e.Unwrap())...)
	}

	return append(chain, err)
}
