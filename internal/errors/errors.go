// Package errors provides the three error categories from spec.md §7
// as host-level Go errors, and the bridge to and from the first-class
// Error value that also lives in the value graph (see
// internal/interp/runtime.ErrorValue).
//
// Per the discipline chosen in SPEC_FULL.md (Open Question a): every
// builtin or special form that can fail returns an InterpreterError
// through the normal Go error-return channel rather than panicking.
// panic is reserved for genuine internal invariant violations, mirrored
// from the teacher's CategoryInternal usage.
package errors

import (
	"fmt"

	"github.com/commander-trashdin/trash-scheme/internal/interp/runtime"
)

// InterpreterError carries one of the three error kinds plus a message,
// and optionally wraps an underlying Go error for %w-style chains.
type InterpreterError struct {
	Kind    runtime.ErrorKind
	Message string
	Err     error
}

func (e *InterpreterError) Error() string {
	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}

func (e *InterpreterError) Unwrap() error { return e.Err }

// ToValue allocates the first-class ErrorValue equivalent of e through
// h, so the same failure can be threaded into the value graph (stored
// in a Pair, returned to a caller that catches errors as values).
func (e *InterpreterError) ToValue(h *runtime.Heap) *runtime.ErrorValue {
	return h.NewError(e.Kind, e.Message)
}

// FromValue wraps an already-allocated ErrorValue (e.g. one read back
// out of the value graph) as a propagating Go error.
func FromValue(v *runtime.ErrorValue) *InterpreterError {
	return &InterpreterError{Kind: v.ErrKind, Message: v.Message}
}

func newf(kind runtime.ErrorKind, format string, args ...interface{}) *InterpreterError {
	return &InterpreterError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// NewSyntaxError builds a SyntaxError, raised by the reader on
// malformed input.
func NewSyntaxError(format string, args ...interface{}) *InterpreterError {
	return newf(runtime.SyntaxError, format, args...)
}

// NewNameError builds a NameError, raised by environment lookup/assign
// on an unbound name.
func NewNameError(format string, args ...interface{}) *InterpreterError {
	return newf(runtime.NameError, format, args...)
}

// NewRuntimeError builds a RuntimeError, raised by application
// failures: non-applicable head, arity mismatch, argument-type
// mismatch, division by zero, out-of-range index, improper list where
// a proper list is required, or any built-in domain violation.
func NewRuntimeError(format string, args ...interface{}) *InterpreterError {
	return newf(runtime.RuntimeError, format, args...)
}

// WrapError wraps an existing Go error with an interpreter category,
// preserving it for Unwrap.
func WrapError(err error, kind runtime.ErrorKind) *InterpreterError {
	return &InterpreterError{Kind: kind, Message: err.Error(), Err: err}
}

// ExitSignal is the control value produced by the `exit` builtin. It is
// not a user-visible error: the REPL and script drivers special-case it
// to stop the read-eval loop instead of printing it to stderr, per
// spec.md §6's "sentinel Builtin returned by exit".
type ExitSignal struct {
	Code int
}

func (e *ExitSignal) Error() string {
	return fmt.Sprintf("exit(%d)", e.Code)
}

// AsExitSignal reports whether err (or anything it wraps) is an
// ExitSignal.
func AsExitSignal(err error) (*ExitSignal, bool) {
	for err != nil {
		if sig, ok := err.(*ExitSignal); ok {
			return sig, true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return nil, false
		}
		err = u.Unwrap()
	}
	return nil, false
}
