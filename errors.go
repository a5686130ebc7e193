package bls

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies a failure raised by this package. It collapses the
// taxonomy of the original, shared error enum (which also carried
// Anoncreds/CL-signature variants out of scope here) down to the four kinds
// that apply to a pure BLS core.
type Kind int

const (
	// InvalidStructure marks a decode failure: wrong byte length for a
	// fixed-width type, a seed of the wrong length, invalid hex, or a
	// kernel-level rejection of a byte string as a curve point.
	InvalidStructure Kind = iota
	// InvalidParam marks a null or otherwise unusable argument at a
	// foreign-call boundary. Nothing in this package's Go API produces it
	// directly; it is retained so callers bridging to another language
	// can report it through the same error type.
	InvalidParam
	// InvalidState marks a logic bug — a contract this package itself
	// violated. Well-tested callers should never observe this.
	InvalidState
	// IO is retained only because the error type is shared with the
	// enclosing error taxonomy; this core performs no I/O.
	IO
)

func (k Kind) String() string {
	switch k {
	case InvalidStructure:
		return "InvalidStructure"
	case InvalidParam:
		return "InvalidParam"
	case InvalidState:
		return "InvalidState"
	case IO:
		return "IO"
	default:
		return "Unknown"
	}
}

// Error is the error type returned by every fallible operation in this
// package. The zero value is not a valid Error.
type Error struct {
	Kind Kind
	msg  string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("bls: %s: %s: %v", e.Kind, e.msg, e.err)
	}
	return fmt.Sprintf("bls: %s: %s", e.Kind, e.msg)
}

// Cause returns the wrapped error, if any, for github.com/pkg/errors-style
// cause chains.
func (e *Error) Cause() error { return e.err }

// Unwrap supports errors.Is/errors.As over the wrapped cause.
func (e *Error) Unwrap() error { return e.err }

func newError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, msg: msg}
}

func wrapError(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, msg: msg, err: errors.WithStack(cause)}
}

func invalidStructure(format string, args ...interface{}) *Error {
	return newError(InvalidStructure, fmt.Sprintf(format, args...))
}

func invalidStructureCause(cause error, format string, args ...interface{}) *Error {
	return wrapError(InvalidStructure, fmt.Sprintf(format, args...), cause)
}

func invalidState(format string, args ...interface{}) *Error {
	return newError(InvalidState, fmt.Sprintf(format, args...))
}

// IsKind reports whether err is a *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
