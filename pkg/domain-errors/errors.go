// Package dErrors provides coded domain errors for the registry.
//
// Stores and other infrastructure return sentinel errors (pkg/platform/sentinel);
// services translate them into coded domain errors at the boundary so callers
// can branch on the code without knowing which layer failed. Codes are part of
// the public contract: they are never silently coerced into one another.
package dErrors

import (
	"errors"
	"fmt"
)

// Code classifies a domain error. The taxonomy is closed: add codes here,
// never invent ad-hoc strings at call sites.
type Code string

const (
	// CodeUnauthorized marks administrator-gated operations attempted by a
	// non-administrator. Reserved: the current operation surface has no
	// admin-gated mutations, but the code is part of the taxonomy.
	CodeUnauthorized Code = "unauthorized"

	// CodeNotFound marks references to a document id with no record.
	CodeNotFound Code = "not_found"

	// CodeAlreadyExists marks duplicate-id insertion. Unreachable under
	// counter-based allocation; retained as a defensive kind.
	CodeAlreadyExists Code = "already_exists"

	// CodeInvalidInput marks a field failing its length/range/count
	// validation. The message carries the per-field diagnostic.
	CodeInvalidInput Code = "invalid_input"

	// CodeOwnershipVerification marks a custodian-only operation attempted
	// by an identity that is not the record's current custodian.
	CodeOwnershipVerification Code = "ownership_verification_failed"

	// CodeAccessDenied marks a read attempted by a viewer with no grant who
	// is neither custodian nor administrator.
	CodeAccessDenied Code = "access_denied"

	// CodeConflict marks a uniqueness or state conflict.
	CodeConflict Code = "conflict"

	// CodeValidation marks request-level validation failures surfaced to
	// callers (distinct from CodeInvariantViolation raised by constructors).
	CodeValidation Code = "validation"

	// CodeInvariantViolation marks a domain invariant broken during
	// construction or a state transition.
	CodeInvariantViolation Code = "invariant_violation"

	// CodeInternal marks unexpected infrastructure failures.
	CodeInternal Code = "internal"
)

// Error is a coded domain error. It wraps an optional cause for errors.Is /
// errors.As traversal.
type Error struct {
	code  Code
	msg   string
	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.code, e.msg, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.code, e.msg)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Code returns the error's classification code.
func (e *Error) Code() Code {
	return e.code
}

// New creates a coded domain error with no underlying cause.
func New(code Code, msg string) error {
	return &Error{code: code, msg: msg}
}

// Newf creates a coded domain error with a formatted message.
func Newf(code Code, format string, args ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, args...)}
}

// Wrap creates a coded domain error wrapping an underlying cause. A nil err
// yields nil so call sites can wrap unconditionally.
func Wrap(err error, code Code, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{code: code, msg: msg, cause: err}
}

// HasCode reports whether err (or any error in its chain) is a domain error
// with the given code.
func HasCode(err error, code Code) bool {
	var de *Error
	for errors.As(err, &de) {
		if de.code == code {
			return true
		}
		err = de.cause
		if err == nil {
			return false
		}
	}
	return false
}

// Is is an alias for HasCode, kept for call-site readability in tests.
func Is(err error, code Code) bool {
	return HasCode(err, code)
}

// CodeOf returns the outermost domain error code in err's chain, or
// CodeInternal when err carries no code.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.code
	}
	return CodeInternal
}
