// Package apperror carries the business-error taxonomy across layers.
// Usecases create coded errors; the HTTP adapter maps codes to statuses.
package apperror

import (
	"errors"
	"fmt"
)

type Code string

const (
	// CodeValidation: malformed/missing/out-of-range input. Always a client error.
	CodeValidation Code = "validation"
	// CodeNotFound: referenced lender/scheme/application does not exist.
	CodeNotFound Code = "not_found"
	// CodeInvalidState: operation not permitted in the current lifecycle state.
	CodeInvalidState Code = "invalid_state"
	// CodePrecondition: state-dependent business rule unmet (e.g. approving
	// without a field-visit report).
	CodePrecondition Code = "precondition_failed"
	// CodeConflict: duplicate identity or concurrent-update detected.
	CodeConflict Code = "conflict"
	// CodeInternal: unexpected failure (storage etc.), never a business error.
	CodeInternal Code = "internal"
)

type Error struct {
	Code Code
	Msg  string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return e.Msg + ": " + e.err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.err }

func New(code Code, msg string) *Error { return &Error{Code: code, Msg: msg} }

func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to an underlying error, keeping the
// cause reachable via errors.Is / errors.Unwrap.
func Wrap(code Code, msg string, err error) *Error {
	return &Error{Code: code, Msg: msg, err: err}
}

// CodeOf extracts the code from err, or CodeInternal when err carries none.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// Is lets errors.Is match two coded errors by code alone, so callers can
// assert against a sentinel like apperror.New(apperror.CodeNotFound, "").
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}
