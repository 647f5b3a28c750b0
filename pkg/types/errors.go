package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents an engine error code.
type ErrorCode string

// Error codes. The leading letter selects the error category.
const (
	// R0xxx: Resolution errors
	ErrUnboundFunction ErrorCode = "R0101"

	// T1xxx: Type errors
	ErrInvalidTypeOperation ErrorCode = "T1001"
	ErrNotIterable          ErrorCode = "T1002"
	ErrNoLength             ErrorCode = "T1003"
	ErrNotIndexable         ErrorCode = "T1004"
	ErrObjectKeyNotString   ErrorCode = "T1005"
	ErrNotComparable        ErrorCode = "T1006"

	// C2xxx: Cast errors
	ErrNotInteger    ErrorCode = "C2001"
	ErrNegativeCount ErrorCode = "C2002"
	ErrNotParsable   ErrorCode = "C2003"

	// D1xxx: Evaluation errors
	ErrDivisionByZero      ErrorCode = "D1001"
	ErrArithmeticCondition ErrorCode = "D1002"

	// U1xxx: Runtime errors
	ErrCancelled ErrorCode = "U1001"
)

// Category sentinels. errors.Is(err, ErrTypeError) reports whether err is a
// *Error whose code belongs to the type error family, and so on.
var (
	ErrResolutionError = errors.New("resolution error")
	ErrTypeError       = errors.New("type error")
	ErrCastError       = errors.New("cast error")
	ErrEvaluationError = errors.New("evaluation error")
	ErrRuntimeError    = errors.New("runtime error")
)

// Error represents a structured engine error.
type Error struct {
	Code     ErrorCode
	Message  string
	Position int
	Token    string
	Err      error
}

// NewError creates a new error. Position is -1 when unknown.
func NewError(code ErrorCode, message string, position int) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Position: position,
	}
}

// Errorf creates an error with no position and a formatted message.
func Errorf(code ErrorCode, format string, args ...interface{}) *Error {
	return NewError(code, fmt.Sprintf(format, args...), -1)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Position >= 0 {
		return fmt.Sprintf("%s at position %d: %s", e.Code, e.Position, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches category sentinels by code prefix.
func (e *Error) Is(target error) bool {
	return target != nil && e.Category() == target
}

// Category returns the sentinel of the family the error code belongs to.
func (e *Error) Category() error {
	switch {
	case strings.HasPrefix(string(e.Code), "R"):
		return ErrResolutionError
	case strings.HasPrefix(string(e.Code), "T"):
		return ErrTypeError
	case strings.HasPrefix(string(e.Code), "C"):
		return ErrCastError
	case strings.HasPrefix(string(e.Code), "D"):
		return ErrEvaluationError
	default:
		return ErrRuntimeError
	}
}

// WithToken adds token information to the error.
func (e *Error) WithToken(token string) *Error {
	e.Token = token
	return e
}

// WithCause wraps another error.
func (e *Error) WithCause(err error) *Error {
	e.Err = err
	return e
}

// UnboundFunction reports a call to a (name, arity) pair with no definition.
func UnboundFunction(key Key) *Error {
	return Errorf(ErrUnboundFunction, "unbound function %s", key).WithToken(key.String())
}

// TypeMismatch reports an operation applied to unsupported operand types.
// typeNames are the canonical type tags of the offending operands.
func TypeMismatch(code ErrorCode, op string, typeNames ...string) *Error {
	switch len(typeNames) {
	case 0:
		return Errorf(code, "%s: unsupported operand", op)
	case 1:
		return Errorf(code, "%s cannot be applied to %s", op, typeNames[0]).WithToken(op)
	default:
		return Errorf(code, "%s cannot be applied to %s", op, strings.Join(typeNames, " and ")).WithToken(op)
	}
}
