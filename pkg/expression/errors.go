package expression

import (
	"errors"
	"fmt"
)

var (
	ErrDivisionByZero       = errors.New("division by zero")
	ErrInsufficientOperands = errors.New("insufficient operands")
	ErrInvalidToken         = errors.New("invalid token")
	ErrMalformedExpression  = errors.New("malformed expression")
	ErrUnmatchedParenthesis = errors.New("unmatched parenthesis")
)

// Error is returned when an expression can not be converted or evaluated.
// It wraps one of the sentinel errors of this package.
type Error struct {
	Err   error  // the kind of failure
	Token string // the offending token or empty if there is none
}

func newError(err error, token string) *Error {
	return &Error{Err: err, Token: token}
}

func (e *Error) Error() string {
	if e.Token == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %q", e.Err, e.Token)
}

func (e *Error) Unwrap() error {
	return e.Err
}
