package expression

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/ErikKalkoken/exprcalc/pkg/optional"
	"github.com/ErikKalkoken/exprcalc/pkg/stack"
)

// EvaluatePostfix returns the result of a postfix expression
// or an empty optional when the expression can not be evaluated.
// Use [Evaluate] to learn why an evaluation failed.
func EvaluatePostfix(postfix string) optional.Optional[float64] {
	v, err := Evaluate(postfix)
	if err != nil {
		slog.Debug("Failed to evaluate postfix expression", "postfix", postfix, "error", err)
	}
	return optional.FromResult(v, err)
}

// Evaluate returns the result of a postfix expression.
// Tokens must be separated by white space.
//
// It returns an [*Error] wrapping one of:
//   - [ErrInsufficientOperands] when an operator has less than two operands
//   - [ErrDivisionByZero] when the right operand of a division is zero
//   - [ErrInvalidToken] when a token is neither an operator nor a decimal number
//   - [ErrMalformedExpression] when not exactly one value remains
func Evaluate(postfix string) (float64, error) {
	var operands stack.Stack[float64]
	for _, tok := range strings.Fields(postfix) {
		if !IsOperator(tok) {
			v, err := parseNumber(tok)
			if err != nil {
				return 0, err
			}
			operands.Push(v)
			continue
		}
		right, ok := operands.Pop()
		if !ok {
			return 0, newError(ErrInsufficientOperands, tok)
		}
		left, ok := operands.Pop()
		if !ok {
			return 0, newError(ErrInsufficientOperands, tok)
		}
		v, err := apply(tok, left, right)
		if err != nil {
			return 0, err
		}
		operands.Push(v)
	}
	if operands.Len() != 1 {
		return 0, newError(ErrMalformedExpression, "")
	}
	v, _ := operands.Pop()
	return v, nil
}

func apply(op string, left, right float64) (float64, error) {
	switch op {
	case "+":
		return left + right, nil
	case "-":
		return left - right, nil
	case "*":
		return left * right, nil
	case "/":
		if right == 0 {
			return 0, newError(ErrDivisionByZero, op)
		}
		return left / right, nil
	}
	return 0, newError(ErrInvalidToken, op)
}

// parseNumber parses a decimal number with an optional leading minus.
// Exponents, hexadecimal notation and special values like "Inf" are rejected.
func parseNumber(s string) (float64, error) {
	if !isNumberLiteral(s) {
		return 0, newError(ErrInvalidToken, s)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, newError(ErrInvalidToken, s)
	}
	return v, nil
}
