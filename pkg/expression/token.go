package expression

import (
	"github.com/ErikKalkoken/go-set"
)

//go:generate go tool stringer -type=Kind

// Kind is the lexical category of a token.
type Kind uint

const (
	KindUndefined Kind = iota
	KindNumber
	KindOperator
	KindLeftParen
	KindRightParen
	KindIdentifier // an opaque operand, e.g. a variable name
)

// operators are the symbols of all supported binary operators.
var operators = set.Of("+", "-", "*", "/")

// precedence is the binding strength of each operator symbol.
var precedence = [...]int{'+': 1, '-': 1, '*': 2, '/': 2}

// Precedence returns the binding strength of an operator.
// Multiplication and division bind stronger than addition and subtraction.
// Unknown symbols have the lowest precedence 0.
func Precedence(op string) int {
	if len(op) != 1 || int(op[0]) >= len(precedence) {
		return 0
	}
	return precedence[op[0]]
}

// IsOperator reports whether s is the symbol of a supported operator.
func IsOperator(s string) bool {
	return operators.Contains(s)
}

// Token is a lexical unit of an expression.
// The literal is kept exactly as scanned.
type Token struct {
	Kind    Kind
	Literal string
}

// NewToken returns a new token for a literal and derives its kind.
func NewToken(literal string) Token {
	return Token{Kind: classify(literal), Literal: literal}
}

func (t Token) String() string {
	return t.Literal
}

func classify(literal string) Kind {
	switch {
	case literal == "":
		return KindUndefined
	case literal == "(":
		return KindLeftParen
	case literal == ")":
		return KindRightParen
	case IsOperator(literal):
		return KindOperator
	case isNumberLiteral(literal):
		return KindNumber
	}
	return KindIdentifier
}

// isNumberLiteral reports whether s consists of an optional leading minus
// followed by digits and decimal points.
// The number of decimal points is not validated here.
func isNumberLiteral(s string) bool {
	if len(s) > 0 && s[0] == '-' {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isDigit(r) && r != '.' {
			return false
		}
	}
	return true
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
