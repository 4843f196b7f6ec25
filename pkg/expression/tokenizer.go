package expression

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ErikKalkoken/go-set"

	"github.com/ErikKalkoken/exprcalc/internal/xslices"
)

// delimiters are emitted as single character tokens.
// The minus sign is handled separately, because it can also start a negative number.
var delimiters = set.Of('+', '*', '/', '(', ')')

// Tokenize splits an infix expression into the literals of its tokens.
// See [Scan] for details.
func Tokenize(input string) []string {
	return xslices.Map(Scan(input), Token.String)
}

// Scan splits an infix expression into tokens.
//
// Digits and decimal points are accumulated into numbers.
// A minus sign starts a negative number when it appears at the beginning of the input
// or directly after an operator or an opening parenthesis.
// Otherwise it is the subtraction operator.
// Other characters which are not operators, parentheses or white space
// are accumulated into opaque identifier tokens.
//
// Scan never fails. Malformed numbers like "1.2.3" are passed through
// and are reported during evaluation.
// Literals keep the bytes of the input, including invalid UTF-8.
func Scan(input string) []Token {
	var s scanner
	for i := 0; i < len(input); {
		r, size := utf8.DecodeRuneInString(input[i:])
		raw := input[i : i+size]
		i += size
		switch {
		case isDigit(r) || r == '.':
			s.acc.WriteString(raw)
		case r == '-':
			if s.expectsOperand() {
				s.acc.WriteString(raw)
			} else {
				s.flush()
				s.emit(Token{Kind: KindOperator, Literal: "-"})
			}
		case delimiters.Contains(r):
			s.flush()
			s.emit(NewToken(string(r)))
		case unicode.IsSpace(r):
			s.flush()
		default:
			s.acc.WriteString(raw)
		}
	}
	s.flush()
	return s.tokens
}

// scanner holds the state of a single call to [Scan].
type scanner struct {
	acc    strings.Builder // current token
	last   Kind            // kind of the last emitted token
	tokens []Token
}

// expectsOperand reports whether a minus sign at the current position
// is the sign of a number.
func (s *scanner) expectsOperand() bool {
	if s.acc.Len() > 0 {
		return false
	}
	switch s.last {
	case KindUndefined, KindOperator, KindLeftParen:
		return true
	}
	return false
}

func (s *scanner) emit(t Token) {
	s.tokens = append(s.tokens, t)
	s.last = t.Kind
}

func (s *scanner) flush() {
	if s.acc.Len() == 0 {
		return
	}
	s.emit(NewToken(s.acc.String()))
	s.acc.Reset()
}
