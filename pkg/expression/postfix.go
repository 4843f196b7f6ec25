package expression

import (
	"strings"

	"github.com/ErikKalkoken/exprcalc/internal/xslices"
	"github.com/ErikKalkoken/exprcalc/pkg/stack"
)

// InfixToPostfix converts an infix expression into a postfix expression.
// The tokens of the result are separated by a single space.
// Returns [ErrUnmatchedParenthesis] when the parentheses are not balanced.
func InfixToPostfix(input string) (string, error) {
	tokens, err := ToPostfix(Scan(input))
	if err != nil {
		return "", err
	}
	return Join(tokens), nil
}

// ToPostfix reorders infix tokens into postfix order with the shunting-yard algorithm.
//
// Operators on the stack are moved to the output as long as they bind at least as strong
// as the incoming operator, which makes operators of equal precedence left associative.
// Parentheses are not part of the output.
func ToPostfix(tokens []Token) ([]Token, error) {
	output := make([]Token, 0, len(tokens))
	var ops stack.Stack[Token] // holds only operators and left parentheses
	for _, t := range tokens {
		switch t.Kind {
		case KindLeftParen:
			ops.Push(t)
		case KindRightParen:
			for {
				top, ok := ops.Pop()
				if !ok {
					return nil, newError(ErrUnmatchedParenthesis, t.Literal)
				}
				if top.Kind == KindLeftParen {
					break
				}
				output = append(output, top)
			}
		case KindOperator:
			for {
				top, ok := ops.Peek()
				if !ok || top.Kind == KindLeftParen || Precedence(top.Literal) < Precedence(t.Literal) {
					break
				}
				ops.Pop()
				output = append(output, top)
			}
			ops.Push(t)
		default:
			output = append(output, t)
		}
	}
	for !ops.IsEmpty() {
		top, _ := ops.Pop()
		if top.Kind == KindLeftParen {
			return nil, newError(ErrUnmatchedParenthesis, top.Literal)
		}
		output = append(output, top)
	}
	return output, nil
}

// Join returns the literals of tokens separated by a single space.
func Join(tokens []Token) string {
	return strings.Join(xslices.Map(tokens, Token.String), " ")
}
