package expression

import (
	"github.com/ErikKalkoken/exprcalc/pkg/stack"
)

// Calculate returns the result of an infix expression.
// It converts the expression into postfix notation and evaluates it.
func Calculate(infix string) (float64, error) {
	postfix, err := InfixToPostfix(infix)
	if err != nil {
		return 0, err
	}
	return Evaluate(postfix)
}

var closingBrackets = map[rune]rune{')': '(', ']': '[', '}': '{'}

// CheckParentheses reports whether all brackets in s are balanced and properly nested.
// Round, square and curly brackets are recognized. All other characters are ignored.
func CheckParentheses(s string) bool {
	var open stack.Stack[rune]
	for _, r := range s {
		switch r {
		case '(', '[', '{':
			open.Push(r)
		case ')', ']', '}':
			top, ok := open.Pop()
			if !ok || top != closingBrackets[r] {
				return false
			}
		}
	}
	return open.IsEmpty()
}
