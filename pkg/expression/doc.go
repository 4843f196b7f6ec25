// Package expression evaluates arithmetic expressions.
//
// Evaluation is a pipeline of three stages:
// [Scan] splits an infix string into tokens,
// [ToPostfix] reorders the tokens into postfix (reverse polish) notation
// with the shunting-yard algorithm
// and [Evaluate] computes the result of a postfix expression with an operand stack.
//
// Supported are the binary operators + - * / with the usual precedence,
// parentheses, decimal numbers and negative numbers.
// Operators of equal precedence are left associative.
//
// All functions are pure and safe for concurrent use.
package expression
