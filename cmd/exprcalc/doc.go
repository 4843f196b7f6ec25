/*
Exprcalc evaluates arithmetic expressions.

Usage:

	exprcalc [flags] [expression ...]

Each argument is evaluated as one infix expression, e.g.

	exprcalc "(1 + 2) * -3" "10 / 4"

Use -- to end the flags when an expression starts with a minus sign:

	exprcalc -- "-1 + 2"

When no arguments are given, expressions are read from standard input, one per line.
Blank lines and lines starting with # are ignored.

Supported are the operators + - * / with the usual precedence, parentheses,
decimal numbers and negative numbers.
Failed evaluations are reported on standard error and the exit status is 1.

Settings can also be defined in a YAML config file.
Run with -show-dirs to see its default location.
Flags given on the command line take precedence over the config file.

	base: 16
	compact: false
	precision: 2
	show_postfix: true
	thousands_separator: true
	workers: 4
*/
package main
