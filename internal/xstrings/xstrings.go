// Package xstrings provides helpers for strings.
package xstrings

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// JoinsOrEmpty joins strings together like [strings.Join],
// but returns a fallback when the elem slice is empty.
func JoinsOrEmpty(elems []string, sep, empty string) string {
	if len(elems) == 0 {
		return empty
	}
	return strings.Join(elems, sep)
}

// Title returns a string with the first letter of each word upper cased.
func Title(s string) string {
	return cases.Title(language.English).String(s)
}

// IsBlankOrComment reports whether a line is empty, consists of white space only
// or is a comment starting with #.
func IsBlankOrComment(line string) bool {
	s := strings.TrimSpace(line)
	return s == "" || strings.HasPrefix(s, "#")
}
