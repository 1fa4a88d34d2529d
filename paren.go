package calculator

import (
	"strings"
	"unicode/utf8"
)

// NextParen returns the parenthesis that the Parenthesis key appends to expr.
// It opens a group at the start of an expression or where an operand is
// expected, closes one after an operand if any group is unclosed, and opens
// one otherwise.
func NextParen(expr string) string {
	if expr == "" {
		return "("
	}
	last, _ := utf8.DecodeLastRuneInString(expr)
	if !('0' <= last && last <= '9') && last != ')' && last != 'π' {
		return "("
	}
	if strings.Count(expr, "(") > strings.Count(expr, ")") {
		return ")"
	}
	return "("
}
