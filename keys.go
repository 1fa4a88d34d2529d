package calculator

import (
	"strconv"
	"unicode"
)

// Keys that are commands rather than symbols in ParseKeys.
const (
	EvaluateKey = '='
	ClearKey    = 'c'
)

// ParseKeys converts a string of key presses into commands. Each rune is a
// symbol according to ParseSymbol, EvaluateKey, or ClearKey. Whitespace is
// ignored.
func ParseKeys(keys string) ([]Command, error) {
	var cmds []Command
	col := 0
	for _, r := range keys {
		col++
		switch {
		case unicode.IsSpace(r):
			continue
		case r == EvaluateKey:
			cmds = append(cmds, Evaluate{})
		case r == ClearKey, r == unicode.ToUpper(ClearKey):
			cmds = append(cmds, Clear{})
		default:
			s, ok := ParseSymbol(r)
			if !ok {
				return nil, &KeyError{Col: col, Key: r}
			}
			cmds = append(cmds, Press{Symbol: s})
		}
	}
	return cmds, nil
}

// KeyError is an error indicating a rune which is not a key.
type KeyError struct {
	// Col is the position of the key in runes, starting from 1.
	Col int
	// Key is the rune which is not a key.
	Key rune
}

func (err *KeyError) Error() string {
	return strconv.Itoa(err.Col) + ": unknown key " + strconv.QuoteRune(err.Key)
}

// Pos returns the position of the key.
func (err *KeyError) Pos() int {
	return err.Col
}
