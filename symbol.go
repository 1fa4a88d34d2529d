package calculator

// Symbol is a key that appends text to the expression.
type Symbol int8

const (
	Digit0 Symbol = iota
	Digit1
	Digit2
	Digit3
	Digit4
	Digit5
	Digit6
	Digit7
	Digit8
	Digit9
	Add
	Subtract
	Multiply
	Divide
	Percent
	Power
	Factorial
	Sqrt
	Pi
	Dot
	// Parenthesis appends either an open or a close parenthesis, whichever
	// NextParen chooses for the expression.
	Parenthesis

	numSymbols
)

//go:generate stringer -type=Symbol

// Glyphs used in expressions which the evaluator spells differently.
const (
	MultiplyGlyph = "×"
	DecimalGlyph  = ","
)

var symbolText = [numSymbols]string{
	Digit0:      "0",
	Digit1:      "1",
	Digit2:      "2",
	Digit3:      "3",
	Digit4:      "4",
	Digit5:      "5",
	Digit6:      "6",
	Digit7:      "7",
	Digit8:      "8",
	Digit9:      "9",
	Add:         "+",
	Subtract:    "-",
	Multiply:    MultiplyGlyph,
	Divide:      "÷",
	Percent:     "%",
	Power:       "^",
	Factorial:   "!",
	Sqrt:        "√",
	Pi:          "π",
	Dot:         DecimalGlyph,
	Parenthesis: "()",
}

// Text returns the text that pressing s appends to an expression. The text of
// Parenthesis is only a label; the appended text depends on the expression.
// Invalid symbols have no text.
func (s Symbol) Text() string {
	if !s.Valid() {
		return ""
	}
	return symbolText[s]
}

// Valid returns whether s is one of the defined symbols.
func (s Symbol) Valid() bool {
	return 0 <= s && s < numSymbols
}

// Symbols returns all valid symbols in order.
func Symbols() []Symbol {
	r := make([]Symbol, numSymbols)
	for i := range r {
		r[i] = Symbol(i)
	}
	return r
}

// ParseSymbol returns the symbol that a keyboard rune stands for. Besides each
// symbol's own text, it accepts ASCII spellings: * and x multiply, / divides,
// . is the decimal point, ( and ) are Parenthesis, p is π, and r is √.
func ParseSymbol(r rune) (Symbol, bool) {
	switch r {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return Digit0 + Symbol(r-'0'), true
	case '+':
		return Add, true
	case '-':
		return Subtract, true
	case '*', 'x', '×':
		return Multiply, true
	case '/', '÷':
		return Divide, true
	case '%':
		return Percent, true
	case '^':
		return Power, true
	case '!':
		return Factorial, true
	case 'r', '√':
		return Sqrt, true
	case 'p', 'π':
		return Pi, true
	case '.', ',':
		return Dot, true
	case '(', ')':
		return Parenthesis, true
	}
	return 0, false
}
