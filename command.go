package calculator

// Command is an input event for a Calculator. The implementations are Clear,
// Evaluate, and Press.
type Command interface {
	String() string
	command()
}

// Clear empties the expression and returns the display to Initial.
type Clear struct{}

// Evaluate replaces the expression with its value, or shows Error if it has
// none.
type Evaluate struct{}

// Press appends a symbol to the expression.
type Press struct {
	Symbol Symbol
}

func (Clear) command()    {}
func (Evaluate) command() {}
func (Press) command()    {}

func (Clear) String() string    { return "Clear" }
func (Evaluate) String() string { return "Evaluate" }
func (p Press) String() string  { return "Press(" + p.Symbol.String() + ")" }
