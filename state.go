package calculator

import "strconv"

// State is what a display should show. The implementations are Initial,
// Input, Success, and Error.
type State interface {
	String() string
	state()
}

// Initial is the state of a new or cleared calculator.
type Initial struct{}

// Input is the state after a key press.
type Input struct {
	// Expression is the expression typed so far.
	Expression string
	// Result is a preview of the expression's value, or the empty string if
	// the expression has no value yet.
	Result string
}

// Success is the state after an expression is evaluated.
type Success struct {
	// Result is the value of the expression, which is also the calculator's
	// new expression.
	Result string
}

// Error is the state after an expression fails to evaluate.
type Error struct {
	// Expression is the expression which failed. It is unchanged, so that it
	// can be corrected.
	Expression string
}

func (Initial) state() {}
func (Input) state()   {}
func (Success) state() {}
func (Error) state()   {}

func (Initial) String() string {
	return "Initial"
}

func (s Input) String() string {
	return "Input(" + strconv.Quote(s.Expression) + ", " + strconv.Quote(s.Result) + ")"
}

func (s Success) String() string {
	return "Success(" + strconv.Quote(s.Result) + ")"
}

func (s Error) String() string {
	return "Error(" + strconv.Quote(s.Expression) + ")"
}
