// Package calculator implements the expression buffer behind a keypad
// calculator.
//
// A Calculator accumulates key presses into an expression, evaluates it, and
// reports a State describing what a display should show. Every key press
// produces a live preview of the expression's value when it has one; only an
// explicit Evaluate command can produce an Error state.
//
//	c := calculator.New()
//	c.ProcessCommand(calculator.Press{Symbol: calculator.Digit2})
//	c.ProcessCommand(calculator.Press{Symbol: calculator.Add})
//	c.ProcessCommand(calculator.Press{Symbol: calculator.Digit2})
//	c.ProcessCommand(calculator.Evaluate{})
//	fmt.Println(c.State()) // Success("4")
//
// Expressions are evaluated by an Evaluator. The default one uses package
// expressions.
package calculator
