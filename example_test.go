package calculator_test

import (
	"fmt"

	"github.com/zephyrtronium/calculator"
)

func Example() {
	c := calculator.New()
	c.Subscribe(func(s calculator.State) { fmt.Println(s) })
	for _, s := range []calculator.Symbol{
		calculator.Parenthesis,
		calculator.Digit2,
		calculator.Add,
		calculator.Digit3,
		calculator.Parenthesis,
		calculator.Multiply,
		calculator.Digit4,
	} {
		c.ProcessCommand(calculator.Press{Symbol: s})
	}
	c.ProcessCommand(calculator.Evaluate{})
	c.ProcessCommand(calculator.Press{Symbol: calculator.Divide})
	c.ProcessCommand(calculator.Press{Symbol: calculator.Digit0})
	c.ProcessCommand(calculator.Evaluate{})
	c.ProcessCommand(calculator.Clear{})

	// Output:
	// Input("(", "")
	// Input("(2", "")
	// Input("(2+", "")
	// Input("(2+3", "")
	// Input("(2+3)", "5")
	// Input("(2+3)×", "")
	// Input("(2+3)×4", "20")
	// Success("20")
	// Input("20÷", "")
	// Input("20÷0", "")
	// Error("20÷0")
	// Initial
}
