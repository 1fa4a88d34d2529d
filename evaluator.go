package calculator

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/zephyrtronium/calculator/expressions"
)

// Evaluator computes the value of an arithmetic expression. Expressions use *
// for multiplication and . as the decimal point, along with + - / ^ % ! √ π
// and parentheses.
type Evaluator interface {
	Evaluate(expr string) (float64, error)
}

// EvaluatorFunc adapts a function to an Evaluator.
type EvaluatorFunc func(expr string) (float64, error)

// Evaluate calls f(expr).
func (f EvaluatorFunc) Evaluate(expr string) (float64, error) {
	return f(expr)
}

// Engine is an Evaluator using package expressions.
type Engine struct {
	// Prec is the precision in bits of intermediate results. If it is zero,
	// the expressions default is used.
	Prec uint
}

// keypadSyntax limits functions to the ones on the keypad.
var keypadSyntax = expressions.ParsingPreset(expressions.OnlyFuncs(string(expressions.Pi)))

// Evaluate parses and evaluates expr. The result is the nearest float64 to
// the exact result, which may be infinite. Variables are errors.
func (e Engine) Evaluate(expr string) (f float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			f, err = 0, fmt.Errorf("evaluating %q: %v", expr, r)
		}
	}()
	a, err := expressions.Parse(strings.NewReader(expr), keypadSyntax)
	if err != nil {
		return 0, err
	}
	if vars := a.Vars(); len(vars) != 0 {
		return 0, &expressions.NameError{Name: vars[0]}
	}
	var opts []expressions.ContextOption
	if e.Prec != 0 {
		opts = append(opts, expressions.Prec(e.Prec))
	}
	ctx := expressions.NewContext(opts...)
	r := ctx.Eval(a)
	if r == nil {
		return 0, ctx.Err()
	}
	f, _ = r.Float64()
	return f, nil
}

// ErrNotFinite is the error for expressions whose value is infinite or NaN,
// e.g. a division by zero.
var ErrNotFinite = errors.New("result is not finite")

var (
	// toEvaluator maps keypad glyphs to evaluator syntax.
	toEvaluator = strings.NewReplacer(MultiplyGlyph, "*", DecimalGlyph, ".")
	// toKeypad maps formatted numbers back to keypad glyphs.
	toKeypad = strings.NewReplacer(".", DecimalGlyph)
)

// evaluate returns the formatted value of the expression. Evaluator errors
// and non-finite results are returned as errors alike.
func (c *Calculator) evaluate() (string, error) {
	v, err := c.eval.Evaluate(toEvaluator.Replace(c.expr))
	if err != nil {
		return "", err
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return "", ErrNotFinite
	}
	return c.format(v), nil
}

// format renders a result in keypad glyphs.
func (c *Calculator) format(v float64) string {
	if v == 0 {
		// No negative zero.
		v = 0
	}
	return toKeypad.Replace(strconv.FormatFloat(v, 'g', c.digits, 64))
}
