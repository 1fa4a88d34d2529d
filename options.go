package calculator

import "go.uber.org/zap"

// Option is an option used when creating a Calculator.
type Option interface {
	calcOption()
}

type (
	evalopt   struct{ e Evaluator }
	logopt    struct{ log *zap.Logger }
	digitsopt int
	precopt   uint
)

func (evalopt) calcOption()   {}
func (logopt) calcOption()    {}
func (digitsopt) calcOption() {}
func (precopt) calcOption()   {}

// WithEvaluator sets the evaluator for expressions. It overrides Precision.
func WithEvaluator(e Evaluator) Option {
	return evalopt{e}
}

// WithLogger sets the logger which records processed commands. The default
// discards everything.
func WithLogger(log *zap.Logger) Option {
	return logopt{log}
}

// Digits sets the number of significant digits in results. -1 uses the fewest
// digits that identify the value exactly. Zero and other negative values
// select the default, 15.
func Digits(n int) Option {
	if n == 0 || n < -1 {
		n = DefaultDigits
	}
	return digitsopt(n)
}

// Precision sets the precision in bits of the default evaluator.
func Precision(bits uint) Option {
	return precopt(bits)
}

// DefaultDigits is the number of significant digits in results if the Digits
// option isn't given.
const DefaultDigits = 15
