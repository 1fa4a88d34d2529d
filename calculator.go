package calculator

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Calculator is the expression buffer of a keypad calculator. It is not safe
// to use a Calculator concurrently.
type Calculator struct {
	expr   string
	state  State
	eval   Evaluator
	digits int
	log    *zap.Logger
	id     uuid.UUID

	subs []subscriber
	nsub int
}

type subscriber struct {
	id int
	f  func(State)
}

// New creates a calculator in the Initial state.
func New(opts ...Option) *Calculator {
	c := Calculator{
		state:  Initial{},
		digits: DefaultDigits,
		log:    zap.NewNop(),
		id:     uuid.New(),
	}
	var prec uint
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case evalopt:
			c.eval = opt.e
		case logopt:
			if opt.log != nil {
				c.log = opt.log
			}
		case digitsopt:
			c.digits = int(opt)
		case precopt:
			prec = uint(opt)
		default:
			panic("calculator: unknown option type")
		}
	}
	if c.eval == nil {
		c.eval = Engine{Prec: prec}
	}
	c.log = c.log.With(zap.String("session", c.id.String()))
	return &c
}

// ProcessCommand applies a command and updates the state. Subscribers are
// called with the new state before ProcessCommand returns. Pressing an invalid
// symbol changes nothing.
func (c *Calculator) ProcessCommand(cmd Command) {
	switch cmd := cmd.(type) {
	case Clear:
		c.expr = ""
		c.state = Initial{}
	case Evaluate:
		r, err := c.evaluate()
		if err != nil {
			c.log.Debug("evaluation failed", zap.String("expression", c.expr), zap.Error(err))
			c.state = Error{Expression: c.expr}
			break
		}
		c.expr = r
		c.state = Success{Result: r}
	case Press:
		if !cmd.Symbol.Valid() {
			c.log.Warn("invalid symbol", zap.Stringer("symbol", cmd.Symbol))
			return
		}
		text := cmd.Symbol.Text()
		if cmd.Symbol == Parenthesis {
			text = NextParen(c.expr)
		}
		c.expr += text
		// Previews are best effort. Failing to evaluate an incomplete
		// expression is normal.
		r, _ := c.evaluate()
		c.state = Input{Expression: c.expr, Result: r}
	default:
		panic("calculator: unknown command type")
	}
	c.log.Debug("command processed", zap.Stringer("command", cmd), zap.Stringer("state", c.state))
	for _, s := range c.subs {
		s.f(c.state)
	}
}

// State returns the current state.
func (c *Calculator) State() State {
	return c.state
}

// Expression returns the current expression.
func (c *Calculator) Expression() string {
	return c.expr
}

// ID returns the calculator's session ID, which tags its log entries.
func (c *Calculator) ID() uuid.UUID {
	return c.id
}

// Subscribe registers f to be called with the new state after each processed
// command, in order of subscription. The returned function removes f.
func (c *Calculator) Subscribe(f func(State)) (cancel func()) {
	c.nsub++
	id := c.nsub
	c.subs = append(c.subs, subscriber{id: id, f: f})
	return func() {
		for i, s := range c.subs {
			if s.id == id {
				c.subs = append(c.subs[:i:i], c.subs[i+1:]...)
				return
			}
		}
	}
}
