package expressions

import (
	"strconv"
	"unicode"
)

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

// parsectx holds the state of one parse. It is also a ParseOption, which is
// how presets work.
type parsectx struct {
	// names is the set of variable names seen so far.
	names map[string]bool
	// funcs maps names to the functions they parse as. A nil entry parses as
	// a variable.
	funcs map[string]Func
	// resv is a bracketed term that followed a niladic function, which is a
	// multiplication rather than a call. parseops consumes it wherever
	// multiplication binds.
	resv *node
	// wseof holds the whitespace runes that end an expression.
	wseof string
	// ceof and seof are whether a comma or a semicolon ends an expression.
	ceof, seof bool
	// nodefaults is whether funcs already has an entry for every default
	// function.
	nodefaults bool
}

// setfuncs is an option mapping names to functions.
type setfuncs map[string]Func

// ParseFunc sets a function for parsing. To disable parsing a function, pass
// nil for fn.
func ParseFunc(name string, fn Func) ParseOption {
	return setfuncs{name: fn}
}

// ParseFuncs sets a group of functions for parsing. To disable parsing any
// function, set it to nil.
func ParseFuncs(fns map[string]Func) ParseOption {
	return setfuncs(fns)
}

func (o setfuncs) parseOption(p parsectx) parsectx {
	if p.funcs == nil {
		// Never alias the caller's map.
		p.funcs = make(map[string]Func, len(o))
	}
	for k, v := range o {
		p.funcs[k] = v
	}
	if !p.nodefaults {
		n := 0
		for k := range globalfuncs {
			if _, ok := p.funcs[k]; ok {
				n++
			}
		}
		p.nodefaults = n == len(globalfuncs)
	}
	return p
}

// DisableDefaultFuncs disables all default functions during parsing. Their
// names will be parsed as variables instead.
func DisableDefaultFuncs() ParseOption {
	return OnlyFuncs()
}

// OnlyFuncs disables every default function except the named ones.
func OnlyFuncs(names ...string) ParseOption {
	o := make(setfuncs, len(globalfuncs))
	for k := range globalfuncs {
		o[k] = nil
	}
	for _, k := range names {
		if fn, ok := globalfuncs[k]; ok {
			o[k] = fn
		}
	}
	return o
}

// stopopt is an option setting the runes that end an expression.
type stopopt struct {
	c, s bool
	ws   string
}

// StopOn tells the parser to treat a list of characters as ending the
// expression, so that one input can hold several. Each rune must be a comma,
// semicolon, or whitespace codepoint. Whitespace does not end an expression
// where a term is expected, e.g. after an operator or an open bracket. Commas
// and semicolons do not end an expression inside a function's argument list.
//
// StopOn replaces any previous StopOn, including one in a preset. With no
// arguments, expressions run to the end of input.
func StopOn(chars ...rune) ParseOption {
	var o stopopt
	var ws []rune
	for _, r := range chars {
		switch {
		case r == ',':
			o.c = true
		case r == ';':
			o.s = true
		case unicode.IsSpace(r):
			if !containsRune(ws, r) {
				ws = append(ws, r)
			}
		default:
			panic("expressions: cannot stop on " + strconv.QuoteRune(r))
		}
	}
	o.ws = string(ws)
	return o
}

func containsRune(rs []rune, r rune) bool {
	for _, c := range rs {
		if c == r {
			return true
		}
	}
	return false
}

func (o stopopt) parseOption(p parsectx) parsectx {
	p.ceof, p.seof, p.wseof = o.c, o.s, o.ws
	return p
}

// ParsingPreset combines function options into one option which is cheaper
// to apply on every call to Parse. A preset panics if it is applied after any
// other option, but other options may follow it.
func ParsingPreset(opts ...ParseOption) ParseOption {
	var p parsectx
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	if p.funcs != nil {
		for k, v := range globalfuncs {
			if _, ok := p.funcs[k]; !ok {
				p.funcs[k] = v
			}
		}
		p.nodefaults = true
	}
	return &p
}

func (o *parsectx) parseOption(p parsectx) parsectx {
	if p.funcs != nil || p.wseof != "" || p.ceof || p.seof {
		panic("expressions: preset applied to non-default parse config")
	}
	p.funcs = o.funcs
	p.nodefaults = o.nodefaults
	return p
}
