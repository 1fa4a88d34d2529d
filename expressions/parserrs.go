package expressions

import "strconv"

// InputError is an error caused by malformed input. Every error that Parse
// returns is an InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*SeparatorError)(nil)
	_ InputError = (*CallError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*LexError)(nil)
)

// OperatorError is an operator where it cannot apply, like × in ×2 or ! in !3.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the operator token.
	Operator string
	// Unary is whether the operator is where a term should start, i.e. it has
	// no left operand.
	Unary bool
}

func (err *OperatorError) Error() string {
	if err.Unary {
		return errpos(err.Col, strconv.Quote(err.Operator)+" needs a term before it")
	}
	return errpos(err.Col, "misplaced operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int { return err.Col }

// BracketError is a close bracket without a matching open bracket or the
// reverse. A pair of different kinds of bracket sets both Left and Right.
type BracketError struct {
	// Col is the position of the close bracket, or of the end of input for
	// an unclosed bracket.
	Col int
	// Left is the open bracket, or empty if there is none.
	Left string
	// Right is the close bracket, or empty if there is none.
	Right string
}

func (err *BracketError) Error() string {
	switch {
	case err.Left == "":
		return errpos(err.Col, "close bracket "+err.Right+" was never opened")
	case err.Right == "":
		return errpos(err.Col, "open bracket "+err.Left+" was never closed")
	default:
		return errpos(err.Col, "bracket "+err.Left+" closed by "+err.Right)
	}
}

func (err *BracketError) Pos() int { return err.Col }

// SeparatorError is a comma or semicolon outside a function's argument list,
// or one with nothing before it.
type SeparatorError struct {
	// Col is the position of the separator.
	Col int
	// Sep is the separator.
	Sep string
}

func (err *SeparatorError) Error() string {
	return errpos(err.Col, "unexpected separator "+strconv.Quote(err.Sep))
}

func (err *SeparatorError) Pos() int { return err.Col }

// CallError is a call to a function with a number of arguments it doesn't
// take.
type CallError struct {
	// Col is the position of the token where the arguments ended.
	Col int
	// Func is the function name.
	Func string
	// Len is the number of arguments given.
	Len int
}

func (err *CallError) Error() string {
	return errpos(err.Col, "cannot call "+err.Func+" with "+strconv.Itoa(err.Len)+" arguments")
}

func (err *CallError) Pos() int { return err.Col }

// EmptyExpressionError is a missing term, as in 2+ or ().
type EmptyExpressionError struct {
	// Col is the position of the token where a term should have been.
	Col int
	// End is that token, or empty at the end of input.
	End string
}

func (err *EmptyExpressionError) Error() string {
	switch {
	case err.End != "":
		return errpos(err.Col, "no expression before "+strconv.Quote(err.End))
	case err.Col <= 1:
		return errpos(err.Col, "empty expression")
	default:
		return errpos(err.Col, "no expression before end of input")
	}
}

func (err *EmptyExpressionError) Pos() int { return err.Col }

func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}
