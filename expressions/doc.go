// Package expressions implements an arbitrary-precision floating-point calculator.
//
// The syntax of expressions is intended to be similar to math you'd write in
// your notes, with maybe a few more spaces. "2 x y" is a multiplication of
// three terms. So is "{2}[x](y)" (although not "2 xy"). "-2^2^n" is the same
// as "-(2^(2^n))", where "a^b" is exponentiation.
//
// Calculator keys have operators of their own: "√x" is the square root of x,
// "n!" is the factorial of n, and "x%" is x/100. The postfix operators bind
// tighter than anything else, so "2^3!" is "2^(3!)". "π" is a name for pi
// even with no space around it, as in "2π".
//
// Variables let you parse an expression once and evaluate it for many inputs,
// or you can clone contexts for several expressions to use the same variable
// definitions everywhere.
package expressions
