package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zephyrtronium/calculator/expressions"
)

func (a *app) evalCmd() *cobra.Command {
	var (
		inname string
		verb   string
		given  []string
		lines  bool
		echo   bool
	)
	cmd := &cobra.Command{
		Use:   "eval [exprs...]",
		Short: "Evaluate typed expressions",
		Long: `Each argument, or the input if there are no arguments, holds expressions
written with the full syntax: variables, functions like sqrt(x) and ln x,
the constants e and pi, and the keypad operators. A semicolon ends an
expression.

  calc eval 'x^2 + 1' --given x=3
  printf '2+2\n√2\n' | calc eval --lines`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := expressions.NewContext(expressions.Prec(a.cfg.Precision))
			for _, d := range given {
				name, val, ok := strings.Cut(d, "=")
				if !ok {
					return fmt.Errorf(`variable definitions must be "name=value", not %q`, d)
				}
				name = strings.TrimSpace(name)
				r, err := expressions.EvalString(val, expressions.Prec(a.cfg.Precision))
				if err != nil {
					return fmt.Errorf("setting %s: %w", name, err)
				}
				ctx.Set(name, r)
			}

			stop := []rune{';'}
			if lines {
				stop = append(stop, '\n')
			}
			opts := []expressions.ParseOption{expressions.StopOn(stop...)}

			var ins []io.RuneScanner
			f, err := infile(inname, len(args) == 0, cmd.InOrStdin())
			if err != nil {
				return err
			}
			if f != nil {
				defer f.Close()
				ins = append(ins, bufio.NewReader(f))
			}
			for _, arg := range args {
				ins = append(ins, strings.NewReader(arg))
			}

			out := cmd.OutOrStdout()
			for i, in := range ins {
				for {
					ok, err := skipSpace(in)
					if err != nil {
						return fmt.Errorf("couldn't read input: %w", err)
					}
					if !ok {
						break
					}
					e, err := expressions.Parse(in, opts...)
					if err != nil {
						return fmt.Errorf("input %d: %w", i+1, err)
					}
					if echo {
						fmt.Fprintf(out, "%v : ", e)
					}
					r := ctx.Eval(e)
					if r == nil {
						a.logger.Debug("evaluation failed", zap.Stringer("expr", e), zap.Error(ctx.Err()))
						fmt.Fprintln(out, ctx.Err())
						continue
					}
					fmt.Fprintf(out, verb+"\n", r)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	cmd.Flags().StringVar(&verb, "fmt", "%g", "result formatting verb")
	cmd.Flags().StringArrayVar(&given, "given", nil, "name=value variable definition (any number of times)")
	cmd.Flags().BoolVarP(&lines, "lines", "n", false, "end expressions at newlines")
	cmd.Flags().BoolVar(&echo, "echo", false, "print parse trees")
	return cmd
}

// skipSpace consumes whitespace before the next expression. The result is
// false if the input has ended.
func skipSpace(in io.RuneScanner) (bool, error) {
	for {
		r, _, err := in.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return false, nil
			}
			return false, err
		}
		if !unicode.IsSpace(r) {
			return true, in.UnreadRune()
		}
	}
}
