package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/calculator"
)

func (a *app) pressCmd() *cobra.Command {
	var (
		inname string
		trace  bool
	)
	cmd := &cobra.Command{
		Use:   "press [keys...]",
		Short: "Press keys on a calculator and print what it shows",
		Long: `Each argument, or each line of input if there are no arguments, is a
sequence of keys pressed on a new calculator. Keys are symbols, '=' to
evaluate, or 'c' to clear. Spaces are ignored.

  calc press '2+2='
  echo '(2×3)^2=' | calc press`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var lines []string
			f, err := infile(inname, len(args) == 0, cmd.InOrStdin())
			if err != nil {
				return err
			}
			if f != nil {
				defer f.Close()
				s := bufio.NewScanner(f)
				for s.Scan() {
					if strings.TrimSpace(s.Text()) != "" {
						lines = append(lines, s.Text())
					}
				}
				if err := s.Err(); err != nil {
					return fmt.Errorf("couldn't read input: %w", err)
				}
			}
			lines = append(lines, args...)
			out := cmd.OutOrStdout()
			for i, line := range lines {
				cmds, err := calculator.ParseKeys(line)
				if err != nil {
					return fmt.Errorf("input %d: %w", i+1, err)
				}
				c := a.newCalculator()
				if trace {
					c.Subscribe(func(s calculator.State) {
						fmt.Fprintf(out, "\t%v\n", s)
					})
				}
				for _, k := range cmds {
					c.ProcessCommand(k)
				}
				fmt.Fprintln(out, display(c.State()))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	cmd.Flags().BoolVar(&trace, "trace", false, "print every state before the result")
	return cmd
}

// display formats a state as a single line like the calculator's screen.
func display(s calculator.State) string {
	switch s := s.(type) {
	case calculator.Input:
		if s.Result == "" {
			return s.Expression
		}
		return s.Expression + " = " + s.Result
	case calculator.Success:
		return s.Result
	case calculator.Error:
		return "error: " + s.Expression
	default:
		return "0"
	}
}

func infile(inname string, std bool, stdin io.Reader) (io.ReadCloser, error) {
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, fmt.Errorf("couldn't open input: %w", err)
		}
		return f, nil
	case inname == "-", std:
		return io.NopCloser(stdin), nil
	}
	return nil, nil
}
