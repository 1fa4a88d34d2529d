package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/calculator"
	"github.com/zephyrtronium/calculator/internal/tui"
)

func (a *app) keysCmd() *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Show the keys of the interactive calculator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			md := keysMarkdown(tui.NewKeyMap(a.cfg.Keys))
			if raw {
				_, err := fmt.Fprint(cmd.OutOrStdout(), md)
				return err
			}
			r, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(80),
			)
			if err != nil {
				return fmt.Errorf("failed to create renderer: %w", err)
			}
			s, err := r.Render(md)
			if err != nil {
				return fmt.Errorf("failed to render keys: %w", err)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), s)
			return err
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print Markdown without rendering")
	return cmd
}

// keyRunes are the runes checked for symbol keys.
const keyRunes = "0123456789+-*x×/÷%^!√rπp,.()"

func keysMarkdown(km tui.KeyMap) string {
	var b strings.Builder
	b.WriteString("# Keys\n\n## Commands\n\n| key | command |\n|---|---|\n")
	for _, k := range []key.Binding{km.Evaluate, km.Clear, km.Quit, km.Help} {
		h := k.Help()
		fmt.Fprintf(&b, "| `%s` | %s |\n", h.Key, h.Desc)
	}
	keys := make(map[calculator.Symbol][]string)
	for _, r := range keyRunes {
		s, ok := calculator.ParseSymbol(r)
		if ok {
			keys[s] = append(keys[s], "`"+string(r)+"`")
		}
	}
	b.WriteString("\n## Symbols\n\n| key | symbol |\n|---|---|\n")
	for _, s := range calculator.Symbols() {
		fmt.Fprintf(&b, "| %s | %s `%s` |\n", strings.Join(keys[s], " "), s, s.Text())
	}
	return b.String()
}
