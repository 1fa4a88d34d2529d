// Command calc is a keypad calculator for the terminal.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/zephyrtronium/calculator"
	"github.com/zephyrtronium/calculator/internal/config"
	"github.com/zephyrtronium/calculator/internal/tui"
)

// app holds flags and the resources built from them for one command tree.
type app struct {
	cfgPath string
	verbose bool
	prec    uint
	digits  int

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "calc",
		Short: "Keypad calculator",
		Long: `calc is a calculator that works like a handheld keypad.

Run without arguments to start the interactive calculator. Keys append
symbols to the expression, which is previewed as it is typed.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: a.runInteractive,
	}
	root.PersistentFlags().StringVar(&a.cfgPath, "config", defaultConfigPath(), "config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().UintVarP(&a.prec, "prec", "p", 64, "precision of calculations in bits")
	root.PersistentFlags().IntVar(&a.digits, "digits", calculator.DefaultDigits, "significant digits in results, or -1 for exact")

	root.AddCommand(a.pressCmd())
	root.AddCommand(a.keysCmd())
	root.AddCommand(a.evalCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "calc", "config.yaml")
}

// setup loads the config file, applies flags over it, and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("prec") {
		cfg.Precision = a.prec
	}
	if flags.Changed("digits") {
		cfg.Digits = a.digits
	}
	if a.verbose {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	a.cfg = cfg
	// The interactive calculator owns the terminal, so it only logs to a file.
	a.logger, err = newLogger(cfg.Logging, cmd.Name() == "calc")
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

func newLogger(cfg config.LoggingConfig, interactive bool) (*zap.Logger, error) {
	if cfg.File == "" && interactive {
		return zap.NewNop(), nil
	}
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	if cfg.File != "" {
		zc.OutputPaths = []string{cfg.File}
		zc.ErrorOutputPaths = []string{cfg.File}
	}
	return zc.Build()
}

// newCalculator creates a calculator using the loaded configuration.
func (a *app) newCalculator() *calculator.Calculator {
	return calculator.New(
		calculator.Precision(a.cfg.Precision),
		calculator.Digits(a.cfg.Digits),
		calculator.WithLogger(a.logger),
	)
}

func (a *app) runInteractive(cmd *cobra.Command, args []string) error {
	c := a.newCalculator()
	a.logger.Info("starting interactive calculator", zap.Stringer("session", c.ID()))
	m := tui.New(c, tui.NewKeyMap(a.cfg.Keys), tui.DefaultStyles())
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("calculator: %w", err)
	}
	return nil
}
