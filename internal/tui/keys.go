package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/zephyrtronium/calculator/internal/config"
)

// KeyMap holds the bindings for calculator commands. Symbols are not bound
// here; any rune calculator.ParseSymbol accepts presses its symbol.
type KeyMap struct {
	Evaluate key.Binding
	Clear    key.Binding
	Quit     key.Binding
	Help     key.Binding
}

// Default key names for each command.
var (
	DefaultEvaluateKeys = []string{"enter", "="}
	DefaultClearKeys    = []string{"esc", "c"}
	DefaultQuitKeys     = []string{"ctrl+c", "q"}
)

// NewKeyMap creates the key map, using the keys in cfg where they are given.
func NewKeyMap(cfg config.KeysConfig) KeyMap {
	return KeyMap{
		Evaluate: binding(cfg.Evaluate, DefaultEvaluateKeys, "evaluate"),
		Clear:    binding(cfg.Clear, DefaultClearKeys, "clear"),
		Quit:     binding(cfg.Quit, DefaultQuitKeys, "quit"),
		Help:     binding(nil, []string{"?"}, "toggle help"),
	}
}

func binding(keys, def []string, desc string) key.Binding {
	if len(keys) == 0 {
		keys = def
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), desc),
	)
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Evaluate, k.Clear, k.Quit, k.Help}
}

// FullHelp implements help.KeyMap. The second column lists symbol keys.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Evaluate, k.Clear, k.Quit, k.Help},
		symbolHelp,
	}
}

// symbolHelp describes the symbol keys which are not plainly their own glyph.
var symbolHelp = []key.Binding{
	key.NewBinding(key.WithKeys("*", "x"), key.WithHelp("*/x", "×")),
	key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "÷")),
	key.NewBinding(key.WithKeys(".", ","), key.WithHelp("./,", "decimal")),
	key.NewBinding(key.WithKeys("(", ")"), key.WithHelp("( )", "parenthesis")),
	key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "π")),
	key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "√")),
}
