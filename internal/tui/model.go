// Package tui implements an interactive terminal keypad for a calculator.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zephyrtronium/calculator"
)

// minWidth is the narrowest the display gets.
const minWidth = 24

// Model is the bubbletea model for the calculator keypad.
type Model struct {
	calc     *calculator.Calculator
	keys     KeyMap
	styles   Styles
	help     help.Model
	width    int
	quitting bool
}

// New creates a model which sends key presses to calc.
func New(calc *calculator.Calculator, keys KeyMap, styles Styles) Model {
	return Model{
		calc:   calc,
		keys:   keys,
		styles: styles,
		help:   help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Evaluate):
			m.calc.ProcessCommand(calculator.Evaluate{})
		case key.Matches(msg, m.keys.Clear):
			m.calc.ProcessCommand(calculator.Clear{})
		case msg.Type == tea.KeyRunes:
			// Pastes arrive as several runes at once.
			for _, r := range msg.Runes {
				if s, ok := calculator.ParseSymbol(r); ok {
					m.calc.ProcessCommand(calculator.Press{Symbol: s})
				}
			}
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var lines []string
	switch s := m.calc.State().(type) {
	case calculator.Initial:
		lines = []string{m.styles.Expression.Render("0"), ""}
	case calculator.Input:
		lines = []string{m.styles.Expression.Render(s.Expression), m.styles.Preview.Render(s.Result)}
	case calculator.Success:
		lines = []string{m.styles.Result.Render(s.Result), ""}
	case calculator.Error:
		lines = []string{m.styles.Error.Render(s.Expression), m.styles.Error.Render("error")}
	}
	w := minWidth
	if m.width-4 > w {
		w = m.width - 4
	}
	display := m.styles.Display.Width(w).Render(lipgloss.JoinVertical(lipgloss.Right, lines...))
	return lipgloss.JoinVertical(lipgloss.Left, display, m.styles.Help.Render(m.help.View(m.keys)))
}
