package views

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"jot/internal/adapters/tui/styles"
)

// ConfirmKeyMap defines key bindings for confirmation views
type ConfirmKeyMap struct {
	Confirm key.Binding
	Deny    key.Binding
	Cancel  key.Binding
}

// DefaultConfirmKeys returns the default confirmation key bindings
var DefaultConfirmKeys = ConfirmKeyMap{
	Confirm: key.NewBinding(
		key.WithKeys("y", "Y"),
		key.WithHelp("y", "confirm"),
	),
	Deny: key.NewBinding(
		key.WithKeys("n", "N", "enter"),
		key.WithHelp("n", "decline"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "cancel"),
	),
}

// ConfirmModel asks a single yes/no question.
type ConfirmModel struct {
	ViewState
	Question  string
	Keys      ConfirmKeyMap
	confirmed bool
}

// NewConfirmModel creates a new confirmation model with default keys
func NewConfirmModel(question string) *ConfirmModel {
	return &ConfirmModel{
		Question: question,
		Keys:     DefaultConfirmKeys,
	}
}

// Confirmed reports whether the user said yes.
func (m *ConfirmModel) Confirmed() bool {
	return m.confirmed
}

// Init initializes the confirmation view
func (m *ConfirmModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the confirmation view
func (m *ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.Cancel):
			return m, tea.Quit
		case key.Matches(msg, m.Keys.Confirm):
			m.confirmed = true
			return m, m.finish()
		case key.Matches(msg, m.Keys.Deny):
			return m, m.finish()
		}
	}

	return m, nil
}

// View renders the confirmation prompt
func (m *ConfirmModel) View() string {
	if m.done {
		answer := "no"
		if m.confirmed {
			answer = "yes"
		}
		return m.Question + " " + styles.MutedText.Render(answer) + "\n"
	}
	return lines(m.Question + " " + HelpLine(m.Keys.Confirm, m.Keys.Deny))
}
