package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"jot/internal/adapters/tui/styles"
)

// InputKeyMap defines key bindings for input views
type InputKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
}

// DefaultInputKeys returns the default input key bindings
var DefaultInputKeys = InputKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "submit"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "cancel"),
	),
}

// InputModel reads one line of text.
type InputModel struct {
	ViewState
	Label string
	Input textinput.Model
	Keys  InputKeyMap
}

// NewInputModel creates an input with the given label and placeholder
func NewInputModel(label, placeholder string, charLimit int) *InputModel {
	input := textinput.New()
	input.Placeholder = placeholder
	if charLimit > 0 {
		input.CharLimit = charLimit
	}
	input.Focus()
	return &InputModel{
		Label: label,
		Input: input,
		Keys:  DefaultInputKeys,
	}
}

// Value returns the trimmed input text
func (m *InputModel) Value() string {
	return strings.TrimSpace(m.Input.Value())
}

// Init returns the blink command for the input
func (m *InputModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the input view
func (m *InputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		m.Input.Width = msg.Width - 6
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.Cancel):
			return m, tea.Quit
		case key.Matches(msg, m.Keys.Submit):
			if m.Value() == "" {
				return m, nil
			}
			return m, m.finish()
		}
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

// View renders the label, the field and the help line
func (m *InputModel) View() string {
	if m.done {
		return styles.InputLabel.Render(m.Label) + " " + m.Value() + "\n"
	}
	return lines(
		styles.InputLabel.Render(m.Label),
		styles.InputFocused.Render(m.Input.View()),
		HelpLine(m.Keys.Submit, m.Keys.Cancel),
	)
}
