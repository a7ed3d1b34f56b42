package views

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"jot/internal/adapters/tui/styles"
)

const (
	pickerWidth  = 60
	pickerHeight = 16
)

// PickerKeyMap defines the keys the picker handles before the list does
type PickerKeyMap struct {
	Select key.Binding
	Cancel key.Binding
}

var PickerKeys = PickerKeyMap{
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "cancel"),
	),
}

// option is a single list entry
type option string

func (o option) FilterValue() string { return string(o) }
func (o option) Title() string       { return string(o) }
func (o option) Description() string { return "" }

// PickerModel lets the user choose one option, with fuzzy filtering
// from bubbles/list.
type PickerModel struct {
	ViewState
	list   list.Model
	Keys   PickerKeyMap
	choice string
}

// NewPickerModel creates a picker over options
func NewPickerModel(title string, options []string) *PickerModel {
	items := make([]list.Item, 0, len(options))
	for _, o := range options {
		items = append(items, option(o))
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(styles.Primary).
		BorderForeground(styles.Primary)

	l := list.New(items, delegate, pickerWidth, pickerHeight)
	l.Title = title
	l.Styles.Title = styles.Title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)

	return &PickerModel{list: l, Keys: PickerKeys}
}

// Choice returns the selected option once the picker is done
func (m *PickerModel) Choice() string {
	return m.choice
}

// Init initializes the picker
func (m *PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker
func (m *PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		m.list.SetSize(min(msg.Width, pickerWidth), min(msg.Height, pickerHeight))
		return m, nil

	case tea.KeyMsg:
		// While the filter is being typed, enter and esc belong to the list.
		if m.list.FilterState() != list.Filtering {
			switch {
			case key.Matches(msg, m.Keys.Cancel) && m.list.FilterState() == list.Unfiltered:
				return m, tea.Quit
			case key.Matches(msg, m.Keys.Select):
				if selected, ok := m.list.SelectedItem().(option); ok {
					m.choice = string(selected)
					return m, m.finish()
				}
				return m, nil
			}
		} else if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the list, or the choice once made
func (m *PickerModel) View() string {
	if m.done {
		return styles.Title.Render(m.list.Title) + " " + m.choice + "\n"
	}
	return m.list.View()
}
