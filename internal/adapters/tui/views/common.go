package views

import tea "github.com/charmbracelet/bubbletea"

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and the outcome.
type ViewState struct {
	Width  int
	Height int
	done   bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// Done reports whether the user answered rather than cancelled.
func (s *ViewState) Done() bool {
	return s.done
}

// finish records an answer and ends the program.
func (s *ViewState) finish() tea.Cmd {
	s.done = true
	return tea.Quit
}

// Prompt is a model that runs until the user answers or cancels.
type Prompt interface {
	tea.Model
	Done() bool
}
