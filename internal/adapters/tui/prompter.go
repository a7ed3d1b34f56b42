package tui

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"jot/internal/adapters/tui/views"
	"jot/internal/domain"
	"jot/internal/ports"
)

// Prompter implements ports.Prompter with small bubbletea programs. Prompts
// render on stderr so stdout stays usable in pipes.
type Prompter struct {
	in          io.Reader
	out         io.Writer
	interactive bool
}

// Ensure Prompter implements ports.Prompter
var _ ports.Prompter = (*Prompter)(nil)

// NewPrompter creates a prompter on the process terminal. It only prompts
// when both stdin and stderr are terminals.
func NewPrompter() *Prompter {
	return &Prompter{
		in:          os.Stdin,
		out:         os.Stderr,
		interactive: isTerminal(os.Stdin) && isTerminal(os.Stderr),
	}
}

// NewPrompterWithIO creates a prompter on the given streams.
func NewPrompterWithIO(in io.Reader, out io.Writer, interactive bool) *Prompter {
	return &Prompter{in: in, out: out, interactive: interactive}
}

// Interactive reports whether prompts can reach a user.
func (p *Prompter) Interactive() bool {
	return p.interactive
}

// Confirm asks a yes/no question.
func (p *Prompter) Confirm(question string) (bool, error) {
	m := views.NewConfirmModel(question)
	if err := p.run(m); err != nil {
		return false, err
	}
	return m.Confirmed(), nil
}

// Select lets the user pick one of options.
func (p *Prompter) Select(title string, options []string) (string, error) {
	if len(options) == 0 {
		return "", domain.ErrCancelled
	}
	m := views.NewPickerModel(title, options)
	if err := p.run(m); err != nil {
		return "", err
	}
	return m.Choice(), nil
}

// Input reads one line of text.
func (p *Prompter) Input(label, placeholder string) (string, error) {
	m := views.NewInputModel(label, placeholder, 0)
	if err := p.run(m); err != nil {
		return "", err
	}
	return m.Value(), nil
}

func (p *Prompter) run(m views.Prompt) error {
	if !p.interactive {
		return domain.ErrCancelled
	}
	if _, err := tea.NewProgram(m, tea.WithInput(p.in), tea.WithOutput(p.out)).Run(); err != nil {
		return fmt.Errorf("failed to run prompt: %w", err)
	}
	if !m.Done() {
		return domain.ErrCancelled
	}
	return nil
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
