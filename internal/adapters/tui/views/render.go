package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"jot/internal/adapters/tui/styles"
)

// HelpLine renders each binding's help as "key desc", separated by bullets.
func HelpLine(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, styles.HelpKey.Render(h.Key)+" "+styles.HelpDesc.Render(h.Desc))
	}
	return strings.Join(parts, styles.HelpSeparator.String())
}

// lines joins rendered rows, one per line.
func lines(rows ...string) string {
	return strings.Join(rows, "\n") + "\n"
}
