package tui

import (
	"jot/internal/adapters/tui/styles"
	"jot/internal/config"
	"jot/internal/vault"
)

// TreePaint colors folder and note names in tree listings.
func TreePaint(colors config.Colors) vault.Paint {
	folder := styles.Colored(styles.NodeFolder, colors.Folder)
	note := styles.Colored(styles.NodeNote, colors.Note)
	return vault.Paint{
		Folder: func(name string) string { return folder.Render(name) },
		Note:   func(name string) string { return note.Render(name) },
	}
}

// VaultName colors a vault name, marking the current vault.
func VaultName(colors config.Colors, name string, current bool) string {
	rendered := styles.Colored(styles.NodeVault, colors.Vault).Render(name)
	if current {
		return rendered + " " + styles.CurrentMarker.Render("*")
	}
	return rendered
}

// Message renders a command result for the terminal.
func Message(message string) string {
	return styles.Success.Render(message)
}

// Muted renders secondary text such as empty-listing notices.
func Muted(text string) string {
	return styles.MutedText.Render(text)
}

// Error renders an error for stderr.
func Error(err error) string {
	return styles.ErrorMsg.Render("Error: " + err.Error())
}
