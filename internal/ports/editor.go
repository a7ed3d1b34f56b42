package ports

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_editor.go -package=mocks jot/internal/ports EditorLauncher

// EditorLauncher opens a note in an external program.
type EditorLauncher interface {
	// Open launches the editor on the absolute path. blocked reports
	// whether it waited for the editor to exit.
	Open(path string) (blocked bool, err error)
}
