package ports

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_prompter.go -package=mocks jot/internal/ports Prompter

// Prompter asks the user to confirm or to choose. Implementations that
// cannot reach a user return domain.ErrCancelled.
type Prompter interface {
	// Confirm asks a yes/no question.
	Confirm(question string) (bool, error)
	// Select lets the user pick one of options.
	Select(title string, options []string) (string, error)
}
