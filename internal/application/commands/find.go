package commands

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/gobwas/glob"

	"jot/internal/application"
	"jot/internal/domain"
	"jot/internal/vault"
)

// FindMatch is one item matching a find query
type FindMatch struct {
	Kind domain.ItemKind
	// Path is relative to the vault root, with forward slashes.
	Path  string
	Score int
}

// FindCommand searches the current vault. Patterns containing glob
// metacharacters are matched as globs against paths and names; anything
// else is matched fuzzily.
type FindCommand struct {
	manager *application.Manager
	Pattern string
	// Kind restricts matches to notes or folders; empty matches both.
	Kind string
}

// NewFindCommand creates a new FindCommand
func NewFindCommand(manager *application.Manager, pattern, kind string) *FindCommand {
	return &FindCommand{
		manager: manager,
		Pattern: pattern,
		Kind:    kind,
	}
}

// Validate checks the pattern and kind filter
func (c *FindCommand) Validate() error {
	if err := application.ValidateRequired("pattern", c.Pattern); err != nil {
		return err
	}
	if c.Kind == "" {
		return nil
	}
	kind, err := application.ParseItemKind(c.Kind)
	if err != nil {
		return err
	}
	return application.ValidateKind(kind, domain.KindNote, domain.KindFolder)
}

// Execute runs the find command and returns matches, best first
func (c *FindCommand) Execute(ctx context.Context) ([]FindMatch, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	match, err := c.matcher()
	if err != nil {
		return nil, err
	}
	v, err := c.manager.Current()
	if err != nil {
		return nil, err
	}

	var wantKind *domain.ItemKind
	if c.Kind != "" {
		kind, _ := application.ParseItemKind(c.Kind)
		wantKind = &kind
	}

	var matches []FindMatch
	err = v.Walk(func(rel string, item vault.Item) error {
		if wantKind != nil && item.Kind() != *wantKind {
			return nil
		}
		if score := match(rel, item); score > 0 {
			matches = append(matches, FindMatch{Kind: item.Kind(), Path: rel, Score: score})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(matches, func(a, b FindMatch) int {
		if a.Score != b.Score {
			return b.Score - a.Score
		}
		return strings.Compare(a.Path, b.Path)
	})
	return matches, nil
}

func (c *FindCommand) matcher() (func(rel string, item vault.Item) int, error) {
	pattern := strings.TrimSpace(c.Pattern)
	if !strings.ContainsAny(pattern, "*?[{") {
		return func(rel string, item vault.Item) int {
			return max(FuzzyScore(item.Name(), pattern), FuzzyScore(rel, pattern))
		}, nil
	}

	g, err := glob.Compile(pattern, '/')
	if err != nil {
		return nil, &application.ValidationError{Field: "pattern", Message: fmt.Sprintf("invalid glob %q: %v", pattern, err)}
	}
	return func(rel string, item vault.Item) int {
		if g.Match(rel) || g.Match(item.FullName()) {
			return 1
		}
		return 0
	}, nil
}

// FuzzyScore calculates a relevance score for how well target matches query
func FuzzyScore(target, query string) int {
	target = strings.ToLower(target)
	query = strings.ToLower(query)

	if len(query) == 0 {
		return 0
	}

	// Exact substring match ranks highest
	if strings.Contains(target, query) {
		score := 100
		if strings.HasPrefix(target, query) {
			score += 50
		}
		return score
	}

	// Otherwise the query chars must appear in order
	score := 0
	queryIdx := 0
	prevMatchIdx := -1

	for i := 0; i < len(target) && queryIdx < len(query); i++ {
		if target[i] == query[queryIdx] {
			if prevMatchIdx == i-1 {
				score += 10 // consecutive chars
			}
			if i == 0 {
				score += 15 // start of string
			}
			if i > 0 && (target[i-1] == ' ' || target[i-1] == '/' || target[i-1] == '-' || target[i-1] == '_') {
				score += 10 // after separator
			}
			score += 1
			prevMatchIdx = i
			queryIdx++
		}
	}

	if queryIdx == len(query) {
		return score
	}
	return 0
}
