package search

import (
	"context"
	"strings"
)

// MockSearchService implements Service for unit tests and offline runs with
// pre-populated demo data keyed by language.
type MockSearchService struct {
	repos map[string]Repository
	err   error
}

// NewMockSearchService creates a mock pre-populated with demo repositories.
func NewMockSearchService() *MockSearchService {
	return &MockSearchService{
		repos: map[string]Repository{
			"go": {
				Name:        "gin",
				FullName:    "gin-gonic/gin",
				Description: "Gin is a HTTP web framework written in Go.",
				HTMLURL:     "https://github.com/gin-gonic/gin",
				Language:    "Go",
				Owner:       "gin-gonic",
				Stars:       78000,
				Forks:       8000,
				OpenIssues:  560,
			},
			"rust": {
				Name:        "ripgrep",
				FullName:    "BurntSushi/ripgrep",
				Description: "ripgrep recursively searches directories for a regex pattern.",
				HTMLURL:     "https://github.com/BurntSushi/ripgrep",
				Language:    "Rust",
				Owner:       "BurntSushi",
				Stars:       48000,
				Forks:       2000,
				OpenIssues:  120,
			},
		},
	}
}

// WithError makes every call fail with err.
func (m *MockSearchService) WithError(err error) *MockSearchService {
	m.err = err
	return m
}

// FindRandomRepository returns the demo repository for the language, or
// (nil, nil) for languages without demo data.
func (m *MockSearchService) FindRandomRepository(_ context.Context, language string) (*Repository, error) {
	if m.err != nil {
		return nil, m.err
	}
	repo, ok := m.repos[strings.ToLower(language)]
	if !ok {
		return nil, nil
	}
	return &repo, nil
}

// Compile-time interface check
var _ Service = (*MockSearchService)(nil)
