package search

import (
	"context"
	"errors"
	"fmt"
)

// Service errors
var (
	ErrRateLimited = errors.New("search rate limit exceeded")
	ErrForbidden   = errors.New("search access forbidden")
	ErrValidation  = errors.New("search query rejected")
	ErrUpstream    = errors.New("search upstream error")
)

// UpstreamErrorKind classifies search backend failures.
type UpstreamErrorKind string

const (
	UpstreamErrorKindRateLimited UpstreamErrorKind = "rate_limited"
	UpstreamErrorKindForbidden   UpstreamErrorKind = "forbidden"
	UpstreamErrorKindValidation  UpstreamErrorKind = "validation"
	UpstreamErrorKindUpstream    UpstreamErrorKind = "upstream"
)

// UpstreamError carries the status and the normalized, user-presentable
// message for a non-success response from the search backend.
type UpstreamError struct {
	Kind    UpstreamErrorKind
	Status  int
	Message string
	cause   error
}

func (e *UpstreamError) Error() string {
	if e == nil {
		return "search upstream error"
	}
	return fmt.Sprintf("search upstream error (kind=%s status=%d): %s", e.Kind, e.Status, e.Message)
}

// Unwrap enables errors.Is/As against sentinel service errors.
func (e *UpstreamError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Repository is one search hit. Absent optional fields stay at their zero
// values; the presenter supplies display fallbacks.
type Repository struct {
	Name        string
	FullName    string
	Description string
	HTMLURL     string
	Language    string
	Owner       string
	Stars       int
	Forks       int
	OpenIssues  int
}

// Service defines the repository search operation. A nil repository with a
// nil error means the query matched nothing.
type Service interface {
	FindRandomRepository(ctx context.Context, language string) (*Repository, error)
}
