// Package search finds a random, reasonably popular repository for a
// language via the GitHub search API.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	applog "github.com/manseebhossain1/github-repository-finder/internal/platform/logging"
	"github.com/manseebhossain1/github-repository-finder/internal/sampler"
)

const (
	defaultBaseURL = "https://api.github.com"
	userAgent      = "github-repository-finder"
	apiVersion     = "2022-11-28"
	acceptHeader   = "application/vnd.github+json"

	minStars = 50
	pageSize = 100
	// The search backend only exposes the first ~1000 matches, so page
	// selection must stay inside that window.
	maxWindowPages = 10
)

// Client implements Service using the GitHub search API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (useful for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithToken sets the Bearer token for authenticated requests. Without a
// token requests proceed unauthenticated against the lower rate limit.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// NewClient creates a new search client.
func NewClient(httpClient *http.Client, opts ...Option) *Client {
	c := &Client{
		httpClient: httpClient,
		baseURL:    defaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Wire types (snake_case JSON tags matching the search API).

type searchOwner struct {
	Login string `json:"login"`
}

type searchItem struct {
	Name        string       `json:"name"`
	FullName    string       `json:"full_name"`
	Description string       `json:"description"`
	HTMLURL     string       `json:"html_url"`
	Language    string       `json:"language"`
	Stars       int          `json:"stargazers_count"`
	Forks       int          `json:"forks_count"`
	OpenIssues  int          `json:"open_issues_count"`
	Owner       *searchOwner `json:"owner"`
}

type resultPage struct {
	TotalCount int          `json:"total_count"`
	Items      []searchItem `json:"items"`
}

// FindRandomRepository runs one fetch cycle: count probe, random page within
// the accessible window, random item from that page. It returns (nil, nil)
// when the query matches nothing.
func (c *Client) FindRandomRepository(ctx context.Context, language string) (*Repository, error) {
	query := fmt.Sprintf("language:%s stars:>=%d archived:false", language, minStars)

	total, err := c.countMatches(ctx, query)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return nil, nil
	}

	page := sampler.UniformInt(1, maxPages(total))
	applog.LogInfo(ctx, "search page selected",
		zap.String("language", language),
		zap.Int("totalCount", total),
		zap.Int("page", page),
	)

	items, err := c.fetchPage(ctx, query, page)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}

	picked := items[sampler.UniformInt(0, len(items)-1)]
	repo := toRepository(picked)
	return &repo, nil
}

// countMatches issues the count probe with the smallest allowed page size.
func (c *Client) countMatches(ctx context.Context, query string) (int, error) {
	page, err := c.search(ctx, url.Values{
		"q":        {query},
		"per_page": {"1"},
	})
	if err != nil {
		return 0, err
	}
	return page.TotalCount, nil
}

// fetchPage retrieves one full page sorted by stargazers descending.
func (c *Client) fetchPage(ctx context.Context, query string, page int) ([]searchItem, error) {
	result, err := c.search(ctx, url.Values{
		"q":        {query},
		"per_page": {strconv.Itoa(pageSize)},
		"page":     {strconv.Itoa(page)},
		"sort":     {"stars"},
		"order":    {"desc"},
	})
	if err != nil {
		return nil, err
	}
	return result.Items, nil
}

func (c *Client) search(ctx context.Context, query url.Values) (*resultPage, error) {
	u := c.baseURL + "/search/repositories?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
	req.Header.Set("User-Agent", userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("searching repositories: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		upstreamErr := normalizeError(resp)
		logUpstreamError(ctx, upstreamErr, resp)
		return nil, upstreamErr
	}

	var page resultPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}
	return &page, nil
}

// maxPages bounds page selection to the backend's accessible result window.
func maxPages(total int) int {
	pages := (total + pageSize - 1) / pageSize
	if pages > maxWindowPages {
		return maxWindowPages
	}
	return pages
}

func toRepository(item searchItem) Repository {
	owner := ""
	if item.Owner != nil {
		owner = item.Owner.Login
	}
	return Repository{
		Name:        item.Name,
		FullName:    item.FullName,
		Description: item.Description,
		HTMLURL:     item.HTMLURL,
		Language:    item.Language,
		Owner:       owner,
		Stars:       item.Stars,
		Forks:       item.Forks,
		OpenIssues:  item.OpenIssues,
	}
}

func logUpstreamError(ctx context.Context, err *UpstreamError, resp *http.Response) {
	fields := []zap.Field{
		zap.Int("status", err.Status),
		zap.String("kind", string(err.Kind)),
	}
	if err.Kind == UpstreamErrorKindRateLimited {
		fields = append(fields,
			zap.String("X-RateLimit-Remaining", resp.Header.Get("X-RateLimit-Remaining")),
			zap.String("X-RateLimit-Reset", resp.Header.Get("X-RateLimit-Reset")),
		)
	}
	applog.LogWarn(ctx, "search request failed", fields...)
}

// Compile-time interface check
var _ Service = (*Client)(nil)
