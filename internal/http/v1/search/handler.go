// Package search exposes the language catalog and random repository lookup
// over HTTP.
package search

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	"github.com/manseebhossain1/github-repository-finder/internal/catalog"
	"github.com/manseebhossain1/github-repository-finder/internal/finder"
	applog "github.com/manseebhossain1/github-repository-finder/internal/platform/logging"
	"github.com/manseebhossain1/github-repository-finder/internal/present"
	searchsvc "github.com/manseebhossain1/github-repository-finder/internal/service/search"
)

// Register wires search routes into the provided API router.
func Register(api huma.API, cat *catalog.Catalog, svc searchsvc.Service) {
	huma.Register(api, huma.Operation{
		OperationID: "list-languages",
		Method:      http.MethodGet,
		Path:        "/languages",
		Summary:     "List selectable languages",
		Description: "Returns the static language catalog in display order. May be empty.",
		Tags:        []string{"Search"},
	}, func(_ context.Context, _ *struct{}) (*LanguagesListOutput, error) {
		languages := cat.Languages()
		return &LanguagesListOutput{Body: LanguagesListData{
			Languages: languages,
			Count:     len(languages),
		}}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-random-repository",
		Method:      http.MethodGet,
		Path:        "/repositories/random",
		Summary:     "Fetch a random popular repository",
		Description: "Picks a random repository with at least 50 stars written in the given language.",
		Tags:        []string{"Search"},
	}, func(ctx context.Context, input *RandomRepositoryInput) (*RandomRepositoryOutput, error) {
		repo, err := svc.FindRandomRepository(ctx, input.Language)
		if err != nil {
			return nil, mapServiceError(ctx, err)
		}

		if repo == nil {
			return &RandomRepositoryOutput{Body: RandomRepositoryData{
				Found:   false,
				Message: finder.EmptyMessage(input.Language),
			}}, nil
		}

		display := present.Repository(repo)
		return &RandomRepositoryOutput{Body: RandomRepositoryData{
			Found:      true,
			Repository: toHTTPRepository(repo),
			Display:    toHTTPDisplay(display),
		}}, nil
	})
}

func mapServiceError(ctx context.Context, err error) error {
	var upstreamErr *searchsvc.UpstreamError
	if errors.As(err, &upstreamErr) {
		switch upstreamErr.Kind {
		case searchsvc.UpstreamErrorKindRateLimited:
			return huma.Error429TooManyRequests(upstreamErr.Message)
		case searchsvc.UpstreamErrorKindForbidden:
			return huma.Error403Forbidden(upstreamErr.Message)
		case searchsvc.UpstreamErrorKindValidation:
			return huma.Error400BadRequest(upstreamErr.Message)
		default:
			return huma.Error502BadGateway(upstreamErr.Message)
		}
	}

	applog.LogError(ctx, "search transport failure", err, zap.String("kind", "transport"))
	return huma.Error502BadGateway("search backend unreachable")
}

func toHTTPRepository(r *searchsvc.Repository) *Repository {
	return &Repository{
		Name:        r.Name,
		FullName:    r.FullName,
		Description: r.Description,
		HTMLURL:     r.HTMLURL,
		Language:    r.Language,
		Owner:       r.Owner,
		Stars:       r.Stars,
		Forks:       r.Forks,
		OpenIssues:  r.OpenIssues,
	}
}

func toHTTPDisplay(d present.DisplayModel) *Display {
	return &Display{
		Name:          d.Name,
		URL:           d.URL,
		Description:   d.Description,
		Stars:         d.Stars,
		Forks:         d.Forks,
		OpenIssues:    d.OpenIssues,
		LanguageLabel: d.LanguageLabel,
		OwnerLabel:    d.OwnerLabel,
	}
}
