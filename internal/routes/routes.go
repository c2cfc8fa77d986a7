// Package routes wires every API route into the huma router.
package routes

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/manseebhossain1/github-repository-finder/internal/catalog"
	searchhandler "github.com/manseebhossain1/github-repository-finder/internal/http/v1/search"
	searchsvc "github.com/manseebhossain1/github-repository-finder/internal/service/search"
)

// Register wires all HTTP routes into the provided API router.
func Register(api huma.API, cat *catalog.Catalog, searchService searchsvc.Service) {
	searchhandler.Register(api, cat, searchService)
}
