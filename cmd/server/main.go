package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/manseebhossain1/github-repository-finder/internal/catalog"
	"github.com/manseebhossain1/github-repository-finder/internal/config"
	"github.com/manseebhossain1/github-repository-finder/internal/http/health"
	appmiddleware "github.com/manseebhossain1/github-repository-finder/internal/middleware"
	"github.com/manseebhossain1/github-repository-finder/internal/platform/logging"
	"github.com/manseebhossain1/github-repository-finder/internal/respond"
	"github.com/manseebhossain1/github-repository-finder/internal/routes"
	"github.com/manseebhossain1/github-repository-finder/internal/service/search"
	"github.com/manseebhossain1/github-repository-finder/web"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

func main() {
	defer func() {
		if err := logging.Sync(); err != nil {
			logging.LogError(context.Background(), "logger sync error", err)
		}
	}()
	if err := logging.Err(); err != nil {
		logging.LogError(context.Background(), "logger init error", err)
	}

	cfg := config.Load()

	searchOpts := []search.Option{}
	if cfg.GitHubToken != "" {
		searchOpts = append(searchOpts, search.WithToken(cfg.GitHubToken))
	}
	if cfg.GitHubAPIURL != "" {
		searchOpts = append(searchOpts, search.WithBaseURL(cfg.GitHubAPIURL))
	}
	searchService := search.NewClient(http.DefaultClient, searchOpts...)
	languageCatalog := catalog.Default()

	respond.Install()
	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	// Base middleware stack
	router.Use(
		appmiddleware.Vary(),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		chimiddleware.RealIP,
		// All endpoints are GET; a small cap is plenty.
		chimiddleware.RequestSize(1<<20), // 1 MB limit
		logging.RequestLogger(),
		logging.AccessLogger(),
		respond.Recoverer(),
	)

	// Browser UI
	router.Get("/", web.IndexHandler())
	router.Handle("/static/*", web.AssetHandler())
	router.Get("/healthz", health.Handler)

	// JSON API
	router.Route("/api/v1", func(r chi.Router) {
		apiCfg := huma.DefaultConfig("Repository Finder API", Version)
		apiCfg.DocsPath = "/api-docs"
		apiCfg.Servers = []*huma.Server{{URL: "/api/v1"}}
		api := humachi.New(r, apiCfg)
		routes.Register(api, languageCatalog, searchService)
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10, // 64 KB
	}

	listenErr := make(chan error, 1)
	go func() {
		logging.LogInfo(context.Background(), "server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			listenErr <- err
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-listenErr:
		logging.LogError(context.Background(), "listen failed", err, zap.String("addr", srv.Addr))
		os.Exit(1)
	case <-stop:
		logging.LogInfo(context.Background(), "shutdown signal received")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logging.LogError(ctx, "server shutdown error", err)
	}
	logging.LogInfo(context.Background(), "server exited")
}
