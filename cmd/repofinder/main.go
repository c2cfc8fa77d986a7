package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/manseebhossain1/github-repository-finder/internal/catalog"
	"github.com/manseebhossain1/github-repository-finder/internal/config"
	"github.com/manseebhossain1/github-repository-finder/internal/finder"
	"github.com/manseebhossain1/github-repository-finder/internal/present"
	"github.com/manseebhossain1/github-repository-finder/internal/service/search"
)

func main() {
	root := &cobra.Command{
		Use:   "repofinder",
		Short: "Fetch a random popular repository for a language",
	}

	root.AddCommand(randomCmd(), languagesCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newSearchClient(cfg *config.Config) *search.Client {
	opts := []search.Option{}
	if cfg.GitHubToken != "" {
		opts = append(opts, search.WithToken(cfg.GitHubToken))
	}
	if cfg.GitHubAPIURL != "" {
		opts = append(opts, search.WithBaseURL(cfg.GitHubAPIURL))
	}
	return search.NewClient(http.DefaultClient, opts...)
}

func randomCmd() *cobra.Command {
	var language string

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Fetch and print one random repository",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load()
			controller := finder.New(newSearchClient(cfg))

			cycle := controller.Find(cmd.Context(), language)
			select {
			case <-cycle.Done():
			case <-cmd.Context().Done():
				return cmd.Context().Err()
			}

			snap := controller.Snapshot()
			switch snap.State {
			case finder.StatePopulated:
				printRepository(snap.Repo)
				return nil
			case finder.StateEmpty:
				fmt.Println(snap.Message)
				return nil
			case finder.StateErrored:
				// Cobra prefixes returned errors with "Error: " itself.
				return errors.New(strings.TrimPrefix(snap.Message, "Error: "))
			default:
				// Canceled before settling; nothing to report.
				return nil
			}
		},
	}
	cmd.Flags().StringVarP(&language, "language", "l", "Go", "Language to search for")
	return cmd
}

func languagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the selectable languages in display order",
		Run: func(_ *cobra.Command, _ []string) {
			for _, name := range catalog.Default().Languages() {
				fmt.Println(name)
			}
		},
	}
}

func printRepository(repo *search.Repository) {
	display := present.Repository(repo)
	fmt.Println(display.Name)
	fmt.Println(display.URL)
	fmt.Println(display.Description)
	fmt.Printf("Stars: %s  Forks: %s  Open issues: %s\n", display.Stars, display.Forks, display.OpenIssues)
	fmt.Println(display.LanguageLabel)
	fmt.Println(display.OwnerLabel)
}
