// Package present maps a repository record onto the fixed set of display
// slots the UI renders. The binding of a DisplayModel to any particular UI
// toolkit is an external collaborator.
package present

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/manseebhossain1/github-repository-finder/internal/service/search"
)

// Fallbacks for absent optional fields.
const (
	fallbackName        = "Unknown repo"
	fallbackURL         = "#"
	fallbackDescription = "No description provided."
	unknownValue        = "(unknown)"
)

// DisplayModel holds the rendered display slots for one repository.
type DisplayModel struct {
	Name          string
	URL           string
	Description   string
	Stars         string
	Forks         string
	OpenIssues    string
	LanguageLabel string
	OwnerLabel    string
}

var printer = message.NewPrinter(language.AmericanEnglish)

// Repository maps a repository onto display slots. It is total: every absent
// field gets its fallback, counts are formatted with thousands separators.
func Repository(repo *search.Repository) DisplayModel {
	if repo == nil {
		repo = &search.Repository{}
	}

	name := repo.FullName
	if name == "" {
		name = repo.Name
	}
	if name == "" {
		name = fallbackName
	}

	url := repo.HTMLURL
	if url == "" {
		url = fallbackURL
	}

	description := repo.Description
	if description == "" {
		description = fallbackDescription
	}

	return DisplayModel{
		Name:          name,
		URL:           url,
		Description:   description,
		Stars:         formatCount(repo.Stars),
		Forks:         formatCount(repo.Forks),
		OpenIssues:    formatCount(repo.OpenIssues),
		LanguageLabel: labeled("Language", repo.Language),
		OwnerLabel:    labeled("Owner", repo.Owner),
	}
}

func formatCount(n int) string {
	return printer.Sprintf("%d", n)
}

func labeled(label, value string) string {
	if value == "" {
		value = unknownValue
	}
	return label + ": " + value
}
