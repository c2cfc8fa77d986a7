// Package catalog holds the static, ordered list of languages the UI offers.
package catalog

// Catalog is an immutable ordered list of language names as recognized by
// the search backend.
type Catalog struct {
	languages []string
}

// defaultLanguages mirrors the selection the UI has always offered, most
// popular first.
var defaultLanguages = []string{
	"JavaScript",
	"TypeScript",
	"Python",
	"Java",
	"Go",
	"Rust",
	"C",
	"C++",
	"C#",
	"Ruby",
	"PHP",
	"Swift",
	"Kotlin",
	"Scala",
	"Dart",
	"Elixir",
	"Haskell",
	"Lua",
	"Shell",
	"HTML",
	"CSS",
}

// New creates a catalog from the supplied ordered names. An empty catalog is
// valid; the UI renders zero options.
func New(languages ...string) *Catalog {
	copied := make([]string, len(languages))
	copy(copied, languages)
	return &Catalog{languages: copied}
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return New(defaultLanguages...)
}

// Languages returns the catalog entries in order. The returned slice is a
// copy and is never nil.
func (c *Catalog) Languages() []string {
	out := make([]string, len(c.languages))
	copy(out, c.languages)
	return out
}

// Len reports the number of entries.
func (c *Catalog) Len() int {
	return len(c.languages)
}
