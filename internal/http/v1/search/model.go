package search

// Repository carries the raw fields of a search hit.
type Repository struct {
	Name        string `json:"name"        doc:"Repository name"                   example:"ripgrep"`
	FullName    string `json:"fullName"    doc:"Full repository name (owner/repo)" example:"BurntSushi/ripgrep"`
	Description string `json:"description" doc:"Repository description"`
	HTMLURL     string `json:"htmlUrl"     doc:"GitHub repository URL"             example:"https://github.com/BurntSushi/ripgrep"`
	Language    string `json:"language"    doc:"Primary language"                  example:"Rust"`
	Owner       string `json:"owner"       doc:"Owner login"                       example:"BurntSushi"`
	Stars       int    `json:"stars"       doc:"Stargazer count"                   example:"48000"`
	Forks       int    `json:"forks"       doc:"Fork count"                        example:"2000"`
	OpenIssues  int    `json:"openIssues"  doc:"Open issue count"                  example:"120"`
}

// Display holds the presenter's rendered slots, fallbacks applied and counts
// formatted with thousands separators.
type Display struct {
	Name          string `json:"name"          doc:"Display name"              example:"BurntSushi/ripgrep"`
	URL           string `json:"url"           doc:"Link target"               example:"https://github.com/BurntSushi/ripgrep"`
	Description   string `json:"description"   doc:"Description with fallback" example:"No description provided."`
	Stars         string `json:"stars"         doc:"Formatted stargazer count" example:"48,000"`
	Forks         string `json:"forks"         doc:"Formatted fork count"      example:"2,000"`
	OpenIssues    string `json:"openIssues"    doc:"Formatted open issues"     example:"120"`
	LanguageLabel string `json:"languageLabel" doc:"Language chip"             example:"Language: Rust"`
	OwnerLabel    string `json:"ownerLabel"    doc:"Owner chip"                example:"Owner: BurntSushi"`
}
