package search

// LanguagesListData is the response body for the language catalog.
type LanguagesListData struct {
	Languages []string `json:"languages" doc:"Selectable languages, in display order"`
	Count     int      `json:"count"     doc:"Number of languages"                    example:"21"`
}

// LanguagesListOutput is the response wrapper for GET /languages.
type LanguagesListOutput struct {
	Body LanguagesListData
}

// RandomRepositoryData is the response body for a random repository lookup.
// Found is false when the query matched nothing; Repository and Display are
// set only when Found is true.
type RandomRepositoryData struct {
	Found      bool        `json:"found"                doc:"Whether a repository was found"`
	Repository *Repository `json:"repository,omitempty" doc:"Raw repository fields"`
	Display    *Display    `json:"display,omitempty"    doc:"Presenter output ready for rendering"`
	Message    string      `json:"message,omitempty"    doc:"Status message when no repository was found"`
}

// RandomRepositoryOutput is the response wrapper for GET /repositories/random.
type RandomRepositoryOutput struct {
	Body RandomRepositoryData
}
