package search

// RandomRepositoryInput defines query parameters for the random repository
// lookup.
type RandomRepositoryInput struct {
	Language string `query:"language" required:"true" doc:"Language as recognized by the search backend" example:"Go" minLength:"1" maxLength:"64"`
}
