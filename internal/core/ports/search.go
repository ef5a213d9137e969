package ports

import (
	"context"

	"github.com/crewbase/recruiting-system/internal/core/domain"
)

// ProfileSearcher queries the external web-search provider for public
// LinkedIn profiles matching the given keywords.
type ProfileSearcher interface {
	Search(ctx context.Context, keywords []string, numResults int) ([]domain.Profile, error)
}

// SearchFilters groups the keyword labels submitted per category. Field names
// follow the wire contract of the search endpoint.
type SearchFilters struct {
	Skills         []string
	Industries     []string
	Companies      []string
	Certifications []string
	JobTitles      []string
}

// ProfileSearchResult is the envelope returned by the search endpoint.
// Error carries soft failures (e.g. no keywords submitted) without failing
// the request.
type ProfileSearchResult struct {
	Profiles     []domain.Profile `json:"profiles"`
	SearchQuery  string           `json:"search_query"`
	Categories   []string         `json:"categories"`
	TotalResults int              `json:"total_results"`
	Error        string           `json:"error,omitempty"`
}

// ProfileSearchService runs categorized LinkedIn-style profile searches.
type ProfileSearchService interface {
	SearchProfiles(ctx context.Context, filters SearchFilters, numResults int) (*ProfileSearchResult, error)
}
