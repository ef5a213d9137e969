package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/crewbase/recruiting-system/internal/core/domain"
	"github.com/crewbase/recruiting-system/internal/core/ports"
)

const defaultSearchResults = 10

// SearchService runs categorized LinkedIn-style profile searches against the
// external web-search provider.
type SearchService struct {
	searcher ports.ProfileSearcher
	logger   zerolog.Logger
}

func NewSearchService(searcher ports.ProfileSearcher, logger zerolog.Logger) *SearchService {
	return &SearchService{searcher: searcher, logger: logger}
}

// SearchProfiles flattens the categorized filters into one keyword list and
// queries the provider. An empty filter set is a soft failure carried in the
// result envelope, not an error.
func (s *SearchService) SearchProfiles(ctx context.Context, filters ports.SearchFilters, numResults int) (*ports.ProfileSearchResult, error) {
	if numResults <= 0 {
		numResults = defaultSearchResults
	}

	var keywords []string
	var categories []string
	appendGroup := func(label string, values []string) {
		if len(values) == 0 {
			return
		}
		keywords = append(keywords, values...)
		categories = append(categories, fmt.Sprintf("%s: %s", label, strings.Join(values, ", ")))
	}
	appendGroup("Skills", filters.Skills)
	appendGroup("Industries", filters.Industries)
	appendGroup("Companies", filters.Companies)
	appendGroup("Certifications", filters.Certifications)
	appendGroup("Job Titles", filters.JobTitles)

	if len(keywords) == 0 {
		return &ports.ProfileSearchResult{
			Profiles:   nil,
			Categories: []string{},
			Error:      "No search keywords provided",
		}, nil
	}

	profiles, err := s.searcher.Search(ctx, keywords, numResults)
	if errors.Is(err, domain.ErrSearchNotConfigured) {
		return &ports.ProfileSearchResult{
			Profiles:    nil,
			SearchQuery: strings.Join(keywords, " "),
			Categories:  categories,
			Error:       "Profile search is not configured",
		}, nil
	}
	if err != nil {
		s.logger.Error().Err(err).Strs("keywords", keywords).Msg("profile search failed")
		return nil, err
	}

	return &ports.ProfileSearchResult{
		Profiles:     profiles,
		SearchQuery:  strings.Join(keywords, " "),
		Categories:   categories,
		TotalResults: len(profiles),
	}, nil
}
