// Package search implements LinkedIn-style profile search on top of the
// Google Custom Search API.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/crewbase/recruiting-system/internal/core/domain"
)

const (
	cseEndpoint = "https://www.googleapis.com/customsearch/v1"
	// The Custom Search API returns at most 10 items per request.
	cseMaxResults = 10
	httpTimeout   = 15 * time.Second
)

// GoogleCSESearcher queries Google Custom Search restricted to public
// LinkedIn profile pages. If APIKey or CSEID is empty, Search returns
// domain.ErrSearchNotConfigured so the caller can degrade to a soft
// failure carried in the response envelope.
type GoogleCSESearcher struct {
	APIKey string
	CSEID  string
	client *http.Client
	logger zerolog.Logger
}

// NewGoogleCSESearcher constructs a searcher with a shared HTTP client.
func NewGoogleCSESearcher(apiKey, cseID string, logger zerolog.Logger) *GoogleCSESearcher {
	return &GoogleCSESearcher{
		APIKey: apiKey,
		CSEID:  cseID,
		client: &http.Client{Timeout: httpTimeout},
		logger: logger,
	}
}

// cseResponse mirrors the top-level Custom Search JSON response.
type cseResponse struct {
	Items []cseItem `json:"items"`
}

type cseItem struct {
	Title        string `json:"title"`
	Link         string `json:"link"`
	Snippet      string `json:"snippet"`
	DisplayLink  string `json:"displayLink"`
	FormattedURL string `json:"formattedUrl"`
}

// Search runs one `site:linkedin.com/in` query over the joined keywords.
func (s *GoogleCSESearcher) Search(ctx context.Context, keywords []string, numResults int) ([]domain.Profile, error) {
	if s.APIKey == "" || s.CSEID == "" {
		s.logger.Warn().Msg("GOOGLE_API_KEY / GOOGLE_CSE_ID not set, skipping profile search")
		return nil, domain.ErrSearchNotConfigured
	}

	if numResults <= 0 || numResults > cseMaxResults {
		numResults = cseMaxResults
	}

	query := strings.Join(keywords, " ")
	params := url.Values{}
	params.Set("key", s.APIKey)
	params.Set("cx", s.CSEID)
	params.Set("q", "site:linkedin.com/in "+query)
	params.Set("num", strconv.Itoa(numResults))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cseEndpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http GET: %v: %w", err, domain.ErrUpstream)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("custom search returned %d: %s: %w", resp.StatusCode, string(body), domain.ErrUpstream)
	}

	var apiResp cseResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}

	profiles := make([]domain.Profile, 0, len(apiResp.Items))
	for _, item := range apiResp.Items {
		profiles = append(profiles, domain.Profile{
			Title:           item.Title,
			Link:            item.Link,
			Snippet:         item.Snippet,
			DisplayLink:     item.DisplayLink,
			FormattedURL:    item.FormattedURL,
			Name:            nameFromTitle(item.Title),
			KeywordsMatched: keywords,
		})
	}
	return profiles, nil
}

// nameFromTitle extracts the person's name from a LinkedIn result title,
// which usually reads "Name | Headline" or "Name - Headline".
func nameFromTitle(title string) string {
	if name, _, found := strings.Cut(title, " | "); found {
		return strings.TrimSpace(name)
	}
	if name, _, found := strings.Cut(title, " - "); found {
		return strings.TrimSpace(name)
	}
	return strings.TrimSpace(title)
}
