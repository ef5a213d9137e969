package domain

import "errors"

// ErrSearchNotConfigured signals that the web-search provider has no
// credentials; callers degrade to a soft failure instead of a 5xx.
var ErrSearchNotConfigured = errors.New("profile search is not configured")

// Profile is one LinkedIn-style search hit returned by the external
// web-search provider.
type Profile struct {
	Title           string   `json:"title"`
	Link            string   `json:"link"`
	Snippet         string   `json:"snippet"`
	DisplayLink     string   `json:"displayLink"`
	FormattedURL    string   `json:"formattedUrl"`
	Name            string   `json:"name"`
	KeywordsMatched []string `json:"keywords_matched"`
}
