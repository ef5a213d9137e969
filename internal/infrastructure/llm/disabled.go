package llm

import (
	"context"
	"errors"

	"github.com/crewbase/recruiting-system/internal/core/domain"
)

// ErrNotConfigured is returned for every extraction when the service runs
// without a Gemini API key.
var ErrNotConfigured = errors.New("llm: resume extraction is not configured")

// Disabled is the extractor used when no API key is configured: the rest of
// the API stays usable, and parse requests fail with a clear message.
type Disabled struct{}

func (Disabled) Extract(context.Context, string) (*domain.ParsedResume, error) {
	return nil, ErrNotConfigured
}
