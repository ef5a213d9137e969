// Package llm implements resume field extraction on top of the Gemini API
// via langchaingo.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"

	"github.com/crewbase/recruiting-system/internal/core/domain"
)

// Long resumes are truncated before prompting; the relevant contact and
// skill information sits at the top of virtually every resume.
const maxPromptChars = 20000

const resumeExtractionPrompt = `
You are a resume data extraction agent. Analyze the resume text below and extract structured data.

### INSTRUCTIONS:
1. Extract the candidate's contact fields and categorized keywords.
2. Format the output as valid JSON only. Do not wrap the output in markdown code blocks.
3. If a piece of information is missing, use an empty string or empty array. Do not guess.

### OUTPUT SCHEMA:
{
  "contractor": {
    "full_name": "candidate's full name",
    "email": "email address",
    "phone": "phone number",
    "city": "city",
    "state": "state or region",
    "country": "country"
  },
  "keywords": {
    "skills": ["technical and soft skills"],
    "industries": ["industries the candidate worked in"],
    "certifications": ["certifications held"],
    "companies": ["employers mentioned"],
    "job titles": ["job titles held"]
  }
}

### RESUME TEXT:
%s
`

// Extractor calls Gemini to turn raw resume text into structured fields.
type Extractor struct {
	model  llms.Model
	logger zerolog.Logger
}

// NewExtractor initialises the Gemini client. The API key is required;
// without it resume parsing cannot work at all.
func NewExtractor(ctx context.Context, apiKey, model string, logger zerolog.Logger) (*Extractor, error) {
	if apiKey == "" {
		return nil, errors.New("llm: GEMINI_API_KEY is not set")
	}

	client, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("llm: create client: %w", err)
	}

	return &Extractor{model: client, logger: logger}, nil
}

// Extract prompts the model and decodes its strict-JSON answer.
func (e *Extractor) Extract(ctx context.Context, text string) (*domain.ParsedResume, error) {
	text = truncateToRuneBoundary(text, maxPromptChars)

	resp, err := llms.GenerateFromSinglePrompt(ctx, e.model, fmt.Sprintf(resumeExtractionPrompt, text))
	if err != nil {
		return nil, fmt.Errorf("llm: generate: %v: %w", err, domain.ErrUpstream)
	}

	var parsed domain.ParsedResume
	if err := json.Unmarshal([]byte(stripCodeFences(resp)), &parsed); err != nil {
		e.logger.Warn().Err(err).Msg("model returned non-JSON output")
		return nil, fmt.Errorf("llm: decode response: %w", err)
	}
	return &parsed, nil
}

// truncateToRuneBoundary cuts s to at most max bytes without splitting a
// multi-byte rune; the cut backs off to the start of the rune straddling
// the limit.
func truncateToRuneBoundary(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// stripCodeFences removes a markdown code fence the model sometimes adds
// despite the prompt's instruction.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
