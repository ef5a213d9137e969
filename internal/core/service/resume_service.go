package service

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/crewbase/recruiting-system/internal/api/metrics"
	"github.com/crewbase/recruiting-system/internal/core/domain"
	"github.com/crewbase/recruiting-system/internal/core/ports"
)

const (
	resumeBucket    = "resumes"
	signedURLExpiry = 30 * 24 * time.Hour
)

var allowedResumeExtensions = map[string]struct{}{
	".pdf":  {},
	".docx": {},
	".txt":  {},
}

// ResumeService stores uploaded resumes and orchestrates the parse pipeline:
// stored file → text extraction → LLM field extraction.
type ResumeService struct {
	store     ports.ObjectStore
	signer    ports.URLSigner
	text      ports.TextExtractor
	extractor ports.ResumeExtractor
	logger    zerolog.Logger
}

func NewResumeService(
	store ports.ObjectStore,
	signer ports.URLSigner,
	text ports.TextExtractor,
	extractor ports.ResumeExtractor,
	logger zerolog.Logger,
) *ResumeService {
	return &ResumeService{store: store, signer: signer, text: text, extractor: extractor, logger: logger}
}

// Upload stores the file write-once under a random key that keeps the
// original extension, and returns a 30-day signed URL plus the public URL.
func (s *ResumeService) Upload(ctx context.Context, input ports.UploadResumeInput) (*ports.UploadResumeResult, error) {
	if len(input.Content) == 0 {
		return nil, domain.ErrEmptyDocument
	}
	ext := strings.ToLower(path.Ext(input.Filename))
	if _, ok := allowedResumeExtensions[ext]; !ok {
		return nil, domain.ErrUnsupportedDocument
	}

	key := uuid.NewString() + ext
	if err := s.store.Put(ctx, resumeBucket, key, input.Content); err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("resume upload failed")
		return nil, err
	}

	signed, err := s.signer.Sign(resumeBucket, key, signedURLExpiry)
	if err != nil {
		return nil, fmt.Errorf("sign resume url: %w", err)
	}

	s.logger.Info().Str("bucket", resumeBucket).Str("key", key).Int("bytes", len(input.Content)).Msg("resume stored")

	return &ports.UploadResumeResult{
		Bucket:    resumeBucket,
		Path:      key,
		SignedURL: signed,
		PublicURL: s.store.PublicURL(resumeBucket, key),
		ExpiresAt: time.Now().UTC().Add(signedURLExpiry),
	}, nil
}

// Parse accepts either pre-extracted text or a stored-file reference and
// returns the structured extraction. domain.ErrEmptyDocument marks the soft
// failure where nothing usable could be extracted.
func (s *ResumeService) Parse(ctx context.Context, input ports.ParseResumeInput) (*domain.ParsedResume, error) {
	text := input.Text
	if text == "" {
		if input.Path == "" {
			return nil, domain.ErrEmptyDocument
		}
		bucket := input.Bucket
		if bucket == "" {
			bucket = resumeBucket
		}
		data, err := s.store.Get(ctx, bucket, input.Path)
		if err != nil {
			return nil, err
		}
		text, err = s.text.Text(input.Path, data)
		if err != nil {
			metrics.ResumesParsedTotal.WithLabelValues("extract_failed").Inc()
			return nil, err
		}
	}

	if strings.TrimSpace(text) == "" {
		metrics.ResumesParsedTotal.WithLabelValues("empty").Inc()
		return nil, domain.ErrEmptyDocument
	}

	parsed, err := s.extractor.Extract(ctx, text)
	if err != nil {
		metrics.ResumesParsedTotal.WithLabelValues("llm_failed").Inc()
		s.logger.Error().Err(err).Msg("resume extraction failed")
		return nil, err
	}
	if parsed.Empty() {
		metrics.ResumesParsedTotal.WithLabelValues("empty").Inc()
		return nil, domain.ErrEmptyDocument
	}

	metrics.ResumesParsedTotal.WithLabelValues("ok").Inc()
	return parsed, nil
}

// Open resolves a signed token and returns the stored object for download.
func (s *ResumeService) Open(ctx context.Context, token string) (string, []byte, error) {
	bucket, key, err := s.signer.Verify(token)
	if err != nil {
		return "", nil, err
	}
	data, err := s.store.Get(ctx, bucket, key)
	if err != nil {
		return "", nil, err
	}
	return key, data, nil
}
