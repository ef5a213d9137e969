package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/crewbase/recruiting-system/internal/api/metrics"
	"github.com/crewbase/recruiting-system/internal/core/domain"
	"github.com/crewbase/recruiting-system/internal/core/ports"
)

const defaultSearchLimit = 20

// UsageCache abstracts the keyword-usage cache (Redis).
type UsageCache interface {
	Get(ctx context.Context) ([]domain.KeywordUsage, bool, error)
	Set(ctx context.Context, usage []domain.KeywordUsage) error
	Invalidate(ctx context.Context) error
}

// KeywordService implements find-or-create keyword resolution.
type KeywordService struct {
	repo   ports.KeywordRepository
	cache  UsageCache
	logger zerolog.Logger
}

func NewKeywordService(repo ports.KeywordRepository, cache UsageCache, logger zerolog.Logger) *KeywordService {
	return &KeywordService{repo: repo, cache: cache, logger: logger}
}

// Resolve finds or creates the keyword for (label, category). The lookup is
// case-insensitive on the trimmed label; the stored display name keeps the
// casing of the first insertion. Creation is an atomic upsert followed by a
// re-select, so a concurrent resolver racing on the same label yields the
// winner's row for both callers.
func (s *KeywordService) Resolve(ctx context.Context, label string, category domain.KeywordCategory) (*domain.Keyword, error) {
	trimmed := strings.TrimSpace(label)
	if trimmed == "" {
		return nil, domain.ErrInvalidKeyword
	}
	if !category.IsValid() {
		return nil, domain.ErrInvalidCategory
	}

	normalized := domain.NormalizeKeyword(trimmed)

	existing, err := s.repo.FindByNormalized(ctx, normalized, category)
	if err == nil {
		metrics.KeywordsResolvedTotal.WithLabelValues(string(category), "hit").Inc()
		return existing, nil
	}
	if !errors.Is(err, domain.ErrKeywordNotFound) {
		return nil, err
	}

	keyword := &domain.Keyword{
		ID:             uuid.NewString(),
		Name:           trimmed,
		NameNormalized: normalized,
		Category:       category,
		InsertedAt:     time.Now().UTC(),
	}

	created, err := s.repo.CreateIfAbsent(ctx, keyword)
	if err != nil {
		s.logger.Error().Err(err).Str("label", trimmed).Str("category", string(category)).Msg("keyword insert failed")
		return nil, err
	}
	if created {
		metrics.KeywordsCreatedTotal.WithLabelValues(string(category)).Inc()
		s.logger.Info().Str("keyword_id", keyword.ID).Str("name", keyword.Name).Str("category", string(category)).Msg("keyword created")
	}

	// Re-select regardless of who won the insert race.
	resolved, err := s.repo.FindByNormalized(ctx, normalized, category)
	if err != nil {
		return nil, err
	}
	metrics.KeywordsResolvedTotal.WithLabelValues(string(category), "created").Inc()
	return resolved, nil
}

// ResolveAll resolves pending refs and passes persisted ids through,
// preserving submission order.
func (s *KeywordService) ResolveAll(ctx context.Context, refs []domain.KeywordRef) ([]string, error) {
	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		if !ref.Pending() {
			ids = append(ids, ref.ID)
			continue
		}
		keyword, err := s.Resolve(ctx, ref.Label, ref.Category)
		if err != nil {
			return nil, err
		}
		ids = append(ids, keyword.ID)
	}
	return ids, nil
}

func (s *KeywordService) Search(ctx context.Context, query string, category *domain.KeywordCategory, limit int) ([]domain.Keyword, error) {
	if category != nil && !category.IsValid() {
		return nil, domain.ErrInvalidCategory
	}
	if limit <= 0 || limit > 100 {
		limit = defaultSearchLimit
	}
	return s.repo.Search(ctx, strings.TrimSpace(query), category, limit)
}

// Usage returns contractor counts per keyword, served from the cache when
// warm. Cache failures degrade to a direct database read.
func (s *KeywordService) Usage(ctx context.Context) ([]domain.KeywordUsage, error) {
	cached, ok, err := s.cache.Get(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("usage cache read failed, falling back to database")
	} else if ok {
		metrics.UsageCacheTotal.WithLabelValues("hit").Inc()
		return cached, nil
	} else {
		metrics.UsageCacheTotal.WithLabelValues("miss").Inc()
	}

	usage, err := s.repo.Usage(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, usage); err != nil {
		s.logger.Warn().Err(err).Msg("usage cache write failed")
	}
	return usage, nil
}
