package ports

import (
	"context"

	"github.com/crewbase/recruiting-system/internal/core/domain"
)

// KeywordService resolves free-text labels into persisted keywords and
// exposes keyword lookups for the tagging UI.
type KeywordService interface {
	// Resolve finds or creates the keyword for (label, category). Resolving
	// the same trimmed, case-insensitive label twice returns the same id.
	Resolve(ctx context.Context, label string, category domain.KeywordCategory) (*domain.Keyword, error)

	// ResolveAll resolves every pending ref and passes persisted refs through,
	// preserving order.
	ResolveAll(ctx context.Context, refs []domain.KeywordRef) ([]string, error)

	Search(ctx context.Context, query string, category *domain.KeywordCategory, limit int) ([]domain.Keyword, error)

	// Usage reports contractor counts per keyword, served from cache when warm.
	Usage(ctx context.Context) ([]domain.KeywordUsage, error)
}

// CategorizedKeywordRefs maps each category to the refs submitted for it.
type CategorizedKeywordRefs map[domain.KeywordCategory][]domain.KeywordRef

// AssociationService maintains a contractor's keyword set.
type AssociationService interface {
	// ReplaceKeywords resolves pending refs and makes the contractor's keyword
	// set exactly the submitted one. Duplicate keyword ids are collapsed,
	// first occurrence winning.
	ReplaceKeywords(ctx context.Context, contractorID string, keywords CategorizedKeywordRefs) error

	// ListKeywords returns the contractor's keywords grouped by category.
	ListKeywords(ctx context.Context, contractorID string) (map[domain.KeywordCategory][]domain.Keyword, error)
}
