package ports

import (
	"context"

	"github.com/crewbase/recruiting-system/internal/core/domain"
)

// KeywordRepository defines persistence operations for the keyword store.
type KeywordRepository interface {
	// FindByNormalized looks up a keyword by its normalized name and category.
	FindByNormalized(ctx context.Context, nameNormalized string, category domain.KeywordCategory) (*domain.Keyword, error)

	// CreateIfAbsent inserts the keyword unless a row with the same
	// (normalized name, category) already exists, in which case it is a no-op
	// and created is false. Implementations must make this atomic
	// (insert-on-conflict-do-nothing) so concurrent resolvers never create
	// duplicates.
	CreateIfAbsent(ctx context.Context, k *domain.Keyword) (created bool, err error)

	// Search returns keywords whose name contains query (case-insensitive),
	// optionally restricted to one category.
	Search(ctx context.Context, query string, category *domain.KeywordCategory, limit int) ([]domain.Keyword, error)

	// Usage returns, for every keyword referenced by at least one contractor,
	// the number of contractors carrying it.
	Usage(ctx context.Context) ([]domain.KeywordUsage, error)
}

// AssociationRepository manages the contractor↔keyword join table.
type AssociationRepository interface {
	// ListByContractor returns the contractor's links ordered by position.
	ListByContractor(ctx context.Context, contractorID string) ([]domain.ContractorKeyword, error)

	// ListKeywordsByContractor returns the contractor's keywords (joined
	// through the link table) ordered by link position.
	ListKeywordsByContractor(ctx context.Context, contractorID string) ([]domain.Keyword, error)

	// Replace makes the contractor's stored keyword set exactly links. The
	// implementation computes the set difference against the current rows and
	// applies deletions and insertions inside a single transaction, so links
	// present in both the old and new set are never dropped and reinserted.
	Replace(ctx context.Context, contractorID string, links []domain.ContractorKeyword) error
}
