package ports

import (
	"context"

	"github.com/crewbase/recruiting-system/internal/core/domain"
)

// ListContractorsFilter carries all query parameters for listing contractors.
type ListContractorsFilter struct {
	Search     string   // optional: partial match on full_name or email
	KeywordIDs []string // optional: contractors carrying ALL of these keywords
	Available  *bool    // optional: filter by availability flag
	Flagged    *bool    // optional: filter by flagged status
	Page       int      // 1-based
	Limit      int      // max rows per page (capped at 100 by the service)
}

// ContractorRepository defines persistence operations for contractors.
type ContractorRepository interface {
	Create(ctx context.Context, c *domain.Contractor) error
	FindByID(ctx context.Context, id string) (*domain.Contractor, error)
	Update(ctx context.Context, c *domain.Contractor) error
	Delete(ctx context.Context, id string) error
	// List returns a page of contractors matching filter and the total count.
	List(ctx context.Context, filter ListContractorsFilter) ([]*domain.Contractor, int64, error)
}

// HistoryRepository persists contractor timeline entries.
type HistoryRepository interface {
	Insert(ctx context.Context, h *domain.ContractorHistory) error
	ListByContractor(ctx context.Context, contractorID string) ([]domain.ContractorHistory, error)
}

// TaskRepository persists contractor follow-up tasks.
type TaskRepository interface {
	Create(ctx context.Context, t *domain.ContractorTask) error
	FindByID(ctx context.Context, id string) (*domain.ContractorTask, error)
	Update(ctx context.Context, t *domain.ContractorTask) error
	Delete(ctx context.Context, id string) error
	ListByContractor(ctx context.Context, contractorID string) ([]domain.ContractorTask, error)
}
