package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/crewbase/recruiting-system/internal/core/domain"
	"github.com/crewbase/recruiting-system/internal/core/ports"
)

// HistoryService persists contractor timeline entries. Its Record method is
// the consumer side of the async dispatcher; ListHistory serves reads.
type HistoryService struct {
	repo   ports.HistoryRepository
	logger zerolog.Logger
}

func NewHistoryService(repo ports.HistoryRepository, logger zerolog.Logger) *HistoryService {
	return &HistoryService{repo: repo, logger: logger}
}

// Record writes one timeline entry.
func (s *HistoryService) Record(ctx context.Context, entry ports.HistoryEntryInput) error {
	if entry.ContractorID == "" || entry.Kind == "" {
		return fmt.Errorf("record history: contractor id and kind are required")
	}

	h := &domain.ContractorHistory{
		ID:           uuid.NewString(),
		ContractorID: entry.ContractorID,
		Kind:         entry.Kind,
		Note:         entry.Note,
		ActorEmail:   entry.ActorEmail,
		CreatedAt:    entry.OccurredAt,
	}
	if err := s.repo.Insert(ctx, h); err != nil {
		return fmt.Errorf("record history: %w", err)
	}

	s.logger.Debug().Str("contractor_id", entry.ContractorID).Str("kind", entry.Kind).Msg("history entry recorded")
	return nil
}

func (s *HistoryService) ListHistory(ctx context.Context, contractorID string) ([]domain.ContractorHistory, error) {
	return s.repo.ListByContractor(ctx, contractorID)
}
