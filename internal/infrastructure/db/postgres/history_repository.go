package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/crewbase/recruiting-system/internal/core/domain"
)

// HistoryRepository persists contractor timeline entries.
type HistoryRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

func (r *HistoryRepository) Insert(ctx context.Context, h *domain.ContractorHistory) error {
	row := historyRow{
		ID:           h.ID,
		ContractorID: h.ContractorID,
		Kind:         h.Kind,
		Note:         h.Note,
		ActorEmail:   h.ActorEmail,
		CreatedAt:    h.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("insert history: %w", err)
	}
	return nil
}

func (r *HistoryRepository) ListByContractor(ctx context.Context, contractorID string) ([]domain.ContractorHistory, error) {
	var rows []historyRow
	err := r.db.WithContext(ctx).
		Where("contractor_id = ?", contractorID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}

	entries := make([]domain.ContractorHistory, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, row.toDomain())
	}
	return entries, nil
}
