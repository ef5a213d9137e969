package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/crewbase/recruiting-system/internal/core/domain"
)

// AssociationRepository manages the contractor_keywords join table.
type AssociationRepository struct {
	db *gorm.DB
}

func NewAssociationRepository(db *gorm.DB) *AssociationRepository {
	return &AssociationRepository{db: db}
}

func (r *AssociationRepository) ListByContractor(ctx context.Context, contractorID string) ([]domain.ContractorKeyword, error) {
	var rows []contractorKeywordRow
	err := r.db.WithContext(ctx).
		Where("contractor_id = ?", contractorID).
		Order("position asc").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list associations: %w", err)
	}

	links := make([]domain.ContractorKeyword, 0, len(rows))
	for _, row := range rows {
		links = append(links, domain.ContractorKeyword{
			ContractorID: row.ContractorID,
			KeywordID:    row.KeywordID,
			Note:         row.Note,
			Position:     row.Position,
		})
	}
	return links, nil
}

func (r *AssociationRepository) ListKeywordsByContractor(ctx context.Context, contractorID string) ([]domain.Keyword, error) {
	var rows []keywordRow
	err := r.db.WithContext(ctx).
		Table("keywords").
		Select("keywords.*").
		Joins("JOIN contractor_keywords ck ON ck.keyword_id = keywords.id").
		Where("ck.contractor_id = ?", contractorID).
		Order("ck.position asc").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list contractor keywords: %w", err)
	}

	keywords := make([]domain.Keyword, 0, len(rows))
	for _, row := range rows {
		keywords = append(keywords, row.toDomain())
	}
	return keywords, nil
}

// Replace makes the contractor's stored link set exactly links. Deletions
// and insertions are computed as a set difference and applied inside one
// transaction: links present in both the old and new set are never dropped,
// and a failure rolls the whole change back.
func (r *AssociationRepository) Replace(ctx context.Context, contractorID string, links []domain.ContractorKeyword) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current []contractorKeywordRow
		if err := tx.Where("contractor_id = ?", contractorID).Find(&current).Error; err != nil {
			return fmt.Errorf("load current links: %w", err)
		}

		wanted := make(map[string]domain.ContractorKeyword, len(links))
		for _, link := range links {
			wanted[link.KeywordID] = link
		}

		var removals []string
		existing := make(map[string]contractorKeywordRow, len(current))
		for _, row := range current {
			existing[row.KeywordID] = row
			if _, keep := wanted[row.KeywordID]; !keep {
				removals = append(removals, row.KeywordID)
			}
		}

		if len(removals) > 0 {
			err := tx.Where("contractor_id = ? AND keyword_id IN ?", contractorID, removals).
				Delete(&contractorKeywordRow{}).Error
			if err != nil {
				return fmt.Errorf("delete removed links: %w", err)
			}
		}

		var additions []contractorKeywordRow
		for _, link := range links {
			row, exists := existing[link.KeywordID]
			if !exists {
				additions = append(additions, contractorKeywordRow{
					ContractorID: contractorID,
					KeywordID:    link.KeywordID,
					Note:         link.Note,
					Position:     link.Position,
				})
				continue
			}
			// Survivor: refresh position and note only when they changed.
			if row.Position != link.Position || row.Note != link.Note {
				err := tx.Model(&contractorKeywordRow{}).
					Where("contractor_id = ? AND keyword_id = ?", contractorID, link.KeywordID).
					Updates(map[string]any{"position": link.Position, "note": link.Note}).Error
				if err != nil {
					return fmt.Errorf("update link position: %w", err)
				}
			}
		}

		if len(additions) > 0 {
			if err := tx.Create(&additions).Error; err != nil {
				return fmt.Errorf("insert new links: %w", err)
			}
		}

		return nil
	})
}
