package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/crewbase/recruiting-system/internal/core/domain"
	"github.com/crewbase/recruiting-system/internal/core/ports"
)

// ContractorRepository persists contractor records.
type ContractorRepository struct {
	db *gorm.DB
}

func NewContractorRepository(db *gorm.DB) *ContractorRepository {
	return &ContractorRepository{db: db}
}

func (r *ContractorRepository) Create(ctx context.Context, c *domain.Contractor) error {
	row := contractorRowFrom(c)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("insert contractor: %w", err)
	}
	return nil
}

func (r *ContractorRepository) FindByID(ctx context.Context, id string) (*domain.Contractor, error) {
	var row contractorRow
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrContractorNotFound
		}
		return nil, fmt.Errorf("find contractor: %w", err)
	}
	return row.toDomain(), nil
}

func (r *ContractorRepository) Update(ctx context.Context, c *domain.Contractor) error {
	row := contractorRowFrom(c)
	res := r.db.WithContext(ctx).Model(&contractorRow{}).Where("id = ?", c.ID).Updates(&row)
	if res.Error != nil {
		return fmt.Errorf("update contractor: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrContractorNotFound
	}
	return nil
}

// Delete removes the contractor and its dependent rows. The join, history
// and task tables are cleared in the same transaction so no orphans remain.
func (r *ContractorRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("contractor_id = ?", id).Delete(&contractorKeywordRow{}).Error; err != nil {
			return fmt.Errorf("delete contractor keywords: %w", err)
		}
		if err := tx.Where("contractor_id = ?", id).Delete(&historyRow{}).Error; err != nil {
			return fmt.Errorf("delete contractor history: %w", err)
		}
		if err := tx.Where("contractor_id = ?", id).Delete(&taskRow{}).Error; err != nil {
			return fmt.Errorf("delete contractor tasks: %w", err)
		}

		res := tx.Where("id = ?", id).Delete(&contractorRow{})
		if res.Error != nil {
			return fmt.Errorf("delete contractor: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrContractorNotFound
		}
		return nil
	})
}

// List returns a page of contractors matching filter and the total count.
// The keyword filter matches contractors carrying ALL of the given keywords.
func (r *ContractorRepository) List(ctx context.Context, filter ports.ListContractorsFilter) ([]*domain.Contractor, int64, error) {
	base := r.db.WithContext(ctx).Model(&contractorRow{})

	if filter.Search != "" {
		needle := "%" + strings.ToLower(filter.Search) + "%"
		base = base.Where("LOWER(full_name) LIKE ? OR LOWER(email) LIKE ?", needle, needle)
	}
	if filter.Available != nil {
		base = base.Where("available = ?", *filter.Available)
	}
	if filter.Flagged != nil {
		base = base.Where("flagged = ?", *filter.Flagged)
	}
	if len(filter.KeywordIDs) > 0 {
		base = base.
			Joins("JOIN contractor_keywords ck ON ck.contractor_id = contractors.id").
			Where("ck.keyword_id IN ?", filter.KeywordIDs).
			Group("contractors.id").
			Having("COUNT(DISTINCT ck.keyword_id) = ?", len(filter.KeywordIDs))
	}

	var total int64
	countQuery := base.Session(&gorm.Session{}).Select("contractors.id")
	if err := r.db.WithContext(ctx).Table("(?) AS matched", countQuery).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count contractors: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	if offset < 0 {
		offset = 0
	}

	var rows []contractorRow
	err := base.Session(&gorm.Session{}).
		Select("contractors.*").
		Order("created_at DESC").
		Offset(offset).
		Limit(filter.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list contractors: %w", err)
	}

	contractors := make([]*domain.Contractor, 0, len(rows))
	for _, row := range rows {
		contractors = append(contractors, row.toDomain())
	}
	return contractors, total, nil
}
