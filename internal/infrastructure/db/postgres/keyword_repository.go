package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/crewbase/recruiting-system/internal/core/domain"
)

// KeywordRepository persists the keyword store.
type KeywordRepository struct {
	db *gorm.DB
}

func NewKeywordRepository(db *gorm.DB) *KeywordRepository {
	return &KeywordRepository{db: db}
}

func (r *KeywordRepository) FindByNormalized(ctx context.Context, nameNormalized string, category domain.KeywordCategory) (*domain.Keyword, error) {
	var row keywordRow
	err := r.db.WithContext(ctx).
		Where("name_normalized = ? AND category = ?", nameNormalized, string(category)).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrKeywordNotFound
		}
		return nil, fmt.Errorf("find keyword: %w", err)
	}
	k := row.toDomain()
	return &k, nil
}

// CreateIfAbsent inserts the keyword with ON CONFLICT DO NOTHING on the
// identity index, closing the check-then-insert race between concurrent
// resolvers.
func (r *KeywordRepository) CreateIfAbsent(ctx context.Context, k *domain.Keyword) (bool, error) {
	row := keywordRowFrom(k)
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name_normalized"}, {Name: "category"}},
			DoNothing: true,
		}).
		Create(&row)
	if res.Error != nil {
		return false, fmt.Errorf("insert keyword: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *KeywordRepository) Search(ctx context.Context, query string, category *domain.KeywordCategory, limit int) ([]domain.Keyword, error) {
	q := r.db.WithContext(ctx).Model(&keywordRow{})
	if query != "" {
		q = q.Where("name_normalized LIKE ? ESCAPE '\\'", "%"+escapeLike(strings.ToLower(query))+"%")
	}
	if category != nil {
		q = q.Where("category = ?", string(*category))
	}

	var rows []keywordRow
	if err := q.Order("name asc").Limit(limit).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("search keywords: %w", err)
	}

	keywords := make([]domain.Keyword, 0, len(rows))
	for _, row := range rows {
		keywords = append(keywords, row.toDomain())
	}
	return keywords, nil
}

// escapeLike neutralizes LIKE metacharacters in user input so a search for
// "100%" matches the literal string and not every row.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	return strings.ReplaceAll(s, "_", `\_`)
}

// Usage aggregates contractor counts per keyword from the join table.
func (r *KeywordRepository) Usage(ctx context.Context) ([]domain.KeywordUsage, error) {
	var usage []domain.KeywordUsage
	err := r.db.WithContext(ctx).
		Table("contractor_keywords").
		Select("keyword_id, COUNT(contractor_id) AS contractor_count").
		Group("keyword_id").
		Scan(&usage).Error
	if err != nil {
		return nil, fmt.Errorf("keyword usage: %w", err)
	}
	return usage, nil
}
