package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/crewbase/recruiting-system/internal/core/domain"
	"github.com/crewbase/recruiting-system/internal/core/ports"
)

// AssociationService maintains the many-to-many links between contractors
// and keywords.
type AssociationService struct {
	associations ports.AssociationRepository
	contractors  ports.ContractorRepository
	keywords     ports.KeywordService
	cache        UsageCache
	history      ports.HistoryRecorder
	logger       zerolog.Logger
}

func NewAssociationService(
	associations ports.AssociationRepository,
	contractors ports.ContractorRepository,
	keywords ports.KeywordService,
	cache UsageCache,
	history ports.HistoryRecorder,
	logger zerolog.Logger,
) *AssociationService {
	return &AssociationService{
		associations: associations,
		contractors:  contractors,
		keywords:     keywords,
		cache:        cache,
		history:      history,
		logger:       logger,
	}
}

// ReplaceKeywords makes the contractor's stored keyword set exactly the
// submitted one. Pending refs are resolved first; duplicate keyword ids are
// collapsed with the first occurrence winning. The repository applies the
// change as a set-difference inside one transaction, so links present in
// both the old and new set survive untouched and a crash cannot leave the
// contractor with an empty set.
func (s *AssociationService) ReplaceKeywords(ctx context.Context, contractorID string, keywords ports.CategorizedKeywordRefs) error {
	if _, err := s.contractors.FindByID(ctx, contractorID); err != nil {
		return err
	}

	links, err := s.resolveLinks(ctx, contractorID, keywords)
	if err != nil {
		return err
	}

	if err := s.associations.Replace(ctx, contractorID, links); err != nil {
		s.logger.Error().Err(err).Str("contractor_id", contractorID).Msg("keyword replace failed")
		return err
	}

	// Usage counts changed; drop the cached report.
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("usage cache invalidation failed")
	}

	if err := s.history.Record(ctx, ports.HistoryEntryInput{
		ContractorID: contractorID,
		Kind:         domain.HistoryKeywordsSet,
		OccurredAt:   time.Now().UTC(),
	}); err != nil {
		s.logger.Warn().Err(err).Str("contractor_id", contractorID).Msg("history record failed")
	}

	s.logger.Info().Str("contractor_id", contractorID).Int("keywords", len(links)).Msg("keyword set replaced")
	return nil
}

// resolveLinks flattens the categorized refs into deduplicated join rows.
// Categories are walked in their canonical order so positions are stable
// across submissions of the same set.
func (s *AssociationService) resolveLinks(ctx context.Context, contractorID string, keywords ports.CategorizedKeywordRefs) ([]domain.ContractorKeyword, error) {
	var links []domain.ContractorKeyword
	seen := make(map[string]struct{})

	for _, category := range domain.Categories {
		refs := keywords[category]
		if len(refs) == 0 {
			continue
		}
		for i := range refs {
			// Trust the map key over whatever category the ref itself carries.
			if refs[i].Pending() {
				refs[i].Category = category
			}
		}
		ids, err := s.keywords.ResolveAll(ctx, refs)
		if err != nil {
			return nil, err
		}
		for _, id := range ids {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			links = append(links, domain.ContractorKeyword{
				ContractorID: contractorID,
				KeywordID:    id,
				Position:     len(links),
			})
		}
	}
	return links, nil
}

// ListKeywords returns the contractor's keywords grouped by category, in
// stored position order within each group.
func (s *AssociationService) ListKeywords(ctx context.Context, contractorID string) (map[domain.KeywordCategory][]domain.Keyword, error) {
	if _, err := s.contractors.FindByID(ctx, contractorID); err != nil {
		return nil, err
	}

	keywords, err := s.associations.ListKeywordsByContractor(ctx, contractorID)
	if err != nil {
		return nil, err
	}

	grouped := make(map[domain.KeywordCategory][]domain.Keyword)
	for _, keyword := range keywords {
		grouped[keyword.Category] = append(grouped[keyword.Category], keyword)
	}
	return grouped, nil
}
