package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/crewbase/recruiting-system/internal/core/domain"
	"github.com/crewbase/recruiting-system/internal/core/ports"
)

// memContractorRepo is an in-memory ContractorRepository.
type memContractorRepo struct {
	rows map[string]*domain.Contractor
}

func newMemContractorRepo(ids ...string) *memContractorRepo {
	r := &memContractorRepo{rows: make(map[string]*domain.Contractor)}
	for _, id := range ids {
		r.rows[id] = &domain.Contractor{ID: id, FullName: "Contractor " + id}
	}
	return r
}

func (r *memContractorRepo) Create(_ context.Context, c *domain.Contractor) error {
	copied := *c
	r.rows[c.ID] = &copied
	return nil
}

func (r *memContractorRepo) FindByID(_ context.Context, id string) (*domain.Contractor, error) {
	if c, ok := r.rows[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, domain.ErrContractorNotFound
}

func (r *memContractorRepo) Update(_ context.Context, c *domain.Contractor) error {
	if _, ok := r.rows[c.ID]; !ok {
		return domain.ErrContractorNotFound
	}
	copied := *c
	r.rows[c.ID] = &copied
	return nil
}

func (r *memContractorRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.rows[id]; !ok {
		return domain.ErrContractorNotFound
	}
	delete(r.rows, id)
	return nil
}

func (r *memContractorRepo) List(_ context.Context, _ ports.ListContractorsFilter) ([]*domain.Contractor, int64, error) {
	out := make([]*domain.Contractor, 0, len(r.rows))
	for _, c := range r.rows {
		copied := *c
		out = append(out, &copied)
	}
	return out, int64(len(out)), nil
}

// memAssociationRepo records Replace calls and serves keyword lists.
type memAssociationRepo struct {
	links    map[string][]domain.ContractorKeyword
	keywords map[string][]domain.Keyword
}

func newMemAssociationRepo() *memAssociationRepo {
	return &memAssociationRepo{
		links:    make(map[string][]domain.ContractorKeyword),
		keywords: make(map[string][]domain.Keyword),
	}
}

func (r *memAssociationRepo) ListByContractor(_ context.Context, contractorID string) ([]domain.ContractorKeyword, error) {
	return r.links[contractorID], nil
}

func (r *memAssociationRepo) ListKeywordsByContractor(_ context.Context, contractorID string) ([]domain.Keyword, error) {
	return r.keywords[contractorID], nil
}

func (r *memAssociationRepo) Replace(_ context.Context, contractorID string, links []domain.ContractorKeyword) error {
	r.links[contractorID] = links
	return nil
}

// recordingHistory captures enqueued timeline entries.
type recordingHistory struct {
	entries []ports.HistoryEntryInput
}

func (h *recordingHistory) Record(_ context.Context, entry ports.HistoryEntryInput) error {
	h.entries = append(h.entries, entry)
	return nil
}

func newAssociationServiceForTest(t *testing.T) (*AssociationService, *memAssociationRepo, *memUsageCache, *recordingHistory) {
	t.Helper()
	associations := newMemAssociationRepo()
	contractors := newMemContractorRepo("c-1")
	cache := &memUsageCache{warm: true}
	history := &recordingHistory{}
	keywords := NewKeywordService(newMemKeywordRepo(), cache, zerolog.Nop())
	svc := NewAssociationService(associations, contractors, keywords, cache, history, zerolog.Nop())
	return svc, associations, cache, history
}

func TestAssociationService_ReplaceKeywords_ResolvesAndStoresSet(t *testing.T) {
	svc, associations, cache, history := newAssociationServiceForTest(t)
	ctx := context.Background()

	err := svc.ReplaceKeywords(ctx, "c-1", ports.CategorizedKeywordRefs{
		domain.CategorySkill: {
			domain.PendingKeyword("Go", domain.CategorySkill),
			domain.PendingKeyword("Rust", domain.CategorySkill),
		},
		domain.CategoryCompany: {
			domain.PendingKeyword("Acme", domain.CategoryCompany),
		},
	})
	if err != nil {
		t.Fatalf("replace: %v", err)
	}

	links := associations.links["c-1"]
	if len(links) != 3 {
		t.Fatalf("expected 3 links, got %d", len(links))
	}
	for i, link := range links {
		if link.Position != i {
			t.Fatalf("expected sequential positions, got %v", links)
		}
		if link.ContractorID != "c-1" {
			t.Fatalf("wrong contractor id on link: %+v", link)
		}
	}

	if cache.invalidated != 1 {
		t.Fatalf("expected usage cache invalidation, got %d", cache.invalidated)
	}
	if len(history.entries) != 1 || history.entries[0].Kind != domain.HistoryKeywordsSet {
		t.Fatalf("expected keywords_set history entry, got %+v", history.entries)
	}
}

func TestAssociationService_ReplaceKeywords_CollapsesDuplicates(t *testing.T) {
	svc, associations, _, _ := newAssociationServiceForTest(t)
	ctx := context.Background()

	// The same label submitted twice in one category resolves to one keyword
	// and must appear once in the stored set.
	err := svc.ReplaceKeywords(ctx, "c-1", ports.CategorizedKeywordRefs{
		domain.CategorySkill: {
			domain.PendingKeyword("Go", domain.CategorySkill),
			domain.PendingKeyword("go", domain.CategorySkill),
		},
	})
	if err != nil {
		t.Fatalf("replace: %v", err)
	}

	if links := associations.links["c-1"]; len(links) != 1 {
		t.Fatalf("expected duplicates collapsed to 1 link, got %d", len(links))
	}
}

func TestAssociationService_ReplaceKeywords_EmptySetClears(t *testing.T) {
	svc, associations, _, _ := newAssociationServiceForTest(t)
	ctx := context.Background()

	if err := svc.ReplaceKeywords(ctx, "c-1", ports.CategorizedKeywordRefs{
		domain.CategorySkill: {domain.PendingKeyword("Go", domain.CategorySkill)},
	}); err != nil {
		t.Fatalf("replace: %v", err)
	}

	if err := svc.ReplaceKeywords(ctx, "c-1", ports.CategorizedKeywordRefs{}); err != nil {
		t.Fatalf("replace with empty set: %v", err)
	}
	if links := associations.links["c-1"]; len(links) != 0 {
		t.Fatalf("expected all links removed, got %v", links)
	}
}

func TestAssociationService_ReplaceKeywords_UnknownContractor(t *testing.T) {
	svc, _, _, _ := newAssociationServiceForTest(t)

	err := svc.ReplaceKeywords(context.Background(), "missing", ports.CategorizedKeywordRefs{})
	if !errors.Is(err, domain.ErrContractorNotFound) {
		t.Fatalf("expected ErrContractorNotFound, got %v", err)
	}
}

func TestAssociationService_ReplaceKeywords_MapKeyOverridesRefCategory(t *testing.T) {
	svc, associations, _, _ := newAssociationServiceForTest(t)
	ctx := context.Background()

	// A pending ref carrying the wrong category is forced onto the map key's
	// category before resolution.
	err := svc.ReplaceKeywords(ctx, "c-1", ports.CategorizedKeywordRefs{
		domain.CategoryIndustry: {domain.PendingKeyword("Fintech", domain.CategorySkill)},
	})
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	if links := associations.links["c-1"]; len(links) != 1 {
		t.Fatalf("expected 1 link, got %d", len(links))
	}
}

func TestAssociationService_ListKeywords_GroupsByCategory(t *testing.T) {
	svc, associations, _, _ := newAssociationServiceForTest(t)

	associations.keywords["c-1"] = []domain.Keyword{
		{ID: "k1", Name: "Go", Category: domain.CategorySkill},
		{ID: "k2", Name: "Rust", Category: domain.CategorySkill},
		{ID: "k3", Name: "Acme", Category: domain.CategoryCompany},
	}

	grouped, err := svc.ListKeywords(context.Background(), "c-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(grouped[domain.CategorySkill]) != 2 {
		t.Fatalf("expected 2 skills, got %v", grouped)
	}
	if len(grouped[domain.CategoryCompany]) != 1 {
		t.Fatalf("expected 1 company, got %v", grouped)
	}
}
