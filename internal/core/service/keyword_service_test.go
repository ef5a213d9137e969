package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/crewbase/recruiting-system/internal/core/domain"
)

// memKeywordRepo is an in-memory KeywordRepository keyed the same way the
// database unique index is: (normalized name, category).
type memKeywordRepo struct {
	rows       map[string]*domain.Keyword
	usage      []domain.KeywordUsage
	usageCalls int
}

func newMemKeywordRepo() *memKeywordRepo {
	return &memKeywordRepo{rows: make(map[string]*domain.Keyword)}
}

func identKey(normalized string, category domain.KeywordCategory) string {
	return string(category) + "/" + normalized
}

func (r *memKeywordRepo) FindByNormalized(_ context.Context, normalized string, category domain.KeywordCategory) (*domain.Keyword, error) {
	if k, ok := r.rows[identKey(normalized, category)]; ok {
		copied := *k
		return &copied, nil
	}
	return nil, domain.ErrKeywordNotFound
}

func (r *memKeywordRepo) CreateIfAbsent(_ context.Context, k *domain.Keyword) (bool, error) {
	key := identKey(k.NameNormalized, k.Category)
	if _, exists := r.rows[key]; exists {
		return false, nil
	}
	copied := *k
	r.rows[key] = &copied
	return true, nil
}

func (r *memKeywordRepo) Search(_ context.Context, query string, category *domain.KeywordCategory, limit int) ([]domain.Keyword, error) {
	var out []domain.Keyword
	for _, k := range r.rows {
		if category != nil && k.Category != *category {
			continue
		}
		out = append(out, *k)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *memKeywordRepo) Usage(_ context.Context) ([]domain.KeywordUsage, error) {
	r.usageCalls++
	return r.usage, nil
}

// memUsageCache is an in-memory UsageCache.
type memUsageCache struct {
	usage       []domain.KeywordUsage
	warm        bool
	invalidated int
	getErr      error
}

func (c *memUsageCache) Get(context.Context) ([]domain.KeywordUsage, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	return c.usage, c.warm, nil
}

func (c *memUsageCache) Set(_ context.Context, usage []domain.KeywordUsage) error {
	c.usage = usage
	c.warm = true
	return nil
}

func (c *memUsageCache) Invalidate(context.Context) error {
	c.usage = nil
	c.warm = false
	c.invalidated++
	return nil
}

func newKeywordServiceForTest(repo *memKeywordRepo, cache UsageCache) *KeywordService {
	if cache == nil {
		cache = &memUsageCache{}
	}
	return NewKeywordService(repo, cache, zerolog.Nop())
}

func TestKeywordService_Resolve_CreatesThenReuses(t *testing.T) {
	repo := newMemKeywordRepo()
	svc := newKeywordServiceForTest(repo, nil)
	ctx := context.Background()

	first, err := svc.Resolve(ctx, "Kubernetes", domain.CategorySkill)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if first.ID == "" {
		t.Fatalf("expected generated id")
	}

	// Same label with different casing and padding resolves to the same row.
	second, err := svc.Resolve(ctx, "  kubernetes ", domain.CategorySkill)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected same keyword id, got %s and %s", first.ID, second.ID)
	}
	if second.Name != "Kubernetes" {
		t.Fatalf("display name should keep first insertion casing, got %q", second.Name)
	}
}

func TestKeywordService_Resolve_SameLabelDifferentCategory(t *testing.T) {
	repo := newMemKeywordRepo()
	svc := newKeywordServiceForTest(repo, nil)
	ctx := context.Background()

	asSkill, err := svc.Resolve(ctx, "Google", domain.CategorySkill)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	asCompany, err := svc.Resolve(ctx, "Google", domain.CategoryCompany)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if asSkill.ID == asCompany.ID {
		t.Fatalf("categories must not share keyword rows")
	}
}

func TestKeywordService_Resolve_RejectsBlankAndBadCategory(t *testing.T) {
	svc := newKeywordServiceForTest(newMemKeywordRepo(), nil)
	ctx := context.Background()

	if _, err := svc.Resolve(ctx, "   ", domain.CategorySkill); !errors.Is(err, domain.ErrInvalidKeyword) {
		t.Fatalf("expected ErrInvalidKeyword, got %v", err)
	}
	if _, err := svc.Resolve(ctx, "Go", domain.KeywordCategory("hobby")); !errors.Is(err, domain.ErrInvalidCategory) {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}
}

func TestKeywordService_ResolveAll_PreservesOrder(t *testing.T) {
	repo := newMemKeywordRepo()
	svc := newKeywordServiceForTest(repo, nil)
	ctx := context.Background()

	existing, err := svc.Resolve(ctx, "Go", domain.CategorySkill)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	ids, err := svc.ResolveAll(ctx, []domain.KeywordRef{
		domain.PendingKeyword("Rust", domain.CategorySkill),
		domain.PersistedKeyword(existing.ID),
		domain.PendingKeyword("Zig", domain.CategorySkill),
	})
	if err != nil {
		t.Fatalf("resolve all: %v", err)
	}
	if len(ids) != 3 {
		t.Fatalf("expected 3 ids, got %d", len(ids))
	}
	if ids[1] != existing.ID {
		t.Fatalf("persisted ref should pass through in position, got %v", ids)
	}
	if ids[0] == ids[2] {
		t.Fatalf("distinct labels must resolve to distinct ids")
	}
}

func TestKeywordService_Usage_ServedFromCacheWhenWarm(t *testing.T) {
	repo := newMemKeywordRepo()
	repo.usage = []domain.KeywordUsage{{KeywordID: "k1", ContractorCount: 3}}
	cache := &memUsageCache{}
	svc := newKeywordServiceForTest(repo, cache)
	ctx := context.Background()

	// Cold cache: hits the repo and warms the cache.
	usage, err := svc.Usage(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(usage) != 1 || usage[0].ContractorCount != 3 {
		t.Fatalf("unexpected usage: %v", usage)
	}
	if !cache.warm {
		t.Fatalf("expected cache to be warmed")
	}

	// Warm cache: the repo is not consulted again.
	if _, err := svc.Usage(ctx); err != nil {
		t.Fatalf("usage: %v", err)
	}
	if repo.usageCalls != 1 {
		t.Fatalf("expected 1 repo call, got %d", repo.usageCalls)
	}
}

func TestKeywordService_Usage_CacheErrorFallsBack(t *testing.T) {
	repo := newMemKeywordRepo()
	repo.usage = []domain.KeywordUsage{{KeywordID: "k1", ContractorCount: 1}}
	cache := &memUsageCache{getErr: errors.New("redis down")}
	svc := newKeywordServiceForTest(repo, cache)

	usage, err := svc.Usage(context.Background())
	if err != nil {
		t.Fatalf("usage should fall back to repo: %v", err)
	}
	if len(usage) != 1 {
		t.Fatalf("unexpected usage: %v", usage)
	}
}

func TestKeywordService_Search_RejectsBadCategory(t *testing.T) {
	svc := newKeywordServiceForTest(newMemKeywordRepo(), nil)
	bad := domain.KeywordCategory("hobby")
	if _, err := svc.Search(context.Background(), "go", &bad, 10); !errors.Is(err, domain.ErrInvalidCategory) {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}
}
