package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ecoshelf/backend/internal/domain"
)

// ProductServiceConfig holds configuration for the product service
type ProductServiceConfig struct {
	CacheTTL time.Duration
	Curator  CuratorConfig
}

// ProductService handles product search and detail lookup against the
// external food database, with curation for search flows and assessment
// plus caching for detail flows.
type ProductService struct {
	cache    domain.CacheRepository
	source   domain.ProductSource
	curator  *ResultCurator
	scorer   *SustainabilityScorer
	cacheTTL time.Duration
}

// NewProductService creates a new product service with dependencies
func NewProductService(
	cache domain.CacheRepository,
	source domain.ProductSource,
	config ProductServiceConfig,
) *ProductService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 24 * time.Hour
	}

	return &ProductService{
		cache:    cache,
		source:   source,
		curator:  NewResultCurator(config.Curator),
		scorer:   NewSustainabilityScorer(),
		cacheTTL: cacheTTL,
	}
}

// SearchProducts fetches raw records for a query and curates them into a
// bounded, deduplicated, ranked result list. A query that decodes to zero
// records yields an empty list, not an error.
func (s *ProductService) SearchProducts(ctx context.Context, query string) ([]domain.ProductRecord, error) {
	if strings.TrimSpace(query) == "" {
		return nil, domain.ErrInvalidRequest
	}

	records, err := s.source.Search(ctx, query)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return []domain.ProductRecord{}, nil
		}
		return nil, err
	}

	return s.curator.Curate(records), nil
}

// GetProduct looks up a single product by code and computes its
// sustainability assessment.
// Flow: check cache -> fetch product -> assess -> cache -> return
func (s *ProductService) GetProduct(ctx context.Context, code string) (*domain.ProductDetail, error) {
	if code == "" {
		return nil, domain.ErrInvalidRequest
	}

	cacheKey := fmt.Sprintf("product:%s", code)

	cached, err := s.getFromCache(ctx, cacheKey)
	if err == nil && cached != nil {
		cached.Source = "Cache"
		return cached, nil
	}

	product, err := s.source.GetProduct(ctx, code)
	if err != nil {
		return nil, err
	}

	detail := &domain.ProductDetail{
		Product:    *product,
		Assessment: *s.scorer.Assess(product),
		Source:     "OpenFoodFacts",
	}

	// Cache failures are not fatal; the caller still gets the result
	_ = s.setInCache(ctx, cacheKey, detail)

	return detail, nil
}

// Assess exposes the sustainability assessment of an already-fetched
// record for callers that shape search responses.
func (s *ProductService) Assess(p *domain.ProductRecord) *domain.SustainabilityAssessment {
	return s.scorer.Assess(p)
}

// getFromCache retrieves a product detail from cache. The cache stores
// values through a JSON round-trip, so a re-marshal recovers the struct.
func (s *ProductService) getFromCache(ctx context.Context, key string) (*domain.ProductDetail, error) {
	value, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	if detail, ok := value.(*domain.ProductDetail); ok {
		return detail, nil
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return nil, domain.ErrCacheMiss
	}
	var detail domain.ProductDetail
	if err := json.Unmarshal(raw, &detail); err != nil {
		return nil, domain.ErrCacheMiss
	}
	return &detail, nil
}

// setInCache stores a product detail in cache
func (s *ProductService) setInCache(ctx context.Context, key string, detail *domain.ProductDetail) error {
	detail.CachedAt = time.Now()
	return s.cache.Set(ctx, key, detail, s.cacheTTL)
}
