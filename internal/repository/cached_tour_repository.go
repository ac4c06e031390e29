package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/vonhatphuongahihi/venture-travel-backend/internal/domain"
	"github.com/vonhatphuongahihi/venture-travel-backend/pkg/redis"
)

const (
	// Cache key prefixes
	tourDetailKeyPrefix = "tour:detail:"
	tourCatalogKey      = "tour:catalog:active"

	// Default TTL for tour snapshot caches. Catalog writes happen in the
	// admin service, which has no way to invalidate this cache, so
	// staleness is bounded only by the TTL.
	defaultTourCacheTTL = 5 * time.Minute
)

// CachedTourRepository wraps TourRepository with Redis caching
type CachedTourRepository struct {
	repo  TourRepository
	cache *redis.Client
	ttl   time.Duration
}

// NewCachedTourRepository creates a new CachedTourRepository. A
// non-positive ttl falls back to the default.
func NewCachedTourRepository(repo TourRepository, cache *redis.Client, ttl time.Duration) *CachedTourRepository {
	if ttl <= 0 {
		ttl = defaultTourCacheTTL
	}
	return &CachedTourRepository{
		repo:  repo,
		cache: cache,
		ttl:   ttl,
	}
}

// ListActive retrieves the active tour snapshot set with caching
func (r *CachedTourRepository) ListActive(ctx context.Context) ([]*domain.Tour, error) {
	cached, err := r.cache.Get(ctx, tourCatalogKey).Result()
	if err == nil && cached != "" {
		var tours []*domain.Tour
		if err := json.Unmarshal([]byte(cached), &tours); err == nil {
			return tours, nil
		}
	}

	// Cache miss - get from database
	tours, err := r.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(tours); err == nil {
		r.cache.Set(ctx, tourCatalogKey, data, r.ttl)
	}

	return tours, nil
}

// GetByID retrieves a tour snapshot by ID with caching
func (r *CachedTourRepository) GetByID(ctx context.Context, id string) (*domain.Tour, error) {
	cacheKey := tourDetailKeyPrefix + id
	cached, err := r.cache.Get(ctx, cacheKey).Result()
	if err == nil && cached != "" {
		var tour domain.Tour
		if err := json.Unmarshal([]byte(cached), &tour); err == nil {
			return &tour, nil
		}
	}

	// Cache miss - get from database
	tour, err := r.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tour == nil {
		return nil, nil
	}

	if data, err := json.Marshal(tour); err == nil {
		r.cache.Set(ctx, cacheKey, data, r.ttl)
	}

	return tour, nil
}
