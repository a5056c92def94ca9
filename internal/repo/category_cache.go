package repo

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/product-catalog/internal/models"
	"github.com/sirupsen/logrus"
)

// Cache stores opaque values with an expiry. It is satisfied by
// redissvc.RedisService.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

const (
	categoriesCacheKey     = "catalog:categories"
	categoryCacheKeyPrefix = "catalog:category:"
)

// CachedCategoryRepository is a read-through cache in front of another
// CategoryRepository. Writes go to the underlying repository and evict the
// affected keys. Cache failures are logged and fall back to the underlying
// repository.
type CachedCategoryRepository struct {
	next   CategoryRepository
	cache  Cache
	ttl    time.Duration
	logger logrus.FieldLogger
}

func NewCachedCategoryRepository(next CategoryRepository, cache Cache, ttl time.Duration, logger logrus.FieldLogger) *CachedCategoryRepository {
	return &CachedCategoryRepository{next: next, cache: cache, ttl: ttl, logger: logger}
}

func (r *CachedCategoryRepository) GetCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if r.load(ctx, categoriesCacheKey, &categories) {
		return categories, nil
	}

	categories, err := r.next.GetCategories(ctx)
	if err != nil {
		return nil, err
	}
	r.store(ctx, categoriesCacheKey, categories)
	return categories, nil
}

func (r *CachedCategoryRepository) GetCategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	key := categoryCacheKeyPrefix + id.String()

	var category models.Category
	if r.load(ctx, key, &category) {
		return &category, nil
	}

	found, err := r.next.GetCategoryByID(ctx, id)
	if err != nil || found == nil {
		return found, err
	}
	r.store(ctx, key, found)
	return found, nil
}

func (r *CachedCategoryRepository) AddCategory(ctx context.Context, category models.Category) (models.Category, error) {
	created, err := r.next.AddCategory(ctx, category)
	if err != nil {
		return created, err
	}
	r.evict(ctx, categoriesCacheKey)
	return created, nil
}

func (r *CachedCategoryRepository) UpdateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	updated, err := r.next.UpdateCategory(ctx, category)
	if err != nil {
		return updated, err
	}
	r.evict(ctx, categoriesCacheKey, categoryCacheKeyPrefix+category.ID.String())
	return updated, nil
}

func (r *CachedCategoryRepository) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if err := r.next.DeleteCategory(ctx, id); err != nil {
		return err
	}
	r.evict(ctx, categoriesCacheKey, categoryCacheKeyPrefix+id.String())
	return nil
}

func (r *CachedCategoryRepository) load(ctx context.Context, key string, dst any) bool {
	b, ok, err := r.cache.Get(ctx, key)
	if err != nil {
		r.logger.WithError(err).WithField("key", key).Warn("category cache read failed")
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(b, dst); err != nil {
		r.logger.WithError(err).WithField("key", key).Warn("category cache entry is corrupt")
		return false
	}
	return true
}

func (r *CachedCategoryRepository) store(ctx context.Context, key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		r.logger.WithError(err).WithField("key", key).Warn("category cache encode failed")
		return
	}
	if err := r.cache.Set(ctx, key, b, r.ttl); err != nil {
		r.logger.WithError(err).WithField("key", key).Warn("category cache write failed")
	}
}

func (r *CachedCategoryRepository) evict(ctx context.Context, keys ...string) {
	if err := r.cache.Del(ctx, keys...); err != nil {
		r.logger.WithError(err).WithField("keys", keys).Warn("category cache eviction failed")
	}
}
