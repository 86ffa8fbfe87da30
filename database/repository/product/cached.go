package productRepo

import (
	"context"
	"encoding/json"
	"time"

	"priisme/models"

	"github.com/go-redis/redis/v8"
)

// catalogTTL bounds staleness of cached catalog listings. The catalog is
// read-heavy and changes rarely, so short-lived read-through caching is safe.
const catalogTTL = 5 * time.Minute

// CachedProductRepo decorates a ProductRepository with a Redis read-through
// cache over the list endpoints. Single-product lookups and cache failures
// always fall through to the underlying repository.
type CachedProductRepo struct {
	inner ProductRepository
	cache *redis.Client
}

// NewCachedProductRepo wraps inner with the given cache client.
func NewCachedProductRepo(inner ProductRepository, cache *redis.Client) ProductRepository {
	return &CachedProductRepo{inner: inner, cache: cache}
}

func (r *CachedProductRepo) ListActive(ctx context.Context, categoryID string) ([]models.Product, error) {
	key := "catalog:products:" + categoryID
	var products []models.Product
	if r.cacheGet(ctx, key, &products) {
		return products, nil
	}

	products, err := r.inner.ListActive(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	r.cacheSet(ctx, key, products)
	return products, nil
}

func (r *CachedProductRepo) GetByID(ctx context.Context, id string) (*models.Product, error) {
	return r.inner.GetByID(ctx, id)
}

func (r *CachedProductRepo) ListCategories(ctx context.Context) ([]models.Category, error) {
	key := "catalog:categories"
	var categories []models.Category
	if r.cacheGet(ctx, key, &categories) {
		return categories, nil
	}

	categories, err := r.inner.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	r.cacheSet(ctx, key, categories)
	return categories, nil
}

func (r *CachedProductRepo) cacheGet(ctx context.Context, key string, out interface{}) bool {
	data, err := r.cache.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(data), out) == nil
}

func (r *CachedProductRepo) cacheSet(ctx context.Context, key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	r.cache.Set(ctx, key, data, catalogTTL)
}
