package page

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/dmitrymomot/cmsnav/core/logger"
	"github.com/dmitrymomot/cmsnav/integration/database/redis"
)

// Cache is a byte store with expiry, implemented by redis.Cache.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

const menuCacheKey = "pages:menu"

// CachedRepository serves ListMenu from the cache and fills it on a miss.
// Cache failures are logged and the underlying repository is used instead.
type CachedRepository struct {
	next   Repository
	cache  Cache
	ttl    time.Duration
	logger *slog.Logger
}

func NewCachedRepository(next Repository, cache Cache, ttl time.Duration, log *slog.Logger) *CachedRepository {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &CachedRepository{next: next, cache: cache, ttl: ttl, logger: log}
}

func (c *CachedRepository) ListMenu(ctx context.Context) ([]Page, error) {
	b, err := c.cache.Get(ctx, menuCacheKey)
	if err == nil {
		var pages []Page
		if err := json.Unmarshal(b, &pages); err == nil {
			return pages, nil
		}
		c.logger.WarnContext(ctx, "discarding undecodable menu cache entry", logger.Component("page"))
	} else if !errors.Is(err, redis.ErrCacheMiss) {
		c.logger.WarnContext(ctx, "menu cache read failed", logger.Component("page"), logger.Error(err))
	}

	pages, err := c.next.ListMenu(ctx)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(pages); err == nil {
		if err := c.cache.Set(ctx, menuCacheKey, b, c.ttl); err != nil {
			c.logger.WarnContext(ctx, "menu cache write failed", logger.Component("page"), logger.Error(err))
		}
	}
	return pages, nil
}

func (c *CachedRepository) FindByPath(ctx context.Context, path string) (Page, error) {
	return c.next.FindByPath(ctx, path)
}

// Invalidate drops the cached menu.
func (c *CachedRepository) Invalidate(ctx context.Context) error {
	return c.cache.Delete(ctx, menuCacheKey)
}
