package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/dhruvahir777/billoza-backend/models"
)

const (
	menuListPrefix  = "menu:list:"
	DefaultCacheTTL = 5 * time.Minute
)

// MenuCache caches per-tenant menu listings in Redis, invalidated on every
// menu write. Orders and reports are never cached. A nil client disables
// caching entirely.
type MenuCache struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewMenuCache(client *redis.Client) *MenuCache {
	return &MenuCache{
		redis: client,
		ttl:   DefaultCacheTTL,
	}
}

// GetList retrieves a cached menu listing for the tenant.
func (mc *MenuCache) GetList(ctx context.Context, userID string) ([]models.MenuItem, bool) {
	if mc == nil || mc.redis == nil {
		return nil, false
	}

	cached, err := mc.redis.Get(ctx, menuListPrefix+userID).Result()
	if err != nil {
		return nil, false
	}

	var items []models.MenuItem
	if err := json.Unmarshal([]byte(cached), &items); err != nil {
		zap.L().Warn("Failed to unmarshal cached menu list", zap.Error(err))
		return nil, false
	}
	return items, true
}

// SetListAsync caches a menu listing without blocking the request.
func (mc *MenuCache) SetListAsync(userID string, items []models.MenuItem) {
	if mc == nil || mc.redis == nil {
		return
	}

	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		payload, err := json.Marshal(items)
		if err != nil {
			return
		}
		if err := mc.redis.Set(bgCtx, menuListPrefix+userID, payload, mc.ttl).Err(); err != nil {
			zap.L().Warn("Failed to cache menu list", zap.Error(err))
		}
	}()
}

// Invalidate drops the tenant's cached listing after a menu write.
func (mc *MenuCache) Invalidate(ctx context.Context, userID string) {
	if mc == nil || mc.redis == nil {
		return
	}
	if err := mc.redis.Del(ctx, menuListPrefix+userID).Err(); err != nil {
		zap.L().Warn("Failed to invalidate menu cache", zap.Error(err))
	}
}
