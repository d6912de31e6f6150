package cache

import (
	"context"
	"fmt"
	"time"

	"todofeed/infras/otel"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	otelScopeName         = "cache"
	otelCacheKeyAttribute = "cache.key"
)

// Window is the state of a fixed-window counter right after it was incremented.
type Window struct {
	Count   int64
	ResetIn time.Duration
}

type RedisCache interface {
	Increment(ctx context.Context, key string, window time.Duration) (Window, error)
}

type redisCache struct {
	client *redis.Client
	otel   otel.Otel
}

func NewRedisCache(client *redis.Client, ot otel.Otel) RedisCache {
	return &redisCache{
		client: client,
		otel:   ot,
	}
}

// Increment atomically adds one to the counter at key. The first increment starts a
// window of the given length; later ones neither extend nor reset it, so the counter
// disappears once the window is over.
func (cache *redisCache) Increment(ctx context.Context, key string, window time.Duration) (res Window, err error) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Increment")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	pipe := cache.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, window)
	ttl := pipe.TTL(ctx, key)

	if _, err = pipe.Exec(ctx); err != nil {
		log.Error().Err(err).Str("key", key).Str("RedisCache", "Increment").Msg("failed to increment counter")

		return res, fmt.Errorf("failed to increment counter: %w", err)
	}

	res.Count = incr.Val()
	res.ResetIn = max(ttl.Val(), 0)

	scope.SetAttribute("cache.count", res.Count)

	return res, nil
}
