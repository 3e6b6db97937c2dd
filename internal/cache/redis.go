package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"

	"VortexEdge/internal/model"
)

const keyPrefix = "vortexedge:candles:"

// RedisCache caches candle series in Redis as JSON blobs with a TTL.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache connects to Redis and verifies the connection.
func NewRedisCache(addr, password string, db int, ttl time.Duration) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &RedisCache{client: client, ttl: ttl}, nil
}

func (r *RedisCache) Get(ctx context.Context, symbol string) ([]model.Candle, bool) {
	data, err := r.client.Get(ctx, keyPrefix+symbol).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Str("symbol", symbol).Msg("cache read failed")
		}
		return nil, false
	}
	var series []model.Candle
	if err := json.Unmarshal(data, &series); err != nil {
		log.Warn().Err(err).Str("symbol", symbol).Msg("cache entry corrupt, ignoring")
		return nil, false
	}
	return series, true
}

func (r *RedisCache) Put(ctx context.Context, symbol string, series []model.Candle) {
	data, err := json.Marshal(series)
	if err != nil {
		return
	}
	if err := r.client.Set(ctx, keyPrefix+symbol, data, r.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("symbol", symbol).Msg("cache write failed")
	}
}

func (r *RedisCache) Close() error { return r.client.Close() }
