package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gestao_reparos/internal/config"
	"gestao_reparos/internal/domain/entities"

	"github.com/redis/go-redis/v9"
)

const (
	keyQuoteList       = "quotes:list"
	keyQuoteGeneration = "quotes:list:gen"
)

// QuoteListCache caches the newest-first quote listing in Redis.
type QuoteListCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewQuoteListCache returns a new QuoteListCache.
func NewQuoteListCache(rdb *redis.Client, ttl time.Duration) *QuoteListCache {
	return &QuoteListCache{rdb: rdb, ttl: ttl}
}

// GetList returns the cached list or nil on a miss.
func (c *QuoteListCache) GetList(ctx context.Context) ([]entities.Quote, error) {
	b, err := c.rdb.Get(ctx, keyQuoteList).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	list := []entities.Quote{}
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Generation returns the invalidation counter, 0 when it was never bumped.
func (c *QuoteListCache) Generation(ctx context.Context) (int64, error) {
	gen, err := c.rdb.Get(ctx, keyQuoteGeneration).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return gen, err
}

// SetList stores the list if no Invalidate ran since generation was read.
// A concurrent Invalidate aborts the transaction and the list is dropped.
func (c *QuoteListCache) SetList(ctx context.Context, generation int64, quotes []entities.Quote) error {
	if quotes == nil {
		quotes = []entities.Quote{}
	}
	b, err := json.Marshal(quotes)
	if err != nil {
		return err
	}

	err = c.rdb.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, keyQuoteGeneration).Int64()
		if err != nil && err != redis.Nil {
			return err
		}
		if current != generation {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, keyQuoteList, b, c.ttl)
			return nil
		})
		return err
	}, keyQuoteGeneration)
	if err == redis.TxFailedErr {
		return nil
	}
	return err
}

// Invalidate drops the cached list and bumps the generation; called after
// every quote write.
func (c *QuoteListCache) Invalidate(ctx context.Context) error {
	_, err := c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, keyQuoteGeneration)
		pipe.Del(ctx, keyQuoteList)
		return nil
	})
	return err
}

// NewRedis opens a client and checks it with a ping.
func NewRedis(cfg config.RedisConfig) (*redis.Client, error) {
	opts, err := cfg.ClientOptions()
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return rdb, nil
}
