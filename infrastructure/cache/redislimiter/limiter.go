package redislimiter

import (
	"context"
	"time"

	"github.com/attraveiculos/visitor-identity-api/internal/config"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "ratelimit:"

// RedisLimiter implementa janela fixa compartilhada entre instâncias (INCR + EXPIRE)
type RedisLimiter struct {
	client *redis.Client
}

func NewClient(cfg config.Redis) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})
}

func New(client *redis.Client) *RedisLimiter {
	return &RedisLimiter{client: client}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, time.Duration, error) {
	if limit <= 0 {
		return false, window, nil
	}

	redisKey := keyPrefix + key

	var incr *redis.IntCmd
	var ttl *redis.DurationCmd
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, redisKey)
		pipe.ExpireNX(ctx, redisKey, window)
		ttl = pipe.PTTL(ctx, redisKey)
		return nil
	})
	if err != nil {
		return false, 0, err
	}

	if incr.Val() > int64(limit) {
		retryAfter := ttl.Val()
		if retryAfter <= 0 {
			retryAfter = window
		}
		return false, retryAfter, nil
	}

	return true, 0, nil
}

func (l *RedisLimiter) Close() error {
	return l.client.Close()
}
