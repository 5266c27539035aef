package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goRedis "github.com/redis/go-redis/v9"

	"github.com/fastygo/dashboard/domain"
	"github.com/fastygo/dashboard/internal/config"
	"github.com/fastygo/dashboard/repository"
)

const dialTimeout = 5 * time.Second

// KV stores dashboard keys in Redis under a common prefix, with no expiry.
type KV struct {
	client goRedis.UniversalClient
	prefix string
}

// Dial connects to the instance in cfg and fails unless it answers PING.
// A dashboard holds a few small keys, so the pool stays small.
func Dial(ctx context.Context, cfg config.RedisConfig) (*KV, error) {
	opts, err := goRedis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	if cfg.DB != 0 {
		opts.DB = cfg.DB
	}
	opts.PoolSize = 4
	opts.DialTimeout = dialTimeout

	client := goRedis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping %s: %w", opts.Addr, err)
	}
	return NewKV(client, cfg.Prefix), nil
}

func NewKV(client goRedis.UniversalClient, prefix string) *KV {
	if prefix == "" {
		prefix = "dashboard:"
	}
	return &KV{client: client, prefix: prefix}
}

func (s *KV) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, s.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, goRedis.Nil) {
			return nil, domain.ErrKeyNotFound
		}
		return nil, err
	}
	return value, nil
}

func (s *KV) Put(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, s.key(key), value, 0).Err()
}

func (s *KV) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.key(key)).Err()
}

// Clear deletes every key under the prefix.
func (s *KV) Clear(ctx context.Context) error {
	iter := s.client.Scan(ctx, 0, s.prefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return s.client.Del(ctx, keys...).Err()
}

func (s *KV) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *KV) Close() error {
	return s.client.Close()
}

func (s *KV) key(k string) string {
	return s.prefix + k
}

var _ repository.KeyValueStore = (*KV)(nil)
