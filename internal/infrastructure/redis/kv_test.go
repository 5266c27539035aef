package redis

import (
	"context"
	"testing"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/fastygo/dashboard/domain"
	"github.com/fastygo/dashboard/internal/config"
)

func TestKV_Prefix(t *testing.T) {
	client := goRedis.NewClient(&goRedis.Options{Addr: "127.0.0.1:1"})
	defer client.Close()

	assert.Equal(t, "dashboard:auth", NewKV(client, "").key("auth"))
	assert.Equal(t, "test:theme", NewKV(client, "test:").key("theme"))
}

func TestKV_UnreachableIsNotMissing(t *testing.T) {
	client := goRedis.NewClient(&goRedis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	defer client.Close()
	kv := NewKV(client, "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := kv.Get(ctx, "auth")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrKeyNotFound)
}

func TestDial_RejectsBadURL(t *testing.T) {
	_, err := Dial(context.Background(), config.RedisConfig{URL: "http://not-redis"})
	assert.ErrorContains(t, err, "parse REDIS_URL")
}
