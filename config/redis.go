package config

import (
	"context"
	"os"

	"github.com/redis/go-redis/v9"
)

// RedisClient is a global Redis client instance. Nil when Redis is not
// configured or not reachable; callers must treat nil as "sessions and
// remote caching disabled".
var RedisClient *redis.Client

func InitRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		RedisClient = nil
		return
	}
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASS"),
		DB:       0,
	})
}

func RedisCtx() context.Context {
	return context.Background()
}

// SessionGet reads a session-scoped value ("session:<id>:<key>").
// Returns "" when Redis is disabled or the key is absent.
func SessionGet(sessionID, key string) string {
	if RedisClient == nil || sessionID == "" {
		return ""
	}
	v, err := RedisClient.Get(RedisCtx(), "session:"+sessionID+":"+key).Result()
	if err != nil {
		return ""
	}
	return v
}

// SessionSet writes a session-scoped value. No-op when Redis is disabled.
func SessionSet(sessionID, key, value string) {
	if RedisClient == nil || sessionID == "" {
		return
	}
	RedisClient.Set(RedisCtx(), "session:"+sessionID+":"+key, value, 0)
}
