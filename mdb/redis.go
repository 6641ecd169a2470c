package mdb

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cakirmemati3-ui/video-backend/config"
	"github.com/cakirmemati3-ui/video-backend/log"
)

var Redis *redis.Client

// InitRedis connects the shared redis client. Redis is optional here
// (it only backs the distributed rate limiter); when it is not
// configured or not reachable the caller falls back to the in-memory
// limiter and Redis stays nil.
func InitRedis(cfg *config.Config) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("redis not available, falling back to in-memory rate limiting: %v", err)
		return nil
	}
	Redis = client
	log.Info("redis connected at %s", cfg.RedisAddr)
	return client
}
