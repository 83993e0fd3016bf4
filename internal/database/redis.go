package database

import (
	"context"

	"github.com/go-redis/redis/v8"
	"github.com/sitetrack/backend/internal/config"
	"go.uber.org/zap"
)

// InitRedis connects the cache. A nil client means the service runs without
// caching.
func InitRedis(ctx context.Context, cfg config.RedisConfig, log *zap.Logger) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn("Redis connection failed, continuing without Redis", zap.String("addr", cfg.Addr()), zap.Error(err))
		_ = rdb.Close()
		return nil
	}

	log.Info("Redis connection established", zap.String("addr", cfg.Addr()))
	return rdb
}
