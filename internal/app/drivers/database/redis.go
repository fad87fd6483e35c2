package database

import (
	"context"
	"fmt"
	"medvault-client/internal/app/config"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const redisPingTimeout = 3 * time.Second

// NewRedisClient connects to the Redis instance that holds shared portal
// sessions and verifies it answers PING.
func NewRedisClient(ctx context.Context, driverConfig *config.DriverConfig, log *zap.Logger) (*redis.Client, error) {
	addr := fmt.Sprintf("%s:%s", driverConfig.Redis.Host, driverConfig.Redis.Port)
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: driverConfig.Redis.Password,
		DB:       driverConfig.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()

	_, err := rdb.Ping(pingCtx).Result()
	if err != nil {
		rdb.Close()
		return nil, fmt.Errorf("could not connect to Redis at %s: %w", addr, err)
	}

	log.Debug("Connected to Redis", zap.String("addr", addr), zap.Int("db", driverConfig.Redis.DB))
	return rdb, nil
}
