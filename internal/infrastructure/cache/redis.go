package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"studioo/internal/config"
)

// ConnectRedis opens the session store and waits until it answers PING.
// Connection attempts back off exponentially for up to maxWait.
func ConnectRedis(ctx context.Context, cfg config.RedisConfig, maxWait time.Duration, logger *zap.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     100,
		MinIdleConns: 10,
	})

	retryPolicy := backoff.NewExponentialBackOff()
	retryPolicy.MaxElapsedTime = maxWait
	retryPolicy.MaxInterval = 15 * time.Second

	logger.Info("[cache][redis] connecting", zap.String("addr", cfg.Addr))

	err := backoff.RetryNotify(
		func() error {
			if err := client.Ping(ctx).Err(); err != nil {
				return fmt.Errorf("ping: %w", err)
			}
			return nil
		},
		backoff.WithContext(retryPolicy, ctx),
		func(err error, d time.Duration) {
			logger.Warn("[cache][redis] connect_retry",
				zap.Error(err),
				zap.Duration("retry_in", d),
			)
		},
	)
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}

	logger.Info("[cache][redis] connected", zap.String("addr", cfg.Addr))
	return client, nil
}
