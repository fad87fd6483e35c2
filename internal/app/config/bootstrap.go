package config

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Redis          *redis.Client
	Logger         *zap.Logger
	Registry       *prometheus.Registry
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// WorkerStop if set will be called during Shutdown to stop the triage poller
	WorkerStop func()
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.WorkerStop != nil {
		b.WorkerStop()
		b.Logger.Info("Successfully stopped triage poller")
	}

	if b.Registry != nil && b.InternalConfig.Metrics.TextfileOutputPath != "" {
		err := prometheus.WriteToTextfile(b.InternalConfig.Metrics.TextfileOutputPath, b.Registry)
		if err != nil {
			b.Logger.Warn("Failed to write metrics textfile",
				zap.String("path", b.InternalConfig.Metrics.TextfileOutputPath),
				zap.Error(err),
			)
		}
	}

	if b.Redis != nil {
		err := b.Redis.Close()
		if err != nil {
			return err
		}
		b.Logger.Debug("Successfully closing Redis")
	}

	// Sync on stdout/stderr returns EINVAL on some platforms; nothing to act on.
	_ = b.Logger.Sync()
	return ctx.Err()
}
