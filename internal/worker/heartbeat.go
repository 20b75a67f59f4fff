package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/post-service/internal/persistence"
)

const heartbeatKey = "post-service:heartbeat"

// StartHeartbeat runs a background ticker that records a liveness timestamp
// in Redis on every interval. Stops when the context is cancelled.
func StartHeartbeat(ctx context.Context, redis *persistence.Redis, logger *zap.Logger, interval time.Duration) {
	if redis == nil || redis.Client == nil {
		return
	}
	if interval <= 0 {
		interval = time.Minute
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				if err := redis.Client.Set(ctx, heartbeatKey, now.Unix(), 2*interval).Err(); err != nil {
					logger.Warn("heartbeat write failed", zap.Error(err))
					continue
				}
				logger.Debug("heartbeat", zap.Time("at", now))
			}
		}
	}()
}
