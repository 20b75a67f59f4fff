package worker

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/spec-kit/post-service/internal/events"
	"github.com/spec-kit/post-service/internal/persistence"
)

// StartEventPublisher forwards every domain event to the RabbitMQ event
// queue as JSON. Broker failures are logged and swallowed; event delivery is
// best-effort and never fails the originating request.
func StartEventPublisher(dispatcher events.Dispatcher, rabbit *persistence.Rabbit, logger *zap.Logger) {
	if dispatcher == nil || rabbit == nil {
		return
	}

	dispatcher.SubscribeAll(func(ctx context.Context, event events.Event) error {
		body, err := json.Marshal(event)
		if err != nil {
			logger.Error("marshal event", zap.Error(err), zap.String("type", string(event.Type)))
			return err
		}
		if err := rabbit.Publish(ctx, body); err != nil {
			logger.Warn("publish event",
				zap.Error(err),
				zap.String("type", string(event.Type)),
				zap.String("event_id", event.ID),
			)
			return err
		}
		return nil
	})
}
