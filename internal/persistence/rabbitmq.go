package persistence

import (
	"context"
	"errors"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/spec-kit/post-service/internal/config"
)

// Rabbit wraps an AMQP connection and the queue events are published to.
type Rabbit struct {
	conn  *amqp.Connection
	queue string
}

// NewRabbit dials RabbitMQ and declares the event queue. An unreachable
// broker is logged but not fatal; publishing becomes a no-op and the health
// check reports it.
func NewRabbit(cfg config.RabbitConfig, logger *zap.Logger) *Rabbit {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		logger.Warn("unable to reach rabbitmq", zap.Error(err))
		return &Rabbit{queue: cfg.EventQueue}
	}

	ch, err := conn.Channel()
	if err != nil {
		logger.Warn("unable to open rabbitmq channel", zap.Error(err))
		_ = conn.Close()
		return &Rabbit{queue: cfg.EventQueue}
	}
	defer ch.Close()

	if _, err := ch.QueueDeclare(cfg.EventQueue, true, false, false, false, nil); err != nil {
		logger.Warn("unable to declare event queue", zap.Error(err))
		_ = conn.Close()
		return &Rabbit{queue: cfg.EventQueue}
	}

	logger.Info("connected to rabbitmq", zap.String("queue", cfg.EventQueue))
	return &Rabbit{conn: conn, queue: cfg.EventQueue}
}

// Close shuts down the connection.
func (r *Rabbit) Close() {
	if r != nil && r.conn != nil {
		_ = r.conn.Close()
	}
}

// Ping verifies broker connectivity.
func (r *Rabbit) Ping(_ context.Context) error {
	if r == nil || r.conn == nil || r.conn.IsClosed() {
		return errors.New("rabbitmq connection not available")
	}
	return nil
}

// Publish sends a message body to the event queue. Returns an error when the
// broker is unavailable; callers decide whether that is fatal.
func (r *Rabbit) Publish(ctx context.Context, body []byte) error {
	if err := r.Ping(ctx); err != nil {
		return err
	}

	ch, err := r.conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	return ch.PublishWithContext(ctx, "", r.queue, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
}
