package mq

import (
	"context"

	"storepulse/config"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Consumer binds a durable queue to the topic exchange and exposes the
// delivery channel. Used by the mail worker, not by the API server.
type Consumer struct {
	conn  *amqp.Connection
	ch    *amqp.Channel
	queue string
}

// NewConsumer connects, declares the exchange and queue, and binds the
// given routing keys.
func NewConsumer(cfg *config.MQConfig, keys ...string) (*Consumer, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to dial rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()

		return nil, errors.Wrap(err, "failed to open channel")
	}

	if err := ch.ExchangeDeclare(cfg.Exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()

		return nil, errors.Wrap(err, "failed to declare exchange")
	}

	queue, err := ch.QueueDeclare(cfg.Queue, true, false, false, false, nil)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()

		return nil, errors.Wrap(err, "failed to declare queue")
	}

	for _, key := range keys {
		if err := ch.QueueBind(queue.Name, key, cfg.Exchange, false, nil); err != nil {
			_ = ch.Close()
			_ = conn.Close()

			return nil, errors.Wrapf(err, "failed to bind %s", key)
		}
	}

	return &Consumer{conn: conn, ch: ch, queue: queue.Name}, nil
}

// Deliveries starts consuming and returns the delivery channel. Messages
// must be acked by the caller.
func (c *Consumer) Deliveries(ctx context.Context) (<-chan amqp.Delivery, error) {
	deliveries, err := c.ch.ConsumeWithContext(ctx, c.queue, "", false, false, false, false, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to start consuming")
	}

	return deliveries, nil
}

// Close tears down the channel and connection.
func (c *Consumer) Close() error {
	if c.ch != nil {
		_ = c.ch.Close()
	}
	if c.conn != nil {
		return errors.Wrap(c.conn.Close(), "failed to close rabbitmq connection")
	}

	return nil
}
