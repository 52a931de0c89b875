package mq

import (
	"context"
	"encoding/json"
	"log/slog"

	"storepulse/config"
	"storepulse/internal/domain/service"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/fx"
)

// RoutingKeyUserRegistered is the routing key carried by signup events.
const RoutingKeyUserRegistered = "user.registered"

// Params defines the dependencies for the event publisher.
type Params struct {
	fx.In

	LC     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

type amqpPublisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

// NewEventPublisher connects to RabbitMQ and returns a topic-exchange
// publisher. When messaging is not configured it returns a no-op publisher,
// so the rest of the application never has to care.
func NewEventPublisher(params Params) (service.EventPublisher, error) {
	cfg := params.Config.MQ
	if cfg == nil {
		params.Logger.Info("messaging disabled, domain events will be dropped")

		return NopPublisher{}, nil
	}

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

	publisher := &amqpPublisher{conn: conn, ch: ch, exchange: cfg.Exchange}

	params.LC.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return publisher.close()
		},
	})

	return publisher, nil
}

func (p *amqpPublisher) PublishUserRegistered(ctx context.Context, event *service.UserRegisteredEvent) error {
	return p.publishJSON(ctx, RoutingKeyUserRegistered, event)
}

func (p *amqpPublisher) publishJSON(ctx context.Context, key string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "failed to marshal event")
	}

	err = p.ch.PublishWithContext(ctx, p.exchange, key, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		return errors.Wrapf(err, "failed to publish %s", key)
	}

	return nil
}

func (p *amqpPublisher) close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return errors.Wrap(p.conn.Close(), "failed to close rabbitmq connection")
	}

	return nil
}

// NopPublisher discards every event. It stands in when messaging is disabled
// and doubles as a test seam.
type NopPublisher struct{}

func (NopPublisher) PublishUserRegistered(context.Context, *service.UserRegisteredEvent) error {
	return nil
}
