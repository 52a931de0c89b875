// Package worker consumes signup events and sends the welcome mail
// outside the request path.
package worker

import (
	"context"
	"encoding/json"
	"log/slog"

	"storepulse/config"
	"storepulse/internal/delivery"
	"storepulse/internal/domain/service"
	"storepulse/internal/infra/mq"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/fx"
)

// ServerParams holds dependencies for the mail worker.
type ServerParams struct {
	fx.In

	Lc     fx.Lifecycle
	Cfg    *config.Config
	Logger *slog.Logger
}

type mailWorker struct {
	logger   *slog.Logger
	consumer *mq.Consumer
}

// NewServer creates the mail worker. Unlike the API server, messaging is
// mandatory here: a mail worker without a queue has nothing to do.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	if params.Cfg.MQ == nil {
		return nil, errors.New("mq configuration is required for the mail worker")
	}

	consumer, err := mq.NewConsumer(params.Cfg.MQ, mq.RoutingKeyUserRegistered)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create consumer")
	}

	srv := &mailWorker{
		logger:   params.Logger,
		consumer: consumer,
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return srv.consumer.Close()
		},
	})

	return srv, nil
}

// Serve consumes registration events until the channel closes.
func (s *mailWorker) Serve(ctx context.Context) error {
	deliveries, err := s.consumer.Deliveries(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to start consuming")
	}

	s.logger.Info("Mail worker started")

	for d := range deliveries {
		s.handle(d)
	}

	return nil
}

func (s *mailWorker) handle(d amqp.Delivery) {
	var event service.UserRegisteredEvent
	if err := json.Unmarshal(d.Body, &event); err != nil {
		s.logger.Error("Dropping malformed event", slog.String("error", err.Error()))
		_ = d.Nack(false, false)

		return
	}

	// Mail transport is out of scope; log where the mail would go.
	s.logger.Info("Sending welcome mail",
		slog.String("email", event.Email),
		slog.String("name", event.Name),
		slog.String("role", event.Role.String()),
	)

	_ = d.Ack(false)
}
