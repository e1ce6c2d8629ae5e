package queue

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"tour-storefront/internal/pkg/config"
	"tour-storefront/internal/pkg/errs"
	"tour-storefront/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AMQPPublisher dials per publish; checkout volume is low and this keeps no broker connection open.
type AMQPPublisher struct {
	url      string
	exchange string
	queue    string
	logger   *slog.Logger
}

func NewAMQPPublisher(cfg config.QueueConfig, logger *slog.Logger) *AMQPPublisher {
	return &AMQPPublisher{
		url:      cfg.URL,
		exchange: cfg.Exchange,
		queue:    cfg.Queue,
		logger:   logger,
	}
}

func (p *AMQPPublisher) PublishCheckoutCompleted(ctx context.Context, event shared.CheckoutCompletedEvent) error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		p.logger.Warn("rabbitmq: dial failed", "error", err)
		return errs.Wrap(err, "rabbitmq dial")
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		p.logger.Warn("rabbitmq: channel open failed", "error", err)
		return errs.Wrap(err, "rabbitmq channel")
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		p.queue, // name
		true,    // durable
		false,   // autoDelete
		false,   // exclusive
		false,   // noWait
		nil,     // args
	); err != nil {
		p.logger.Warn("rabbitmq: queue declare failed", "queue", p.queue, "error", err)
		return errs.Wrap(err, "rabbitmq queue declare")
	}

	body, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "marshal checkout event")
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx,
		p.exchange, // default exchange when empty
		p.queue,    // routing key = queue name
		false,      // mandatory
		false,      // immediate
		pub,
	); err != nil {
		p.logger.Warn("rabbitmq: publish failed", "queue", p.queue, "error", err)
		return errs.Wrap(err, "rabbitmq publish")
	}
	return nil
}

// NopPublisher is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishCheckoutCompleted(context.Context, shared.CheckoutCompletedEvent) error {
	return nil
}

func NewPublisher(cfg config.QueueConfig, logger *slog.Logger) shared.EventPublisher {
	if cfg.URL == "" {
		return NopPublisher{}
	}
	return NewAMQPPublisher(cfg, logger)
}
