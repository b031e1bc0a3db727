package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"booking-backend/internal/config"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload interface{}) error
	Close() error
}

// NopPublisher drops every event. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, interface{}) error { return nil }
func (NopPublisher) Close() error                                     { return nil }

type RabbitPublisher struct {
	conn     *amqp.Connection
	exchange string
	logger   *logrus.Logger
}

// NewPublisher returns a RabbitMQ publisher, or a NopPublisher when no URL is
// configured.
func NewPublisher(cfg config.AMQPConfig, logger *logrus.Logger) (Publisher, error) {
	if cfg.URL == "" {
		logger.Info("AMQP_URL not set, domain events are disabled")
		return NopPublisher{}, nil
	}
	p, err := NewRabbitPublisher(cfg, logger)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func NewRabbitPublisher(cfg config.AMQPConfig, logger *logrus.Logger) (*RabbitPublisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.ExchangeDeclare(
		cfg.Exchange, // name
		"topic",      // kind
		true,         // durable
		false,        // autoDelete
		false,        // internal
		false,        // noWait
		nil,
	); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", cfg.Exchange, err)
	}

	logger.WithField("exchange", cfg.Exchange).Info("RabbitMQ publisher initialized")

	return &RabbitPublisher{
		conn:     conn,
		exchange: cfg.Exchange,
		logger:   logger,
	}, nil
}

func (p *RabbitPublisher) Publish(ctx context.Context, routingKey string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", routingKey, err)
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    time.Now().UTC(),
		Type:         routingKey,
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, msg); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", routingKey, err)
	}

	p.logger.WithFields(logrus.Fields{
		"routing_key": routingKey,
		"message_id":  msg.MessageId,
	}).Debug("Event published")
	return nil
}

func (p *RabbitPublisher) Close() error {
	return p.conn.Close()
}
