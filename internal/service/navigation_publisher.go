// Package service holds the side effects that run next to request handling.
// Publishing is best effort: errors are logged and returned so callers may
// ignore them without interrupting a navigation.
package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/zizaimai/rental-manager/internal/queue"
)

// NavigationPublisher sends page views to the navigation queue.
type NavigationPublisher struct {
	url string
	log *slog.Logger
}

// NewNavigationPublisher returns a publisher for the broker at url.
func NewNavigationPublisher(url string, log *slog.Logger) *NavigationPublisher {
	if log == nil {
		log = slog.Default()
	}
	return &NavigationPublisher{url: url, log: log}
}

// PublishNavigation publishes ev as a persistent JSON message.  A connection
// is opened per call; page views are low volume and this keeps no broker
// state alive between requests.
func (p *NavigationPublisher) PublishNavigation(ctx context.Context, ev queue.NavigationEvent) error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		p.log.Warn("rabbitmq: dial failed", "err", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		p.log.Warn("rabbitmq: channel open failed", "err", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		queue.NavigationQueueName, // name
		true,                      // durable
		false,                     // autoDelete
		false,                     // exclusive
		false,                     // noWait
		nil,                       // args
	); err != nil {
		p.log.Warn("rabbitmq: queue declare failed", "err", err)
		return err
	}

	body, err := json.Marshal(ev)
	if err != nil {
		p.log.Warn("rabbitmq: marshal event failed", "err", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", queue.NavigationQueueName, false, false, pub); err != nil {
		p.log.Warn("rabbitmq: publish failed", "err", err)
		return err
	}
	return nil
}
