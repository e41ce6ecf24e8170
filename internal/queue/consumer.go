package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// NavigationLogPath is where consumed navigation events are appended.
var NavigationLogPath = filepath.Join("logs", "navigation.log")

// StartNavigationConsumer connects to RabbitMQ, declares the navigation
// queue (durable) and appends one line per event to NavigationLogPath.  It
// reconnects with exponential backoff and returns only when ctx is done.
// Malformed messages are rejected without requeue so they cannot loop.
func StartNavigationConsumer(ctx context.Context, url string, log *slog.Logger) error {
	if log == nil {
		log = slog.Default()
	}
	backoff := time.Second
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		conn, err := amqp.Dial(url)
		if err != nil {
			log.Warn("navigation-consumer: dial failed", "err", err, "retry_in", backoff.String())
			if !sleep(ctx, backoff) {
				return ctx.Err()
			}
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		err = consumeLoop(ctx, conn, log)
		_ = conn.Close()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		log.Warn("navigation-consumer: consume loop ended, reconnecting", "err", err)
		if !sleep(ctx, 2*time.Second) {
			return ctx.Err()
		}
	}
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func consumeLoop(ctx context.Context, conn *amqp.Connection, log *slog.Logger) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(50, 0, false); err != nil {
		log.Warn("navigation-consumer: set QoS failed", "err", err)
	}
	if _, err := ch.QueueDeclare(NavigationQueueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}
	msgs, err := ch.Consume(NavigationQueueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-msgs:
			if !ok {
				return errors.New("deliveries channel closed")
			}
			if err := appendEvent(d.Body); err != nil {
				log.Error("navigation-consumer: handle message failed", "err", err)
				_ = d.Nack(false, false)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

func appendEvent(body []byte) error {
	var ev NavigationEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(NavigationLogPath), 0o755); err != nil {
		return fmt.Errorf("mkdir logs: %w", err)
	}
	f, err := os.OpenFile(NavigationLogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()
	return writeLine(f, ev)
}

func writeLine(w io.Writer, ev NavigationEvent) error {
	if _, err := io.WriteString(w, formatLine(ev)); err != nil {
		return fmt.Errorf("write log: %w", err)
	}
	return nil
}

// formatLine renders one event as a single human-friendly log line.
func formatLine(ev NavigationEvent) string {
	rt := ev.Route
	if rt == "" {
		rt = "-"
	}
	reqID := ev.RequestID
	if reqID == "" {
		reqID = "-"
	}
	return fmt.Sprintf("[%s] Page viewed | status=%d | route=%s | path=%q | title=%q | request_id=%s\n",
		ev.ViewedAt, ev.Status, rt, ev.Path, ev.Title, reqID)
}
