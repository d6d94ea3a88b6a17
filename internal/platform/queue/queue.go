// Package queue provides the AMQP notification channel for user mutations.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"
)

// UserOperationsQueue is the destination queue for user mutation messages.
const UserOperationsQueue = "user_operations"

// Message is the envelope published for every user mutation. Delivery is
// at-least-once from the producer's perspective: no confirmation is awaited
// and no ordering is guaranteed.
type Message struct {
	Operation string `json:"operation"`
	Data      any    `json:"data"`
}

// Queue wraps a process-wide AMQP connection and channel, established once at
// startup and reused across all publishes.
type Queue struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

// Connect dials the AMQP broker and opens a channel.
func Connect(uri string) (*Queue, error) {
	conn, err := amqp.Dial(uri)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to AMQP broker: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open AMQP channel: %w", err)
	}
	slog.Info("AMQP connection successful", "queue", UserOperationsQueue)
	return &Queue{conn: conn, ch: ch}, nil
}

// Close shuts down the channel and connection.
func (q *Queue) Close() {
	if q.ch != nil {
		if err := q.ch.Close(); err != nil {
			slog.Warn("failed to close AMQP channel", "error", err)
		}
	}
	if q.conn != nil {
		if err := q.conn.Close(); err != nil {
			slog.Warn("failed to close AMQP connection", "error", err)
		}
	}
}

// Publish declares the destination queue and sends a single JSON message.
// The queue is non-durable and no delivery confirmation is requested.
func (q *Queue) Publish(ctx context.Context, queueName string, msg Message) error {
	if _, err := q.ch.QueueDeclare(queueName, false, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", queueName, err)
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	err = q.ch.PublishWithContext(ctx, "", queueName, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish to queue %s: %w", queueName, err)
	}
	return nil
}

// Consume declares the queue and returns a delivery channel with auto-ack
// enabled. Consumers process at-most-once; a message lost mid-processing is
// not redelivered.
func (q *Queue) Consume(queueName string) (<-chan amqp.Delivery, error) {
	if _, err := q.ch.QueueDeclare(queueName, false, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("failed to declare queue %s: %w", queueName, err)
	}
	deliveries, err := q.ch.Consume(queueName, "", true, false, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to consume queue %s: %w", queueName, err)
	}
	return deliveries, nil
}
