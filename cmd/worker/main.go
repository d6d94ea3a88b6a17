package main

import (
	"context"
	"log"
	"log/slog"
	"os/signal"
	"syscall"

	"user_backend/internal/config"
	"user_backend/internal/platform/queue"
)

// The worker drains the user_operations queue independently of the API
// server, with its own broker connection. Messages are consumed with
// auto-ack, so processing is at-most-once.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	q, err := queue.Connect(cfg.Queue.URI)
	if err != nil {
		log.Fatalf("failed to connect to AMQP broker: %v", err)
	}
	defer q.Close()

	deliveries, err := q.Consume(queue.UserOperationsQueue)
	if err != nil {
		log.Fatalf("failed to start consumer: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	slog.Info("worker started", "queue", queue.UserOperationsQueue)

	for {
		select {
		case <-ctx.Done():
			slog.Info("worker shutting down")
			return
		case d, ok := <-deliveries:
			if !ok {
				slog.Warn("delivery channel closed")
				return
			}
			slog.Info("received user operation", "body", string(d.Body))
		}
	}
}
