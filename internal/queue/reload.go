package queue

import (
	"context"
	"time"

	"ontox/pkg/logger"
	"ontox/pkg/ontology"

	"github.com/rabbitmq/amqp091-go"
)

// ConsumeReloads processes reload triggers one at a time. Every delivery
// rebuilds the ontology from its sources and swaps the shared snapshot;
// concurrent triggers collapse into a single rebuild inside the holder.
// Blocks until ctx is cancelled.
func ConsumeReloads(ctx context.Context, conn *amqp091.Connection, holder *ontology.Holder) error {
	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	if err := ch.Qos(1, 0, false); err != nil {
		return err
	}

	msgs, err := ch.Consume(
		ReloadQueue,
		ReloadQueue+"_consumer",
		false, // autoAck
		false, // exclusive
		false, // noLocal
		false, // noWait
		nil,   // args
	)
	if err != nil {
		return err
	}

	logger.Info("Listening for reload messages", "queue", ReloadQueue)

	for {
		select {
		case <-ctx.Done():
			logger.Info("Stopping reload consumer")
			return nil
		case msg, ok := <-msgs:
			if !ok {
				logger.Info("Reload message channel closed")
				return nil
			}

			startTime := time.Now()
			logger.Info("Received reload trigger", "queue", ReloadQueue)

			if _, err := holder.Reload(ctx); err != nil {
				logger.Error("Reload failed, keeping current snapshot", "err", err)
				requeueOrDeadLetter(ch, msg, ReloadQueue)
				continue
			}

			if err := msg.Ack(false); err != nil {
				logger.Error("Failed to ack reload message", "err", err)
			}
			logger.Info("Reload completed", "duration", time.Since(startTime).Round(time.Millisecond))
		}
	}
}
