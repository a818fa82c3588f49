package worker

import (
	"context"
	"errors"
	"time"

	"sheetsync/internal/config"
	"sheetsync/internal/logger"
	"sheetsync/internal/worker/processors"

	"github.com/segmentio/kafka-go"
)

// MessageReader is the part of kafka.Reader the worker uses.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Worker struct {
	logger    *logger.Logger
	reader    MessageReader
	processor *processors.EventProcessor
}

func NewReader(cfg *config.Config) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.KafkaBrokerList(),
		GroupID:        cfg.KafkaGroupID,
		Topic:          cfg.KafkaTopic,
		MinBytes:       10e3, // 10KB
		MaxBytes:       10e6, // 10MB
		CommitInterval: time.Second,
	})
}

func New(reader MessageReader, processor *processors.EventProcessor, logger *logger.Logger) *Worker {
	return &Worker{
		logger:    logger,
		reader:    reader,
		processor: processor,
	}
}

// Start consumes events until ctx is cancelled. Every message is committed
// once handled, whether or not processing succeeded; failed events are not
// retried.
func (w *Worker) Start(ctx context.Context) error {
	w.logger.Info("Worker started, listening for events...")

	for {
		message, err := w.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return nil
			}
			w.logger.Error("Failed to read message: %v", err)
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(time.Second):
			}
			continue
		}

		w.logger.Debug("Received message at offset %d: %s", message.Offset, string(message.Value))

		if err := w.processor.HandleMessage(ctx, message.Value); err != nil {
			w.logger.Error("Failed to process event at offset %d: %v", message.Offset, err)
		} else {
			w.logger.Debug("Event processed successfully")
		}

		if err := w.reader.CommitMessages(ctx, message); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			w.logger.Error("Failed to commit offset %d: %v", message.Offset, err)
		}
	}
}

func (w *Worker) Stop() error {
	w.logger.Info("Stopping worker...")
	return w.reader.Close()
}
