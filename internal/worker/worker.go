package worker

import (
	"context"
	"encoding/json"
	"time"

	"adaptly/internal/adaptation"
	"adaptly/internal/config"
	"adaptly/internal/logger"
	"adaptly/internal/store"
	"adaptly/internal/worker/processors"

	"github.com/segmentio/kafka-go"
)

type Worker struct {
	config     *config.Config
	logger     *logger.Logger
	reader     *kafka.Reader
	dispatcher *processors.Dispatcher
}

func New(cfg *config.Config, logger *logger.Logger, engine *adaptation.Engine, products store.ProductReader) *Worker {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        []string{cfg.KafkaBrokers},
		GroupID:        cfg.KafkaGroupID,
		Topic:          cfg.ProductEventsTopic,
		MinBytes:       10e3, // 10KB
		MaxBytes:       10e6, // 10MB
		CommitInterval: time.Second,
	})

	return &Worker{
		config:     cfg,
		logger:     logger,
		reader:     reader,
		dispatcher: processors.New(cfg, logger, engine, products),
	}
}

func (w *Worker) Start() {
	w.logger.Info("Worker started, listening for events...")

	for {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		message, err := w.reader.ReadMessage(ctx)
		cancel()

		if err != nil {
			w.logger.Error("Failed to read message: %v", err)
			continue
		}

		w.logger.Debug("Received message: %s", string(message.Value))

		var event Event
		if err := json.Unmarshal(message.Value, &event); err != nil {
			w.logger.Error("Failed to parse event: %v", err)
			continue
		}

		if err := w.process(event); err != nil {
			w.logger.Error("Failed to process event: %v", err)
			continue
		}

		w.logger.Debug("Event processed successfully")
	}
}

func (w *Worker) process(event Event) error {
	switch event.Type {
	case "product.created", "product.updated", "sync.requested":
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return w.dispatcher.ProcessProduct(ctx, event.ProductID)
	default:
		w.logger.Debug("Ignoring event type %s", event.Type)
		return nil
	}
}

func (w *Worker) Stop() {
	w.logger.Info("Stopping worker...")
	w.reader.Close()
	w.dispatcher.Close()
}

type Event struct {
	Type      string                 `json:"type"`
	ProductID string                 `json:"product_id"`
	Data      map[string]interface{} `json:"data"`
	Timestamp time.Time              `json:"timestamp"`
}
