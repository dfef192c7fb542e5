package processors

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"adaptly/internal/adaptation"
	"adaptly/internal/config"
	"adaptly/internal/logger"
	"adaptly/internal/store"

	"github.com/segmentio/kafka-go"
)

// Dispatcher adapts products on catalog events and forwards channel-ready
// payloads to the dispatch topic. Sending payloads onward to the channels
// themselves is the downstream dispatcher service's job.
type Dispatcher struct {
	config   *config.Config
	logger   *logger.Logger
	engine   *adaptation.Engine
	products store.ProductReader
	writer   *kafka.Writer
}

func New(cfg *config.Config, logger *logger.Logger, engine *adaptation.Engine, products store.ProductReader) *Dispatcher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.KafkaBrokers),
		Topic:        cfg.DispatchTopic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 100 * time.Millisecond,
	}

	return &Dispatcher{
		config:   cfg,
		logger:   logger,
		engine:   engine,
		products: products,
		writer:   writer,
	}
}

// ProcessProduct runs the product through the engine for every configured
// target channel. Invalid results are logged with their findings and never
// forwarded; a half-adapted record must not reach the dispatch topic.
func (d *Dispatcher) ProcessProduct(ctx context.Context, productID string) error {
	product, err := d.products.Get(productID)
	if err != nil {
		return fmt.Errorf("failed to load product %s: %w", productID, err)
	}

	for _, channel := range d.config.TargetChannels {
		result, err := d.engine.Adapt(product, channel)
		if err != nil {
			return fmt.Errorf("adapt %s for %s: %w", productID, channel, err)
		}

		if !result.Valid {
			for _, f := range result.Errors {
				d.logger.Warn("Product %s blocked for %s: %s: %s", productID, channel, f.Field, f.Message)
			}
			continue
		}

		for _, f := range result.Warnings {
			d.logger.Info("Product %s adjusted for %s: %s: %s", productID, channel, f.Field, f.Message)
		}

		if err := d.publish(ctx, result); err != nil {
			return err
		}
	}

	return nil
}

func (d *Dispatcher) publish(ctx context.Context, result *adaptation.Result) error {
	value, err := json.Marshal(result.Adapted)
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}

	message := kafka.Message{
		Key:   []byte(result.Adapted.ProductID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "channel", Value: []byte(result.ChannelID)},
		},
	}

	if err := d.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("failed to write to %s: %w", d.config.DispatchTopic, err)
	}

	d.logger.Debug("Dispatched product %s for %s", result.Adapted.ProductID, result.ChannelID)
	return nil
}

func (d *Dispatcher) Close() error {
	return d.writer.Close()
}
