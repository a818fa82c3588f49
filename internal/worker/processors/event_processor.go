package processors

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"sheetsync/internal/connectors/woocommerce"
	"sheetsync/internal/logger"
	"sheetsync/internal/models"
	"sheetsync/internal/worker/processors/export"
	"sheetsync/internal/worker/processors/validation"
)

const (
	EventProductCreated = "product.created"
	EventProductUpdated = "product.updated"
	EventProductDeleted = "product.deleted"
)

// Event is a product change published by the store.
type Event struct {
	Type      string          `json:"type"`
	ProductID int64           `json:"product_id"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
}

type ProductSaver interface {
	Upsert(ctx context.Context, product *models.Product) error
}

type EventProcessor struct {
	logger      *logger.Logger
	transformer *woocommerce.Transformer
	validator   *validation.Validator
	products    ProductSaver
	exporter    *export.Exporter
}

func NewEventProcessor(products ProductSaver, syncer export.Syncer, logger *logger.Logger) *EventProcessor {
	return &EventProcessor{
		logger:      logger,
		transformer: woocommerce.NewTransformer(),
		validator:   validation.New(logger),
		products:    products,
		exporter:    export.New(syncer, logger),
	}
}

// HandleMessage decodes and processes one raw event.
func (ep *EventProcessor) HandleMessage(ctx context.Context, value []byte) error {
	var event Event
	if err := json.Unmarshal(value, &event); err != nil {
		return fmt.Errorf("failed to parse event: %w", err)
	}
	return ep.Process(ctx, event)
}

func (ep *EventProcessor) Process(ctx context.Context, event Event) error {
	ep.logger.Debug("Processing %s event for product %d", event.Type, event.ProductID)

	switch event.Type {
	case EventProductCreated, EventProductUpdated:
		return ep.upsert(ctx, event)
	case EventProductDeleted:
		// Sheet rows are never removed.
		ep.logger.Info("Product %d deleted upstream; leaving its sheet row in place", event.ProductID)
		return nil
	default:
		ep.logger.Warn("Ignoring event of unknown type %q", event.Type)
		return nil
	}
}

func (ep *EventProcessor) upsert(ctx context.Context, event Event) error {
	if len(event.Data) == 0 || string(event.Data) == "null" {
		return fmt.Errorf("%s event for product %d has no data", event.Type, event.ProductID)
	}

	var payload woocommerce.Product
	if err := json.Unmarshal(event.Data, &payload); err != nil {
		return fmt.Errorf("failed to parse product payload: %w", err)
	}
	switch {
	case payload.ID == 0:
		payload.ID = event.ProductID
	case event.ProductID != 0 && payload.ID != event.ProductID:
		return fmt.Errorf("event for product %d carries product %d", event.ProductID, payload.ID)
	}

	product, err := ep.transformer.TransformProduct(&payload)
	if err != nil {
		return err
	}
	if err := ep.validator.ValidateProduct(product); err != nil {
		return err
	}
	if err := ep.products.Upsert(ctx, product); err != nil {
		return err
	}

	ep.exporter.ExportToSheet(ctx, product)
	ep.logger.Info("Processed %s for product %d", event.Type, product.ID)
	return nil
}
