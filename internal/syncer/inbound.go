package syncer

import (
	"context"
	"fmt"

	"sheetsync/internal/mapper"
	"sheetsync/internal/models"
)

type InboundResult struct {
	ProductID int64                 `json:"product_id"`
	Applied   []string              `json:"applied"`
	Skipped   []mapper.SkippedField `json:"skipped"`
}

// ApplySheetEdit writes the importable cells of a sheet row back onto a
// product. Nothing is saved unless the product exists and the row belongs to
// it; all applicable fields are saved together.
func (o *Orchestrator) ApplySheetEdit(ctx context.Context, productID int64, row mapper.Row) (*InboundResult, error) {
	res, err := o.applySheetEdit(ctx, productID, row)

	event := &models.SyncEvent{
		Direction: models.SyncDirectionInbound,
		ProductID: productID,
		Status:    models.SyncEventStatusSynced,
	}
	if err != nil {
		event.Status = models.SyncEventStatusFailed
		event.Message = err.Error()
		o.logger.Error("Sheet edit for product %d rejected: %v", productID, err)
	} else {
		event.Action = "applied"
		for _, s := range res.Skipped {
			event.SkippedFields = append(event.SkippedFields, s.String())
		}
		if len(res.Applied) == 0 {
			event.Status = models.SyncEventStatusSkipped
			event.Message = "no importable fields in row"
		}
	}
	o.record(ctx, event)
	return res, err
}

func (o *Orchestrator) applySheetEdit(ctx context.Context, productID int64, row mapper.Row) (*InboundResult, error) {
	if productID <= 0 {
		return nil, ErrInvalidProductID
	}
	// A row without its own numeric ID has no product identity.
	rowID, err := mapper.ProductID(row)
	if err != nil || rowID != productID {
		return nil, fmt.Errorf("%w: row has %q, request has %d", ErrRowMismatch, row.Cell(mapper.ColID), productID)
	}

	product, err := o.lookupProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	update := mapper.FromRow(row)
	res := &InboundResult{
		ProductID: productID,
		Applied:   update.Fields(),
		Skipped:   update.Skipped,
	}
	for _, s := range update.Skipped {
		o.logger.Warn("Sheet edit for product %d: ignoring unparseable %s %q", productID, s.Column, s.Value)
	}
	if update.Empty() {
		return res, nil
	}

	update.Apply(product)
	if err := o.products.Save(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product %d: %w", productID, err)
	}
	o.logger.Info("Applied sheet edit to product %d: %v", productID, res.Applied)
	return res, nil
}
