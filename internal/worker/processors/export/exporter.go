package export

import (
	"context"

	"sheetsync/internal/logger"
	"sheetsync/internal/models"
	"sheetsync/internal/syncer"
)

// Syncer mirrors a product into the sheet.
type Syncer interface {
	SyncProduct(ctx context.Context, product *models.Product) syncer.OutboundResult
}

type Exporter struct {
	syncer Syncer
	logger *logger.Logger
}

func New(syncer Syncer, logger *logger.Logger) *Exporter {
	return &Exporter{
		syncer: syncer,
		logger: logger,
	}
}

// ExportToSheet pushes a saved product to the sheet. Failures are already
// logged and recorded by the syncer; they are returned here only so the
// caller can report them.
func (e *Exporter) ExportToSheet(ctx context.Context, product *models.Product) syncer.OutboundResult {
	res := e.syncer.SyncProduct(ctx, product)
	switch res.State {
	case syncer.StateIdle:
		e.logger.Debug("Exported product %d to sheet (%s)", product.ID, res.Action)
	case syncer.StateSkipped:
		e.logger.Debug("Product %d not exported: %s", product.ID, res.Message)
	}
	return res
}
