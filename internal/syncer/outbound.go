package syncer

import (
	"context"
	"errors"

	"sheetsync/internal/mapper"
	"sheetsync/internal/models"
	"sheetsync/internal/reconcile"
	"sheetsync/internal/sheets"
)

// State is a step of the outbound sync.
type State string

const (
	StateIdle        State = "idle"
	StateHeaderCheck State = "header_check"
	StateWriteHeader State = "write_header"
	StateReconcile   State = "reconcile"
	StateWrite       State = "write"
	StateFailed      State = "failed"
	StateSkipped     State = "skipped"
)

type OutboundResult struct {
	ProductID int64 `json:"product_id"`
	// State is idle after a completed sync, skipped or failed otherwise.
	State State `json:"state"`
	// Stage is the state the sync was in when it failed.
	Stage         State            `json:"stage,omitempty"`
	Action        reconcile.Action `json:"action,omitempty"`
	Row           int              `json:"row,omitempty"`
	HeaderWritten bool             `json:"header_written"`
	Message       string           `json:"message,omitempty"`
	Err           error            `json:"-"`
}

func (r OutboundResult) Synced() bool {
	return r.State == StateIdle
}

// SyncProduct mirrors a published product into the sheet. It never returns
// an error: failures are logged, recorded and reported in the result, and
// must not fail the product save that triggered the sync.
func (o *Orchestrator) SyncProduct(ctx context.Context, product *models.Product) OutboundResult {
	res := o.syncProduct(ctx, product)

	event := &models.SyncEvent{
		Direction: models.SyncDirectionOutbound,
		ProductID: product.ID,
		Stage:     string(res.Stage),
		Action:    string(res.Action),
		Row:       res.Row,
		Message:   res.Message,
	}
	switch res.State {
	case StateIdle:
		event.Status = models.SyncEventStatusSynced
		event.Stage = string(StateIdle)
	case StateSkipped:
		event.Status = models.SyncEventStatusSkipped
	default:
		event.Status = models.SyncEventStatusFailed
	}
	o.record(ctx, event)
	return res
}

func (o *Orchestrator) syncProduct(ctx context.Context, product *models.Product) OutboundResult {
	res := OutboundResult{ProductID: product.ID, State: StateIdle}
	fail := func(stage State, err error) OutboundResult {
		res.State = StateFailed
		res.Stage = stage
		res.Err = err
		res.Message = err.Error()
		if errors.Is(err, ErrConfigurationMissing) {
			o.logger.Error("GSheets sync error: %v", err)
		} else {
			o.logger.Error("GSheets sync of product %d failed during %s: %v", product.ID, stage, err)
		}
		return res
	}

	if !product.IsPublished() {
		res.State = StateSkipped
		res.Message = "product is not published"
		o.logger.Debug("Skipping sheet sync of product %d with status %s", product.ID, product.Status)
		return res
	}

	client, cfg, err := o.connect(ctx)
	if err != nil {
		return fail(StateIdle, err)
	}

	if !cfg.HeaderWritten {
		header := mapper.Header()
		if err := client.Update(ctx, sheets.HeaderRange(o.sheet), [][]string{header}); err != nil {
			return fail(StateWriteHeader, err)
		}
		if err := o.settings.MarkHeaderWritten(ctx); err != nil {
			return fail(StateWriteHeader, err)
		}
		res.HeaderWritten = true
		o.logger.Info("Wrote header row to %s", sheets.HeaderRange(o.sheet))
	}

	row := mapper.ToRow(product)
	result, err := reconcile.New(client, o.sheet, o.locks).Upsert(ctx, product.ID, row)
	if err != nil {
		stage := StateWrite
		var apiErr *sheets.APIError
		if errors.As(err, &apiErr) && apiErr.Op == "get" {
			stage = StateReconcile
		}
		return fail(stage, err)
	}

	res.Action = result.Action
	res.Row = result.Row
	o.logger.Info("Synced product %d to sheet (%s)", product.ID, result.Action)
	return res
}

// SyncProductByID loads a product and syncs it.
func (o *Orchestrator) SyncProductByID(ctx context.Context, id int64) (OutboundResult, error) {
	product, err := o.lookupProduct(ctx, id)
	if err != nil {
		return OutboundResult{}, err
	}
	return o.SyncProduct(ctx, product), nil
}
