// Package reconcile decides whether a product already has a sheet row and
// writes it in place or appends it.
package reconcile

import (
	"context"
	"errors"
	"strconv"

	"sheetsync/internal/mapper"
	"sheetsync/internal/sheets"
)

var ErrNotFound = errors.New("product row not found")

type Action string

const (
	ActionUpdated  Action = "updated"
	ActionAppended Action = "appended"
)

type Result struct {
	Action Action
	// Row is the 1-based row that was overwritten; zero for appends.
	Row int
}

type Reconciler struct {
	client sheets.Client
	sheet  string
	locks  *Locker
}

// New builds a Reconciler for one sheet. locks may be shared between
// reconcilers so writes for the same product are serialized process-wide.
func New(client sheets.Client, sheet string, locks *Locker) *Reconciler {
	if locks == nil {
		locks = NewLocker()
	}
	return &Reconciler{client: client, sheet: sheet, locks: locks}
}

// FindRow scans the key column from the top, header included, and returns
// the first row whose ID cell equals productID.
func (r *Reconciler) FindRow(ctx context.Context, productID int64) (int, error) {
	values, err := r.client.Values(ctx, sheets.KeyColumnRange(r.sheet))
	if err != nil {
		return 0, err
	}

	key := strconv.FormatInt(productID, 10)
	for i, row := range values {
		if len(row) > 0 && row[0] == key {
			return i + 1, nil
		}
	}
	return 0, ErrNotFound
}

// Upsert overwrites the product's row when it exists and appends otherwise.
// The find-then-write sequence holds the product's lock; writers in other
// processes can still race and append twice.
func (r *Reconciler) Upsert(ctx context.Context, productID int64, row mapper.Row) (Result, error) {
	unlock := r.locks.Lock(productID)
	defer unlock()

	n, err := r.FindRow(ctx, productID)
	switch {
	case err == nil:
		if err := r.client.Update(ctx, sheets.RowRange(r.sheet, n), [][]string{row}); err != nil {
			return Result{}, err
		}
		return Result{Action: ActionUpdated, Row: n}, nil
	case errors.Is(err, ErrNotFound):
		if err := r.client.Append(ctx, sheets.DataRange(r.sheet), [][]string{row}); err != nil {
			return Result{}, err
		}
		return Result{Action: ActionAppended}, nil
	default:
		return Result{}, err
	}
}
