// Package syncer ties settings, credentials, the sheet client, the field
// mapper and the row reconciler together for both sync directions.
package syncer

import (
	"context"
	"errors"
	"fmt"

	"sheetsync/internal/credentials"
	"sheetsync/internal/logger"
	"sheetsync/internal/models"
	"sheetsync/internal/reconcile"
	"sheetsync/internal/settings"
	"sheetsync/internal/sheets"
	"sheetsync/internal/store"
)

var (
	ErrConfigurationMissing = errors.New("google client or spreadsheet id is not configured")
	ErrProductNotFound      = errors.New("product not found")
	ErrInvalidProductID     = errors.New("product id must be a positive integer")
	ErrRowMismatch          = errors.New("row id does not match product id")
)

type SettingsProvider interface {
	Load(ctx context.Context) (settings.SyncSettings, error)
	MarkHeaderWritten(ctx context.Context) error
}

type CredentialsSource interface {
	Read() ([]byte, error)
}

type ProductStore interface {
	Get(ctx context.Context, id int64) (*models.Product, error)
	Save(ctx context.Context, product *models.Product) error
}

type EventRecorder interface {
	Record(ctx context.Context, event *models.SyncEvent) error
}

type Options struct {
	Settings    SettingsProvider
	Credentials CredentialsSource
	Clients     sheets.Factory
	Products    ProductStore
	// Events is optional.
	Events EventRecorder
	Sheet  string
	Logger *logger.Logger
}

type Orchestrator struct {
	settings    SettingsProvider
	credentials CredentialsSource
	clients     sheets.Factory
	products    ProductStore
	events      EventRecorder
	locks       *reconcile.Locker
	sheet       string
	logger      *logger.Logger
}

func New(opts Options) *Orchestrator {
	sheet := opts.Sheet
	if sheet == "" {
		sheet = "Sheet1"
	}
	log := opts.Logger
	if log == nil {
		log = logger.New("info")
	}
	return &Orchestrator{
		settings:    opts.Settings,
		credentials: opts.Credentials,
		clients:     opts.Clients,
		products:    opts.Products,
		events:      opts.Events,
		locks:       reconcile.NewLocker(),
		sheet:       sheet,
		logger:      log,
	}
}

// connect loads a fresh settings snapshot and builds a sheet client. It makes
// no network calls when the configuration is incomplete.
func (o *Orchestrator) connect(ctx context.Context) (sheets.Client, settings.SyncSettings, error) {
	cfg, err := o.settings.Load(ctx)
	if err != nil {
		return nil, cfg, fmt.Errorf("failed to load settings: %w", err)
	}
	if cfg.SpreadsheetID == "" {
		return nil, cfg, fmt.Errorf("%w: spreadsheet id is empty", ErrConfigurationMissing)
	}
	if !cfg.CredentialsPresent {
		return nil, cfg, fmt.Errorf("%w: credentials file is missing", ErrConfigurationMissing)
	}

	creds, err := o.credentials.Read()
	if err != nil {
		if errors.Is(err, credentials.ErrNotFound) {
			return nil, cfg, fmt.Errorf("%w: credentials file is missing", ErrConfigurationMissing)
		}
		return nil, cfg, err
	}

	client, err := o.clients(ctx, creds, cfg.SpreadsheetID)
	if err != nil {
		var initErr *sheets.ClientInitError
		if !errors.As(err, &initErr) {
			err = &sheets.ClientInitError{Err: err}
		}
		return nil, cfg, err
	}
	return client, cfg, nil
}

func (o *Orchestrator) lookupProduct(ctx context.Context, id int64) (*models.Product, error) {
	product, err := o.products.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrProductNotFound, id)
		}
		return nil, err
	}
	return product, nil
}

func (o *Orchestrator) record(ctx context.Context, event *models.SyncEvent) {
	if o.events == nil {
		return
	}
	if err := o.events.Record(ctx, event); err != nil {
		o.logger.Error("Failed to record %s sync event for product %d: %v", event.Direction, event.ProductID, err)
	}
}
