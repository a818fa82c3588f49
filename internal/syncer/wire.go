package syncer

import (
	"sheetsync/internal/config"
	"sheetsync/internal/credentials"
	"sheetsync/internal/logger"
	"sheetsync/internal/settings"
	"sheetsync/internal/sheets"
	"sheetsync/internal/store"

	"github.com/spf13/afero"
	"gorm.io/gorm"
)

// Components are the stores and the orchestrator a sync process runs on.
type Components struct {
	Orchestrator *Orchestrator
	Settings     *settings.Service
	Credentials  *credentials.Store
	Products     *store.ProductStore
	Events       *EventLog
}

// Build wires the sync components from configuration.
func Build(cfg *config.Config, db *gorm.DB, fs afero.Fs, log *logger.Logger) (*Components, error) {
	factory, err := sheets.NewFactory(cfg.SheetBackend)
	if err != nil {
		return nil, err
	}

	creds := credentials.NewStore(fs, cfg.CredentialsPath())
	svc := settings.NewService(settings.NewOptionStore(db), creds)
	products := store.NewProductStore(db)
	events := NewEventLog(db)

	return &Components{
		Orchestrator: New(Options{
			Settings:    svc,
			Credentials: creds,
			Clients:     factory,
			Products:    products,
			Events:      events,
			Sheet:       cfg.SheetName,
			Logger:      log,
		}),
		Settings:    svc,
		Credentials: creds,
		Products:    products,
		Events:      events,
	}, nil
}
