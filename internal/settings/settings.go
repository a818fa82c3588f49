// Package settings holds the admin-managed sync configuration.
package settings

import (
	"context"
	"strconv"

	"sheetsync/internal/sanitize"
)

const (
	KeySpreadsheetID    = "spreadsheetId"
	KeySetupComplete    = "setup_complete"
	KeyInitialSetupDone = "initial_setup_done"
	KeyClientID         = "clientId"
	KeyClientSecret     = "clientSecret"
)

type valueKind int

const (
	kindText valueKind = iota
	kindFlag
)

// allowed lists the option keys the update endpoint may touch.
var allowed = map[string]valueKind{
	KeySpreadsheetID:    kindText,
	KeySetupComplete:    kindFlag,
	KeyInitialSetupDone: kindFlag,
	KeyClientID:         kindText,
	KeyClientSecret:     kindText,
}

// SyncSettings is the configuration snapshot a sync operation runs with.
type SyncSettings struct {
	CredentialsPresent bool
	SpreadsheetID      string
	SetupComplete      bool
	HeaderWritten      bool
	ClientID           string
	ClientSecret       string
}

// Configured reports whether a sync can reach the spreadsheet.
func (s SyncSettings) Configured() bool {
	return s.CredentialsPresent && s.SpreadsheetID != ""
}

type CredentialsChecker interface {
	Exists() bool
}

type Service struct {
	options     *OptionStore
	credentials CredentialsChecker
}

func NewService(options *OptionStore, credentials CredentialsChecker) *Service {
	return &Service{options: options, credentials: credentials}
}

// Load reads a fresh snapshot of every setting.
func (s *Service) Load(ctx context.Context) (SyncSettings, error) {
	var out SyncSettings
	var err error

	out.CredentialsPresent = s.credentials.Exists()
	if out.SpreadsheetID, err = s.options.GetString(ctx, KeySpreadsheetID); err != nil {
		return SyncSettings{}, err
	}
	if out.SetupComplete, err = s.options.GetBool(ctx, KeySetupComplete); err != nil {
		return SyncSettings{}, err
	}
	if out.HeaderWritten, err = s.options.GetBool(ctx, KeyInitialSetupDone); err != nil {
		return SyncSettings{}, err
	}
	if out.ClientID, err = s.options.GetString(ctx, KeyClientID); err != nil {
		return SyncSettings{}, err
	}
	if out.ClientSecret, err = s.options.GetString(ctx, KeyClientSecret); err != nil {
		return SyncSettings{}, err
	}
	return out, nil
}

// MarkHeaderWritten records that the header row is in place.
func (s *Service) MarkHeaderWritten(ctx context.Context) error {
	return s.options.Set(ctx, KeyInitialSetupDone, true)
}

// Update stores every allow-listed key in params and returns the stored
// value for each. Unknown keys are ignored.
func (s *Service) Update(ctx context.Context, params map[string]interface{}) (map[string]interface{}, error) {
	updated := make(map[string]interface{})
	for key, raw := range params {
		kind, ok := allowed[key]
		if !ok {
			continue
		}

		var value interface{}
		switch kind {
		case kindFlag:
			value = truthy(raw)
		default:
			value = sanitize.Text(textValue(raw))
		}
		if err := s.options.Set(ctx, key, value); err != nil {
			return nil, err
		}

		var stored interface{}
		if _, err := s.options.Get(ctx, key, &stored); err != nil {
			return nil, err
		}
		updated[key] = stored
	}
	return updated, nil
}

// truthy follows loose boolean rules: "", "0", 0, false, null and empty
// collections are false.
func truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return t != "" && t != "0"
	case []interface{}:
		return len(t) > 0
	case map[string]interface{}:
		return len(t) > 0
	default:
		return true
	}
}

func textValue(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		if t {
			return "1"
		}
		return ""
	default:
		return ""
	}
}
