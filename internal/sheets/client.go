// Package sheets talks to the spreadsheet that mirrors the product catalog.
package sheets

import (
	"context"
	"fmt"
	"strconv"
)

// Client reads and writes cell values of one spreadsheet.
type Client interface {
	Values(ctx context.Context, rng Range) ([][]string, error)
	Update(ctx context.Context, rng Range, rows [][]string) error
	Append(ctx context.Context, rng Range, rows [][]string) error
}

// Factory builds a Client from a service-account key and a spreadsheet ID.
type Factory func(ctx context.Context, credentialsJSON []byte, spreadsheetID string) (Client, error)

const (
	BackendGoogle = "google"
	BackendMemory = "memory"
)

// NewFactory picks the client implementation for a backend name.
func NewFactory(backend string) (Factory, error) {
	switch backend {
	case "", BackendGoogle:
		return GoogleFactory, nil
	case BackendMemory:
		return MemoryFactory(NewMemoryClient()), nil
	default:
		return nil, fmt.Errorf("unknown sheet backend %q", backend)
	}
}

// ClientInitError means the client could not be built, usually because the
// key file is malformed.
type ClientInitError struct {
	Err error
}

func (e *ClientInitError) Error() string {
	return "sheets client init failed: " + e.Err.Error()
}

func (e *ClientInitError) Unwrap() error {
	return e.Err
}

// APIError wraps a failed call to the spreadsheet service.
type APIError struct {
	Op    string
	Range string
	Err   error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("sheets %s %s: %v", e.Op, e.Range, e.Err)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// CellString renders a cell value the way it appears in the sheet.
func CellString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		if t {
			return "TRUE"
		}
		return "FALSE"
	default:
		return fmt.Sprint(t)
	}
}
