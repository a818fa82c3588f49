package sheets

import (
	"context"
	"errors"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

const valueInputOption = "USER_ENTERED"

// GoogleClient is a Client backed by the Google Sheets v4 API.
type GoogleClient struct {
	service       *gsheets.Service
	spreadsheetID string
}

// NewGoogleClient parses a service-account key and builds a Sheets service
// scoped to spreadsheets. Every failure is a *ClientInitError.
func NewGoogleClient(ctx context.Context, credentialsJSON []byte, spreadsheetID string) (*GoogleClient, error) {
	if len(credentialsJSON) == 0 {
		return nil, &ClientInitError{Err: errors.New("credentials are empty")}
	}
	creds, err := google.CredentialsFromJSON(ctx, credentialsJSON, gsheets.SpreadsheetsScope)
	if err != nil {
		return nil, &ClientInitError{Err: err}
	}
	return NewGoogleClientWithOptions(ctx, spreadsheetID, option.WithCredentials(creds))
}

// NewGoogleClientWithOptions builds a client from raw client options.
func NewGoogleClientWithOptions(ctx context.Context, spreadsheetID string, opts ...option.ClientOption) (*GoogleClient, error) {
	if spreadsheetID == "" {
		return nil, &ClientInitError{Err: errors.New("spreadsheet id is empty")}
	}
	service, err := gsheets.NewService(ctx, opts...)
	if err != nil {
		return nil, &ClientInitError{Err: err}
	}
	return &GoogleClient{service: service, spreadsheetID: spreadsheetID}, nil
}

// GoogleFactory is the Factory for the Google Sheets backend.
func GoogleFactory(ctx context.Context, credentialsJSON []byte, spreadsheetID string) (Client, error) {
	client, err := NewGoogleClient(ctx, credentialsJSON, spreadsheetID)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func (c *GoogleClient) Values(ctx context.Context, rng Range) ([][]string, error) {
	resp, err := c.service.Spreadsheets.Values.Get(c.spreadsheetID, rng.String()).Context(ctx).Do()
	if err != nil {
		return nil, &APIError{Op: "get", Range: rng.String(), Err: err}
	}
	rows := make([][]string, len(resp.Values))
	for i, row := range resp.Values {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = CellString(v)
		}
		rows[i] = cells
	}
	return rows, nil
}

func (c *GoogleClient) Update(ctx context.Context, rng Range, rows [][]string) error {
	body := &gsheets.ValueRange{Values: toValues(rows)}
	_, err := c.service.Spreadsheets.Values.Update(c.spreadsheetID, rng.String(), body).
		ValueInputOption(valueInputOption).
		Context(ctx).
		Do()
	if err != nil {
		return &APIError{Op: "update", Range: rng.String(), Err: err}
	}
	return nil
}

func (c *GoogleClient) Append(ctx context.Context, rng Range, rows [][]string) error {
	body := &gsheets.ValueRange{Values: toValues(rows)}
	_, err := c.service.Spreadsheets.Values.Append(c.spreadsheetID, rng.String(), body).
		ValueInputOption(valueInputOption).
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return &APIError{Op: "append", Range: rng.String(), Err: err}
	}
	return nil
}

func toValues(rows [][]string) [][]interface{} {
	values := make([][]interface{}, len(rows))
	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		values[i] = cells
	}
	return values
}
