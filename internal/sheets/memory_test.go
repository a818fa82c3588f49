package sheets

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryClientUpdateAndValues(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryClient()

	if err := m.Update(ctx, HeaderRange("Sheet1"), [][]string{{"ID", "Name"}}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := m.Update(ctx, RowRange("Sheet1", 3), [][]string{{"7", "Lamp"}}); err != nil {
		t.Fatalf("update: %v", err)
	}

	values, err := m.Values(ctx, KeyColumnRange("Sheet1"))
	if err != nil {
		t.Fatalf("values: %v", err)
	}
	if len(values) != 3 {
		t.Fatalf("expected 3 rows including the gap, got %d: %#v", len(values), values)
	}
	if values[0][0] != "ID" || len(values[1]) != 0 || values[2][0] != "7" {
		t.Fatalf("unexpected key column %#v", values)
	}
	if m.Calls() != 3 {
		t.Fatalf("expected 3 calls, got %d", m.Calls())
	}
}

func TestMemoryClientAppendAfterLastRow(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryClient()
	m.SetRows("Sheet1", [][]string{{"ID"}, {"1"}, {"2"}})

	if err := m.Append(ctx, DataRange("Sheet1"), [][]string{{"3", "New"}}); err != nil {
		t.Fatalf("append: %v", err)
	}
	rows := m.Rows("Sheet1")
	if len(rows) != 4 || rows[3][0] != "3" || rows[3][1] != "New" {
		t.Fatalf("expected appended row at 4, got %#v", rows)
	}
}

func TestMemoryClientAppendToEmptySheet(t *testing.T) {
	m := NewMemoryClient()
	if err := m.Append(context.Background(), DataRange("Sheet1"), [][]string{{"1"}}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if rows := m.Rows("Sheet1"); len(rows) != 1 || rows[0][0] != "1" {
		t.Fatalf("expected first row to be written, got %#v", rows)
	}
}

func TestMemoryClientInjectedError(t *testing.T) {
	m := NewMemoryClient()
	boom := errors.New("quota exceeded")
	m.SetError(boom)

	_, err := m.Values(context.Background(), KeyColumnRange("Sheet1"))
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if !errors.Is(err, boom) || apiErr.Op != "get" || apiErr.Range != "Sheet1!A:A" {
		t.Fatalf("unexpected error %+v", apiErr)
	}
}

func TestNewFactory(t *testing.T) {
	for _, backend := range []string{"", BackendGoogle, BackendMemory} {
		if f, err := NewFactory(backend); err != nil || f == nil {
			t.Fatalf("backend %q: expected a factory, got %v", backend, err)
		}
	}
	if _, err := NewFactory("excel"); err == nil {
		t.Fatal("expected unknown backend to be rejected")
	}
}
