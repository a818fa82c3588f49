package handlers

import (
	"encoding/json"
	"math"
	"testing"
)

func TestParseProductID(t *testing.T) {
	tests := []struct {
		in   interface{}
		want int64
		ok   bool
	}{
		{float64(42), 42, true},
		{"42", 42, true},
		{" 7 ", 7, true},
		{json.Number("9"), 9, true},
		{float64(0), 0, false},
		{float64(-3), 0, false},
		{float64(1.5), 0, false},
		{float64(math.MaxInt64), 0, false},
		{1e300, 0, false},
		{"abc", 0, false},
		{"", 0, false},
		{nil, 0, false},
		{true, 0, false},
	}

	for _, tt := range tests {
		got, ok := parseProductID(tt.in)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Fatalf("parseProductID(%#v) = %d, %v; want %d, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestNormalizePrice(t *testing.T) {
	if got, err := normalizePrice("regular_price", "10.50"); err != nil || got != "10.5" {
		t.Fatalf("expected 10.5, got %q %v", got, err)
	}
	if got, err := normalizePrice("regular_price", ""); err != nil || got != "" {
		t.Fatalf("expected empty price to pass through, got %q %v", got, err)
	}
	if _, err := normalizePrice("sale_price", "ten"); err == nil {
		t.Fatal("expected non-numeric price to fail")
	}
	if _, err := normalizePrice("sale_price", "-2"); err == nil {
		t.Fatal("expected negative price to fail")
	}
}
