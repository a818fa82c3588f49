package sheets

import "testing"

func TestRangeHelpersFormat(t *testing.T) {
	cases := []struct {
		got  Range
		want string
	}{
		{HeaderRange("Sheet1"), "Sheet1!A1:AZ1"},
		{DataRange("Sheet1"), "Sheet1!A:AZ"},
		{RowRange("Sheet1", 17), "Sheet1!A17:AZ17"},
		{KeyColumnRange("Sheet1"), "Sheet1!A:A"},
	}
	for _, tc := range cases {
		if tc.got.String() != tc.want {
			t.Fatalf("expected %s, got %s", tc.want, tc.got.String())
		}
	}
	if w := HeaderRange("Sheet1").Width(); w != 52 {
		t.Fatalf("expected A:AZ to span 52 columns, got %d", w)
	}
}

func TestParseRangeRoundTrip(t *testing.T) {
	for _, s := range []string{"Sheet1!A1:AZ1", "Sheet1!A:AZ", "Sheet1!A5:AZ5", "Sheet1!A:A", "Products!B2:C10"} {
		rng, err := ParseRange(s)
		if err != nil {
			t.Fatalf("parse %s: %v", s, err)
		}
		if rng.String() != s {
			t.Fatalf("expected %s to round trip, got %s", s, rng.String())
		}
	}

	single, err := ParseRange("Sheet1!C3")
	if err != nil {
		t.Fatalf("parse single cell: %v", err)
	}
	if single.StartCol != 2 || single.EndCol != 2 || single.StartRow != 3 || single.EndRow != 3 {
		t.Fatalf("unexpected single-cell range %+v", single)
	}
}

func TestParseRangeRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "A1:B2", "Sheet1!", "Sheet1!1:2", "Sheet1!B1:A1", "Sheet1!A0:B1", "Sheet1!A5:B2"} {
		if _, err := ParseRange(s); err == nil {
			t.Fatalf("expected %q to be rejected", s)
		}
	}
}

func TestColumnNames(t *testing.T) {
	cases := map[int]string{0: "A", 25: "Z", 26: "AA", 49: "AX", 51: "AZ", 701: "ZZ", 702: "AAA"}
	for index, name := range cases {
		if got := ColumnName(index); got != name {
			t.Fatalf("ColumnName(%d) = %s, want %s", index, got, name)
		}
		back, err := ColumnIndex(name)
		if err != nil || back != index {
			t.Fatalf("ColumnIndex(%s) = %d, %v; want %d", name, back, err, index)
		}
	}
}
