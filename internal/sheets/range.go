package sheets

import (
	"fmt"
	"strconv"
	"strings"
)

// LastColumn is the zero-based index of column AZ, the right edge of every
// range this service reads or writes.
const LastColumn = 51

// Range is an A1-notation range. Rows are 1-based; a zero StartRow/EndRow
// means the range is unbounded in that direction (e.g. "A:AZ").
type Range struct {
	Sheet    string
	StartCol int
	StartRow int
	EndCol   int
	EndRow   int
}

func (r Range) String() string {
	start := ColumnName(r.StartCol)
	if r.StartRow > 0 {
		start += strconv.Itoa(r.StartRow)
	}
	end := ColumnName(r.EndCol)
	if r.EndRow > 0 {
		end += strconv.Itoa(r.EndRow)
	}
	return r.Sheet + "!" + start + ":" + end
}

// Width is the number of columns the range spans.
func (r Range) Width() int {
	return r.EndCol - r.StartCol + 1
}

// HeaderRange addresses the header row, A1:AZ1.
func HeaderRange(sheet string) Range {
	return Range{Sheet: sheet, StartCol: 0, StartRow: 1, EndCol: LastColumn, EndRow: 1}
}

// DataRange addresses every data column, A:AZ.
func DataRange(sheet string) Range {
	return Range{Sheet: sheet, StartCol: 0, EndCol: LastColumn}
}

// RowRange addresses a single row, A{n}:AZ{n}.
func RowRange(sheet string, row int) Range {
	return Range{Sheet: sheet, StartCol: 0, StartRow: row, EndCol: LastColumn, EndRow: row}
}

// KeyColumnRange addresses the product ID column, A:A.
func KeyColumnRange(sheet string) Range {
	return Range{Sheet: sheet, StartCol: 0, EndCol: 0}
}

// ParseRange parses ranges of the form Sheet!A1:B2, Sheet!A:B or Sheet!A1.
func ParseRange(s string) (Range, error) {
	sheet, cells, ok := strings.Cut(s, "!")
	if !ok || sheet == "" || cells == "" {
		return Range{}, fmt.Errorf("invalid range %q", s)
	}
	startRef, endRef, hasEnd := strings.Cut(cells, ":")
	if !hasEnd {
		endRef = startRef
	}

	startCol, startRow, err := parseCellRef(startRef)
	if err != nil {
		return Range{}, fmt.Errorf("invalid range %q: %w", s, err)
	}
	endCol, endRow, err := parseCellRef(endRef)
	if err != nil {
		return Range{}, fmt.Errorf("invalid range %q: %w", s, err)
	}
	if endCol < startCol || (endRow > 0 && endRow < startRow) {
		return Range{}, fmt.Errorf("invalid range %q: end before start", s)
	}
	return Range{Sheet: sheet, StartCol: startCol, StartRow: startRow, EndCol: endCol, EndRow: endRow}, nil
}

func parseCellRef(ref string) (col, row int, err error) {
	i := 0
	for i < len(ref) && ref[i] >= 'A' && ref[i] <= 'Z' {
		i++
	}
	if i == 0 {
		return 0, 0, fmt.Errorf("missing column in %q", ref)
	}
	col, err = ColumnIndex(ref[:i])
	if err != nil {
		return 0, 0, err
	}
	if i == len(ref) {
		return col, 0, nil
	}
	row, err = strconv.Atoi(ref[i:])
	if err != nil || row < 1 {
		return 0, 0, fmt.Errorf("invalid row in %q", ref)
	}
	return col, row, nil
}

// ColumnName converts a zero-based column index to letters: 0 -> A, 26 -> AA.
func ColumnName(index int) string {
	name := ""
	for n := index + 1; n > 0; n = (n - 1) / 26 {
		name = string(rune('A'+(n-1)%26)) + name
	}
	return name
}

// ColumnIndex converts column letters to a zero-based index.
func ColumnIndex(name string) (int, error) {
	if name == "" {
		return 0, fmt.Errorf("empty column name")
	}
	n := 0
	for _, r := range name {
		if r < 'A' || r > 'Z' {
			return 0, fmt.Errorf("invalid column name %q", name)
		}
		n = n*26 + int(r-'A'+1)
	}
	return n - 1, nil
}
