package sheets

import (
	"context"
	"sync"
)

// MemoryClient is an in-process spreadsheet. It backs the "memory" sheet
// backend for local development and stands in for Google in tests.
type MemoryClient struct {
	mu    sync.Mutex
	grids map[string][][]string
	calls int
	err   error
}

func NewMemoryClient() *MemoryClient {
	return &MemoryClient{grids: make(map[string][][]string)}
}

// MemoryFactory returns a Factory that always hands out m.
func MemoryFactory(m *MemoryClient) Factory {
	return func(ctx context.Context, credentialsJSON []byte, spreadsheetID string) (Client, error) {
		return m, nil
	}
}

// SetError makes every following call fail with err until reset with nil.
func (m *MemoryClient) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Calls returns how many API calls have been made.
func (m *MemoryClient) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// Rows returns a copy of every row of a sheet.
func (m *MemoryClient) Rows(sheet string) [][]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	grid := m.grids[sheet]
	out := make([][]string, len(grid))
	for i, row := range grid {
		out[i] = append([]string(nil), row...)
	}
	return out
}

// SetRows replaces a sheet's contents.
func (m *MemoryClient) SetRows(sheet string, rows [][]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	grid := make([][]string, len(rows))
	for i, row := range rows {
		grid[i] = append([]string(nil), row...)
	}
	m.grids[sheet] = grid
}

func (m *MemoryClient) Values(ctx context.Context, rng Range) ([][]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, &APIError{Op: "get", Range: rng.String(), Err: m.err}
	}

	grid := m.grids[rng.Sheet]
	first := max(rng.StartRow, 1)
	last := len(grid)
	if rng.EndRow > 0 && rng.EndRow < last {
		last = rng.EndRow
	}

	var out [][]string
	for r := first; r <= last; r++ {
		row := grid[r-1]
		var cells []string
		for c := rng.StartCol; c <= rng.EndCol && c < len(row); c++ {
			cells = append(cells, row[c])
		}
		out = append(out, trimRight(cells))
	}
	// The API omits trailing empty rows.
	for len(out) > 0 && len(out[len(out)-1]) == 0 {
		out = out[:len(out)-1]
	}
	return out, nil
}

func (m *MemoryClient) Update(ctx context.Context, rng Range, rows [][]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return &APIError{Op: "update", Range: rng.String(), Err: m.err}
	}
	m.write(rng.Sheet, max(rng.StartRow, 1), rng.StartCol, rows)
	return nil
}

func (m *MemoryClient) Append(ctx context.Context, rng Range, rows [][]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return &APIError{Op: "append", Range: rng.String(), Err: m.err}
	}

	grid := m.grids[rng.Sheet]
	next := 1
	for r := len(grid); r > 0; r-- {
		if len(trimRight(grid[r-1])) > 0 {
			next = r + 1
			break
		}
	}
	m.write(rng.Sheet, next, rng.StartCol, rows)
	return nil
}

// write must be called with mu held.
func (m *MemoryClient) write(sheet string, startRow, startCol int, rows [][]string) {
	grid := m.grids[sheet]
	for i, row := range rows {
		r := startRow + i
		for len(grid) < r {
			grid = append(grid, nil)
		}
		target := grid[r-1]
		for len(target) < startCol+len(row) {
			target = append(target, "")
		}
		copy(target[startCol:], row)
		grid[r-1] = target
	}
	m.grids[sheet] = grid
}

func trimRight(cells []string) []string {
	end := len(cells)
	for end > 0 && cells[end-1] == "" {
		end--
	}
	return cells[:end]
}
