package domain

import (
	"context"
	"strings"
)

// Column headers on the sign-up sheet and the volunteer roster.
const (
	ColumnName           = "Name"
	ColumnTransportation = "Transportation?"
	ColumnSeats          = "If you can provide transportation for others"
	ColumnPhone          = "Phone"
	ColumnWaitlist       = "Waitlist"
)

// Sheet is a parsed tabular source: one header row and the data records below it.
type Sheet struct {
	Header  HeaderIndex
	Records [][]string
}

// HeaderIndex maps normalized header text to column position. It is built once
// per sheet and is read-only afterwards.
type HeaderIndex struct {
	names     []string
	positions map[string]int
}

// NewHeaderIndex builds an index over headers. When two headers normalize to
// the same text, the leftmost one wins.
func NewHeaderIndex(headers []string) HeaderIndex {
	idx := HeaderIndex{
		names:     make([]string, len(headers)),
		positions: make(map[string]int, len(headers)),
	}
	for i, h := range headers {
		key := NormalizeHeader(h)
		idx.names[i] = key
		if _, seen := idx.positions[key]; !seen {
			idx.positions[key] = i
		}
	}
	return idx
}

// Lookup returns the column for name. An exact normalized match is preferred;
// otherwise the first header starting with name is used, so long form questions
// such as "If you can provide transportation for others, how many seats?" still resolve.
func (h HeaderIndex) Lookup(name string) (int, bool) {
	key := NormalizeHeader(name)
	if key == "" {
		return 0, false
	}
	if i, ok := h.positions[key]; ok {
		return i, true
	}
	for i, n := range h.names {
		if strings.HasPrefix(n, key) {
			return i, true
		}
	}
	return 0, false
}

// Len returns the number of columns.
func (h HeaderIndex) Len() int {
	return len(h.names)
}

// NormalizeHeader lowercases s, trims it and collapses inner whitespace.
func NormalizeHeader(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// CellAt returns the trimmed value at column i, or "" when the record is short.
func CellAt(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// SheetFetcher loads a published spreadsheet (or a test double).
type SheetFetcher interface {
	Fetch(ctx context.Context, url string) (*Sheet, error)
}
