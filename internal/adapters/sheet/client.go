package sheet

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"carpoolreminders/internal/domain"
)

// maxSheetBytes caps how much of a published sheet is read.
const maxSheetBytes = 10 << 20

type httpFetcher struct {
	client *http.Client
}

// NewHTTPFetcher returns a fetcher that downloads a published CSV export
// (e.g. a Google Sheets "publish to web" link).
func NewHTTPFetcher(client *http.Client) domain.SheetFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpFetcher{client: client}
}

func (f *httpFetcher) Fetch(ctx context.Context, url string) (*domain.Sheet, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "text/csv")
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sheet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sheet source returned status: %d", resp.StatusCode)
	}

	sheet, err := ParseCSV(io.LimitReader(resp.Body, maxSheetBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to parse sheet: %w", err)
	}
	return sheet, nil
}

// ParseCSV reads a header row followed by data records. Rows may have
// differing lengths.
func ParseCSV(r io.Reader) (*domain.Sheet, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: sheet has no header row", domain.ErrInvalidInput)
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	var records [][]string
	for {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}
		records = append(records, rec)
	}
	return &domain.Sheet{Header: domain.NewHeaderIndex(header), Records: records}, nil
}
