package services

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"carpoolreminders/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingHandler keeps every log record for assertions.
type recordingHandler struct {
	mu      sync.Mutex
	records []slog.Record
}

func (h *recordingHandler) Enabled(_ context.Context, _ slog.Level) bool { return true }

func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r.Clone())
	return nil
}

func (h *recordingHandler) WithAttrs(_ []slog.Attr) slog.Handler { return h }

func (h *recordingHandler) WithGroup(_ string) slog.Handler { return h }

func (h *recordingHandler) messages() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, 0, len(h.records))
	for _, r := range h.records {
		out = append(out, r.Message)
	}
	return out
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func signupSheet(records ...[]string) *domain.Sheet {
	return &domain.Sheet{
		Header: domain.NewHeaderIndex([]string{
			"Timestamp",
			" name ",
			"TRANSPORTATION?",
			"If you can provide transportation for others, how many people can you take?",
		}),
		Records: records,
	}
}

func TestClassifySheet(t *testing.T) {
	sheet := signupSheet(
		[]string{"t", "Dana", "I can provide transportation for others", "3 seats"},
		[]string{"t", "  ", "I need transportation provided", ""},
		[]string{"t", "Sam", " i have transportation for myself ", ""},
		[]string{"t", "Riley", "I NEED TRANSPORTATION PROVIDED", "n/a"},
		[]string{"t", "Mo", "Maybe", ""},
		[]string{"t", "Zero", "I can provide transportation for others", "0"},
		[]string{"t", "Blank", "I can provide transportation for others", ""},
		[]string{"t", "Words", "I can provide transportation for others", "a few"},
		[]string{"t", "Short", "I need transportation provided"},
	)
	rec := &recordingHandler{}

	got, err := ClassifySheet(sheet, slog.New(rec))
	require.NoError(t, err)

	assert.Equal(t, []domain.Participant{
		domain.NewDriver("Dana", 3),
		domain.NewSelfTransport("Sam"),
		domain.NewRider("Riley"),
		domain.NewRider("Short"),
	}, got)
	assert.Len(t, rec.messages(), 3, "one warning per dropped driver")
}

func TestClassifySheet_ZeroSeatDriverNeverReachesEngine(t *testing.T) {
	sheet := signupSheet(
		[]string{"t", "D1", "I can provide transportation for others", "0"},
		[]string{"t", "R1", "I need transportation provided", ""},
	)
	participants, err := ClassifySheet(sheet, discardLogger())
	require.NoError(t, err)

	got := Assign(participants, 10)
	assert.Empty(t, got.Cars)
	assert.Equal(t, []string{"R1"}, names(got.Waitlist))
}

func TestClassifySheet_MissingColumns(t *testing.T) {
	sheet := &domain.Sheet{
		Header:  domain.NewHeaderIndex([]string{"Name", "Email"}),
		Records: [][]string{{"Dana", "d@example.com"}},
	}
	_, err := ClassifySheet(sheet, discardLogger())
	require.ErrorIs(t, err, domain.ErrMissingColumn)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), `"Transportation?"`)
	assert.Contains(t, err.Error(), `"If you can provide transportation for others"`)

	_, err = ClassifySheet(nil, discardLogger())
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParseSeatCapacity(t *testing.T) {
	tests := []struct {
		raw    string
		want   int
		wantOK bool
	}{
		{"4", 4, true},
		{" 3 seats ", 3, true},
		{"up to 2!", 2, true},
		{"0", 0, false},
		{"-1", 0, false},
		{"", 0, false},
		{"none", 0, false},
		{"3-4", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := parseSeatCapacity(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
