package services

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"carpoolreminders/internal/domain"
)

// signupColumns holds the resolved positions of the sign-up sheet columns.
type signupColumns struct {
	name, transport, seats int
}

// requireColumns resolves every header in names or reports all that are missing.
func requireColumns(h domain.HeaderIndex, names ...string) ([]int, error) {
	positions := make([]int, len(names))
	var missing []string
	for i, name := range names {
		pos, ok := h.Lookup(name)
		if !ok {
			missing = append(missing, strconv.Quote(name))
			continue
		}
		positions[i] = pos
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrMissingColumn, strings.Join(missing, ", "))
	}
	return positions, nil
}

// ClassifySheet turns sign-up rows into participants, in row order. Rows with a
// blank name or an unrecognized transportation answer are skipped silently;
// driver rows without a usable seat count are skipped with a warning. A sheet
// missing any required column is rejected outright.
func ClassifySheet(sheet *domain.Sheet, logger *slog.Logger) ([]domain.Participant, error) {
	if sheet == nil {
		return nil, fmt.Errorf("%w: no sheet", domain.ErrInvalidInput)
	}
	pos, err := requireColumns(sheet.Header, domain.ColumnName, domain.ColumnTransportation, domain.ColumnSeats)
	if err != nil {
		return nil, err
	}
	cols := signupColumns{name: pos[0], transport: pos[1], seats: pos[2]}

	participants := make([]domain.Participant, 0, len(sheet.Records))
	for i, rec := range sheet.Records {
		p, ok := classifyRecord(rec, cols)
		if !ok {
			continue
		}
		if p.Category == domain.CategoryDriver && p.SeatCapacity <= 0 {
			logger.Warn("dropping driver without a valid seat count",
				"row", i+2,
				"name", p.Name,
				"seats", domain.CellAt(rec, cols.seats),
			)
			continue
		}
		participants = append(participants, p)
	}
	return participants, nil
}

// classifyRecord converts one record. ok is false for rows that are not
// participants at all; a returned driver may still carry an invalid seat count.
func classifyRecord(rec []string, cols signupColumns) (domain.Participant, bool) {
	name := domain.CellAt(rec, cols.name)
	if name == "" {
		return domain.Participant{}, false
	}
	switch cat := domain.ParseCategory(domain.CellAt(rec, cols.transport)); cat {
	case domain.CategoryDriver:
		seats, _ := parseSeatCapacity(domain.CellAt(rec, cols.seats))
		return domain.NewDriver(name, seats), true
	case domain.CategorySelfTransport:
		return domain.NewSelfTransport(name), true
	case domain.CategoryRider:
		return domain.NewRider(name), true
	case domain.CategoryUnrecognized:
		return domain.Participant{}, false
	default:
		return domain.Participant{}, false
	}
}

// parseSeatCapacity keeps only digits and '-' from raw and parses the rest.
// ok is false unless the result is a positive integer.
func parseSeatCapacity(raw string) (int, bool) {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '-' {
			return r
		}
		return -1
	}, raw)
	n, err := strconv.Atoi(cleaned)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
