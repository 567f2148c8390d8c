package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"carpoolreminders/internal/domain"
)

// CarpoolConfig holds settings for carpool runs.
type CarpoolConfig struct {
	DefaultSheetURL  string
	OrganizerAddress string
	Timeout          time.Duration
}

type carpoolService struct {
	fetcher      domain.SheetFetcher
	emailService domain.EmailService
	logger       *slog.Logger
	cfg          CarpoolConfig
}

// NewCarpoolService returns a CarpoolService reading sign-ups through fetcher.
// emailService may be nil when organizer notifications are not configured.
func NewCarpoolService(fetcher domain.SheetFetcher, emailService domain.EmailService, logger *slog.Logger, cfg CarpoolConfig) domain.CarpoolService {
	return &carpoolService{
		fetcher:      fetcher,
		emailService: emailService,
		logger:       logger,
		cfg:          cfg,
	}
}

func (s *carpoolService) BuildCarpools(ctx context.Context, req domain.CarpoolRequest) (*domain.CarpoolRun, error) {
	if req.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be a positive integer, got %d", domain.ErrInvalidInput, req.Capacity)
	}
	sheetURL := strings.TrimSpace(req.SheetURL)
	if sheetURL == "" {
		sheetURL = s.cfg.DefaultSheetURL
	}
	if sheetURL == "" {
		return nil, fmt.Errorf("%w: sheet_url is required", domain.ErrInvalidInput)
	}

	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	run := &domain.CarpoolRun{RunID: uuid.NewString(), Capacity: req.Capacity}
	logger := s.logger.With("run_id", run.RunID)

	sheet, err := s.fetcher.Fetch(ctx, sheetURL)
	if err != nil {
		return nil, fmt.Errorf("fetch sign-up sheet: %w", err)
	}
	participants, err := ClassifySheet(sheet, logger)
	if err != nil {
		return nil, err
	}

	run.Assignment = Assign(participants, req.Capacity)
	run.Placed = run.Assignment.PlacedCount()
	logger.Info("carpools assigned",
		"participants", len(participants),
		"capacity", req.Capacity,
		"placed", run.Placed,
		"cars", len(run.Assignment.Cars),
		"waitlist", len(run.Assignment.Waitlist),
	)

	if req.Notify {
		run.Notified = s.notify(ctx, logger, run)
	}
	return run, nil
}

// notify emails the organizer; failure is logged and does not fail the run.
func (s *carpoolService) notify(ctx context.Context, logger *slog.Logger, run *domain.CarpoolRun) bool {
	if s.emailService == nil || s.cfg.OrganizerAddress == "" {
		logger.Warn("organizer notification requested but not configured")
		return false
	}
	err := s.emailService.SendCarpoolSummary(ctx, &domain.CarpoolSummaryEmailData{
		Email:      s.cfg.OrganizerAddress,
		RunID:      run.RunID,
		Capacity:   run.Capacity,
		Placed:     run.Placed,
		Assignment: run.Assignment,
	})
	if err != nil {
		logger.Error("organizer notification failed", "err", err)
		return false
	}
	return true
}
