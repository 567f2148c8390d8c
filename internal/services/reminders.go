package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/sourcegraph/conc/pool"

	"carpoolreminders/internal/domain"
)

// Messaging provider scheduling window: a scheduled send must be at least
// MinScheduleLead and at most MaxScheduleLead ahead of now.
const (
	MinScheduleLead = 15 * time.Minute
	MaxScheduleLead = 35 * 24 * time.Hour
)

// EventStartLayout is the local-time layout accepted besides RFC 3339.
const EventStartLayout = "2006-01-02 15:04"

const defaultEventName = "our event"

// reminderPlan describes one of the two reminders every volunteer receives.
type reminderPlan struct {
	kind     domain.ReminderKind
	lead     time.Duration
	template string
	// catchUp sends immediately when the reminder time has already passed
	// but the event has not started yet.
	catchUp bool
}

var reminderPlans = []reminderPlan{
	{kind: domain.ReminderDayBefore, lead: 24 * time.Hour, template: "reminder_day_before"},
	{kind: domain.ReminderDayOf, lead: 2 * time.Hour, template: "reminder_day_of", catchUp: true},
}

var truthyWaitlist = map[string]struct{}{
	"yes": {}, "y": {}, "true": {}, "x": {}, "1": {}, "waitlist": {}, "waitlisted": {},
}

// ReminderConfig holds settings for reminder scheduling.
type ReminderConfig struct {
	DefaultRosterURL string
	Location         *time.Location
	PhoneRegion      string
	Concurrency      int
	Timeout          time.Duration
}

type reminderService struct {
	fetcher  domain.SheetFetcher
	sender   domain.SMSSender
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
	cfg      ReminderConfig
	now      func() time.Time
}

// NewReminderService returns a ReminderService that reads the roster with fetcher,
// renders texts with renderer and submits them through sender.
func NewReminderService(fetcher domain.SheetFetcher, sender domain.SMSSender, renderer domain.EmailTemplateRenderer, logger *slog.Logger, cfg ReminderConfig) domain.ReminderService {
	return newReminderService(fetcher, sender, renderer, logger, cfg)
}

func newReminderService(fetcher domain.SheetFetcher, sender domain.SMSSender, renderer domain.EmailTemplateRenderer, logger *slog.Logger, cfg ReminderConfig) *reminderService {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.PhoneRegion == "" {
		cfg.PhoneRegion = "US"
	}
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	return &reminderService{
		fetcher:  fetcher,
		sender:   sender,
		renderer: renderer,
		logger:   logger,
		cfg:      cfg,
		now:      time.Now,
	}
}

// ParseEventStart accepts RFC 3339 or EventStartLayout interpreted in loc.
func ParseEventStart(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: event_start is required", domain.ErrInvalidInput)
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(EventStartLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: event_start %q must be RFC 3339 or %q", domain.ErrInvalidInput, s, EventStartLayout)
	}
	return t, nil
}

// planDelivery decides how a reminder due at sendAt is submitted. send is false
// when the reminder should be skipped.
func planDelivery(now, sendAt time.Time, catchUp bool) (mode domain.DeliveryMode, send bool, err error) {
	lead := sendAt.Sub(now)
	switch {
	case lead <= 0 && !catchUp:
		return "", false, nil
	case lead < MinScheduleLead:
		return domain.DeliveryImmediate, true, nil
	case lead > MaxScheduleLead:
		return "", false, fmt.Errorf("%w: %s ahead exceeds %s", domain.ErrOutsideScheduleWindow, lead.Round(time.Minute), MaxScheduleLead)
	default:
		return domain.DeliveryScheduled, true, nil
	}
}

// rosterEntry is one roster row that survived the waitlist filter.
type rosterEntry struct {
	name     string
	rawPhone string
}

func readRoster(sheet *domain.Sheet) ([]rosterEntry, error) {
	if sheet == nil {
		return nil, fmt.Errorf("%w: no roster", domain.ErrInvalidInput)
	}
	pos, err := requireColumns(sheet.Header, domain.ColumnName, domain.ColumnPhone)
	if err != nil {
		return nil, err
	}
	waitCol, hasWait := sheet.Header.Lookup(domain.ColumnWaitlist)

	entries := make([]rosterEntry, 0, len(sheet.Records))
	for _, rec := range sheet.Records {
		name := domain.CellAt(rec, pos[0])
		if name == "" {
			continue
		}
		if hasWait {
			if _, waitlisted := truthyWaitlist[strings.ToLower(domain.CellAt(rec, waitCol))]; waitlisted {
				continue
			}
		}
		entries = append(entries, rosterEntry{name: name, rawPhone: domain.CellAt(rec, pos[1])})
	}
	return entries, nil
}

// pendingSend pairs a planned message with the slot its result goes in.
type pendingSend struct {
	slot int
	msg  domain.OutboundMessage
}

func (s *reminderService) ScheduleReminders(ctx context.Context, req domain.ReminderRequest) (*domain.ReminderSummary, error) {
	start, err := ParseEventStart(req.EventStart, s.cfg.Location)
	if err != nil {
		return nil, err
	}
	now := s.now()
	if !start.After(now) {
		return nil, fmt.Errorf("%w: event_start %s is not in the future", domain.ErrInvalidInput, start.Format(time.RFC3339))
	}
	rosterURL := strings.TrimSpace(req.RosterURL)
	if rosterURL == "" {
		rosterURL = s.cfg.DefaultRosterURL
	}
	if rosterURL == "" {
		return nil, fmt.Errorf("%w: roster_url is required", domain.ErrInvalidInput)
	}
	eventName := strings.TrimSpace(req.EventName)
	if eventName == "" {
		eventName = defaultEventName
	}

	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	sheet, err := s.fetcher.Fetch(ctx, rosterURL)
	if err != nil {
		return nil, fmt.Errorf("fetch roster: %w", err)
	}
	roster, err := readRoster(sheet)
	if err != nil {
		return nil, err
	}

	summary := &domain.ReminderSummary{
		RunID:      uuid.NewString(),
		Volunteers: len(roster),
		Results:    make([]domain.SendResult, 0, len(roster)*len(reminderPlans)),
	}
	logger := s.logger.With("run_id", summary.RunID)
	localStart := start.In(s.cfg.Location)

	var pending []pendingSend
	for _, entry := range roster {
		phone, phoneErr := NormalizePhone(entry.rawPhone, s.cfg.PhoneRegion)
		for _, plan := range reminderPlans {
			res := domain.SendResult{
				Name:   entry.name,
				Phone:  phone,
				Kind:   plan.kind,
				SendAt: start.Add(-plan.lead),
			}
			if phoneErr != nil {
				res.Phone = entry.rawPhone
				res.Status = domain.StatusFailed
				res.Error = phoneErr.Error()
				summary.Results = append(summary.Results, res)
				continue
			}
			mode, send, err := planDelivery(now, res.SendAt, plan.catchUp)
			if err != nil {
				res.Status = domain.StatusFailed
				res.Error = err.Error()
				summary.Results = append(summary.Results, res)
				continue
			}
			if !send {
				res.Status = domain.StatusSkipped
				summary.Results = append(summary.Results, res)
				continue
			}
			body, err := s.renderer.RenderText(plan.template, domain.ReminderTextData{
				Name:      entry.name,
				EventName: eventName,
				Day:       localStart.Format("Monday, January 2"),
				Time:      localStart.Format("3:04 PM"),
			})
			if err != nil {
				return nil, fmt.Errorf("render %s: %w", plan.template, err)
			}
			summary.Results = append(summary.Results, res)
			pending = append(pending, pendingSend{
				slot: len(summary.Results) - 1,
				msg:  domain.OutboundMessage{To: phone, Body: body, Mode: mode, SendAt: res.SendAt},
			})
		}
	}

	s.submit(ctx, pending, summary.Results)

	var merr *multierror.Error
	for _, res := range summary.Results {
		switch res.Status {
		case domain.StatusSent:
			summary.Sent++
		case domain.StatusScheduled:
			summary.Scheduled++
		case domain.StatusSkipped:
			summary.Skipped++
		case domain.StatusFailed:
			summary.Failed++
			merr = multierror.Append(merr, fmt.Errorf("%s (%s): %s", res.Name, res.Kind, res.Error))
			logger.Warn("reminder failed", "name", res.Name, "kind", res.Kind, "err", res.Error)
		}
	}
	summary.Err = merr.ErrorOrNil()

	logger.Info("reminders processed",
		"volunteers", summary.Volunteers,
		"sent", summary.Sent,
		"scheduled", summary.Scheduled,
		"skipped", summary.Skipped,
		"failed", summary.Failed,
	)
	return summary, nil
}

// submit sends every pending message concurrently and records each outcome in
// its slot. A failed send never cancels the others.
func (s *reminderService) submit(ctx context.Context, pending []pendingSend, results []domain.SendResult) {
	p := pool.New().WithMaxGoroutines(s.cfg.Concurrency)
	for _, ps := range pending {
		p.Go(func() {
			res := &results[ps.slot]
			id, err := s.sender.Send(ctx, ps.msg)
			if err != nil {
				res.Status = domain.StatusFailed
				res.Error = err.Error()
				return
			}
			res.MessageID = id
			if ps.msg.Mode == domain.DeliveryScheduled {
				res.Status = domain.StatusScheduled
			} else {
				res.Status = domain.StatusSent
			}
		})
	}
	p.Wait()
}
