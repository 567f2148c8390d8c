package domain

import (
	"context"
	"time"
)

// ReminderKind identifies which of the two reminders a message is.
type ReminderKind string

const (
	ReminderDayBefore ReminderKind = "day_before"
	ReminderDayOf     ReminderKind = "day_of"
)

// DeliveryMode tells the messaging provider whether to send now or at SendAt.
type DeliveryMode string

const (
	DeliveryImmediate DeliveryMode = "immediate"
	DeliveryScheduled DeliveryMode = "scheduled"
)

// Volunteer is one non-waitlisted row of the roster.
type Volunteer struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// OutboundMessage is a single text message ready for submission.
// SendAt is only honored when Mode is DeliveryScheduled.
type OutboundMessage struct {
	To     string
	Body   string
	Mode   DeliveryMode
	SendAt time.Time
}

// SMSSender submits text messages to a messaging provider (infrastructure port).
type SMSSender interface {
	Send(ctx context.Context, msg OutboundMessage) (messageID string, err error)
}

// SendStatus is the outcome of one planned reminder.
type SendStatus string

const (
	StatusSent      SendStatus = "sent"
	StatusScheduled SendStatus = "scheduled"
	StatusSkipped   SendStatus = "skipped"
	StatusFailed    SendStatus = "failed"
)

// SendResult reports what happened to one reminder for one volunteer.
// swagger:model SendResult
type SendResult struct {
	Name      string       `json:"name"`
	Phone     string       `json:"phone,omitempty"`
	Kind      ReminderKind `json:"kind"`
	SendAt    time.Time    `json:"send_at"`
	Status    SendStatus   `json:"status"`
	MessageID string       `json:"message_id,omitempty"`
	Error     string       `json:"error,omitempty"`
}

// ReminderSummary aggregates a scheduling run. Partial failure is normal.
// swagger:model ReminderSummary
type ReminderSummary struct {
	RunID      string       `json:"run_id"`
	Volunteers int          `json:"volunteers"`
	Sent       int          `json:"sent"`
	Scheduled  int          `json:"scheduled"`
	Skipped    int          `json:"skipped"`
	Failed     int          `json:"failed"`
	Results    []SendResult `json:"results"`
	// Err joins every per-message failure; nil when nothing failed.
	Err error `json:"-"`
}

// ReminderRequest describes one reminder scheduling run.
type ReminderRequest struct {
	RosterURL  string
	EventName  string
	EventStart string
}

// ReminderService schedules the volunteer reminder texts for an event.
type ReminderService interface {
	ScheduleReminders(ctx context.Context, req ReminderRequest) (*ReminderSummary, error)
}
