package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders message content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
	// RenderText renders a plain text template, used for SMS bodies.
	RenderText(templateName string, data any) (string, error)
}

// CarpoolSummaryEmailData holds data for the organizer summary email.
type CarpoolSummaryEmailData struct {
	Email      string
	RunID      string
	Capacity   int
	Placed     int
	Assignment Assignment
}

// ReminderTextData holds data for a volunteer reminder text.
type ReminderTextData struct {
	Name      string
	EventName string
	Day       string
	Time      string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendCarpoolSummary(ctx context.Context, data *CarpoolSummaryEmailData) error
}
