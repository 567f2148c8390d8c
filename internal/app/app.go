// Package app wires adapters and services from configuration.
package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"carpoolreminders/config"
	"carpoolreminders/internal/adapters/email"
	"carpoolreminders/internal/adapters/sheet"
	"carpoolreminders/internal/adapters/sms"
	"carpoolreminders/internal/domain"
	"carpoolreminders/internal/services"
)

// Services bundles the application services built from one Config.
type Services struct {
	Carpools  domain.CarpoolService
	Reminders domain.ReminderService
}

// New builds the adapters and services described by cfg.
func New(cfg *config.Config, logger *slog.Logger) (*Services, error) {
	fetcher := sheet.NewHTTPFetcher(&http.Client{Timeout: cfg.RequestTimeout})
	renderer := email.NewTemplateRenderer()

	sender, err := sms.NewSender(sms.SenderConfig{
		Provider: cfg.SMS.Provider,
		Twilio: sms.TwilioConfig{
			AccountSID:          cfg.SMS.AccountSID,
			AuthToken:           cfg.SMS.AuthToken,
			MessagingServiceSID: cfg.SMS.MessagingServiceSID,
			FromNumber:          cfg.SMS.FromNumber,
		},
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("sms sender: %w", err)
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.Region,
			AccessKeyID:        cfg.Email.AccessKeyID,
			SecretAccessKey:    cfg.Email.SecretAccessKey,
			InsecureSkipVerify: cfg.Email.InsecureSkipVerify,
		},
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("mailer: %w", err)
	}
	emailService := services.NewEmailService(mailer, renderer, logger)

	return &Services{
		Carpools: services.NewCarpoolService(fetcher, emailService, logger, services.CarpoolConfig{
			DefaultSheetURL:  cfg.SheetCSVURL,
			OrganizerAddress: cfg.Email.OrganizerAddress,
			Timeout:          cfg.RequestTimeout,
		}),
		Reminders: services.NewReminderService(fetcher, sender, renderer, logger, services.ReminderConfig{
			DefaultRosterURL: cfg.RosterCSVURL,
			Location:         cfg.EventLocation,
			PhoneRegion:      cfg.PhoneRegion,
			Concurrency:      cfg.SendConcurrency,
			Timeout:          cfg.RequestTimeout,
		}),
	}, nil
}
