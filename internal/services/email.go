package services

import (
	"context"
	"fmt"
	"log/slog"

	"carpoolreminders/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, logger: logger}
}

// SendCarpoolSummary sends the organizer summary using the "carpool_summary" template.
func (s *emailService) SendCarpoolSummary(ctx context.Context, data *domain.CarpoolSummaryEmailData) error {
	if data == nil {
		return fmt.Errorf("carpool summary data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("carpool_summary", data)
	if err != nil {
		return fmt.Errorf("failed to render carpool_summary template: %w", err)
	}
	if err := s.mailer.Send(ctx, data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send carpool summary email: %w", err)
	}
	s.logger.InfoContext(ctx, "carpool summary sent", "to", data.Email, "run_id", data.RunID)
	return nil
}
