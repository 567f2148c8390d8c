package sms

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"

	"carpoolreminders/internal/domain"
)

// scheduleTypeFixed is the only schedule type the Twilio Messages API accepts.
const scheduleTypeFixed = "fixed"

// TwilioConfig holds credentials and sender identity for Twilio.
type TwilioConfig struct {
	AccountSID          string
	AuthToken           string
	MessagingServiceSID string
	FromNumber          string
}

// SenderConfig holds configuration for creating an SMS sender.
type SenderConfig struct {
	Provider string
	Twilio   TwilioConfig
}

// NewSender creates a sender from config. Provider "twilio" uses the Twilio
// REST API; "noop" or unknown only logs.
func NewSender(config SenderConfig, logger *slog.Logger) (domain.SMSSender, error) {
	switch config.Provider {
	case "twilio":
		tc := config.Twilio
		if tc.AccountSID == "" || tc.AuthToken == "" {
			return nil, errors.New("twilio account SID and auth token are required")
		}
		if tc.MessagingServiceSID == "" && tc.FromNumber == "" {
			return nil, errors.New("twilio needs a messaging service SID or a from number")
		}
		client := twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: tc.AccountSID,
			Password: tc.AuthToken,
		})
		return &twilioSender{api: client.Api, cfg: tc, logger: logger}, nil
	case "noop":
		return &noopSender{logger: logger}, nil
	default:
		logger.Warn("unknown sms provider, using noop", "provider", config.Provider)
		return &noopSender{logger: logger}, nil
	}
}

// messageCreator is the part of the Twilio API service used here.
type messageCreator interface {
	CreateMessage(params *twilioapi.CreateMessageParams) (*twilioapi.ApiV2010Message, error)
}

type twilioSender struct {
	api    messageCreator
	cfg    TwilioConfig
	logger *slog.Logger
}

func (s *twilioSender) Send(ctx context.Context, msg domain.OutboundMessage) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	params, err := buildMessageParams(s.cfg, msg)
	if err != nil {
		return "", err
	}
	resp, err := s.api.CreateMessage(params)
	if err != nil {
		return "", fmt.Errorf("failed to send sms via twilio: %w", err)
	}
	var sid string
	if resp != nil && resp.Sid != nil {
		sid = *resp.Sid
	}
	s.logger.DebugContext(ctx, "sms submitted", "sid", sid, "mode", msg.Mode)
	return sid, nil
}

// buildMessageParams maps a message onto Twilio create-message parameters.
// Scheduled sends require a messaging service.
func buildMessageParams(cfg TwilioConfig, msg domain.OutboundMessage) (*twilioapi.CreateMessageParams, error) {
	params := &twilioapi.CreateMessageParams{}
	params.SetTo(msg.To)
	params.SetBody(msg.Body)
	if cfg.MessagingServiceSID != "" {
		params.SetMessagingServiceSid(cfg.MessagingServiceSID)
	} else {
		params.SetFrom(cfg.FromNumber)
	}

	switch msg.Mode {
	case domain.DeliveryImmediate:
	case domain.DeliveryScheduled:
		if cfg.MessagingServiceSID == "" {
			return nil, errors.New("scheduled sms requires a twilio messaging service SID")
		}
		params.SetScheduleType(scheduleTypeFixed)
		params.SetSendAt(msg.SendAt.UTC())
	default:
		return nil, fmt.Errorf("unknown delivery mode %q", msg.Mode)
	}
	return params, nil
}

type noopSender struct {
	logger *slog.Logger
}

func (n *noopSender) Send(ctx context.Context, msg domain.OutboundMessage) (string, error) {
	n.logger.InfoContext(ctx, "sms would be sent (noop)", "to", msg.To, "mode", msg.Mode, "send_at", msg.SendAt)
	return "noop", nil
}
