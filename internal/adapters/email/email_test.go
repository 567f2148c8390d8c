package email

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"

	"carpoolreminders/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleSummary() *domain.CarpoolSummaryEmailData {
	return &domain.CarpoolSummaryEmailData{
		Email:    "organizer@example.com",
		RunID:    "run-1",
		Capacity: 5,
		Placed:   4,
		Assignment: domain.Assignment{
			SelfTransport: []domain.Participant{domain.NewSelfTransport("Sam")},
			Cars: []domain.Car{{
				Driver:     domain.NewDriver("Dana <3", 2),
				Passengers: []domain.Participant{domain.NewRider("Riley"), domain.NewRider("Robin")},
			}},
			Waitlist: []domain.Participant{},
		},
	}
}

func TestTemplateRenderer_CarpoolSummary(t *testing.T) {
	subject, html, text, err := NewTemplateRenderer().Render("carpool_summary", sampleSummary())
	require.NoError(t, err)

	assert.Equal(t, "Carpool groups: 4 of 5 spots filled", subject)
	assert.Contains(t, html, "Dana &lt;3")
	assert.Contains(t, html, "<li>Riley</li>")
	assert.Contains(t, text, "Driver: Dana <3 (2 seats)")
	assert.Contains(t, text, "    - Robin")
	assert.Contains(t, text, "Waitlist (0):\n  (none)")
}

func TestTemplateRenderer_ReminderTexts(t *testing.T) {
	r := NewTemplateRenderer()
	data := domain.ReminderTextData{Name: "Ann", EventName: "Spring Cleanup", Day: "Wednesday, March 5", Time: "1:00 PM"}

	body, err := r.RenderText("reminder_day_before", data)
	require.NoError(t, err)
	assert.Equal(t, "Hi Ann! Reminder: you're volunteering at Spring Cleanup tomorrow, Wednesday, March 5 at 1:00 PM. Reply STOP to opt out.", body)

	body, err = r.RenderText("reminder_day_of", data)
	require.NoError(t, err)
	assert.Contains(t, body, "see you today at 1:00 PM for Spring Cleanup")
}

func TestTemplateRenderer_UnknownTemplate(t *testing.T) {
	_, _, _, err := NewTemplateRenderer().Render("nope", nil)
	require.Error(t, err)
	_, err = NewTemplateRenderer().RenderText("nope", nil)
	require.Error(t, err)
}

type fakeSES struct {
	got *ses.SendEmailInput
	err error
}

func (f *fakeSES) SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	f.got = params
	if f.err != nil {
		return nil, f.err
	}
	return &ses.SendEmailOutput{MessageId: aws.String("msg-1")}, nil
}

func TestSESMailer_Send(t *testing.T) {
	client := &fakeSES{}
	m := &sesMailer{client: client, fromAddress: "noreply@example.com", fromName: "Carpools", logger: testLogger()}

	require.NoError(t, m.Send(context.Background(), "o@example.com", "Subj", "<p>hi</p>", ""))
	require.NotNil(t, client.got)
	assert.Equal(t, "Carpools <noreply@example.com>", aws.ToString(client.got.Source))
	assert.Equal(t, []string{"o@example.com"}, client.got.Destination.ToAddresses)
	assert.Equal(t, "Subj", aws.ToString(client.got.Message.Subject.Data))
	assert.Equal(t, "<p>hi</p>", aws.ToString(client.got.Message.Body.Html.Data))
	assert.Nil(t, client.got.Message.Body.Text)

	client.err = errors.New("throttled")
	err := m.Send(context.Background(), "o@example.com", "Subj", "", "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SES")
}

func TestNewMailer(t *testing.T) {
	m, err := NewMailer(MailerConfig{Provider: "noop"}, testLogger())
	require.NoError(t, err)
	require.NoError(t, m.Send(context.Background(), "a@example.com", "s", "", ""))

	m, err = NewMailer(MailerConfig{Provider: "carrier-pigeon"}, testLogger())
	require.NoError(t, err)
	assert.IsType(t, &noopMailer{}, m)

	_, err = NewMailer(MailerConfig{Provider: "ses"}, testLogger())
	require.Error(t, err)

	m, err = NewMailer(MailerConfig{Provider: "ses", FromAddress: "noreply@example.com", SES: SESConfig{Region: "us-east-1"}}, testLogger())
	require.NoError(t, err)
	assert.IsType(t, &sesMailer{}, m)
}
