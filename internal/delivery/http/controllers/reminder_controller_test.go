package controllers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hashicorp/go-multierror"

	"carpoolreminders/internal/delivery/http/helpers"
	"carpoolreminders/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeReminderService implements domain.ReminderService for handler tests.
type fakeReminderService struct {
	summary *domain.ReminderSummary
	err     error
	lastReq *domain.ReminderRequest
}

func (f *fakeReminderService) ScheduleReminders(ctx context.Context, req domain.ReminderRequest) (*domain.ReminderSummary, error) {
	f.lastReq = &req
	if f.err != nil {
		return nil, f.err
	}
	return f.summary, nil
}

func TestScheduleReminders(t *testing.T) {
	svc := &fakeReminderService{summary: &domain.ReminderSummary{RunID: "run-9", Volunteers: 1, Scheduled: 2, Results: []domain.SendResult{}}}
	c := NewReminderController(testLogger, svc)
	body := `{"roster_url":"https://docs.example.com/roster.csv","event_name":"Cleanup","event_start":"2025-03-05 13:00"}`
	rr := httptest.NewRecorder()

	c.ScheduleReminders(rr, httptest.NewRequest(http.MethodPost, "/reminders", bytes.NewBufferString(body)))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, domain.ReminderRequest{
		RosterURL:  "https://docs.example.com/roster.csv",
		EventName:  "Cleanup",
		EventStart: "2025-03-05 13:00",
	}, *svc.lastReq)
	data, apiErr := decodeResponse(t, rr)
	require.Nil(t, apiErr)
	assert.Equal(t, "run-9", data["run_id"])
	assert.EqualValues(t, 2, data["scheduled"])
}

func TestScheduleReminders_PartialFailureIsOK(t *testing.T) {
	var failures error
	failures = multierror.Append(failures, errors.New("Ann day_of: 21211 invalid number"))
	svc := &fakeReminderService{summary: &domain.ReminderSummary{
		RunID: "run-3", Volunteers: 2, Sent: 1, Scheduled: 2, Failed: 1,
		Results: []domain.SendResult{{Name: "Ann", Kind: domain.ReminderDayOf, Status: domain.StatusFailed, Error: "21211 invalid number"}},
		Err:     failures,
	}}
	c := NewReminderController(testLogger, svc)
	rr := httptest.NewRecorder()

	c.ScheduleReminders(rr, httptest.NewRequest(http.MethodPost, "/reminders", bytes.NewBufferString(`{"event_start":"2025-03-05T13:00:00Z"}`)))

	require.Equal(t, http.StatusOK, rr.Code)
	data, apiErr := decodeResponse(t, rr)
	require.Nil(t, apiErr)
	assert.EqualValues(t, 1, data["failed"])
	assert.NotContains(t, data, "Err")
}

func TestScheduleReminders_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
		wantCode   string
	}{
		{"missing event_start", `{"event_name":"Cleanup"}`, nil, http.StatusBadRequest, helpers.ErrCodeBadRequest},
		{"bad roster url", `{"event_start":"2025-03-05 13:00","roster_url":"roster.csv"}`, nil, http.StatusBadRequest, helpers.ErrCodeBadRequest},
		{"malformed json", `{"event_start":`, nil, http.StatusBadRequest, helpers.ErrCodeBadRequest},
		{"service rejects", `{"event_start":"yesterday"}`, fmt.Errorf("%w: bad event_start", domain.ErrInvalidInput), http.StatusBadRequest, helpers.ErrCodeBadRequest},
		{"roster fetch fails", `{"event_start":"2025-03-05 13:00"}`, errors.New("fetch roster: 404"), http.StatusInternalServerError, helpers.ErrCodeInternalError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewReminderController(testLogger, &fakeReminderService{err: tt.serviceErr})
			rr := httptest.NewRecorder()

			c.ScheduleReminders(rr, httptest.NewRequest(http.MethodPost, "/reminders", bytes.NewBufferString(tt.body)))

			assert.Equal(t, tt.wantStatus, rr.Code)
			_, apiErr := decodeResponse(t, rr)
			require.NotNil(t, apiErr)
			assert.Equal(t, tt.wantCode, apiErr.Code)
		})
	}
}
