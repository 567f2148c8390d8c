package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"carpoolreminders/internal/delivery/http/helpers"
	"carpoolreminders/internal/domain"
)

// ScheduleRemindersRequest is the request body for POST /reminders.
type ScheduleRemindersRequest struct {
	RosterURL  string `json:"roster_url"`
	EventName  string `json:"event_name"`
	EventStart string `json:"event_start" example:"2025-03-05T13:00:00-05:00"`
}

// Validate implements Validator.
func (s ScheduleRemindersRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(s.EventStart) == "" {
		errs = append(errs, "event_start is required")
	}
	if s.RosterURL != "" && !isHTTPURL(s.RosterURL) {
		errs = append(errs, "roster_url must be an http(s) URL")
	}
	return errs
}

// ScheduleRemindersSuccessResponse is the success response envelope for POST /reminders (200).
type ScheduleRemindersSuccessResponse struct {
	Data  *domain.ReminderSummary `json:"data"`
	Error *helpers.APIError       `json:"error"`
}

type ReminderController struct {
	Logger  *slog.Logger
	Service domain.ReminderService
}

func NewReminderController(logger *slog.Logger, svc domain.ReminderService) *ReminderController {
	return &ReminderController{
		Logger:  logger,
		Service: svc,
	}
}

// ScheduleReminders godoc
// @Summary Schedule volunteer reminders
// @Description Reads the volunteer roster and sends or schedules a day-before and a day-of text for every volunteer not on the waitlist. Individual send failures are reported per message; the request still succeeds.
// @Tags reminders
// @Accept json
// @Produce json
// @Param body body ScheduleRemindersRequest true "Event details and optional roster override"
// @Success 200 {object} controllers.ScheduleRemindersSuccessResponse "data contains per-message results"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /reminders [post]
func (c *ReminderController) ScheduleReminders(w http.ResponseWriter, r *http.Request) {
	var req ScheduleRemindersRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	summary, err := c.Service.ScheduleReminders(r.Context(), domain.ReminderRequest{
		RosterURL:  req.RosterURL,
		EventName:  req.EventName,
		EventStart: req.EventStart,
	})
	if err != nil {
		if helpers.WriteServiceError(w, err) {
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		}
		return
	}
	if summary.Err != nil {
		c.Logger.WarnContext(r.Context(), "some reminders failed", "run_id", summary.RunID, "failed", summary.Failed, "err", summary.Err)
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, summary)
}
