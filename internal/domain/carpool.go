package domain

import "context"

// CarpoolRequest describes one carpool grouping run.
type CarpoolRequest struct {
	// SheetURL overrides the configured sign-up sheet when set.
	SheetURL string
	Capacity int
	// Notify emails the organizer a summary of the result.
	Notify bool
}

// CarpoolRun is the result of a grouping run.
// swagger:model CarpoolRun
type CarpoolRun struct {
	RunID      string     `json:"run_id"`
	Capacity   int        `json:"capacity"`
	Placed     int        `json:"placed"`
	Assignment Assignment `json:"assignment"`
	Notified   bool       `json:"notified"`
}

// CarpoolService builds carpool groupings from the sign-up sheet.
type CarpoolService interface {
	BuildCarpools(ctx context.Context, req CarpoolRequest) (*CarpoolRun, error)
}
