package controllers

import (
	"bytes"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"carpoolreminders/internal/delivery/http/helpers"
	"carpoolreminders/internal/delivery/http/views"
	"carpoolreminders/internal/domain"
)

// CreateCarpoolsRequest is the request body for POST /carpools.
type CreateCarpoolsRequest struct {
	SheetURL string `json:"sheet_url"`
	// Capacity falls back to the configured event capacity when omitted.
	Capacity *int `json:"capacity"`
	Notify   bool `json:"notify"`
}

// Validate implements Validator.
func (c CreateCarpoolsRequest) Validate() []string {
	var errs []string
	if c.Capacity != nil && *c.Capacity <= 0 {
		errs = append(errs, "capacity must be a positive integer")
	}
	if c.SheetURL != "" && !isHTTPURL(c.SheetURL) {
		errs = append(errs, "sheet_url must be an http(s) URL")
	}
	return errs
}

// CreateCarpoolsSuccessResponse is the success response envelope for POST /carpools (200).
type CreateCarpoolsSuccessResponse struct {
	Data  *domain.CarpoolRun `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

type CarpoolController struct {
	Logger          *slog.Logger
	Service         domain.CarpoolService
	DefaultCapacity int
}

func NewCarpoolController(logger *slog.Logger, svc domain.CarpoolService, defaultCapacity int) *CarpoolController {
	return &CarpoolController{
		Logger:          logger,
		Service:         svc,
		DefaultCapacity: defaultCapacity,
	}
}

// CreateCarpools godoc
// @Summary Build carpool groups
// @Description Reads the sign-up sheet, fills places first come first served up to capacity and returns self-transport, cars and the waitlist. Optionally emails the organizer a summary.
// @Tags carpools
// @Accept json
// @Produce json
// @Param body body CreateCarpoolsRequest true "Capacity and optional sheet override"
// @Success 200 {object} controllers.CreateCarpoolsSuccessResponse "data contains the grouping run"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /carpools [post]
func (c *CarpoolController) CreateCarpools(w http.ResponseWriter, r *http.Request) {
	var req CreateCarpoolsRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	capacity, ok := c.capacity(req.Capacity)
	if !ok {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "capacity is required")
		return
	}
	run, err := c.Service.BuildCarpools(r.Context(), domain.CarpoolRequest{
		SheetURL: req.SheetURL,
		Capacity: capacity,
		Notify:   req.Notify,
	})
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, run)
}

// ViewCarpools godoc
// @Summary Show carpool groups
// @Description Builds carpool groups like POST /carpools and renders them as an HTML page.
// @Tags carpools
// @Produce html
// @Param capacity query int false "Maximum number of attendees (defaults to the configured capacity)"
// @Param sheet_url query string false "Sign-up sheet CSV export URL"
// @Success 200 {string} string "HTML page"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /carpools/view [get]
func (c *CarpoolController) ViewCarpools(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var requested *int
	if s := strings.TrimSpace(q.Get("capacity")); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "capacity must be a positive integer")
			return
		}
		requested = &n
	}
	capacity, ok := c.capacity(requested)
	if !ok {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "capacity is required")
		return
	}
	sheetURL := q.Get("sheet_url")
	if sheetURL != "" && !isHTTPURL(sheetURL) {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "sheet_url must be an http(s) URL")
		return
	}

	run, err := c.Service.BuildCarpools(r.Context(), domain.CarpoolRequest{SheetURL: sheetURL, Capacity: capacity})
	if err != nil {
		c.writeError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := views.Render(&buf, views.Build(run.Assignment, run.Capacity)); err != nil {
		c.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (c *CarpoolController) capacity(requested *int) (int, bool) {
	if requested != nil {
		return *requested, true
	}
	return c.DefaultCapacity, c.DefaultCapacity > 0
}

func (c *CarpoolController) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if helpers.WriteServiceError(w, err) {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	}
}

func isHTTPURL(s string) bool {
	return strings.HasPrefix(s, "https://") || strings.HasPrefix(s, "http://")
}
