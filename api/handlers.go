/*
handlers.go - HTTP API handlers for the calendar range engine

PURPOSE:
  Exposes the date-range builders via REST API. Handles HTTP
  request/response, JSON serialization, and delegates to the dates package.

ENDPOINTS:
  Ranges:
    GET /api/ranges/span      Day span from an anchor date
    GET /api/ranges/period    Period range for a frequency
    GET /api/ranges/week      Week containing a date
    GET /api/ranges/month     Month containing a date
    GET /api/ranges/quarter   Quarter containing a date
    GET /api/ranges/year      Year containing a date
    GET /api/ranges/progress  Fraction of period elapsed

  Holidays:
    GET    /api/holidays           List holidays
    POST   /api/holidays           Add a holiday
    POST   /api/holidays/defaults  Seed common recurring holidays
    DELETE /api/holidays/{id}      Remove a holiday

QUERY PARAMETERS:
  days       span length, signed (span only)
  anchor     anchor date, 2006-01-02; omitted = today (span only)
  inclusive  include the anchor, default true (span only)
  date       reference date, 2006-01-02; omitted = today
  freq       frequency name or single-letter code, default month
  full       full period vs period-to-date, default true
  workdays   attach the weekend/holiday-filtered subset, default false

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input, unknown frequency
  - 404: Holiday not found
  - 500: Internal errors

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/warp/calendar-engine/dates"
	"github.com/warp/calendar-engine/store/sqlite"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store *sqlite.Store
}

// NewHandler creates a new handler with the given store.
func NewHandler(store *sqlite.Store) *Handler {
	return &Handler{Store: store}
}

// =============================================================================
// RANGE HANDLERS
// =============================================================================

// DaySpan returns a span of consecutive days anchored at a date.
// GET /api/ranges/span?days=-6&anchor=2013-09-05&inclusive=false
func (h *Handler) DaySpan(w http.ResponseWriter, r *http.Request) {
	numDays, err := strconv.Atoi(r.URL.Query().Get("days"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid or missing days parameter", err)
		return
	}

	anchor, err := dateParam(r, "anchor")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid anchor date", err)
		return
	}

	span, err := dates.DaySpan(numDays, anchor, boolParam(r, "inclusive", true))
	if err != nil {
		writeError(w, statusFor(err), "Failed to build day span", err)
		return
	}

	h.writeRange(w, r, span)
}

// PeriodRange returns the days of the period enclosing a date.
// GET /api/ranges/period?date=2013-09-15&freq=m&full=true
func (h *Handler) PeriodRange(w http.ResponseWriter, r *http.Request) {
	h.periodRange(w, r, r.URL.Query().Get("freq"))
}

// WeekRange and friends are the fixed-frequency routes.
func (h *Handler) WeekRange(w http.ResponseWriter, r *http.Request) {
	h.periodRange(w, r, "week")
}

func (h *Handler) MonthRange(w http.ResponseWriter, r *http.Request) {
	h.periodRange(w, r, "month")
}

func (h *Handler) QuarterRange(w http.ResponseWriter, r *http.Request) {
	h.periodRange(w, r, "quarter")
}

func (h *Handler) YearRange(w http.ResponseWriter, r *http.Request) {
	h.periodRange(w, r, "year")
}

func (h *Handler) periodRange(w http.ResponseWriter, r *http.Request, freqParam string) {
	if freqParam == "" {
		freqParam = "month"
	}
	freq, err := dates.ParseFrequency(freqParam)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid frequency", err)
		return
	}

	date, err := dateParam(r, "date")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date", err)
		return
	}

	rng, err := dates.PeriodRange(date, freq, boolParam(r, "full", true))
	if err != nil {
		writeError(w, statusFor(err), "Failed to build period range", err)
		return
	}

	h.writeRange(w, r, rng)
}

// PeriodProgress reports the elapsed fraction of the enclosing period.
// GET /api/ranges/progress?date=2013-09-15&freq=m
func (h *Handler) PeriodProgress(w http.ResponseWriter, r *http.Request) {
	freqParam := r.URL.Query().Get("freq")
	if freqParam == "" {
		freqParam = "month"
	}
	freq, err := dates.ParseFrequency(freqParam)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid frequency", err)
		return
	}

	date, err := dateParam(r, "date")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date", err)
		return
	}
	if date.IsZero() {
		date = dates.Today()
	}

	progress, err := dates.PeriodProgress(date, freq)
	if err != nil {
		writeError(w, statusFor(err), "Failed to compute progress", err)
		return
	}

	writeJSON(w, http.StatusOK, ProgressDTO{
		Date:      date.String(),
		Frequency: freq.String(),
		Progress:  progress.Round(4).String(),
	})
}

// writeRange serializes a range, attaching workdays when asked for.
func (h *Handler) writeRange(w http.ResponseWriter, r *http.Request, rng dates.Range) {
	withWorkdays := boolParam(r, "workdays", false)

	var cal dates.HolidayCalendar
	if withWorkdays {
		var err error
		if cal, err = h.Store.Calendar(r.Context()); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to load holiday calendar", err)
			return
		}
	}

	writeJSON(w, http.StatusOK, toRangeDTO(rng, cal, withWorkdays))
}

// =============================================================================
// HOLIDAY HANDLERS
// =============================================================================

// ListHolidays returns all holidays.
// GET /api/holidays
func (h *Handler) ListHolidays(w http.ResponseWriter, r *http.Request) {
	holidays, err := h.Store.ListHolidays(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list holidays", err)
		return
	}

	dtos := make([]HolidayDTO, len(holidays))
	for i, hol := range holidays {
		dtos[i] = toHolidayDTO(hol)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreateHoliday adds a holiday to the calendar.
// POST /api/holidays
func (h *Handler) CreateHoliday(w http.ResponseWriter, r *http.Request) {
	var req CreateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "Holiday name is required", nil)
		return
	}

	date, err := dates.ParseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid holiday date", err)
		return
	}

	holiday := dates.Holiday{
		ID:        req.ID,
		Date:      date,
		Name:      req.Name,
		Recurring: req.Recurring,
	}
	if holiday.ID == "" {
		holiday.ID = fmt.Sprintf("hol-%s", date)
	}

	if err := h.Store.SaveHoliday(r.Context(), holiday); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save holiday", err)
		return
	}
	writeJSON(w, http.StatusCreated, toHolidayDTO(holiday))
}

// AddDefaultHolidays seeds a set of common recurring holidays.
// POST /api/holidays/defaults
func (h *Handler) AddDefaultHolidays(w http.ResponseWriter, r *http.Request) {
	defaults := []dates.Holiday{
		{ID: "hol-new-year", Date: dates.NewDate(2000, time.January, 1), Name: "New Year's Day", Recurring: true},
		{ID: "hol-independence", Date: dates.NewDate(2000, time.July, 4), Name: "Independence Day", Recurring: true},
		{ID: "hol-christmas", Date: dates.NewDate(2000, time.December, 25), Name: "Christmas Day", Recurring: true},
	}

	for _, holiday := range defaults {
		if err := h.Store.SaveHoliday(r.Context(), holiday); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to save default holidays", err)
			return
		}
	}

	dtos := make([]HolidayDTO, len(defaults))
	for i, hol := range defaults {
		dtos[i] = toHolidayDTO(hol)
	}
	writeJSON(w, http.StatusCreated, dtos)
}

// DeleteHoliday removes a holiday.
// DELETE /api/holidays/{id}
func (h *Handler) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Store.DeleteHoliday(r.Context(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "Holiday not found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete holiday", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// HELPERS
// =============================================================================

// dateParam parses an optional date query parameter. Missing means the zero
// Date, which the builders resolve to today.
func dateParam(r *http.Request, name string) (dates.Date, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return dates.Date{}, nil
	}
	return dates.ParseDate(raw)
}

func boolParam(r *http.Request, name string, def bool) bool {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}

func statusFor(err error) int {
	if dates.IsClientError(err) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
