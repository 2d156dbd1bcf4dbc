package laborhandler

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"buildops/internal/domain/auth"
	"buildops/internal/domain/labor"
	"buildops/internal/transport/http/api"
	"buildops/internal/transport/http/middleware"
	"buildops/internal/transport/http/shared"
)

type Handler struct {
	Store   *labor.Store
	Service *labor.Service
}

func NewHandler(store *labor.Store, service *labor.Service) *Handler {
	return &Handler{Store: store, Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/labor", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermLaborRead)).Get("/activity", h.handleActivity)
		r.With(middleware.RequirePermission(auth.PermLaborRead)).Get("/timesheet", h.handleTimesheet)
		r.With(middleware.RequirePermission(auth.PermLaborRead)).Get("/timesheet/export/csv", h.handleExportCSV)
		r.With(middleware.RequirePermission(auth.PermLaborRead)).Get("/timesheet/export/pdf", h.handleExportPDF)
		r.With(middleware.RequirePermission(auth.PermLaborRead)).Get("/overview", h.handleOverview)
		r.With(middleware.RequirePermission(auth.PermLaborClock)).Post("/clock", h.handleClock)
		r.With(middleware.RequirePermission(auth.PermLaborWrite)).Post("/entries", h.handleCreateEntry)
		r.With(middleware.RequirePermission(auth.PermLaborApprove)).Post("/entries/{entryID}/approve", h.handleApproveEntry)
		r.With(middleware.RequirePermission(auth.PermLaborApprove)).Post("/entries/{entryID}/reject", h.handleRejectEntry)
	})
}

func (h *Handler) handleActivity(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	loc, err := h.Store.CompanyLocation(r.Context(), user.CompanyID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "activity_failed", "failed to compute activity", middleware.GetRequestID(r.Context()))
		return
	}

	now := time.Now().In(loc)
	today := now
	if raw := r.URL.Query().Get("date"); raw != "" {
		validator := shared.NewValidator()
		parsed, ok := validator.Date("date", raw)
		if validator.Reject(w, middleware.GetRequestID(r.Context())) {
			return
		}
		if ok {
			today = localMidnight(parsed, loc)
		}
	}

	activities, err := h.Service.Activity(r.Context(), user.CompanyID, now, today)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "activity_failed", "failed to compute activity", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, activities, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleTimesheet(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	loc, err := h.Store.CompanyLocation(r.Context(), user.CompanyID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "timesheet_failed", "failed to compute timesheet", middleware.GetRequestID(r.Context()))
		return
	}

	from, to, ok := h.dateRange(w, r, loc)
	if !ok {
		return
	}

	entries, err := h.Service.ReconciledTimesheet(r.Context(), user.CompanyID, from, to, time.Now().In(loc))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "timesheet_failed", "failed to compute timesheet", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, entries, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleOverview(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	loc, err := h.Store.CompanyLocation(r.Context(), user.CompanyID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "overview_failed", "failed to compute overview", middleware.GetRequestID(r.Context()))
		return
	}

	from, to, ok := h.dateRange(w, r, loc)
	if !ok {
		return
	}

	overview, err := h.Service.Overview(r.Context(), user.CompanyID, from, to, time.Now().In(loc))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "overview_failed", "failed to compute overview", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, overview, middleware.GetRequestID(r.Context()))
}

type clockRequest struct {
	EmployeeID string `json:"employeeId"`
	Type       string `json:"type"`
	Timestamp  string `json:"timestamp"`
	ProjectID  string `json:"projectId"`
	Notes      string `json:"notes"`
}

func (h *Handler) handleClock(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var payload clockRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	validator := shared.NewValidator()
	validator.Required("employeeId", payload.EmployeeID, "employee is required")
	validator.UUID("employeeId", payload.EmployeeID, "must be a valid employee id")
	validator.UUID("projectId", payload.ProjectID, "must be a valid project id")
	validator.Required("type", payload.Type, "event type is required")
	validator.Enum("type", payload.Type, []string{labor.EventClockIn, labor.EventClockOut}, "must be clock_in or clock_out")

	occurredAt := time.Now()
	if strings.TrimSpace(payload.Timestamp) != "" {
		parsed, err := time.Parse(time.RFC3339, payload.Timestamp)
		if err != nil {
			validator.Add("timestamp", "must be an RFC3339 timestamp")
		} else {
			occurredAt = parsed
		}
	}
	if validator.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	id, err := h.Store.RecordClockEvent(r.Context(), user.CompanyID, labor.ClockEvent{
		EmployeeID: payload.EmployeeID,
		Type:       strings.ToLower(strings.TrimSpace(payload.Type)),
		Timestamp:  occurredAt,
		ProjectID:  payload.ProjectID,
		Notes:      payload.Notes,
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "clock_failed", "failed to record clock event", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]string{"id": id}, middleware.GetRequestID(r.Context()))
}

type entryRequest struct {
	EmployeeID string  `json:"employeeId"`
	Date       string  `json:"date"`
	Hours      float64 `json:"hours"`
	ProjectID  string  `json:"projectId"`
	Notes      string  `json:"notes"`
}

func (h *Handler) handleCreateEntry(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var payload entryRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	validator := shared.NewValidator()
	validator.Required("employeeId", payload.EmployeeID, "employee is required")
	validator.UUID("employeeId", payload.EmployeeID, "must be a valid employee id")
	validator.UUID("projectId", payload.ProjectID, "must be a valid project id")
	validator.Required("date", payload.Date, "entry date is required")
	var entryDate time.Time
	if strings.TrimSpace(payload.Date) != "" {
		entryDate, _ = validator.Date("date", payload.Date)
	}
	validator.Range("hours", payload.Hours, 0, 24, "must be between 0 and 24")
	if validator.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	id, err := h.Store.CreateTimeEntry(r.Context(), user.CompanyID, labor.TimeEntry{
		EmployeeID: payload.EmployeeID,
		EntryDate:  entryDate,
		Hours:      payload.Hours,
		ProjectID:  payload.ProjectID,
		Notes:      payload.Notes,
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "entry_failed", "failed to create time entry", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]string{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleApproveEntry(w http.ResponseWriter, r *http.Request) {
	h.decideEntry(w, r, labor.EntryStatusApproved)
}

func (h *Handler) handleRejectEntry(w http.ResponseWriter, r *http.Request) {
	h.decideEntry(w, r, labor.EntryStatusRejected)
}

func (h *Handler) decideEntry(w http.ResponseWriter, r *http.Request, status string) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	entryID := chi.URLParam(r, "entryID")
	validator := shared.NewValidator()
	validator.Required("entryId", entryID, "entry id is required")
	validator.UUID("entryId", entryID, "must be a valid entry id")
	if validator.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	err := h.Store.UpdateTimeEntryStatus(r.Context(), user.CompanyID, entryID, status, time.Now())
	switch {
	case errors.Is(err, labor.ErrEntryNotFound):
		api.Fail(w, http.StatusNotFound, "entry_not_found", "time entry not found", middleware.GetRequestID(r.Context()))
		return
	case errors.Is(err, labor.ErrEntryNotPending):
		api.Fail(w, http.StatusConflict, "entry_not_pending", "time entry was already decided", middleware.GetRequestID(r.Context()))
		return
	case err != nil:
		api.Fail(w, http.StatusInternalServerError, "entry_update_failed", "failed to update time entry", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"id": entryID, "status": status}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) dateRange(w http.ResponseWriter, r *http.Request, loc *time.Location) (time.Time, time.Time, bool) {
	now := time.Now().In(loc)
	from := localMidnight(now.AddDate(0, 0, -29), loc)
	to := localMidnight(now, loc)

	validator := shared.NewValidator()
	if raw := r.URL.Query().Get("from"); raw != "" {
		if parsed, ok := validator.Date("from", raw); ok {
			from = localMidnight(parsed, loc)
		}
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		if parsed, ok := validator.Date("to", raw); ok {
			to = localMidnight(parsed, loc)
		}
	}
	validator.DateOrder("from", from, "to", to)
	if validator.Reject(w, middleware.GetRequestID(r.Context())) {
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

func localMidnight(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

func (h *Handler) exportRows(w http.ResponseWriter, r *http.Request) ([]labor.ReconciledEntry, time.Time, time.Time, bool) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return nil, time.Time{}, time.Time{}, false
	}

	loc, err := h.Store.CompanyLocation(r.Context(), user.CompanyID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "export_failed", "failed to export timesheet", middleware.GetRequestID(r.Context()))
		return nil, time.Time{}, time.Time{}, false
	}

	from, to, ok := h.dateRange(w, r, loc)
	if !ok {
		return nil, time.Time{}, time.Time{}, false
	}

	entries, err := h.Service.ReconciledTimesheet(r.Context(), user.CompanyID, from, to, time.Now().In(loc))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "export_failed", "failed to export timesheet", middleware.GetRequestID(r.Context()))
		return nil, time.Time{}, time.Time{}, false
	}
	return entries, from, to, true
}

func (h *Handler) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	entries, _, _, ok := h.exportRows(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=timesheet.csv")
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"employee_id", "entry_date", "hours", "status", "project_id", "source"}); err != nil {
		log.Printf("timesheet export header write failed: %v", err)
	}
	for _, entry := range entries {
		record := []string{
			entry.EmployeeID,
			entry.EntryDate.Format("2006-01-02"),
			fmt.Sprintf("%.1f", entry.Hours),
			entry.Status,
			entry.ProjectID,
			entry.Source,
		}
		if err := writer.Write(record); err != nil {
			log.Printf("timesheet export row write failed: %v", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Printf("timesheet export flush failed: %v", err)
	}
}
