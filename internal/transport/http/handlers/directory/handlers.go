package directoryhandler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"buildops/internal/domain/auth"
	"buildops/internal/domain/directory"
	"buildops/internal/transport/http/api"
	"buildops/internal/transport/http/middleware"
	"buildops/internal/transport/http/shared"
)

type Handler struct {
	Store *directory.Store
}

func NewHandler(store *directory.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.With(middleware.RequirePermission(auth.PermDirectoryRead)).Get("/employees", h.handleListEmployees)
	r.With(middleware.RequirePermission(auth.PermDirectoryWrite)).Post("/employees", h.handleCreateEmployee)
	r.With(middleware.RequirePermission(auth.PermDirectoryWrite)).Post("/employees/{employeeID}/rate", h.handleSetRate)
	r.With(middleware.RequirePermission(auth.PermDirectoryRead)).Get("/projects", h.handleListProjects)
	r.With(middleware.RequirePermission(auth.PermDirectoryWrite)).Post("/projects", h.handleCreateProject)
}

func (h *Handler) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	page := shared.ParsePagination(r, 100, 500)
	employees, err := h.Store.ListEmployees(r.Context(), user.CompanyID, page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employees_failed", "failed to list employees", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, employees, middleware.GetRequestID(r.Context()))
}

type employeePayload struct {
	Name  string `json:"name"`
	Title string `json:"title"`
}

func (h *Handler) handleCreateEmployee(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var payload employeePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	validator := shared.NewValidator()
	validator.Required("name", payload.Name, "name is required")
	if validator.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	id, err := h.Store.CreateEmployee(r.Context(), user.CompanyID, strings.TrimSpace(payload.Name), strings.TrimSpace(payload.Title))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_create_failed", "failed to create employee", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]string{"id": id}, middleware.GetRequestID(r.Context()))
}

type ratePayload struct {
	HourlyRate    float64 `json:"hourlyRate"`
	EffectiveDate string  `json:"effectiveDate"`
}

func (h *Handler) handleSetRate(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var payload ratePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	employeeID := chi.URLParam(r, "employeeID")
	validator := shared.NewValidator()
	validator.Required("employeeId", employeeID, "employee id is required")
	validator.UUID("employeeId", employeeID, "must be a valid employee id")
	if payload.HourlyRate < 0 {
		validator.Add("hourlyRate", "must not be negative")
	}
	validator.Required("effectiveDate", payload.EffectiveDate, "effective date is required")
	var effectiveDate time.Time
	if strings.TrimSpace(payload.EffectiveDate) != "" {
		effectiveDate, _ = validator.Date("effectiveDate", payload.EffectiveDate)
	}
	if validator.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	if err := h.Store.SetPayRate(r.Context(), user.CompanyID, employeeID, payload.HourlyRate, effectiveDate); err != nil {
		api.Fail(w, http.StatusInternalServerError, "rate_update_failed", "failed to set pay rate", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"employeeId": employeeID}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListProjects(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	page := shared.ParsePagination(r, 100, 500)
	projects, err := h.Store.ListProjects(r.Context(), user.CompanyID, page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "projects_failed", "failed to list projects", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, projects, middleware.GetRequestID(r.Context()))
}

type projectPayload struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

func (h *Handler) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var payload projectPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	validator := shared.NewValidator()
	validator.Required("name", payload.Name, "name is required")
	if validator.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	id, err := h.Store.CreateProject(r.Context(), user.CompanyID, strings.TrimSpace(payload.Name), strings.TrimSpace(payload.Code))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "project_create_failed", "failed to create project", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]string{"id": id}, middleware.GetRequestID(r.Context()))
}
