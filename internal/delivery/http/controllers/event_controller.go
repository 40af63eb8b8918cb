package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	h "cisoevents/internal/delivery/http/helpers"
	"cisoevents/internal/domain"
)

// CreateEventRequest is the request body for POST /admin/events.
type CreateEventRequest struct {
	Title       string   `json:"title"`
	Year        int      `json:"year"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Status      string   `json:"status"`
	Attendees   string   `json:"attendees"`
	Tags        []string `json:"tags"`
}

// Validate implements Validator. Required fields mirror the admin form:
// title, start date, location, description.
func (c CreateEventRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Title) == "" {
		errs = append(errs, "title is required")
	}
	if strings.TrimSpace(c.StartDate) == "" {
		errs = append(errs, "start_date is required")
	}
	if strings.TrimSpace(c.Location) == "" {
		errs = append(errs, "location is required")
	}
	if strings.TrimSpace(c.Description) == "" {
		errs = append(errs, "description is required")
	}
	if c.Status != "" && !domain.ValidEventStatus(domain.EventStatus(c.Status)) {
		errs = append(errs, "status must be one of draft, upcoming, past, archived")
	}
	return errs
}

// UpdateEventRequest is the request body for PATCH /admin/events/{eventID}.
// All fields optional; omitted fields are unchanged.
type UpdateEventRequest struct {
	Title       *string   `json:"title"`
	Year        *int      `json:"year"`
	StartDate   *string   `json:"start_date"`
	EndDate     *string   `json:"end_date"`
	Location    *string   `json:"location"`
	Description *string   `json:"description"`
	Image       *string   `json:"image"`
	Status      *string   `json:"status"`
	Attendees   *string   `json:"attendees"`
	Tags        *[]string `json:"tags"`
}

// Validate implements Validator. Supplied required fields may not be blanked.
func (u UpdateEventRequest) Validate() []string {
	var errs []string
	if u.Title != nil && strings.TrimSpace(*u.Title) == "" {
		errs = append(errs, "title cannot be empty")
	}
	if u.StartDate != nil && strings.TrimSpace(*u.StartDate) == "" {
		errs = append(errs, "start_date cannot be empty")
	}
	if u.Location != nil && strings.TrimSpace(*u.Location) == "" {
		errs = append(errs, "location cannot be empty")
	}
	if u.Description != nil && strings.TrimSpace(*u.Description) == "" {
		errs = append(errs, "description cannot be empty")
	}
	if u.Status != nil && !domain.ValidEventStatus(domain.EventStatus(*u.Status)) {
		errs = append(errs, "status must be one of draft, upcoming, past, archived")
	}
	return errs
}

// ListEventsResponse is the response body for event listings.
type ListEventsResponse struct {
	Events []*domain.Event `json:"events"`
	Total  int             `json:"total"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// eventFilterFromQuery reads search, year, and status query parameters.
// An unparsable year matches nothing rather than everything.
func eventFilterFromQuery(r *http.Request) domain.EventFilter {
	q := r.URL.Query()
	filter := domain.EventFilter{
		Search: q.Get("search"),
		Status: domain.EventStatus(q.Get("status")),
	}
	if y := q.Get("year"); y != "" {
		year, err := strconv.Atoi(y)
		if err != nil {
			year = -1
		}
		filter.Year = year
	}
	return filter
}

// ListEvents godoc
// @Summary List events
// @Description Lists events in insertion order. Supports search (case-insensitive substring over title and location), year, and status filters; all active filters must match.
// @Tags events
// @Produce json
// @Param search query string false "Search text"
// @Param year query int false "Year filter"
// @Param status query string false "Status filter (draft|upcoming|past|archived)"
// @Success 200 {object} helpers.APIResponse "data contains events and total"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.ListEvents(r.Context(), eventFilterFromQuery(r))
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, ListEventsResponse{Events: events, Total: len(events)})
}

// GetEvent godoc
// @Summary Get an event by ID
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains the event"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /admin/events/{eventID} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing eventID")
		return
	}
	event, err := c.Service.GetEventByID(r.Context(), eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, event)
}

// CreateEvent godoc
// @Summary Create a new event
// @Description Creates an event from the admin form fields. Required: title, start_date, location, description. The id is server-assigned and unique for the process lifetime.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body CreateEventRequest true "Event data"
// @Success 201 {object} helpers.APIResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	event := domain.NewEvent(
		strings.TrimSpace(req.Title),
		req.Year,
		req.StartDate,
		req.EndDate,
		strings.TrimSpace(req.Location),
		strings.TrimSpace(req.Description),
		req.Image,
		domain.EventStatus(req.Status),
		req.Attendees,
		req.Tags,
	)
	created, err := c.Service.CreateEvent(r.Context(), event)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, created)
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Partial update; only fields present in the body change. Unknown ids are reported as not found.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param event body UpdateEventRequest true "Fields to change"
// @Success 200 {object} helpers.APIResponse "data contains the updated event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/events/{eventID} [patch]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing eventID")
		return
	}
	var req UpdateEventRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	update := domain.EventUpdate{
		Title:       req.Title,
		Year:        req.Year,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Location:    req.Location,
		Description: req.Description,
		Image:       req.Image,
		Attendees:   req.Attendees,
		Tags:        req.Tags,
	}
	if req.Status != nil {
		status := domain.EventStatus(*req.Status)
		update.Status = &status
	}
	updated, err := c.Service.UpdateEvent(r.Context(), eventID, update)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, updated)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/events/{eventID} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing eventID")
		return
	}
	if err := c.Service.DeleteEvent(r.Context(), eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "deleted"})
}
