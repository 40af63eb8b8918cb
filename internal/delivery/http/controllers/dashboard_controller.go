package controllers

import (
	"log/slog"
	"net/http"

	h "cisoevents/internal/delivery/http/helpers"
	"cisoevents/internal/domain"
)

// DashboardResponse is the response body for GET /admin/dashboard.
type DashboardResponse struct {
	TotalEvents    int             `json:"total_events"`
	UpcomingEvents []*domain.Event `json:"upcoming_events"`
	TotalSpeakers  int             `json:"total_speakers"`
	TotalPodcasts  int             `json:"total_podcasts"`
	TotalSponsors  int             `json:"total_sponsors"`
}

type DashboardController struct {
	Logger  *slog.Logger
	Events  domain.EventService
	Catalog domain.CatalogService
}

func NewDashboardController(logger *slog.Logger, events domain.EventService, catalog domain.CatalogService) *DashboardController {
	return &DashboardController{
		Logger:  logger,
		Events:  events,
		Catalog: catalog,
	}
}

// Dashboard godoc
// @Summary Admin dashboard summary
// @Description Returns headline counts and the upcoming events table.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the dashboard summary"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/dashboard [get]
func (c *DashboardController) Dashboard(w http.ResponseWriter, r *http.Request) {
	events, err := c.Events.ListEvents(r.Context(), domain.EventFilter{})
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	upcoming, err := c.Events.ListEvents(r.Context(), domain.EventFilter{Status: domain.EventStatusUpcoming})
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	speakers, err := c.Catalog.ListSpeakers(r.Context(), domain.SpeakerFilter{})
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	featured, rest, err := c.Catalog.ListPodcasts(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	podcasts := len(rest)
	if featured != nil {
		podcasts++
	}
	tiers, err := c.Catalog.ListSponsors(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}

	h.WriteJSONSuccess(w, http.StatusOK, DashboardResponse{
		TotalEvents:    len(events),
		UpcomingEvents: upcoming,
		TotalSpeakers:  len(speakers),
		TotalPodcasts:  podcasts,
		TotalSponsors:  len(tiers.Platinum) + len(tiers.Gold) + len(tiers.Silver),
	})
}
