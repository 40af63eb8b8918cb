package controllers

import (
	"log/slog"
	"net/http"
	"strconv"

	h "cisoevents/internal/delivery/http/helpers"
	"cisoevents/internal/domain"
)

// ListSpeakersResponse is the response body for GET /speakers.
type ListSpeakersResponse struct {
	Speakers []*domain.Speaker `json:"speakers"`
	Total    int               `json:"total"`
}

// ListAgendaResponse is the response body for GET /agenda; items are grouped by day.
type ListAgendaResponse struct {
	Day1  []*domain.AgendaItem `json:"day1"`
	Day2  []*domain.AgendaItem `json:"day2"`
	Total int                  `json:"total"`
}

// ListPodcastsResponse is the response body for GET /podcasts.
type ListPodcastsResponse struct {
	Featured *domain.Podcast   `json:"featured"`
	Episodes []*domain.Podcast `json:"episodes"`
}

type CatalogController struct {
	Logger  *slog.Logger
	Service domain.CatalogService
}

func NewCatalogController(logger *slog.Logger, svc domain.CatalogService) *CatalogController {
	return &CatalogController{
		Logger:  logger,
		Service: svc,
	}
}

// ListSpeakers godoc
// @Summary List speakers
// @Description Search matches name, title, and company (case-insensitive substring). Track filters to AI, Cyber, or Startup.
// @Tags catalog
// @Produce json
// @Param search query string false "Search text"
// @Param track query string false "Track filter (AI|Cyber|Startup)"
// @Success 200 {object} helpers.APIResponse "data contains speakers and total"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /speakers [get]
func (c *CatalogController) ListSpeakers(w http.ResponseWriter, r *http.Request) {
	filter := domain.SpeakerFilter{
		Search: r.URL.Query().Get("search"),
		Track:  domain.Track(r.URL.Query().Get("track")),
	}
	speakers, err := c.Service.ListSpeakers(r.Context(), filter)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, ListSpeakersResponse{Speakers: speakers, Total: len(speakers)})
}

// ListAgenda godoc
// @Summary List agenda sessions
// @Description Optional day (1 or 2) and track filters; results stay in schedule order and are grouped by day.
// @Tags catalog
// @Produce json
// @Param day query int false "Day filter (1|2)"
// @Param track query string false "Track filter (AI|Cyber|Startup)"
// @Success 200 {object} helpers.APIResponse "data contains day1, day2, and total"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /agenda [get]
func (c *CatalogController) ListAgenda(w http.ResponseWriter, r *http.Request) {
	filter := domain.AgendaFilter{
		Track: domain.Track(r.URL.Query().Get("track")),
	}
	if d := r.URL.Query().Get("day"); d != "" {
		day, err := strconv.Atoi(d)
		if err != nil || day < 1 {
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "day must be a positive integer")
			return
		}
		filter.Day = day
	}
	items, err := c.Service.ListAgenda(r.Context(), filter)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	resp := ListAgendaResponse{Total: len(items)}
	for _, item := range items {
		switch item.Day {
		case 1:
			resp.Day1 = append(resp.Day1, item)
		case 2:
			resp.Day2 = append(resp.Day2, item)
		}
	}
	h.WriteJSONSuccess(w, http.StatusOK, resp)
}

// ListPodcasts godoc
// @Summary List podcast episodes
// @Description Returns the featured episode separately from the rest, both in catalog order.
// @Tags catalog
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains featured and episodes"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /podcasts [get]
func (c *CatalogController) ListPodcasts(w http.ResponseWriter, r *http.Request) {
	featured, rest, err := c.Service.ListPodcasts(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, ListPodcastsResponse{Featured: featured, Episodes: rest})
}

// ListSponsors godoc
// @Summary List sponsors grouped by tier
// @Tags catalog
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains platinum, gold, and silver tiers"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sponsors [get]
func (c *CatalogController) ListSponsors(w http.ResponseWriter, r *http.Request) {
	tiers, err := c.Service.ListSponsors(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, tiers)
}

// ListStats godoc
// @Summary List home-page stats
// @Tags catalog
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the stats"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /stats [get]
func (c *CatalogController) ListStats(w http.ResponseWriter, r *http.Request) {
	stats, err := c.Service.ListStats(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, stats)
}
