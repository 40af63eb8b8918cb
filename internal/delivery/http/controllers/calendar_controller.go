package controllers

import (
	"fmt"
	"log/slog"
	"net/http"

	h "cisoevents/internal/delivery/http/helpers"
	"cisoevents/internal/domain"
)

type CalendarController struct {
	Logger  *slog.Logger
	Service domain.CalendarService
}

func NewCalendarController(logger *slog.Logger, svc domain.CalendarService) *CalendarController {
	return &CalendarController{
		Logger:  logger,
		Service: svc,
	}
}

// DownloadICS godoc
// @Summary Download the flagship event as an .ics file
// @Tags calendar
// @Produce plain
// @Success 200 {string} string "text/calendar document"
// @Router /calendar/export.ics [get]
func (c *CalendarController) DownloadICS(w http.ResponseWriter, r *http.Request) {
	filename, body := c.Service.ICS()
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// CalendarLinks godoc
// @Summary Calendar provider deep links for the flagship event
// @Tags calendar
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains google, outlook, and yahoo links"
// @Router /calendar/links [get]
func (c *CalendarController) CalendarLinks(w http.ResponseWriter, r *http.Request) {
	h.WriteJSONSuccess(w, http.StatusOK, c.Service.Links())
}
