package services

import (
	"fmt"
	"net/url"
	"strings"

	"cisoevents/internal/domain"
)

type calendarService struct {
	event domain.CalendarEvent
}

// FlagshipCalendarEvent is the fixed entry for the next flagship conference,
// offered from the home page as a download and as provider deep links.
var FlagshipCalendarEvent = domain.CalendarEvent{
	Title:       "CISOevents 2026",
	Description: "The premier cybersecurity and AI leadership summit — 500+ security executives, Toronto.",
	Location:    "Metro Toronto Convention Centre, Toronto, Canada",
	Start:       "20260828T090000Z",
	End:         "20260829T180000Z",
}

// NewCalendarService creates a CalendarService for the given event.
func NewCalendarService(event domain.CalendarEvent) domain.CalendarService {
	return &calendarService{event: event}
}

// ICS renders a minimal single-event calendar document, CRLF terminated.
func (s *calendarService) ICS() (string, []byte) {
	lines := []string{
		"BEGIN:VCALENDAR", "VERSION:2.0", "PRODID:-//CISOevents//EN",
		"BEGIN:VEVENT",
		"DTSTART:" + s.event.Start,
		"DTEND:" + s.event.End,
		"SUMMARY:" + s.event.Title,
		"DESCRIPTION:" + s.event.Description,
		"LOCATION:" + s.event.Location,
		"END:VEVENT", "END:VCALENDAR",
	}
	return "ciso-events-2026.ics", []byte(strings.Join(lines, "\r\n"))
}

func (s *calendarService) Links() *domain.CalendarLinks {
	e := s.event
	return &domain.CalendarLinks{
		Google: fmt.Sprintf(
			"https://calendar.google.com/calendar/render?action=TEMPLATE&text=%s&dates=%s%%2F%s&details=%s&location=%s",
			url.QueryEscape(e.Title), e.Start, e.End,
			url.QueryEscape(e.Description), url.QueryEscape(e.Location),
		),
		Outlook: fmt.Sprintf(
			"https://outlook.live.com/calendar/0/deeplink/compose?subject=%s&startdt=%s&enddt=%s&location=%s&body=%s",
			url.QueryEscape(e.Title), isoFromBasic(e.Start), isoFromBasic(e.End),
			url.QueryEscape(e.Location), url.QueryEscape(e.Description),
		),
		Yahoo: fmt.Sprintf(
			"https://calendar.yahoo.com/?v=60&title=%s&st=%s&et=%s&in_loc=%s&desc=%s",
			url.QueryEscape(e.Title), e.Start, e.End,
			url.QueryEscape(e.Location), url.QueryEscape(e.Description),
		),
	}
}

// isoFromBasic converts 20260828T090000Z to 2026-08-28T09:00:00, the form
// Outlook's compose link expects.
func isoFromBasic(ts string) string {
	if len(ts) < 15 {
		return ts
	}
	return fmt.Sprintf("%s-%s-%sT%s:%s:%s",
		ts[0:4], ts[4:6], ts[6:8], ts[9:11], ts[11:13], ts[13:15])
}
