package services

import (
	"strings"
	"testing"

	"cisoevents/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarService_ICS(t *testing.T) {
	svc := NewCalendarService(FlagshipCalendarEvent)

	filename, body := svc.ICS()
	assert.Equal(t, "ciso-events-2026.ics", filename)

	doc := string(body)
	lines := strings.Split(doc, "\r\n")
	require.Equal(t, "BEGIN:VCALENDAR", lines[0])
	assert.Equal(t, "END:VCALENDAR", lines[len(lines)-1])

	assert.Contains(t, doc, "VERSION:2.0")
	assert.Contains(t, doc, "PRODID:-//CISOevents//EN")
	assert.Contains(t, doc, "DTSTART:20260828T090000Z")
	assert.Contains(t, doc, "DTEND:20260829T180000Z")
	assert.Contains(t, doc, "SUMMARY:CISOevents 2026")
	assert.Contains(t, doc, "LOCATION:Metro Toronto Convention Centre, Toronto, Canada")
	assert.Contains(t, doc, "DESCRIPTION:")
	// No bare LF anywhere.
	assert.NotContains(t, strings.ReplaceAll(doc, "\r\n", ""), "\n")
}

func TestCalendarService_Links(t *testing.T) {
	svc := NewCalendarService(domain.CalendarEvent{
		Title:       "Test Summit",
		Description: "desc & more",
		Location:    "Berlin, Germany",
		Start:       "20270101T090000Z",
		End:         "20270101T180000Z",
	})

	links := svc.Links()

	assert.True(t, strings.HasPrefix(links.Google, "https://calendar.google.com/calendar/render?action=TEMPLATE"))
	assert.Contains(t, links.Google, "text=Test+Summit")
	assert.Contains(t, links.Google, "dates=20270101T090000Z%2F20270101T180000Z")
	assert.Contains(t, links.Google, "details=desc+%26+more")

	assert.True(t, strings.HasPrefix(links.Outlook, "https://outlook.live.com/calendar/0/deeplink/compose"))
	assert.Contains(t, links.Outlook, "startdt=2027-01-01T09:00:00")
	assert.Contains(t, links.Outlook, "enddt=2027-01-01T18:00:00")

	assert.True(t, strings.HasPrefix(links.Yahoo, "https://calendar.yahoo.com/?v=60"))
	assert.Contains(t, links.Yahoo, "st=20270101T090000Z")
	assert.Contains(t, links.Yahoo, "in_loc=Berlin%2C+Germany")
}
