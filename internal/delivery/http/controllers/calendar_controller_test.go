package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cisoevents/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCalendarService implements domain.CalendarService for handler tests.
type fakeCalendarService struct {
	filename string
	body     []byte
	links    *domain.CalendarLinks
}

func (f *fakeCalendarService) ICS() (string, []byte) {
	return f.filename, f.body
}

func (f *fakeCalendarService) Links() *domain.CalendarLinks {
	return f.links
}

func TestCalendarController_DownloadICS(t *testing.T) {
	body := strings.Join([]string{"BEGIN:VCALENDAR", "END:VCALENDAR"}, "\r\n")
	fake := &fakeCalendarService{filename: "ciso-events-2026.ics", body: []byte(body)}
	ctrl := NewCalendarController(testLogger, fake)
	req := httptest.NewRequest(http.MethodGet, "/calendar/export.ics", nil)
	rr := httptest.NewRecorder()

	ctrl.DownloadICS(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/calendar; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="ciso-events-2026.ics"`, rr.Header().Get("Content-Disposition"))
	assert.Equal(t, body, rr.Body.String())
}

func TestCalendarController_CalendarLinks(t *testing.T) {
	fake := &fakeCalendarService{links: &domain.CalendarLinks{
		Google:  "https://calendar.google.com/calendar/render?action=TEMPLATE",
		Outlook: "https://outlook.live.com/calendar/0/deeplink/compose",
		Yahoo:   "https://calendar.yahoo.com/?v=60",
	}}
	ctrl := NewCalendarController(testLogger, fake)
	req := httptest.NewRequest(http.MethodGet, "/calendar/links", nil)
	rr := httptest.NewRecorder()

	ctrl.CalendarLinks(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	envelope := decodeEnvelope(t, rr)
	require.Nil(t, envelope.Error)
	dataBytes, err := json.Marshal(envelope.Data)
	require.NoError(t, err)
	var links domain.CalendarLinks
	require.NoError(t, json.Unmarshal(dataBytes, &links))
	assert.Contains(t, links.Google, "calendar.google.com")
	assert.Contains(t, links.Outlook, "outlook.live.com")
	assert.Contains(t, links.Yahoo, "calendar.yahoo.com")
}
