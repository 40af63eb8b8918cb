package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"cisoevents/internal/delivery/http/helpers"
	"cisoevents/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	listEventsErr    error
	listEventsResult []*domain.Event
	lastListFilter   domain.EventFilter

	getEventByIDErr    error
	getEventByIDResult *domain.Event
	lastGetEventID     string

	createEventErr  error
	lastCreateEvent *domain.Event

	updateEventErr    error
	updateEventResult *domain.Event
	lastUpdateEventID string
	lastUpdate        domain.EventUpdate

	deleteEventErr    error
	lastDeleteEventID string
}

func (f *fakeEventService) ListEvents(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	f.lastListFilter = filter
	if f.listEventsErr != nil {
		return nil, f.listEventsErr
	}
	if f.listEventsResult != nil {
		return f.listEventsResult, nil
	}
	return []*domain.Event{}, nil
}

func (f *fakeEventService) GetEventByID(ctx context.Context, id string) (*domain.Event, error) {
	f.lastGetEventID = id
	if f.getEventByIDErr != nil {
		return nil, f.getEventByIDErr
	}
	if f.getEventByIDResult != nil {
		return f.getEventByIDResult, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventService) CreateEvent(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	f.lastCreateEvent = event
	if f.createEventErr != nil {
		return nil, f.createEventErr
	}
	created := *event
	created.ID = "evt-created"
	return &created, nil
}

func (f *fakeEventService) UpdateEvent(ctx context.Context, id string, update domain.EventUpdate) (*domain.Event, error) {
	f.lastUpdateEventID = id
	f.lastUpdate = update
	if f.updateEventErr != nil {
		return nil, f.updateEventErr
	}
	if f.updateEventResult != nil {
		return f.updateEventResult, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventService) DeleteEvent(ctx context.Context, id string) error {
	f.lastDeleteEventID = id
	return f.deleteEventErr
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) helpers.APIResponse {
	t.Helper()
	var envelope helpers.APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope), "response must be a valid JSON envelope")
	return envelope
}

func TestEventController_ListEvents(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		fakeErr    error
		wantStatus int
		wantFilter domain.EventFilter
	}{
		{
			name:       "no filters",
			query:      "",
			wantStatus: http.StatusOK,
			wantFilter: domain.EventFilter{},
		},
		{
			name:       "search year and status",
			query:      "?search=summit&year=2026&status=upcoming",
			wantStatus: http.StatusOK,
			wantFilter: domain.EventFilter{Search: "summit", Year: 2026, Status: domain.EventStatusUpcoming},
		},
		{
			name:       "unparsable year matches nothing",
			query:      "?year=abc",
			wantStatus: http.StatusOK,
			wantFilter: domain.EventFilter{Year: -1},
		},
		{
			name:       "service error",
			query:      "",
			fakeErr:    errors.New("store unavailable"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEventService{listEventsErr: tt.fakeErr}
			ctrl := NewEventController(testLogger, fake)
			req := httptest.NewRequest(http.MethodGet, "/events"+tt.query, nil)
			rr := httptest.NewRecorder()

			ctrl.ListEvents(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			envelope := decodeEnvelope(t, rr)
			if tt.wantStatus == http.StatusOK {
				require.Nil(t, envelope.Error)
				assert.Equal(t, tt.wantFilter, fake.lastListFilter)
			} else {
				require.NotNil(t, envelope.Error)
				assert.Equal(t, helpers.ErrCodeInternalError, envelope.Error.Code)
			}
		})
	}
}

func TestEventController_ListEvents_ReportsTotal(t *testing.T) {
	fake := &fakeEventService{listEventsResult: []*domain.Event{
		{ID: "evt-1", Title: "CISOevents 2026"},
		{ID: "evt-2", Title: "CISOevents 2025"},
	}}
	ctrl := NewEventController(testLogger, fake)
	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	rr := httptest.NewRecorder()

	ctrl.ListEvents(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	envelope := decodeEnvelope(t, rr)
	dataBytes, err := json.Marshal(envelope.Data)
	require.NoError(t, err)
	var resp ListEventsResponse
	require.NoError(t, json.Unmarshal(dataBytes, &resp))
	assert.Equal(t, 2, resp.Total)
	require.Len(t, resp.Events, 2)
	assert.Equal(t, "evt-1", resp.Events[0].ID)
}

func TestEventController_GetEvent(t *testing.T) {
	tests := []struct {
		name       string
		eventID    string
		fake       *fakeEventService
		wantStatus int
		wantCode   string
	}{
		{
			name:       "found",
			eventID:    "evt-1",
			fake:       &fakeEventService{getEventByIDResult: &domain.Event{ID: "evt-1", Title: "CISOevents 2026"}},
			wantStatus: http.StatusOK,
		},
		{
			name:       "not found",
			eventID:    "evt-999",
			fake:       &fakeEventService{getEventByIDErr: domain.ErrNotFound},
			wantStatus: http.StatusNotFound,
			wantCode:   helpers.ErrCodeNotFound,
		},
		{
			name:       "missing id",
			eventID:    "",
			fake:       &fakeEventService{},
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "service error",
			eventID:    "evt-1",
			fake:       &fakeEventService{getEventByIDErr: errors.New("boom")},
			wantStatus: http.StatusInternalServerError,
			wantCode:   helpers.ErrCodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewEventController(testLogger, tt.fake)
			req := httptest.NewRequest(http.MethodGet, "http://test/admin/events/"+tt.eventID, nil)
			req.SetPathValue("eventID", tt.eventID)
			rr := httptest.NewRecorder()

			ctrl.GetEvent(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			envelope := decodeEnvelope(t, rr)
			if tt.wantCode != "" {
				require.NotNil(t, envelope.Error)
				assert.Equal(t, tt.wantCode, envelope.Error.Code)
			} else {
				require.Nil(t, envelope.Error)
			}
		})
	}
}

func TestEventController_CreateEvent(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		fakeErr        error
		wantStatus     int
		wantBodySubstr string
		checkEvent     func(t *testing.T, event domain.Event)
	}{
		{
			name:       "success",
			body:       `{"title":"Test Summit","year":2027,"start_date":"2027-03-01","location":"Berlin","description":"A new event"}`,
			wantStatus: http.StatusCreated,
			checkEvent: func(t *testing.T, event domain.Event) {
				assert.Equal(t, "evt-created", event.ID)
				assert.Equal(t, "Test Summit", event.Title)
				assert.Equal(t, "Berlin", event.Location)
			},
		},
		{
			name:           "bad request invalid json",
			body:           `{invalid`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "invalid",
		},
		{
			name:           "missing required fields",
			body:           `{"title":"Test Summit"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "start_date is required",
		},
		{
			name:           "unknown field rejected",
			body:           `{"title":"T","start_date":"2027-03-01","location":"Berlin","description":"d","id":"custom"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "unknown field",
		},
		{
			name:           "invalid status",
			body:           `{"title":"T","start_date":"2027-03-01","location":"Berlin","description":"d","status":"bogus"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "status must be one of",
		},
		{
			name:           "service error",
			body:           `{"title":"T","start_date":"2027-03-01","location":"Berlin","description":"d"}`,
			fakeErr:        errors.New("store error"),
			wantStatus:     http.StatusInternalServerError,
			wantBodySubstr: "store error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEventService{createEventErr: tt.fakeErr}
			ctrl := NewEventController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPost, "/admin/events", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			ctrl.CreateEvent(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			envelope := decodeEnvelope(t, rr)
			if tt.wantStatus == http.StatusCreated {
				require.Nil(t, envelope.Error)
				dataBytes, err := json.Marshal(envelope.Data)
				require.NoError(t, err)
				var event domain.Event
				require.NoError(t, json.Unmarshal(dataBytes, &event))
				tt.checkEvent(t, event)
			} else if tt.wantBodySubstr != "" {
				require.NotNil(t, envelope.Error)
				assert.Contains(t, envelope.Error.Message, tt.wantBodySubstr, "error message")
			}
		})
	}
}

func TestEventController_UpdateEvent(t *testing.T) {
	title := "Renamed"
	tests := []struct {
		name           string
		eventID        string
		body           string
		fake           *fakeEventService
		wantStatus     int
		wantBodySubstr string
	}{
		{
			name:       "partial update",
			eventID:    "evt-1",
			body:       `{"title":"Renamed"}`,
			fake:       &fakeEventService{updateEventResult: &domain.Event{ID: "evt-1", Title: "Renamed"}},
			wantStatus: http.StatusOK,
		},
		{
			name:           "unknown id reported",
			eventID:        "evt-999",
			body:           `{"title":"Renamed"}`,
			fake:           &fakeEventService{updateEventErr: domain.ErrNotFound},
			wantStatus:     http.StatusNotFound,
			wantBodySubstr: "event not found",
		},
		{
			name:           "required field cannot be blanked",
			eventID:        "evt-1",
			body:           `{"title":"  "}`,
			fake:           &fakeEventService{},
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "title cannot be empty",
		},
		{
			name:           "invalid status",
			eventID:        "evt-1",
			body:           `{"status":"bogus"}`,
			fake:           &fakeEventService{},
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "status must be one of",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewEventController(testLogger, tt.fake)
			req := httptest.NewRequest(http.MethodPatch, "http://test/admin/events/"+tt.eventID, bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req.SetPathValue("eventID", tt.eventID)
			rr := httptest.NewRecorder()

			ctrl.UpdateEvent(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			envelope := decodeEnvelope(t, rr)
			if tt.wantStatus == http.StatusOK {
				require.Nil(t, envelope.Error)
				assert.Equal(t, tt.eventID, tt.fake.lastUpdateEventID)
				require.NotNil(t, tt.fake.lastUpdate.Title)
				assert.Equal(t, title, *tt.fake.lastUpdate.Title)
			} else if tt.wantBodySubstr != "" {
				require.NotNil(t, envelope.Error)
				assert.Contains(t, envelope.Error.Message, tt.wantBodySubstr, "error message")
			}
		})
	}
}

func TestEventController_DeleteEvent(t *testing.T) {
	tests := []struct {
		name       string
		eventID    string
		fakeErr    error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "success",
			eventID:    "evt-1",
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown id reported",
			eventID:    "evt-999",
			fakeErr:    domain.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   helpers.ErrCodeNotFound,
		},
		{
			name:       "missing id",
			eventID:    "",
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEventService{deleteEventErr: tt.fakeErr}
			ctrl := NewEventController(testLogger, fake)
			req := httptest.NewRequest(http.MethodDelete, "http://test/admin/events/"+tt.eventID, nil)
			req.SetPathValue("eventID", tt.eventID)
			rr := httptest.NewRecorder()

			ctrl.DeleteEvent(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			envelope := decodeEnvelope(t, rr)
			if tt.wantCode != "" {
				require.NotNil(t, envelope.Error)
				assert.Equal(t, tt.wantCode, envelope.Error.Code)
			} else {
				require.Nil(t, envelope.Error)
				assert.Equal(t, tt.eventID, fake.lastDeleteEventID)
			}
		})
	}
}
