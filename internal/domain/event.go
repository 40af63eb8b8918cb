package domain

import "context"

// EventStatus is the publication state of an event.
type EventStatus string

const (
	EventStatusDraft    EventStatus = "draft"
	EventStatusUpcoming EventStatus = "upcoming"
	EventStatusPast     EventStatus = "past"
	EventStatusArchived EventStatus = "archived"
)

// ValidEventStatus reports whether s is one of the known statuses.
func ValidEventStatus(s EventStatus) bool {
	switch s {
	case EventStatusDraft, EventStatusUpcoming, EventStatusPast, EventStatusArchived:
		return true
	}
	return false
}

// Event represents a conference event managed through the admin console.
// swagger:model Event
type Event struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Year        int         `json:"year"`
	StartDate   string      `json:"start_date"` // YYYY-MM-DD
	EndDate     string      `json:"end_date"`   // YYYY-MM-DD, may equal start_date
	Location    string      `json:"location"`
	Description string      `json:"description"`
	Image       string      `json:"image"`
	Status      EventStatus `json:"status"`
	Attendees   string      `json:"attendees"` // display label, e.g. "500+"
	Tags        []string    `json:"tags"`
}

// NewEvent returns a new Event with the given fields. ID is set by the repository on create.
func NewEvent(title string, year int, startDate, endDate, location, description, image string, status EventStatus, attendees string, tags []string) *Event {
	return &Event{
		Title:       title,
		Year:        year,
		StartDate:   startDate,
		EndDate:     endDate,
		Location:    location,
		Description: description,
		Image:       image,
		Status:      status,
		Attendees:   attendees,
		Tags:        tags,
	}
}

// EventUpdate carries a partial update. Nil fields are left unchanged.
type EventUpdate struct {
	Title       *string      `json:"title"`
	Year        *int         `json:"year"`
	StartDate   *string      `json:"start_date"`
	EndDate     *string      `json:"end_date"`
	Location    *string      `json:"location"`
	Description *string      `json:"description"`
	Image       *string      `json:"image"`
	Status      *EventStatus `json:"status"`
	Attendees   *string      `json:"attendees"`
	Tags        *[]string    `json:"tags"`
}

// EventFilter narrows event listings. Zero values match everything.
// Search is a case-insensitive substring match over title and location.
type EventFilter struct {
	Search string
	Year   int
	Status EventStatus
}

// EventRepository defines the interface for event storage.
// List returns events in insertion order.
type EventRepository interface {
	List(ctx context.Context) ([]*Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	Create(ctx context.Context, event *Event) error
	Update(ctx context.Context, id string, update EventUpdate) (*Event, error)
	Delete(ctx context.Context, id string) error
}

// EventService defines the business logic for event management.
type EventService interface {
	ListEvents(ctx context.Context, filter EventFilter) ([]*Event, error)
	GetEventByID(ctx context.Context, id string) (*Event, error)
	CreateEvent(ctx context.Context, event *Event) (*Event, error)
	UpdateEvent(ctx context.Context, id string, update EventUpdate) (*Event, error)
	DeleteEvent(ctx context.Context, id string) error
}
