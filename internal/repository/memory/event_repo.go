package memory

import (
	"context"
	"fmt"
	"sync"

	"cisoevents/internal/domain"
)

// eventRepo is the in-memory event store. It is the single source of truth
// for the event collection; insertion order is preserved and ids come from a
// monotonic counter so rapid successive creates can never collide.
type eventRepo struct {
	mu     sync.RWMutex
	events []*domain.Event
	byID   map[string]*domain.Event
	nextID int
}

// NewEventRepository returns an EventRepository preloaded with the seed
// events. The seed slice itself is never mutated; records are copied in.
func NewEventRepository(seed []*domain.Event) domain.EventRepository {
	r := &eventRepo{
		byID:   make(map[string]*domain.Event, len(seed)),
		nextID: len(seed) + 1,
	}
	for _, e := range seed {
		c := cloneEvent(e)
		r.events = append(r.events, c)
		r.byID[c.ID] = c
	}
	return r
}

func (r *eventRepo) List(ctx context.Context) ([]*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Event, len(r.events))
	for i, e := range r.events {
		out[i] = cloneEvent(e)
	}
	return out, nil
}

func (r *eventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneEvent(e), nil
}

func (r *eventRepo) Create(ctx context.Context, event *domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	event.ID = fmt.Sprintf("evt-%d", r.nextID)
	r.nextID++
	c := cloneEvent(event)
	r.events = append(r.events, c)
	r.byID[c.ID] = c
	return nil
}

func (r *eventRepo) Update(ctx context.Context, id string, update domain.EventUpdate) (*domain.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if update.Title != nil {
		e.Title = *update.Title
	}
	if update.Year != nil {
		e.Year = *update.Year
	}
	if update.StartDate != nil {
		e.StartDate = *update.StartDate
	}
	if update.EndDate != nil {
		e.EndDate = *update.EndDate
	}
	if update.Location != nil {
		e.Location = *update.Location
	}
	if update.Description != nil {
		e.Description = *update.Description
	}
	if update.Image != nil {
		e.Image = *update.Image
	}
	if update.Status != nil {
		e.Status = *update.Status
	}
	if update.Attendees != nil {
		e.Attendees = *update.Attendees
	}
	if update.Tags != nil {
		e.Tags = append([]string(nil), (*update.Tags)...)
	}
	return cloneEvent(e), nil
}

func (r *eventRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	for i, e := range r.events {
		if e.ID == id {
			r.events = append(r.events[:i], r.events[i+1:]...)
			break
		}
	}
	return nil
}

func cloneEvent(e *domain.Event) *domain.Event {
	c := *e
	c.Tags = append([]string(nil), e.Tags...)
	return &c
}
