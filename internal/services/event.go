package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cisoevents/internal/domain"
)

type eventService struct {
	eventRepo domain.EventRepository
	notifier  domain.Notifier
}

// NewEventService creates an EventService. Every successful mutation pushes
// exactly one notification; the push happens after the mutation and is never
// rolled back.
func NewEventService(eventRepo domain.EventRepository, notifier domain.Notifier) domain.EventService {
	return &eventService{
		eventRepo: eventRepo,
		notifier:  notifier,
	}
}

func (s *eventService) ListEvents(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	q := strings.ToLower(filter.Search)
	out := make([]*domain.Event, 0, len(events))
	for _, e := range events {
		if filter.Year != 0 && e.Year != filter.Year {
			continue
		}
		if filter.Status != "" && e.Status != filter.Status {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(e.Title), q) &&
			!strings.Contains(strings.ToLower(e.Location), q) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (s *eventService) GetEventByID(ctx context.Context, id string) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *eventService) CreateEvent(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	if !domain.ValidEventStatus(event.Status) {
		event.Status = domain.EventStatusDraft
	}
	if event.EndDate == "" {
		event.EndDate = event.StartDate
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	s.notifier.Push("Event created successfully!", domain.SeveritySuccess)
	return event, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, id string, update domain.EventUpdate) (*domain.Event, error) {
	updated, err := s.eventRepo.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	s.notifier.Push("Event updated successfully!", domain.SeveritySuccess)
	return updated, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id string) error {
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	// Error severity is a display convention for removals, not a failure.
	s.notifier.Push("Event deleted.", domain.SeverityError)
	return nil
}
