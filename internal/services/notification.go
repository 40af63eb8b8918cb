package services

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"cisoevents/internal/domain"
)

// DefaultNotificationTTL is how long a notification stays active unless
// dismissed earlier.
const DefaultNotificationTTL = 4000 * time.Millisecond

type notificationService struct {
	mu     sync.Mutex
	ttl    time.Duration
	active []*domain.Notification
	timers map[string]*time.Timer
}

// NewNotificationService returns a Notifier whose entries auto-expire after
// ttl. A non-positive ttl falls back to DefaultNotificationTTL.
func NewNotificationService(ttl time.Duration) domain.Notifier {
	if ttl <= 0 {
		ttl = DefaultNotificationTTL
	}
	return &notificationService{
		ttl:    ttl,
		timers: make(map[string]*time.Timer),
	}
}

func (s *notificationService) Push(message string, severity domain.Severity) *domain.Notification {
	n := &domain.Notification{
		ID:       uuid.NewString(),
		Message:  message,
		Severity: severity,
	}
	s.mu.Lock()
	s.active = append(s.active, n)
	s.timers[n.ID] = time.AfterFunc(s.ttl, func() { s.Remove(n.ID) })
	s.mu.Unlock()
	return n
}

// Remove is idempotent; removing an absent id is a no-op. It also cancels the
// pending auto-removal so an early dismissal never races a second removal.
func (s *notificationService) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.timers[id]; ok {
		t.Stop()
		delete(s.timers, id)
	}
	for i, n := range s.active {
		if n.ID == id {
			s.active = append(s.active[:i], s.active[i+1:]...)
			return
		}
	}
}

func (s *notificationService) Active() []*domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*domain.Notification, len(s.active))
	copy(out, s.active)
	return out
}
