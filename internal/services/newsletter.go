package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"cisoevents/internal/domain"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type newsletterService struct {
	mailer domain.Mailer

	mu         sync.Mutex
	subscribed map[string]struct{}
}

// NewNewsletterService creates the newsletter signup service. Subscriptions
// live only for the process lifetime, like everything else here.
func NewNewsletterService(mailer domain.Mailer) domain.NewsletterService {
	return &newsletterService{
		mailer:     mailer,
		subscribed: make(map[string]struct{}),
	}
}

func (s *newsletterService) Subscribe(ctx context.Context, email string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if !emailRegexp.MatchString(email) {
		return domain.ErrInvalidInput
	}

	s.mu.Lock()
	_, already := s.subscribed[email]
	s.subscribed[email] = struct{}{}
	s.mu.Unlock()
	if already {
		// Re-subscribing is fine; don't send a second confirmation.
		return nil
	}

	subject := "You're on the CISOevents list"
	text := "Thanks for subscribing to CISOevents updates. We'll let you know about upcoming events, speakers, and new podcast episodes."
	html := "<p>Thanks for subscribing to <strong>CISOevents</strong> updates.</p><p>We'll let you know about upcoming events, speakers, and new podcast episodes.</p>"
	if err := s.mailer.Send(email, subject, html, text); err != nil {
		return fmt.Errorf("send confirmation: %w", err)
	}
	return nil
}
