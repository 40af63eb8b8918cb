package domain

import "context"

// Mailer sends a single email. Implementations may use SES or a no-op.
type Mailer interface {
	Send(to, subject, html, text string) error
}

// NewsletterService handles public newsletter signups.
type NewsletterService interface {
	Subscribe(ctx context.Context, email string) error
}
