package services

import (
	"context"
	"errors"
	"testing"

	"cisoevents/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMailer records sent mail.
type fakeMailer struct {
	sent []string // recipient addresses
	err  error
}

func (f *fakeMailer) Send(to, subject, html, text string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, to)
	return nil
}

func TestNewsletterService_Subscribe(t *testing.T) {
	mailer := &fakeMailer{}
	svc := NewNewsletterService(mailer)

	err := svc.Subscribe(context.Background(), "Reader@Example.COM")
	require.NoError(t, err)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "reader@example.com", mailer.sent[0])
}

func TestNewsletterService_SubscribeInvalidEmail(t *testing.T) {
	mailer := &fakeMailer{}
	svc := NewNewsletterService(mailer)

	for _, bad := range []string{"", "plain", "a@b", "@example.com", "a b@example.com"} {
		err := svc.Subscribe(context.Background(), bad)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "email %q", bad)
	}
	assert.Empty(t, mailer.sent)
}

func TestNewsletterService_ResubscribeSendsOnce(t *testing.T) {
	mailer := &fakeMailer{}
	svc := NewNewsletterService(mailer)

	require.NoError(t, svc.Subscribe(context.Background(), "reader@example.com"))
	require.NoError(t, svc.Subscribe(context.Background(), "READER@example.com"))
	assert.Len(t, mailer.sent, 1)
}

func TestNewsletterService_MailerFailure(t *testing.T) {
	mailer := &fakeMailer{err: errors.New("ses down")}
	svc := NewNewsletterService(mailer)

	err := svc.Subscribe(context.Background(), "reader@example.com")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrInvalidInput)
}
