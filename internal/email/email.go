package email

import "context"

// Provider sends transactional mail. Implementations must be safe for
// concurrent use.
type Provider interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// NoopProvider discards all mail. Used when SMTP is not configured.
type NoopProvider struct{}

func (NoopProvider) Send(_ context.Context, _, _, _ string) error { return nil }
