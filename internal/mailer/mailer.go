package mailer

import (
	"context"
	"errors"
	"fmt"

	"tekimax.app/docs/core/config"
)

const (
	ProviderResend = "resend"
	ProviderSMTP   = "smtp"

	// EntityRefHeader threads provider-side delivery logs back to the invite.
	EntityRefHeader = "X-Entity-Ref-ID"
)

var ErrNotConfigured = errors.New("email transport is not configured")

type Message struct {
	From    string
	To      []string
	Subject string
	HTML    string
	Headers map[string]string
}

// Sender delivers a rendered message. Implementations return an error for
// any non-accepted delivery; they never retry.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// New returns the sender selected by cfg.Provider.
func New(cfg config.EmailConfig) (Sender, error) {
	switch cfg.Provider {
	case ProviderResend, "":
		if cfg.ResendAPIKey == "" {
			return nil, fmt.Errorf("%w: AUTH_RESEND_KEY is required", ErrNotConfigured)
		}
		return NewResendSender(cfg.ResendAPIKey, cfg.ResendBaseURL)
	case ProviderSMTP:
		if cfg.SMTPHost == "" {
			return nil, fmt.Errorf("%w: SMTP_HOST is required", ErrNotConfigured)
		}
		return NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword), nil
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", ErrNotConfigured, cfg.Provider)
	}
}
