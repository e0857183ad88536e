package mailer

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/resend/resend-go/v2"
)

type resendSender struct {
	client *resend.Client
}

// NewResendSender talks to the Resend HTTP API. baseURL overrides the API
// endpoint and may be empty.
func NewResendSender(apiKey, baseURL string) (Sender, error) {
	client := resend.NewClient(apiKey)
	if baseURL != "" {
		u, err := url.Parse(strings.TrimRight(baseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("parsing resend base url: %w", err)
		}
		client.BaseURL = u
	}
	return &resendSender{client: client}, nil
}

func (s *resendSender) Send(ctx context.Context, msg Message) error {
	_, err := s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    msg.From,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTML,
		Headers: msg.Headers,
	})
	if err != nil {
		return fmt.Errorf("Resend API error: %w", err)
	}
	return nil
}
