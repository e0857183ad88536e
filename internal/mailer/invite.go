package mailer

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"net/url"
	"strconv"
	"strings"
	"time"
)

//go:embed templates/invite.html
var inviteTemplateHTML string

var inviteTemplate = template.Must(template.New("invite").Parse(inviteTemplateHTML))

type Invite struct {
	InviteID      int64
	Token         string
	Email         string
	WorkspaceName string
	AppName       string
	SiteURL       string
	TTL           time.Duration
}

type inviteView struct {
	WorkspaceName string
	AppName       string
	Link          string
	ExpiresIn     string
}

// InviteLink is {site}/auth/verify/{inviteID}?token={token}.
func InviteLink(siteURL string, inviteID int64, token string) string {
	return fmt.Sprintf("%s/auth/verify/%d?token=%s",
		strings.TrimRight(siteURL, "/"), inviteID, url.QueryEscape(token))
}

// InviteMessage renders the invitation email addressed from from.
func InviteMessage(from string, inv Invite) (Message, error) {
	var body bytes.Buffer
	err := inviteTemplate.Execute(&body, inviteView{
		WorkspaceName: inv.WorkspaceName,
		AppName:       inv.AppName,
		Link:          InviteLink(inv.SiteURL, inv.InviteID, inv.Token),
		ExpiresIn:     humanizeTTL(inv.TTL),
	})
	if err != nil {
		return Message{}, fmt.Errorf("rendering invite email: %w", err)
	}

	return Message{
		From:    from,
		To:      []string{inv.Email},
		Subject: fmt.Sprintf("Join %s on %s Docs", inv.WorkspaceName, inv.AppName),
		HTML:    body.String(),
		Headers: map[string]string{EntityRefHeader: strconv.FormatInt(inv.InviteID, 10)},
	}, nil
}

func humanizeTTL(ttl time.Duration) string {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	if ttl%time.Hour == 0 {
		return plural(int(ttl/time.Hour), "hour")
	}
	return plural(int(ttl.Round(time.Minute)/time.Minute), "minute")
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
