// Package notification delivers attendee-facing email. Delivery is
// best effort throughout: registration must never fail because an
// email did not go out.
package notification

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"

	"eventlink/internal/pkg/config"
	"eventlink/internal/pkg/errs"
	"eventlink/internal/usecase/commands"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gmail "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// NewMailer returns the Gmail-backed mailer when mail is configured and
// a log-only stand-in otherwise, so local and test runs need no Google
// credentials.
func NewMailer(ctx context.Context, cfg config.MailConfig, logger *slog.Logger) (commands.AccessCodeNotifier, error) {
	if !cfg.Enabled {
		return &LogMailer{logger: logger}, nil
	}
	return NewGmailMailer(ctx, cfg, logger)
}

// GmailMailer sends through the Gmail API using an offline refresh
// token, the same flow the registration desk tooling was authorized
// with.
type GmailMailer struct {
	service *gmail.Service
	from    string
	logger  *slog.Logger
}

func NewGmailMailer(ctx context.Context, cfg config.MailConfig, logger *slog.Logger) (*GmailMailer, error) {
	oauthCfg := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{gmail.GmailSendScope},
	}
	tokenSource := oauthCfg.TokenSource(ctx, &oauth2.Token{RefreshToken: cfg.RefreshToken})

	service, err := gmail.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, errs.Wrap(err, "failed to create gmail service")
	}

	return &GmailMailer{service: service, from: cfg.From, logger: logger}, nil
}

func (m *GmailMailer) SendAccessCode(ctx context.Context, email, fullName, eventName, eventCode, accessCode string) error {
	raw := buildAccessCodeMessage(m.from, email, fullName, eventName, eventCode, accessCode)
	msg := &gmail.Message{Raw: base64.URLEncoding.EncodeToString([]byte(raw))}

	if _, err := m.service.Users.Messages.Send("me", msg).Context(ctx).Do(); err != nil {
		return errs.Wrap(err, "failed to send access code email")
	}

	m.logger.Info("access code email sent", "to", email, "event_code", eventCode)
	return nil
}

// LogMailer records what would have been sent. Used whenever mail is
// not configured.
type LogMailer struct {
	logger *slog.Logger
}

func (m *LogMailer) SendAccessCode(_ context.Context, email, _, eventName, eventCode, _ string) error {
	m.logger.Info("mail disabled, skipping access code email",
		"to", email, "event", eventName, "event_code", eventCode)
	return nil
}

func buildAccessCodeMessage(from, to, fullName, eventName, eventCode, accessCode string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: Your access code for %s\r\n", eventName)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	fmt.Fprintf(&b, "Hi %s,\r\n\r\n", fullName)
	fmt.Fprintf(&b, "Thanks for registering for %s.\r\n\r\n", eventName)
	fmt.Fprintf(&b, "Your access code: %s\r\n\r\n", accessCode)
	fmt.Fprintf(&b, "Use it together with the event code %s to verify your registration, browse the attendee directory and book networking slots.\r\n\r\n", eventCode)
	b.WriteString("Keep this code to yourself: anyone holding it can act as you.\r\n")
	return b.String()
}
