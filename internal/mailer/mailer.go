// Package mailer sends transactional email through SendGrid and exposes the
// email HTTP endpoints.
package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// System defines the public contract for email operations.
type System interface {
	Handler() *Handler

	Send(ctx context.Context, msg Message) error
	Config() ConfigStatus
}

// Message is one transactional email. At least one of Text or HTML must be set.
type Message struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text,omitempty"`
	HTML    string `json:"html,omitempty"`
}

// ConfigStatus reports whether the provider settings are complete. It names
// missing settings but never exposes credential values.
type ConfigStatus struct {
	Configured bool     `json:"configured"`
	Missing    []string `json:"missing"`
}

// Settings carries the provider configuration for the mailer system.
type Settings struct {
	APIKey  string
	From    string
	ReplyTo string
}

type system struct {
	settings Settings
	logger   *slog.Logger
	send     func(ctx context.Context, apiKey string, msg *mail.SGMailV3) (int, error)
}

// NewSystem creates the SendGrid-backed email system.
func NewSystem(settings Settings, logger *slog.Logger) System {
	return &system{
		settings: settings,
		logger:   logger.With("system", "mailer"),
		send:     sendgridSend,
	}
}

func sendgridSend(ctx context.Context, apiKey string, msg *mail.SGMailV3) (int, error) {
	client := sendgrid.NewSendClient(apiKey)
	resp, err := client.SendWithContext(ctx, msg)
	if err != nil {
		return 0, err
	}
	return resp.StatusCode, nil
}

// Handler returns the HTTP handler for email endpoints.
func (s *system) Handler() *Handler {
	return NewHandler(s, s.logger)
}

// Config reports which provider settings are missing.
func (s *system) Config() ConfigStatus {
	var missing []string
	if s.settings.APIKey == "" {
		missing = append(missing, "SENDGRID_API_KEY")
	}
	if s.settings.From == "" {
		missing = append(missing, "EMAIL_FROM")
	}
	return ConfigStatus{
		Configured: len(missing) == 0,
		Missing:    missing,
	}
}

// Send delivers one transactional email via SendGrid.
func (s *system) Send(ctx context.Context, msg Message) error {
	if msg.Text == "" && msg.HTML == "" {
		return ErrMissingBody
	}
	if s.settings.APIKey == "" || s.settings.From == "" {
		return ErrNotConfigured
	}

	message := mail.NewV3Mail()
	message.SetFrom(mail.NewEmail("", s.settings.From))
	message.Subject = msg.Subject

	personalization := mail.NewPersonalization()
	personalization.AddTos(mail.NewEmail("", msg.To))
	message.AddPersonalizations(personalization)

	if msg.Text != "" {
		message.AddContent(mail.NewContent("text/plain", msg.Text))
	}
	if msg.HTML != "" {
		message.AddContent(mail.NewContent("text/html", msg.HTML))
	}
	if s.settings.ReplyTo != "" {
		message.SetReplyTo(mail.NewEmail("", s.settings.ReplyTo))
	}

	status, err := s.send(ctx, s.settings.APIKey, message)
	if err != nil {
		return fmt.Errorf("%w: sending to %s: %w", ErrProvider, msg.To, err)
	}
	if status >= http.StatusBadRequest {
		return fmt.Errorf("%w: provider returned status %d for %s", ErrProvider, status, msg.To)
	}

	s.logger.InfoContext(ctx, "email sent", "to", msg.To, "status_code", status)
	return nil
}
