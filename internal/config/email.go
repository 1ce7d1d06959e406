package config

import "os"

// Provider credential env vars follow the conventional names so deployments
// can share them across services. The API key is never written to config
// files or logs.
const (
	EnvEmailAPIKey  = "SENDGRID_API_KEY"
	EnvEmailFrom    = "EMAIL_FROM"
	EnvEmailReplyTo = "EMAIL_REPLY_TO"
)

// EmailConfig holds transactional email provider settings.
type EmailConfig struct {
	From    string `toml:"from"`
	ReplyTo string `toml:"reply_to"`

	apiKey string
}

// APIKey returns the provider API key loaded from the environment.
func (c *EmailConfig) APIKey() string {
	return c.apiKey
}

// Finalize applies environment variable overrides. Email sending is
// optional, so missing values are reported by the mailer rather than failing
// startup.
func (c *EmailConfig) Finalize() error {
	c.apiKey = os.Getenv(EnvEmailAPIKey)
	if v := os.Getenv(EnvEmailFrom); v != "" {
		c.From = v
	}
	if v := os.Getenv(EnvEmailReplyTo); v != "" {
		c.ReplyTo = v
	}
	return nil
}

// Merge overwrites non-zero fields from overlay.
func (c *EmailConfig) Merge(overlay *EmailConfig) {
	if overlay.From != "" {
		c.From = overlay.From
	}
	if overlay.ReplyTo != "" {
		c.ReplyTo = overlay.ReplyTo
	}
}
