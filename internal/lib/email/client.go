// Package email renders the embedded HTML templates and delivers them
// through Resend.
package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
	"github.com/rk2835/aquahub/internal/config"
	"github.com/rs/zerolog"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// sender is the part of the Resend API the client uses.
type sender interface {
	Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// Client sends templated email. Without a Resend API key it only logs
// what it would have sent.
type Client struct {
	emails sender
	from   string
	logger *zerolog.Logger
}

func NewClient(cfg *config.Config, logger *zerolog.Logger) *Client {
	c := &Client{
		from:   cfg.Integration.EmailFrom,
		logger: logger,
	}
	if cfg.Integration.ResendAPIKey != "" {
		c.emails = resend.NewClient(cfg.Integration.ResendAPIKey).Emails
	}
	return c
}

// Enabled reports whether mail is actually delivered.
func (c *Client) Enabled() bool {
	return c.emails != nil
}

// Render executes the named template with data.
func Render(templateName Template, data map[string]string) (string, error) {
	var body bytes.Buffer
	if err := templates.ExecuteTemplate(&body, templateName.file(), data); err != nil {
		return "", errors.Wrapf(err, "failed to execute email template %s", templateName)
	}
	return body.String(), nil
}

// SendEmail renders templateName with data and sends it to a single recipient.
func (c *Client) SendEmail(to, subject string, templateName Template, data map[string]string) error {
	html, err := Render(templateName, data)
	if err != nil {
		return err
	}

	if !c.Enabled() {
		c.logger.Info().
			Str("to", to).
			Str("template", string(templateName)).
			Msg("email delivery disabled, skipping send")
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    c.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	}

	if _, err := c.emails.Send(params); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
