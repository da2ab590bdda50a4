package email

import (
	"fmt"
	"time"

	"gopkg.in/gomail.v2"
)

// SMTPConfig holds the SMTP server settings.
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
	Timeout   time.Duration
}

func (c *SMTPConfig) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("SMTP host is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid SMTP port: %d", c.Port)
	}
	if c.FromEmail == "" {
		return fmt.Errorf("from email is required")
	}
	return nil
}

// SMTPProvider implements Provider over gomail.
type SMTPProvider struct {
	config   *SMTPConfig
	dialer   *gomail.Dialer
	renderer *TemplateManager
}

func NewSMTPProvider(config *SMTPConfig) (*SMTPProvider, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid email config: %w", err)
	}

	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPProvider{
		config:   config,
		dialer:   dialer,
		renderer: NewTemplateManager(),
	}, nil
}

// Send delivers a single message over SMTP.
func (p *SMTPProvider) Send(email *Email) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.config.FromEmail, p.config.FromName)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)

	if email.HTMLBody != "" {
		m.SetBody("text/html", email.HTMLBody)
		if email.Body != "" {
			m.AddAlternative("text/plain", email.Body)
		}
	} else {
		m.SetBody("text/plain", email.Body)
	}

	if err := p.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendVerification renders and sends the account-verification mail.
func (p *SMTPProvider) SendVerification(to, name, token string) error {
	htmlBody, err := p.renderer.Render(TemplateVerification, TemplateData{
		"Name":  name,
		"Token": token,
	})
	if err != nil {
		return fmt.Errorf("failed to render verification template: %w", err)
	}

	return p.Send(&Email{
		To:       []string{to},
		Subject:  "Verify your MentorHub account",
		Body:     fmt.Sprintf("Hi %s, your verification code is: %s", name, token),
		HTMLBody: htmlBody,
	})
}

func (p *SMTPProvider) Close() error {
	return nil
}
