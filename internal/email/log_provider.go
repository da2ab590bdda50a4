package email

import "mentorhub_backend/internal/logger"

// LogProvider writes mail to the log instead of sending it. Used when
// no SMTP host is configured, mainly local development and tests.
type LogProvider struct{}

func NewLogProvider() *LogProvider {
	return &LogProvider{}
}

func (p *LogProvider) Send(email *Email) error {
	logger.Info("email (log only)", "to", email.To, "subject", email.Subject)
	return nil
}

func (p *LogProvider) SendVerification(to, name, token string) error {
	logger.Info("verification email (log only)", "to", to, "name", name, "token", token)
	return nil
}

func (p *LogProvider) Close() error {
	return nil
}
