package email

// Provider sends transactional mail.
type Provider interface {
	// Send delivers a single message.
	Send(email *Email) error

	// SendVerification delivers the account-verification message.
	SendVerification(to, name, token string) error

	// Close releases provider resources.
	Close() error
}

// Email is a single outgoing message.
type Email struct {
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

// TemplateData feeds the HTML templates.
type TemplateData map[string]interface{}
