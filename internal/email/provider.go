package email

// Email is one outgoing message.
type Email struct {
	To      []string
	Subject string
	Body    string // plain text
}

// Provider sends notification emails.
type Provider interface {
	Send(email *Email) error
	Close() error
}
