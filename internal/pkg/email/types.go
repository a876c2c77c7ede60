package email

// Email is one outbound message. Bodies are HTML rendered by the template
// manager; plain-text alternatives are derived by the sender.
type Email struct {
	To       []string
	Subject  string
	HTMLBody string
}

// Sender delivers messages. The notifier wraps a Sender so handlers never
// talk to SMTP directly, and tests inject fakes here.
type Sender interface {
	Send(email *Email) error
}
