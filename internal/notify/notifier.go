// Package notify dispatches templated email notifications off the request
// path. Every dispatch is fire-and-forget: failures are logged and
// discarded, and no caller ever blocks on or observes a send result. A
// submission is successful once its record is stored, whatever happens here.
package notify

import (
	"fmt"
	"sync"

	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/pkg/email"
)

// Notifier renders and sends notification emails asynchronously.
type Notifier struct {
	sender     email.Sender
	templates  *email.TemplateManager
	adminEmail string

	wg sync.WaitGroup
}

// New builds a Notifier. A nil sender disables delivery (local runs without
// SMTP credentials); dispatches are still counted and logged.
func New(sender email.Sender, templates *email.TemplateManager, adminEmail string) *Notifier {
	return &Notifier{
		sender:     sender,
		templates:  templates,
		adminEmail: adminEmail,
	}
}

// UploadConfirmation notifies the submitter that their project was stored.
func (n *Notifier) UploadConfirmation(record models.UploadRecord, formattedSize string) {
	data := email.UploadConfirmationData{
		ProjectName: record.ProjectName,
		FileCount:   record.FileCount,
		TotalSize:   formattedSize,
		UploadTime:  record.UploadDate,
	}
	subject := fmt.Sprintf("Project Upload Successful - %s", record.ProjectName)
	n.dispatch("upload_confirmation", []string{record.UploadedBy}, subject, email.TemplateUploadConfirmation, data)
}

// ContactAlert notifies the site operator about a new contact message.
func (n *Notifier) ContactAlert(record models.ContactRecord) {
	data := email.ContactAlertData{
		Name:       record.Name,
		Email:      record.Email,
		Subject:    record.Subject,
		Message:    record.Message,
		ReceivedAt: record.Timestamp,
	}
	subject := fmt.Sprintf("New Contact: %s", record.Subject)
	n.dispatch("contact_alert", []string{n.adminEmail}, subject, email.TemplateContactAlert, data)
}

// ContactAcknowledgement confirms receipt to the sender.
func (n *Notifier) ContactAcknowledgement(record models.ContactRecord) {
	data := email.ContactAckData{
		Name:    record.Name,
		Subject: record.Subject,
		Message: record.Message,
	}
	subject := fmt.Sprintf("Message Received - %s", record.Subject)
	n.dispatch("contact_ack", []string{record.Email}, subject, email.TemplateContactAck, data)
}

// dispatch renders and sends on its own goroutine. No lock is held across
// the send, and errors stop here.
func (n *Notifier) dispatch(kind string, to []string, subject, templateName string, data interface{}) {
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()

		log := logger.With("notification", kind, "to", to)

		if n.sender == nil {
			log.Debug("email sending disabled, notification skipped")
			return
		}

		body, err := n.templates.Render(templateName, data)
		if err != nil {
			log.Error("failed to render notification", "error", err.Error())
			return
		}

		if err := n.sender.Send(&email.Email{To: to, Subject: subject, HTMLBody: body}); err != nil {
			log.Error("failed to send notification", "error", err.Error())
			return
		}

		log.Info("notification sent")
	}()
}

// Wait blocks until all in-flight dispatches finish. Used on shutdown and
// in tests; request handlers never call it.
func (n *Notifier) Wait() {
	n.wg.Wait()
}
