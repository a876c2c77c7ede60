package notify

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio_backend/internal/models"
	"portfolio_backend/internal/pkg/email"
)

type stubSender struct {
	mu   sync.Mutex
	sent []*email.Email
	fail bool
}

func (s *stubSender) Send(e *email.Email) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, e)
	if s.fail {
		return fmt.Errorf("dial tcp: connection refused")
	}
	return nil
}

func newTestNotifier(t *testing.T, sender email.Sender) *Notifier {
	t.Helper()
	templates, err := email.NewTemplateManager()
	require.NoError(t, err)
	return New(sender, templates, "admin@example.com")
}

func TestContactAlertGoesToOperator(t *testing.T) {
	sender := &stubSender{}
	n := newTestNotifier(t, sender)

	n.ContactAlert(models.ContactRecord{
		Name: "A", Email: "a@example.com", Subject: "Hello", Message: "Hi",
	})
	n.Wait()

	require.Len(t, sender.sent, 1)
	assert.Equal(t, []string{"admin@example.com"}, sender.sent[0].To)
	assert.Contains(t, sender.sent[0].Subject, "Hello")
	assert.Contains(t, sender.sent[0].HTMLBody, "a@example.com")
}

func TestUploadConfirmationGoesToSubmitter(t *testing.T) {
	sender := &stubSender{}
	n := newTestNotifier(t, sender)

	n.UploadConfirmation(models.UploadRecord{
		ProjectName: "Demo",
		UploadedBy:  "dev@example.com",
		FileCount:   2,
	}, "7.00 MB")
	n.Wait()

	require.Len(t, sender.sent, 1)
	assert.Equal(t, []string{"dev@example.com"}, sender.sent[0].To)
	assert.Contains(t, sender.sent[0].HTMLBody, "7.00 MB")
}

func TestSendFailureIsSwallowed(t *testing.T) {
	sender := &stubSender{fail: true}
	n := newTestNotifier(t, sender)

	n.ContactAcknowledgement(models.ContactRecord{
		Name: "B", Email: "b@example.com", Subject: "S", Message: "M",
	})
	n.Wait()

	// the attempt happened, the error went nowhere
	assert.Len(t, sender.sent, 1)
}

func TestNilSenderSkipsDelivery(t *testing.T) {
	n := newTestNotifier(t, nil)

	n.ContactAlert(models.ContactRecord{Name: "C", Email: "c@example.com", Subject: "S", Message: "M"})
	n.ContactAcknowledgement(models.ContactRecord{Name: "C", Email: "c@example.com", Subject: "S", Message: "M"})
	n.Wait()
}
