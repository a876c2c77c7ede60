package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio_backend/internal/models"
	"portfolio_backend/internal/notify"
	"portfolio_backend/internal/pkg/email"
	"portfolio_backend/internal/services/dto"
	"portfolio_backend/internal/store"
	"portfolio_backend/pkg/apperrors"
)

func newContactFixture(t *testing.T, sender email.Sender) (*ContactService, *notify.Notifier, *store.Collection[models.ContactRecord]) {
	t.Helper()

	st, err := store.New(t.TempDir())
	require.NoError(t, err)

	templates, err := email.NewTemplateManager()
	require.NoError(t, err)
	notifier := notify.New(sender, templates, "admin@example.com")

	return NewContactService(st.Contacts, notifier), notifier, st.Contacts
}

func TestContactSubmitPersistsAndNotifiesTwice(t *testing.T) {
	sender := &recordingSender{}
	svc, notifier, contacts := newContactFixture(t, sender)

	record, err := svc.Submit(context.Background(), &dto.ContactRequest{
		Name:    "A",
		Email:   "a@example.com",
		Subject: "Hi",
		Message: "Hello there",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ContactStatusReceived, record.Status)
	assert.NotZero(t, record.ID)

	stored, err := contacts.Get(record.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", stored.Email)

	notifier.Wait()
	require.Equal(t, 2, sender.attempts(), "alert and acknowledgement must both be attempted")

	recipients := map[string]bool{}
	for _, e := range sender.sent {
		for _, to := range e.To {
			recipients[to] = true
		}
	}
	assert.True(t, recipients["admin@example.com"], "operator alert missing")
	assert.True(t, recipients["a@example.com"], "sender acknowledgement missing")
}

func TestContactSubmitSucceedsWhenEmailFails(t *testing.T) {
	sender := &recordingSender{fail: true}
	svc, notifier, contacts := newContactFixture(t, sender)

	record, err := svc.Submit(context.Background(), &dto.ContactRequest{
		Name:    "B",
		Email:   "b@example.com",
		Subject: "Subject",
		Message: "Body",
	})
	require.NoError(t, err, "notification failure must not fail the submission")

	records, err := contacts.List()
	require.NoError(t, err)
	assert.Len(t, records, 1)
	_ = record

	notifier.Wait()
	assert.Equal(t, 2, sender.attempts())
}

func TestContactStatusTransitions(t *testing.T) {
	svc, _, _ := newContactFixture(t, nil)

	record, err := svc.Submit(context.Background(), &dto.ContactRequest{
		Name: "C", Email: "c@example.com", Subject: "S", Message: "M",
	})
	require.NoError(t, err)

	// Get marks a fresh message as read
	got, err := svc.Get(record.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ContactStatusRead, got.Status)

	// forward transition allowed
	updated, err := svc.UpdateStatus(record.ID, models.ContactStatusReplied)
	require.NoError(t, err)
	assert.Equal(t, models.ContactStatusReplied, updated.Status)

	// backward transition rejected
	_, err = svc.UpdateStatus(record.ID, models.ContactStatusRead)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidStatus, appErr.Code)
}

func TestContactDeleteAndStats(t *testing.T) {
	svc, _, _ := newContactFixture(t, nil)

	first, err := svc.Submit(context.Background(), &dto.ContactRequest{
		Name: "D", Email: "d@example.com", Subject: "S", Message: "M",
	})
	require.NoError(t, err)
	_, err = svc.Submit(context.Background(), &dto.ContactRequest{
		Name: "E", Email: "e@example.com", Subject: "S", Message: "M",
	})
	require.NoError(t, err)

	stats, err := svc.Stats()
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 2, stats.Received)

	require.NoError(t, svc.Delete(first.ID))

	stats, err = svc.Stats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Total)

	err = svc.Delete(first.ID)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}
