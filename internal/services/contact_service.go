package services

import (
	"context"
	"time"

	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/notify"
	"portfolio_backend/internal/services/dto"
	"portfolio_backend/internal/store"
	"portfolio_backend/pkg/apperrors"
)

// ContactService persists contact-form submissions and manages the operator
// surface (status transitions, deletion, stats). Same policy as uploads:
// storage failure is fatal, notification failure is not.
type ContactService struct {
	contacts *store.Collection[models.ContactRecord]
	notifier *notify.Notifier
}

func NewContactService(contacts *store.Collection[models.ContactRecord], notifier *notify.Notifier) *ContactService {
	return &ContactService{contacts: contacts, notifier: notifier}
}

// Submit persists the message and dispatches both notifications: an alert
// to the operator and an acknowledgement to the sender.
func (s *ContactService) Submit(ctx context.Context, req *dto.ContactRequest) (models.ContactRecord, error) {
	record := models.ContactRecord{
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Status:    models.ContactStatusReceived,
	}

	record, err := s.contacts.Append(record)
	if err != nil {
		return models.ContactRecord{}, apperrors.StorageError(err, "Failed to save contact message")
	}

	logger.CtxInfo(ctx, "contact message received", "message_id", record.ID, "from", record.Email)

	s.notifier.ContactAlert(record)
	s.notifier.ContactAcknowledgement(record)

	return record, nil
}

// List returns all messages in insertion order.
func (s *ContactService) List() ([]models.ContactRecord, error) {
	records, err := s.contacts.List()
	if err != nil {
		return nil, apperrors.StorageError(err, "Failed to fetch contacts")
	}
	return records, nil
}

// Get returns one message and marks a freshly received one as read.
func (s *ContactService) Get(id int64) (models.ContactRecord, error) {
	record, err := s.contacts.Update(id, func(r *models.ContactRecord) error {
		if r.Status == models.ContactStatusReceived {
			r.Status = models.ContactStatusRead
		}
		return nil
	})
	if err != nil {
		if apperrors.Is(err, store.ErrNotFound) {
			return models.ContactRecord{}, apperrors.NewNotFoundError("contact", "Message not found")
		}
		return models.ContactRecord{}, apperrors.StorageError(err, "Failed to fetch message")
	}
	return record, nil
}

// UpdateStatus applies a validated forward transition.
func (s *ContactService) UpdateStatus(id int64, status models.ContactStatus) (models.ContactRecord, error) {
	record, err := s.contacts.Update(id, func(r *models.ContactRecord) error {
		if !r.Status.CanTransitionTo(status) {
			return apperrors.NewInvalidStatusError("contact",
				"Invalid status transition from '"+string(r.Status)+"' to '"+string(status)+"'")
		}
		r.Status = status
		return nil
	})
	if err != nil {
		if apperrors.Is(err, store.ErrNotFound) {
			return models.ContactRecord{}, apperrors.NewNotFoundError("contact", "Message not found")
		}
		if _, ok := apperrors.AsAppError(err); ok {
			return models.ContactRecord{}, err
		}
		return models.ContactRecord{}, apperrors.StorageError(err, "Failed to update message")
	}
	return record, nil
}

// Delete removes a message. This is the only delete in the system and only
// the operator reaches it.
func (s *ContactService) Delete(id int64) error {
	if err := s.contacts.Delete(id); err != nil {
		if apperrors.Is(err, store.ErrNotFound) {
			return apperrors.NewNotFoundError("contact", "Message not found")
		}
		return apperrors.StorageError(err, "Failed to delete message")
	}
	return nil
}

// Stats counts messages per status.
func (s *ContactService) Stats() (dto.ContactStats, error) {
	records, err := s.contacts.List()
	if err != nil {
		return dto.ContactStats{}, apperrors.StorageError(err, "Failed to fetch contacts")
	}

	stats := dto.ContactStats{Total: len(records)}
	for _, r := range records {
		switch r.Status {
		case models.ContactStatusReceived:
			stats.Received++
		case models.ContactStatusRead:
			stats.Read++
		case models.ContactStatusReplied:
			stats.Replied++
		}
	}
	return stats, nil
}
