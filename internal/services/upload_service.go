package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/notify"
	"portfolio_backend/internal/services/dto"
	"portfolio_backend/internal/store"
	"portfolio_backend/pkg/apperrors"
)

// UploadDefaults fills optional submission metadata.
type UploadDefaults struct {
	ProjectName string
	UploadedBy  string
}

// UploadService orchestrates the upload pipeline: validate and store files,
// persist the manifest, then notify. Storage failure anywhere before the
// record is appended fails the whole operation; the notification outcome
// never does.
type UploadService struct {
	receiver *FileReceiver
	uploads  *store.Collection[models.UploadRecord]
	notifier *notify.Notifier
	defaults UploadDefaults
}

func NewUploadService(receiver *FileReceiver, uploads *store.Collection[models.UploadRecord], notifier *notify.Notifier, defaults UploadDefaults) *UploadService {
	return &UploadService{
		receiver: receiver,
		uploads:  uploads,
		notifier: notifier,
		defaults: defaults,
	}
}

// HandleUpload runs one submission through the pipeline and returns its
// public summary.
func (s *UploadService) HandleUpload(ctx context.Context, req *dto.UploadRequest) (*dto.UploadData, error) {
	if len(req.Files) == 0 {
		return nil, apperrors.New(apperrors.CodeNoFiles, "upload",
			"No files uploaded. Please select at least one file to upload.", http.StatusBadRequest)
	}

	projectName := req.ProjectName
	if projectName == "" {
		projectName = s.defaults.ProjectName
	}
	uploadedBy := req.UploadedBy
	if uploadedBy == "" {
		uploadedBy = s.defaults.UploadedBy
	}

	entries, err := s.receiver.Receive(ctx, req.Files)
	if err != nil {
		return nil, err
	}

	// Derived, never trusted from the caller beyond the raw files.
	var totalSize int64
	for _, e := range entries {
		totalSize += e.Size
	}

	record := models.UploadRecord{
		ProjectName: projectName,
		UploadedBy:  uploadedBy,
		UploadDate:  time.Now().UTC().Format(time.RFC3339),
		FileCount:   len(entries),
		TotalSize:   totalSize,
		Files:       entries,
		Status:      models.UploadStatusSuccess,
	}

	record, err = s.uploads.Append(record)
	if err != nil {
		// The record never committed, so the stored files come off disk
		// and the caller sees the failure.
		s.receiver.Rollback(ctx, entries)
		return nil, apperrors.StorageError(err, "Failed to save upload record")
	}

	logger.CtxInfo(ctx, "project uploaded",
		"upload_id", record.ID,
		"project", record.ProjectName,
		"files", record.FileCount,
		"total_size", record.TotalSize,
	)

	formattedSize := FormatSizeMB(record.TotalSize)
	s.notifier.UploadConfirmation(record, formattedSize)

	return &dto.UploadData{
		ProjectName: record.ProjectName,
		FileCount:   record.FileCount,
		TotalSize:   formattedSize,
		UploadDate:  record.UploadDate,
		UploadID:    record.ID,
	}, nil
}

// ListUploads returns all upload records in insertion order.
func (s *UploadService) ListUploads() ([]models.UploadRecord, error) {
	records, err := s.uploads.List()
	if err != nil {
		return nil, apperrors.StorageError(err, "Failed to fetch uploads")
	}
	return records, nil
}

// GetUpload returns one upload record by ID.
func (s *UploadService) GetUpload(id int64) (models.UploadRecord, error) {
	record, err := s.uploads.Get(id)
	if err != nil {
		if apperrors.Is(err, store.ErrNotFound) {
			return models.UploadRecord{}, apperrors.NewNotFoundError("upload", "Upload not found")
		}
		return models.UploadRecord{}, apperrors.StorageError(err, "Failed to fetch upload")
	}
	return record, nil
}

// FormatSizeMB renders a byte count the way the site always displayed it.
func FormatSizeMB(bytes int64) string {
	return fmt.Sprintf("%.2f MB", float64(bytes)/1024/1024)
}
