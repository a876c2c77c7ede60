package services

import (
	"context"
	"fmt"
	"mime"
	"mime/multipart"
	"net/http"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/storage"
	"portfolio_backend/pkg/apperrors"
)

// projectsDir is the subdirectory of the storage root that holds uploaded
// binaries, next to the record files.
const projectsDir = "projects"

// ReceiverConfig carries the validation limits for one submission.
type ReceiverConfig struct {
	// AllowedTypes is the declared-MIME allow-list. Note that the deployed
	// site ships application/octet-stream in this list, which accepts
	// effectively arbitrary binaries; that stays a product decision and is
	// preserved here as configured.
	AllowedTypes []string

	// MaxTotalSize is the ceiling for the aggregate byte size of all parts
	// in one submission.
	MaxTotalSize int64
}

// FileReceiver validates multipart file parts and places accepted ones onto
// durable storage under server-generated names.
type FileReceiver struct {
	storage storage.Storage
	config  ReceiverConfig
}

func NewFileReceiver(st storage.Storage, config ReceiverConfig) *FileReceiver {
	return &FileReceiver{storage: st, config: config}
}

// Receive validates every part and stores them all, or stores nothing.
//
// Validation order: per-part MIME allow-list first, then the aggregate size
// ceiling; both run before any byte reaches disk, so a rejected submission
// leaves no partial FileEntry behind. If a write fails midway, files already
// written for this submission are removed.
func (r *FileReceiver) Receive(ctx context.Context, files []*multipart.FileHeader) ([]models.FileEntry, error) {
	for _, fh := range files {
		declared := declaredType(fh)
		if !r.typeAllowed(declared) {
			return nil, apperrors.New(
				apperrors.CodeFileTypeNotAllowed,
				"upload",
				fmt.Sprintf("Invalid file type %q for file %q. Only ZIP, RAR, PDF, and DOC files are allowed.", declared, fh.Filename),
				http.StatusBadRequest,
			)
		}
	}

	var totalSize int64
	for _, fh := range files {
		totalSize += fh.Size
	}
	if totalSize > r.config.MaxTotalSize {
		return nil, apperrors.New(
			apperrors.CodeSizeLimitExceeded,
			"upload",
			fmt.Sprintf("Total upload size %d bytes exceeds the %d byte limit", totalSize, r.config.MaxTotalSize),
			http.StatusBadRequest,
		)
	}

	entries := make([]models.FileEntry, 0, len(files))
	for _, fh := range files {
		entry, err := r.storeOne(ctx, fh)
		if err != nil {
			r.Rollback(ctx, entries)
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// Rollback deletes the stored files of entries. Used when a later step of
// the submission fails so nothing half-committed stays on disk.
func (r *FileReceiver) Rollback(ctx context.Context, entries []models.FileEntry) {
	for _, e := range entries {
		if err := r.storage.Delete(ctx, path.Join(projectsDir, e.UploadedName)); err != nil {
			logger.Error("failed to roll back stored file", "file", e.UploadedName, "error", err.Error())
		}
	}
}

func (r *FileReceiver) storeOne(ctx context.Context, fh *multipart.FileHeader) (models.FileEntry, error) {
	storedName := storedName(fh.Filename)
	relPath := path.Join(projectsDir, storedName)

	src, err := fh.Open()
	if err != nil {
		return models.FileEntry{}, apperrors.StorageError(err, "Failed to read uploaded file")
	}
	defer src.Close()

	written, err := r.storage.Save(ctx, relPath, src)
	if err != nil {
		// remove whatever Save left behind before reporting
		_ = r.storage.Delete(ctx, relPath)
		return models.FileEntry{}, apperrors.StorageError(err, "Failed to store uploaded file")
	}

	return models.FileEntry{
		OriginalName: fh.Filename,
		UploadedName: storedName,
		Size:         written,
		Path:         r.storage.FullPath(relPath),
	}, nil
}

func (r *FileReceiver) typeAllowed(declared string) bool {
	for _, allowed := range r.config.AllowedTypes {
		if strings.EqualFold(declared, allowed) {
			return true
		}
	}
	return false
}

func declaredType(fh *multipart.FileHeader) string {
	ct := fh.Header.Get("Content-Type")
	if ct == "" {
		return ""
	}
	// strip parameters like "; charset=..."
	if parsed, _, err := mime.ParseMediaType(ct); err == nil {
		return parsed
	}
	return ct
}

var safeExt = regexp.MustCompile(`^\.[a-zA-Z0-9]{1,10}$`)

// storedName builds a collision-resistant filename: nanosecond timestamp
// plus a random token, keeping only a sanitized extension from the original
// name. Caller-supplied names never become filesystem paths.
func storedName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !safeExt.MatchString(ext) {
		ext = ""
	}
	token := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), token, ext)
}
