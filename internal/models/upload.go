package models

// UploadStatus is the lifecycle status of an upload record.
type UploadStatus string

const (
	UploadStatusSuccess UploadStatus = "success"
	UploadStatusFailed  UploadStatus = "failed"
	UploadStatusPending UploadStatus = "pending"
)

// FileEntry describes one stored file of an upload submission. UploadedName
// is generated server-side and unique within the storage root; the
// caller-supplied OriginalName is kept as metadata only and never used to
// build a filesystem path.
type FileEntry struct {
	OriginalName string `json:"originalName"`
	UploadedName string `json:"uploadedName"`
	Size         int64  `json:"size"`
	Path         string `json:"path"`
}

// UploadRecord is the persisted manifest of one upload submission.
// FileCount and TotalSize are derived from Files at orchestration time,
// never taken from caller input. The JSON field names match the uploads.json
// layout of the deployed site.
type UploadRecord struct {
	ID          int64        `json:"id"`
	ProjectName string       `json:"projectName"`
	UploadedBy  string       `json:"uploadedBy"`
	UploadDate  string       `json:"uploadDate"` // ISO-8601 / RFC 3339
	FileCount   int          `json:"fileCount"`
	TotalSize   int64        `json:"totalSize"`
	Files       []FileEntry  `json:"files"`
	Status      UploadStatus `json:"status"`
}
