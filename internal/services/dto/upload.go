package dto

import "mime/multipart"

// UploadRequest is the parsed multipart submission. ProjectName and
// UploadedBy are optional form fields; the service fills defaults.
type UploadRequest struct {
	ProjectName string `form:"projectName"`
	UploadedBy  string `form:"uploadedBy"`
	Files       []*multipart.FileHeader
}

// UploadData is the public summary of a persisted upload, shaped like the
// deployed site's response.
type UploadData struct {
	ProjectName string `json:"projectName"`
	FileCount   int    `json:"fileCount"`
	TotalSize   string `json:"totalSize"` // formatted "X.XX MB"
	UploadDate  string `json:"uploadDate"`
	UploadID    int64  `json:"uploadId"`
}
