package store

import (
	"path/filepath"

	"portfolio_backend/internal/models"
)

// Store bundles the three record collections under one storage root.
type Store struct {
	Uploads  *Collection[models.UploadRecord]
	Contacts *Collection[models.ContactRecord]
	Results  *Collection[models.ResultRecord]
}

// New opens the collections under basePath using the file names of the
// deployed site.
func New(basePath string) (*Store, error) {
	uploads, err := NewCollection(
		filepath.Join(basePath, "uploads.json"),
		func(r *models.UploadRecord) int64 { return r.ID },
		func(r *models.UploadRecord, id int64) { r.ID = id },
	)
	if err != nil {
		return nil, err
	}

	contacts, err := NewCollection(
		filepath.Join(basePath, "contacts.json"),
		func(r *models.ContactRecord) int64 { return r.ID },
		func(r *models.ContactRecord, id int64) { r.ID = id },
	)
	if err != nil {
		return nil, err
	}

	results, err := NewCollection(
		filepath.Join(basePath, "results.json"),
		func(r *models.ResultRecord) int64 { return r.ID },
		func(r *models.ResultRecord, id int64) { r.ID = id },
	)
	if err != nil {
		return nil, err
	}

	return &Store{Uploads: uploads, Contacts: contacts, Results: results}, nil
}
