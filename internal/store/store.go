// Package store persists records as one JSON array file per record kind,
// keeping the on-disk layout of the deployed site (uploads.json,
// contacts.json, results.json).
//
// The backing file is read in full, modified in memory and written back in
// full on every mutation. Done naively from concurrent requests that is a
// lost-update race, so every mutation of a collection runs under its mutex:
// one logical writer per kind. Writes go to a temp file in the same
// directory and are renamed over the target, so a crashed writer cannot
// leave a torn array behind.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// ErrNotFound is returned by Get, Update and Delete for unknown record IDs.
var ErrNotFound = errors.New("record not found")

// Collection is an append-oriented list of records of one kind. The id/setID
// accessors let it assign and look up record identifiers without reflection.
type Collection[T any] struct {
	path  string
	id    func(*T) int64
	setID func(*T, int64)

	mu     sync.Mutex
	lastID int64
}

// NewCollection opens (or lazily creates) the collection backed by path.
// The parent directory is created up front so the first append cannot fail
// on a missing tree.
func NewCollection[T any](path string, id func(*T) int64, setID func(*T, int64)) (*Collection[T], error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	c := &Collection[T]{path: path, id: id, setID: setID}

	// Seed the ID high-water mark from whatever is already on disk.
	records, err := c.load()
	if err != nil {
		return nil, err
	}
	for i := range records {
		if rid := c.id(&records[i]); rid > c.lastID {
			c.lastID = rid
		}
	}

	return c, nil
}

// Append assigns the record an ID and persists it, returning the stored
// record. The write is durable before Append returns.
func (c *Collection[T]) Append(record T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.load()
	if err != nil {
		var zero T
		return zero, err
	}

	c.setID(&record, c.nextID())
	records = append(records, record)

	if err := c.save(records); err != nil {
		var zero T
		return zero, err
	}
	return record, nil
}

// List returns all records in insertion order.
func (c *Collection[T]) List() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load()
}

// Get returns the record with the given ID or ErrNotFound.
func (c *Collection[T]) Get(id int64) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.load()
	if err != nil {
		var zero T
		return zero, err
	}
	for i := range records {
		if c.id(&records[i]) == id {
			return records[i], nil
		}
	}
	var zero T
	return zero, ErrNotFound
}

// Find returns the first record matching pred.
func (c *Collection[T]) Find(pred func(T) bool) (T, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.load()
	if err != nil {
		var zero T
		return zero, false, err
	}
	for _, r := range records {
		if pred(r) {
			return r, true, nil
		}
	}
	var zero T
	return zero, false, nil
}

// Update applies fn to the record with the given ID, persisting the result.
// If fn returns an error nothing is written.
func (c *Collection[T]) Update(id int64, fn func(*T) error) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.load()
	if err != nil {
		var zero T
		return zero, err
	}
	for i := range records {
		if c.id(&records[i]) != id {
			continue
		}
		if err := fn(&records[i]); err != nil {
			var zero T
			return zero, err
		}
		if err := c.save(records); err != nil {
			var zero T
			return zero, err
		}
		return records[i], nil
	}
	var zero T
	return zero, ErrNotFound
}

// Delete removes the record with the given ID.
func (c *Collection[T]) Delete(id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.load()
	if err != nil {
		return err
	}
	for i := range records {
		if c.id(&records[i]) == id {
			records = append(records[:i], records[i+1:]...)
			return c.save(records)
		}
	}
	return ErrNotFound
}

// nextID derives IDs from wall-clock milliseconds (the layout the site
// always used) but bumps monotonically so two appends in the same
// millisecond cannot collide. Caller holds c.mu.
func (c *Collection[T]) nextID() int64 {
	id := time.Now().UnixMilli()
	if id <= c.lastID {
		id = c.lastID + 1
	}
	c.lastID = id
	return id
}

// load reads the whole backing file. A missing file is an empty collection;
// an unreadable or corrupt file is an error the caller must surface.
func (c *Collection[T]) load() ([]T, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(c.path), err)
	}
	if len(data) == 0 {
		return []T{}, nil
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("corrupt record file %s: %w", filepath.Base(c.path), err)
	}
	return records, nil
}

// save writes the whole array to a temp file and renames it into place.
func (c *Collection[T]) save(records []T) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}

	dir := filepath.Dir(c.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(c.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", filepath.Base(c.path), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, c.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", filepath.Base(c.path), err)
	}
	return nil
}
