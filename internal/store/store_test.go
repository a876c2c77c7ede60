package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio_backend/internal/models"
)

func newTestContacts(t *testing.T) *Collection[models.ContactRecord] {
	t.Helper()
	c, err := NewCollection(
		filepath.Join(t.TempDir(), "contacts.json"),
		func(r *models.ContactRecord) int64 { return r.ID },
		func(r *models.ContactRecord, id int64) { r.ID = id },
	)
	require.NoError(t, err)
	return c
}

func TestAppendAndListRoundTrip(t *testing.T) {
	c := newTestContacts(t)

	const n = 10
	for i := 0; i < n; i++ {
		_, err := c.Append(models.ContactRecord{
			Name:   fmt.Sprintf("sender-%d", i),
			Status: models.ContactStatusReceived,
		})
		require.NoError(t, err)
	}

	records, err := c.List()
	require.NoError(t, err)
	require.Len(t, records, n)

	// insertion order preserved, IDs strictly increasing
	for i, r := range records {
		assert.Equal(t, fmt.Sprintf("sender-%d", i), r.Name)
		if i > 0 {
			assert.Greater(t, r.ID, records[i-1].ID)
		}
	}
}

func TestConcurrentAppendLosesNoRecords(t *testing.T) {
	c := newTestContacts(t)

	const writers = 50
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func(i int) {
			defer wg.Done()
			_, err := c.Append(models.ContactRecord{Name: fmt.Sprintf("writer-%d", i)})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	records, err := c.List()
	require.NoError(t, err)
	require.Len(t, records, writers, "concurrent appends must not overwrite each other")

	seenIDs := make(map[int64]bool)
	seenNames := make(map[string]bool)
	for _, r := range records {
		assert.False(t, seenIDs[r.ID], "duplicate ID %d", r.ID)
		seenIDs[r.ID] = true
		seenNames[r.Name] = true
	}
	assert.Len(t, seenNames, writers, "every writer's record must survive")
}

func TestGetAndNotFound(t *testing.T) {
	c := newTestContacts(t)

	stored, err := c.Append(models.ContactRecord{Name: "A"})
	require.NoError(t, err)

	got, err := c.Get(stored.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", got.Name)

	_, err = c.Get(stored.ID + 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateAndDelete(t *testing.T) {
	c := newTestContacts(t)

	stored, err := c.Append(models.ContactRecord{Name: "A", Status: models.ContactStatusReceived})
	require.NoError(t, err)

	updated, err := c.Update(stored.ID, func(r *models.ContactRecord) error {
		r.Status = models.ContactStatusRead
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, models.ContactStatusRead, updated.Status)

	// change persisted
	got, err := c.Get(stored.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ContactStatusRead, got.Status)

	require.NoError(t, c.Delete(stored.ID))
	_, err = c.Get(stored.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, c.Delete(stored.ID), ErrNotFound)
}

func TestUpdateErrorWritesNothing(t *testing.T) {
	c := newTestContacts(t)

	stored, err := c.Append(models.ContactRecord{Status: models.ContactStatusReceived})
	require.NoError(t, err)

	boom := fmt.Errorf("rejected")
	_, err = c.Update(stored.ID, func(r *models.ContactRecord) error {
		r.Status = models.ContactStatusReplied
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := c.Get(stored.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ContactStatusReceived, got.Status)
}

func TestCorruptFileSurfacesError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "contacts.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := NewCollection(path,
		func(r *models.ContactRecord) int64 { return r.ID },
		func(r *models.ContactRecord, id int64) { r.ID = id },
	)
	assert.Error(t, err, "a corrupt backing file must not be silently accepted")
}

func TestMissingFileReadsEmpty(t *testing.T) {
	c := newTestContacts(t)

	records, err := c.List()
	require.NoError(t, err)
	assert.Empty(t, records)
}
