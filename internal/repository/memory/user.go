package memory

import (
	"context"
	"sync"

	"github.com/sanjeevani/coordination-api/internal/model"
	"github.com/sanjeevani/coordination-api/pkg/errors"
)

// UserDirectory is the in-memory credential directory. Lookups are by exact,
// case-sensitive email. Registration does not remove or replace entries, so
// mock accounts survive logout.
type UserDirectory struct {
	mu      sync.RWMutex
	entries []model.DirectoryEntry
}

func NewUserDirectory() *UserDirectory {
	return &UserDirectory{}
}

func (d *UserDirectory) Create(ctx context.Context, entry *model.DirectoryEntry) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.entries = append(d.entries, *entry)
	return nil
}

func (d *UserDirectory) GetByEmail(ctx context.Context, email string) (*model.DirectoryEntry, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for i := range d.entries {
		if d.entries[i].Email == email {
			entry := d.entries[i]
			return &entry, nil
		}
	}
	return nil, errors.NotFound("user", nil)
}

func (d *UserDirectory) List(ctx context.Context) ([]*model.DirectoryEntry, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	entries := make([]*model.DirectoryEntry, 0, len(d.entries))
	for i := range d.entries {
		entry := d.entries[i]
		entries = append(entries, &entry)
	}
	return entries, nil
}
