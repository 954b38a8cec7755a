package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/sanjeevani/coordination-api/internal/model"
	"github.com/sanjeevani/coordination-api/pkg/errors"
)

// OrganRepository is an in-memory organ record collection with the same
// ordering and copy semantics as the stock repository.
type OrganRepository struct {
	mu     sync.RWMutex
	organs []model.OrganRecord
}

func NewOrganRepository() *OrganRepository {
	return &OrganRepository{}
}

func (r *OrganRepository) Create(ctx context.Context, organ *model.OrganRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.organs = append(r.organs, *organ)
	return nil
}

func (r *OrganRepository) Get(ctx context.Context, id uuid.UUID) (*model.OrganRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.organs {
		if r.organs[i].ID == id {
			organ := r.organs[i]
			return &organ, nil
		}
	}
	return nil, errors.NotFound("organ record", nil)
}

func (r *OrganRepository) Update(ctx context.Context, organ *model.OrganRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.organs {
		if r.organs[i].ID == organ.ID {
			r.organs[i] = *organ
			return nil
		}
	}
	return errors.NotFound("organ record", nil)
}

func (r *OrganRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.organs {
		if r.organs[i].ID == id {
			r.organs = append(r.organs[:i], r.organs[i+1:]...)
			return nil
		}
	}
	return errors.NotFound("organ record", nil)
}

func (r *OrganRepository) List(ctx context.Context) ([]*model.OrganRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	organs := make([]*model.OrganRecord, 0, len(r.organs))
	for i := range r.organs {
		organ := r.organs[i]
		organs = append(organs, &organ)
	}
	return organs, nil
}
