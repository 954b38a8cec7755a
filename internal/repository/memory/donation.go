package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/sanjeevani/coordination-api/internal/model"
)

// DonationRepository is an in-memory donation history, newest first per the
// order records are seeded/added.
type DonationRepository struct {
	mu      sync.RWMutex
	records []model.DonationRecord
}

func NewDonationRepository() *DonationRepository {
	return &DonationRepository{}
}

func (r *DonationRepository) Create(ctx context.Context, rec *model.DonationRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, *rec)
	return nil
}

func (r *DonationRepository) ListByDonor(ctx context.Context, donorID uuid.UUID) ([]*model.DonationRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]*model.DonationRecord, 0)
	for i := range r.records {
		if r.records[i].DonorID == donorID {
			rec := r.records[i]
			records = append(records, &rec)
		}
	}
	return records, nil
}
