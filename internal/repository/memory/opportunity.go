package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/sanjeevani/coordination-api/internal/model"
	"github.com/sanjeevani/coordination-api/pkg/errors"
)

// OpportunityRepository is an in-memory donation opportunity collection.
// RegisteredDonors slices are cloned on every read and write.
type OpportunityRepository struct {
	mu   sync.RWMutex
	opps []model.DonationOpportunity
}

func NewOpportunityRepository() *OpportunityRepository {
	return &OpportunityRepository{}
}

func cloneOpportunity(opp *model.DonationOpportunity) model.DonationOpportunity {
	out := *opp
	out.RegisteredDonors = append([]uuid.UUID(nil), opp.RegisteredDonors...)
	return out
}

func (r *OpportunityRepository) Create(ctx context.Context, opp *model.DonationOpportunity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.opps = append(r.opps, cloneOpportunity(opp))
	return nil
}

func (r *OpportunityRepository) Get(ctx context.Context, id uuid.UUID) (*model.DonationOpportunity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.opps {
		if r.opps[i].ID == id {
			opp := cloneOpportunity(&r.opps[i])
			return &opp, nil
		}
	}
	return nil, errors.NotFound("donation opportunity", nil)
}

func (r *OpportunityRepository) Update(ctx context.Context, opp *model.DonationOpportunity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.opps {
		if r.opps[i].ID == opp.ID {
			r.opps[i] = cloneOpportunity(opp)
			return nil
		}
	}
	return errors.NotFound("donation opportunity", nil)
}

func (r *OpportunityRepository) List(ctx context.Context) ([]*model.DonationOpportunity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	opps := make([]*model.DonationOpportunity, 0, len(r.opps))
	for i := range r.opps {
		opp := cloneOpportunity(&r.opps[i])
		opps = append(opps, &opp)
	}
	return opps, nil
}
