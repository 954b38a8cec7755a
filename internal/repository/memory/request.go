package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/sanjeevani/coordination-api/internal/model"
	"github.com/sanjeevani/coordination-api/pkg/errors"
)

// RequestRepository is an in-memory medical request collection. Requests are
// never deleted, only appended and mutated.
type RequestRepository struct {
	mu       sync.RWMutex
	requests []model.MedicalRequest
}

func NewRequestRepository() *RequestRepository {
	return &RequestRepository{}
}

func (r *RequestRepository) Create(ctx context.Context, req *model.MedicalRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.requests = append(r.requests, *req)
	return nil
}

func (r *RequestRepository) Get(ctx context.Context, id uuid.UUID) (*model.MedicalRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.requests {
		if r.requests[i].ID == id {
			req := r.requests[i]
			return &req, nil
		}
	}
	return nil, errors.NotFound("medical request", nil)
}

func (r *RequestRepository) Update(ctx context.Context, req *model.MedicalRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.requests {
		if r.requests[i].ID == req.ID {
			r.requests[i] = *req
			return nil
		}
	}
	return errors.NotFound("medical request", nil)
}

func (r *RequestRepository) List(ctx context.Context) ([]*model.MedicalRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	requests := make([]*model.MedicalRequest, 0, len(r.requests))
	for i := range r.requests {
		req := r.requests[i]
		requests = append(requests, &req)
	}
	return requests, nil
}

func (r *RequestRepository) ListByContact(ctx context.Context, contact string) ([]*model.MedicalRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	requests := make([]*model.MedicalRequest, 0)
	for i := range r.requests {
		if r.requests[i].ContactNumber == contact {
			req := r.requests[i]
			requests = append(requests, &req)
		}
	}
	return requests, nil
}
