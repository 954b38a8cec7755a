package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/sanjeevani/coordination-api/internal/model"
	"github.com/sanjeevani/coordination-api/pkg/errors"
)

// StockRepository is an in-memory stock collection. Insertion order is
// preserved for display; all reads hand out copies so callers never share
// memory with the store.
type StockRepository struct {
	mu    sync.RWMutex
	items []model.StockItem
}

func NewStockRepository() *StockRepository {
	return &StockRepository{}
}

func (r *StockRepository) Create(ctx context.Context, item *model.StockItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, *item)
	return nil
}

func (r *StockRepository) Get(ctx context.Context, id uuid.UUID) (*model.StockItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.items {
		if r.items[i].ID == id {
			item := r.items[i]
			return &item, nil
		}
	}
	return nil, errors.NotFound("stock item", nil)
}

func (r *StockRepository) Update(ctx context.Context, item *model.StockItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == item.ID {
			r.items[i] = *item
			return nil
		}
	}
	return errors.NotFound("stock item", nil)
}

func (r *StockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return errors.NotFound("stock item", nil)
}

func (r *StockRepository) List(ctx context.Context) ([]*model.StockItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]*model.StockItem, 0, len(r.items))
	for i := range r.items {
		item := r.items[i]
		items = append(items, &item)
	}
	return items, nil
}
