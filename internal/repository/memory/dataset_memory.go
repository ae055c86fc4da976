// Package memory is an in-process catalog used for local runs without Postgres.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/maxviazov/catalog-pagination/internal/model"
	"github.com/maxviazov/catalog-pagination/internal/repository"
)

// DatasetRepository keeps datasets in insertion order. Safe for concurrent use.
type DatasetRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  []model.Dataset
}

func NewDatasetRepository() *DatasetRepository {
	return &DatasetRepository{nextID: 1}
}

// Add stores datasets, assigning ids and timestamps.
func (r *DatasetRepository) Add(_ context.Context, ds ...model.Dataset) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	for _, d := range ds {
		d.ID = r.nextID
		r.nextID++
		d.CreatedAt, d.UpdatedAt = now, now
		r.items = append(r.items, d)
	}
	return nil
}

func (r *DatasetRepository) GetByID(_ context.Context, id int64) (model.Dataset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, d := range r.items {
		if d.ID == id {
			return d, nil
		}
	}
	return model.Dataset{}, repository.ErrNotFound
}

func (r *DatasetRepository) List(_ context.Context, p repository.Page) (repository.PageResult[model.Dataset], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := repository.PageResult[model.Dataset]{Items: []model.Dataset{}, Total: len(r.items)}
	if p.Offset < 0 {
		p.Offset = 0
	}
	if p.Offset >= len(r.items) {
		return res, nil
	}
	end := len(r.items)
	if p.Limit > 0 && p.Offset+p.Limit < end {
		end = p.Offset + p.Limit
	}
	res.Items = append(res.Items, r.items[p.Offset:end]...)
	return res, nil
}

// Ping always succeeds; there is nothing to reach.
func (r *DatasetRepository) Ping(context.Context) error { return nil }

var (
	_ repository.DatasetRepository = (*DatasetRepository)(nil)
	_ repository.Pinger            = (*DatasetRepository)(nil)
)
