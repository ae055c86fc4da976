package repository

import (
	"context"

	"github.com/maxviazov/catalog-pagination/internal/model"
)

// Pinger is the readiness probe capability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// DatasetRepository is read access to the dataset catalog.
// Implementations return ErrNotFound rather than driver errors.
type DatasetRepository interface {
	List(ctx context.Context, p Page) (PageResult[model.Dataset], error)
	GetByID(ctx context.Context, id int64) (model.Dataset, error)
}
