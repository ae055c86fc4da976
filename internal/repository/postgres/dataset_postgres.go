package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/maxviazov/catalog-pagination/internal/model"
	"github.com/maxviazov/catalog-pagination/internal/repository"
)

const datasetColumns = `id, slug, title, creator, category, created_at, updated_at`

type datasetRepository struct{ pool *pgxpool.Pool }

func NewDatasetRepository(pool *pgxpool.Pool) repository.DatasetRepository {
	return &datasetRepository{pool: pool}
}

func (r *datasetRepository) GetByID(ctx context.Context, id int64) (model.Dataset, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Dataset{}, err
	}
	row := r.pool.QueryRow(ctx, `SELECT `+datasetColumns+` FROM datasets WHERE id = $1`, id)
	var out model.Dataset
	if err := row.Scan(&out.ID, &out.Slug, &out.Title, &out.Creator, &out.Category, &out.CreatedAt, &out.UpdatedAt); err != nil {
		return model.Dataset{}, repository.MapPgError(err)
	}
	return out, nil
}

// List returns one window of the catalog ordered by id. The total comes from
// COUNT(*) OVER(); a window past the end has no rows to carry it, so the
// count is fetched separately in that case.
func (r *datasetRepository) List(ctx context.Context, p repository.Page) (repository.PageResult[model.Dataset], error) {
	if err := ensurePool(r.pool); err != nil {
		return repository.PageResult[model.Dataset]{}, err
	}
	limit, offset := sanitizeLimitOffset(p.Limit, p.Offset)
	rows, err := r.pool.Query(ctx,
		`SELECT `+datasetColumns+`, COUNT(*) OVER() AS total
		 FROM datasets
		 ORDER BY id
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return repository.PageResult[model.Dataset]{}, repository.MapPgError(err)
	}
	defer rows.Close()

	res := repository.PageResult[model.Dataset]{Items: make([]model.Dataset, 0, limit)}
	for rows.Next() {
		var d model.Dataset
		var total int
		if err := rows.Scan(&d.ID, &d.Slug, &d.Title, &d.Creator, &d.Category, &d.CreatedAt, &d.UpdatedAt, &total); err != nil {
			return repository.PageResult[model.Dataset]{}, repository.MapPgError(err)
		}
		res.Items = append(res.Items, d)
		res.Total = total
	}
	if err := rows.Err(); err != nil {
		return repository.PageResult[model.Dataset]{}, repository.MapPgError(err)
	}

	if len(res.Items) == 0 && offset > 0 {
		if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM datasets`).Scan(&res.Total); err != nil {
			return repository.PageResult[model.Dataset]{}, repository.MapPgError(err)
		}
	}
	return res, nil
}

var _ repository.DatasetRepository = (*datasetRepository)(nil)
