package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/maxviazov/catalog-pagination/internal/repository"
)

type pinger struct{ pool *pgxpool.Pool }

// NewPinger adapts pgxpool to repository.Pinger for the readiness probe.
func NewPinger(pool *pgxpool.Pool) repository.Pinger { return &pinger{pool: pool} }

func (p *pinger) Ping(ctx context.Context) error {
	if err := ensurePool(p.pool); err != nil {
		return err
	}
	if err := p.pool.Ping(ctx); err != nil {
		return repository.ErrUnavailable
	}
	return nil
}
