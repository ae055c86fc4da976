// Package contract holds behaviour suites every repository implementation
// must pass. Storage-specific tests supply a factory and run the suite.
package contract

import (
	"context"
	"errors"
	"testing"

	"github.com/maxviazov/catalog-pagination/internal/model"
	"github.com/maxviazov/catalog-pagination/internal/repository"
)

// DatasetFactory returns a fresh, empty repository, a seeding helper and a cleanup.
type DatasetFactory func(t *testing.T) (repo repository.DatasetRepository, seed func(ctx context.Context, ds ...model.Dataset) error, cleanup func())

type PingerFactory func(t *testing.T) (repository.Pinger, func())

// SeedDatasets builds n distinct catalog rows.
func SeedDatasets(n int) []model.Dataset {
	out := make([]model.Dataset, 0, n)
	for i := 0; i < n; i++ {
		suffix := string(rune('a'+i%26)) + string(rune('a'+i/26))
		out = append(out, model.Dataset{
			Slug:     "dataset-" + suffix,
			Title:    "Dataset " + suffix,
			Creator:  "creator-" + string(rune('a'+i%3)),
			Category: "open-data",
		})
	}
	return out
}

func RunDatasetRepositoryContract(t *testing.T, makeRepo DatasetFactory) {
	t.Helper()

	t.Run("get_by_id", func(t *testing.T) {
		repo, seed, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		if err := seed(ctx, SeedDatasets(2)...); err != nil {
			t.Fatalf("seed: %v", err)
		}
		res, err := repo.List(ctx, repository.Page{Limit: 10})
		if err != nil || len(res.Items) != 2 {
			t.Fatalf("list: len=%d err=%v", len(res.Items), err)
		}
		got, err := repo.GetByID(ctx, res.Items[1].ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.Slug != res.Items[1].Slug {
			t.Fatalf("mismatch: %+v vs %+v", got, res.Items[1])
		}
	})

	t.Run("get_not_found", func(t *testing.T) {
		repo, _, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		_, err := repo.GetByID(context.Background(), 999999)
		if !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("list_pagination_total", func(t *testing.T) {
		repo, seed, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		if err := seed(ctx, SeedDatasets(7)...); err != nil {
			t.Fatalf("seed: %v", err)
		}
		first, err := repo.List(ctx, repository.Page{Limit: 3, Offset: 0})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(first.Items) != 3 || first.Total != 7 {
			t.Fatalf("unexpected page: len=%d total=%d", len(first.Items), first.Total)
		}
		last, err := repo.List(ctx, repository.Page{Limit: 3, Offset: 6})
		if err != nil {
			t.Fatalf("list last: %v", err)
		}
		if len(last.Items) != 1 || last.Total != 7 {
			t.Fatalf("unexpected last page: len=%d total=%d", len(last.Items), last.Total)
		}
		if last.Items[0].ID <= first.Items[2].ID {
			t.Fatalf("expected ascending ids across pages")
		}
	})

	t.Run("list_past_end_keeps_total", func(t *testing.T) {
		repo, seed, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		if err := seed(ctx, SeedDatasets(4)...); err != nil {
			t.Fatalf("seed: %v", err)
		}
		res, err := repo.List(ctx, repository.Page{Limit: 3, Offset: 30})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(res.Items) != 0 || res.Total != 4 {
			t.Fatalf("unexpected page: len=%d total=%d", len(res.Items), res.Total)
		}
	})

	t.Run("list_empty", func(t *testing.T) {
		repo, _, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		res, err := repo.List(context.Background(), repository.Page{Limit: 5})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(res.Items) != 0 || res.Total != 0 {
			t.Fatalf("expected empty result, got len=%d total=%d", len(res.Items), res.Total)
		}
	})
}

func RunPingerContract(t *testing.T, makePinger PingerFactory) {
	t.Helper()
	t.Run("ping_ok", func(t *testing.T) {
		p, cleanup := makePinger(t)
		t.Cleanup(cleanup)
		if err := p.Ping(context.Background()); err != nil {
			t.Fatalf("ping: %v", err)
		}
	})
}
