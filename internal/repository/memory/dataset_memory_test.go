package memory_test

import (
	"context"
	"testing"

	"github.com/maxviazov/catalog-pagination/internal/model"
	"github.com/maxviazov/catalog-pagination/internal/repository"
	"github.com/maxviazov/catalog-pagination/internal/repository/contract"
	"github.com/maxviazov/catalog-pagination/internal/repository/memory"
)

func makeDatasetRepo(t *testing.T) (repository.DatasetRepository, func(ctx context.Context, ds ...model.Dataset) error, func()) {
	repo := memory.NewDatasetRepository()
	return repo, repo.Add, func() {}
}

func makePinger(t *testing.T) (repository.Pinger, func()) {
	return memory.NewDatasetRepository(), func() {}
}

func TestDatasetRepository_MemoryContract(t *testing.T) {
	contract.RunDatasetRepositoryContract(t, makeDatasetRepo)
}

func TestPinger_MemoryContract(t *testing.T) {
	contract.RunPingerContract(t, makePinger)
}

func TestNewDemoRepository(t *testing.T) {
	ctx := context.Background()
	repo, err := memory.NewDemoRepository(ctx, 23)
	if err != nil {
		t.Fatalf("demo: %v", err)
	}

	res, err := repo.List(ctx, repository.Page{Limit: 10, Offset: 20})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if res.Total != 23 || len(res.Items) != 3 {
		t.Fatalf("total=%d len=%d, want 23 and 3", res.Total, len(res.Items))
	}
	if res.Items[0].ID != 21 || res.Items[0].Slug != "finance-0021" {
		t.Fatalf("unexpected first row: %+v", res.Items[0])
	}
}
