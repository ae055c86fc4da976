package memory

import (
	"context"
	"fmt"

	"github.com/maxviazov/catalog-pagination/internal/model"
)

var demoCategories = []string{"finance", "climate", "health", "transport", "education"}

// DemoDatasets builds n catalog rows with stable slugs, spread over a few
// creators and categories.
func DemoDatasets(n int) []model.Dataset {
	out := make([]model.Dataset, 0, n)
	for i := 1; i <= n; i++ {
		category := demoCategories[(i-1)%len(demoCategories)]
		out = append(out, model.Dataset{
			Slug:     fmt.Sprintf("%s-%04d", category, i),
			Title:    fmt.Sprintf("%s dataset #%d", category, i),
			Creator:  fmt.Sprintf("creator-%02d", (i-1)%7+1),
			Category: category,
		})
	}
	return out
}

// NewDemoRepository returns a repository preloaded with n demo datasets.
func NewDemoRepository(ctx context.Context, n int) (*DatasetRepository, error) {
	repo := NewDatasetRepository()
	if err := repo.Add(ctx, DemoDatasets(n)...); err != nil {
		return nil, err
	}
	return repo, nil
}
