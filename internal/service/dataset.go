package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/maxviazov/catalog-pagination/internal/config"
	"github.com/maxviazov/catalog-pagination/internal/model"
	"github.com/maxviazov/catalog-pagination/internal/pagination"
	"github.com/maxviazov/catalog-pagination/internal/repository"
)

type datasetService struct {
	repo  repository.DatasetRepository
	pager PaginationService
	cfg   config.PaginationConfig
	log   zerolog.Logger
}

func NewDatasetService(repo repository.DatasetRepository, pager PaginationService, cfg config.PaginationConfig, logger zerolog.Logger) DatasetService {
	l := logger.With().Str("module", "service").Str("component", "dataset").Logger()
	return &datasetService{repo: repo, pager: pager, cfg: cfg, log: l}
}

// ListDatasets loads the requested page of the catalog and attaches the page
// bar for it. Out-of-range page numbers are clamped rather than rejected.
func (s *datasetService) ListDatasets(ctx context.Context, page, pageSize int) (DatasetPage, error) {
	start := time.Now()
	page, pageSize = normalizePaging(page, pageSize, s.cfg)
	if err := NewInvalidInputError(validateWindow(page, pageSize)); err != nil {
		s.log.Debug().Int("page", page).Int("page_size", pageSize).Msg("page window out of range")
		return DatasetPage{}, err
	}
	window := repository.Page{Limit: pageSize, Offset: pagination.OffsetForPage(page, pageSize)}

	res, err := s.repo.List(ctx, window)
	if err != nil {
		s.log.Error().Err(err).Int("limit", window.Limit).Int("offset", window.Offset).Msg("list datasets failed")
		return DatasetPage{}, err
	}

	meta := pagination.NewMeta(window.Limit, window.Offset, res.Total)
	links, err := s.pager.Build(ctx, meta.CurrentPage, meta.TotalPages, 0)
	if err != nil {
		return DatasetPage{}, err
	}

	s.log.Debug().
		Dur("took", time.Since(start)).
		Int("page", meta.CurrentPage).
		Int("total_items", meta.TotalItems).
		Msg("datasets listed")

	items := res.Items
	if items == nil {
		items = []model.Dataset{}
	}
	return DatasetPage{Items: items, Meta: meta, Pages: links.Pages}, nil
}

func (s *datasetService) GetDataset(ctx context.Context, id int64) (model.Dataset, error) {
	if id <= 0 {
		return model.Dataset{}, NewInvalidInputError([]FieldError{{Field: "id", Message: "must be > 0"}})
	}
	return s.repo.GetByID(ctx, id)
}
