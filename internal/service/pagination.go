package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/maxviazov/catalog-pagination/internal/config"
	"github.com/maxviazov/catalog-pagination/internal/pagination"
)

type paginationService struct {
	cfg config.PaginationConfig
	rec PaginationRecorder
	log zerolog.Logger
}

func NewPaginationService(cfg config.PaginationConfig, rec PaginationRecorder, logger zerolog.Logger) PaginationService {
	if cfg.MaxVisiblePages <= 0 {
		cfg.MaxVisiblePages = pagination.DefaultMaxVisiblePages
	}
	l := logger.With().Str("module", "service").Str("component", "pagination").Logger()
	return &paginationService{cfg: cfg, rec: rec, log: l}
}

// Build validates the position and generates the bar. A current page beyond
// the last page is accepted and rendered like the last page.
func (s *paginationService) Build(_ context.Context, current, total, maxVisible int) (PageLinks, error) {
	if err := NewInvalidInputError(validatePosition(current, total, maxVisible)); err != nil {
		s.log.Debug().
			Int("current_page", current).
			Int("total_pages", total).
			Int("max_visible_pages", maxVisible).
			Interface("field_errors", FieldErrors(err)).
			Msg("pagination validation failed")
		return PageLinks{}, err
	}
	if maxVisible == 0 {
		maxVisible = s.cfg.MaxVisiblePages
	}

	req := pagination.Request{CurrentPage: current, TotalPages: total}
	zone := pagination.Classify(current, total, maxVisible)
	tokens := pagination.Generate(req, maxVisible)
	if s.rec != nil {
		s.rec.RecordPagination(zone, len(tokens))
	}

	return PageLinks{
		CurrentPage:     current,
		TotalPages:      total,
		MaxVisiblePages: maxVisible,
		Zone:            zone.String(),
		Pages:           tokens,
	}, nil
}
