// Package service holds use-case orchestration between handlers and repositories:
// input validation, defaults and domain error shaping.
package service

import (
	"context"
	"errors"

	"github.com/maxviazov/catalog-pagination/internal/model"
	"github.com/maxviazov/catalog-pagination/internal/pagination"
)

// ErrInvalidInput is the marker for aggregated validation failures (HTTP 400).
// Field-level details come from FieldErrors(err).
var ErrInvalidInput = errors.New("invalid input")

// FieldError describes a single invalid field in a client request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// invalidInputError aggregates FieldErrors and unwraps to ErrInvalidInput.
type invalidInputError struct {
	fields []FieldError
}

func (e *invalidInputError) Error() string        { return ErrInvalidInput.Error() }
func (e *invalidInputError) Unwrap() error        { return ErrInvalidInput }
func (e *invalidInputError) Fields() []FieldError { return e.fields }

// NewInvalidInputError returns nil when there is nothing to report.
func NewInvalidInputError(fe []FieldError) error {
	if len(fe) == 0 {
		return nil
	}
	return &invalidInputError{fields: fe}
}

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	type feIface interface{ Fields() []FieldError }
	var v feIface
	if errors.As(err, &v) && errors.Is(err, ErrInvalidInput) {
		return v.Fields()
	}
	return nil
}

// PageLinks is a rendered pagination bar together with the position it was built for.
type PageLinks struct {
	CurrentPage     int                `json:"current_page"`
	TotalPages      int                `json:"total_pages"`
	MaxVisiblePages int                `json:"max_visible_pages"`
	Zone            string             `json:"zone"`
	Pages           []pagination.Token `json:"pages"`
}

// DatasetPage is one listing window plus what a UI needs to paginate it.
type DatasetPage struct {
	Items []model.Dataset    `json:"items"`
	Meta  pagination.Meta    `json:"meta"`
	Pages []pagination.Token `json:"pages"`
}

// PaginationService builds page bars. A maxVisible of 0 selects the configured default.
type PaginationService interface {
	Build(ctx context.Context, current, total, maxVisible int) (PageLinks, error)
}

// DatasetService lists and fetches catalog entries.
type DatasetService interface {
	ListDatasets(ctx context.Context, page, pageSize int) (DatasetPage, error)
	GetDataset(ctx context.Context, id int64) (model.Dataset, error)
}

// PaginationRecorder receives one call per generated bar.
type PaginationRecorder interface {
	RecordPagination(zone pagination.Zone, tokens int)
}
