package service

import (
	"github.com/maxviazov/catalog-pagination/internal/config"
	"github.com/maxviazov/catalog-pagination/internal/pagination"
)

// maxVisibleLimit caps how wide a requested bar may get.
const maxVisibleLimit = 50

// normalizePaging clamps a page number and page size into the configured bounds.
func normalizePaging(page, pageSize int, cfg config.PaginationConfig) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = cfg.DefaultPageSize
	}
	if cfg.MaxPageSize > 0 && pageSize > cfg.MaxPageSize {
		pageSize = cfg.MaxPageSize
	}
	return page, pageSize
}

// validateWindow rejects pages whose row offset would overflow.
func validateWindow(page, pageSize int) []FieldError {
	if !pagination.PageFits(page, pageSize) {
		return []FieldError{{Field: "page", Message: "is too large for page_size"}}
	}
	return nil
}

func validatePosition(current, total, maxVisible int) []FieldError {
	var ferrs []FieldError
	if current < 1 {
		ferrs = append(ferrs, FieldError{Field: "current_page", Message: "must be >= 1"})
	}
	if total < 0 {
		ferrs = append(ferrs, FieldError{Field: "total_pages", Message: "must be >= 0"})
	}
	if maxVisible < 0 || maxVisible > maxVisibleLimit {
		ferrs = append(ferrs, FieldError{Field: "max_visible_pages", Message: "must be between 0 and 50 (0 = default)"})
	}
	return ferrs
}
