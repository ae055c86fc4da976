package pagination

import "math"

// Meta describes where a limit/offset window sits inside a paginated listing.
type Meta struct {
	CurrentPage int  `json:"current_page"`
	PageSize    int  `json:"page_size"`
	TotalPages  int  `json:"total_pages"`
	TotalItems  int  `json:"total_items"`
	HasPrevious bool `json:"has_previous"`
	HasNext     bool `json:"has_next"`
}

// NewMeta builds Meta from the window a listing was fetched with and the
// total number of matching items. A non-positive limit means the whole
// listing was returned as a single page.
func NewMeta(limit, offset, totalItems int) Meta {
	if totalItems < 0 {
		totalItems = 0
	}
	if offset < 0 {
		offset = 0
	}
	pageSize := limit
	if pageSize <= 0 {
		pageSize = totalItems
	}

	current := 1
	if pageSize > 0 {
		current = offset/pageSize + 1
	}
	pages := TotalPages(totalItems, pageSize)

	return Meta{
		CurrentPage: current,
		PageSize:    pageSize,
		TotalPages:  pages,
		TotalItems:  totalItems,
		HasPrevious: current > 1,
		HasNext:     current < pages,
	}
}

// Request returns the generator input for this window.
func (m Meta) Request() Request {
	return Request{CurrentPage: m.CurrentPage, TotalPages: m.TotalPages}
}

// TotalPages is ceil(totalItems/pageSize), or 0 when either side is not positive.
func TotalPages(totalItems, pageSize int) int {
	if totalItems <= 0 || pageSize <= 0 {
		return 0
	}
	return (totalItems + pageSize - 1) / pageSize
}

// OffsetForPage converts a 1-based page number into a row offset. An offset
// that does not fit in an int saturates at math.MaxInt, which is past the end
// of any listing.
func OffsetForPage(page, pageSize int) int {
	if page < 1 || pageSize <= 0 {
		return 0
	}
	if !PageFits(page, pageSize) {
		return math.MaxInt
	}
	return (page - 1) * pageSize
}

// PageFits reports whether the first row of page can be addressed with an
// int offset.
func PageFits(page, pageSize int) bool {
	if page < 1 || pageSize <= 0 {
		return true
	}
	return page-1 <= math.MaxInt/pageSize
}
