package repository

// Page is a limit/offset window for listing operations.
type Page struct {
	Limit  int
	Offset int
}

// PageResult carries one window of items plus the total count matching the
// query, so callers can build page links without a second round trip.
type PageResult[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}
