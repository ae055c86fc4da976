package pagination

// DefaultMaxVisiblePages is the number of slots shown before the bar starts compressing.
const DefaultMaxVisiblePages = 5

// edgeWindow is how many pages stay visible at the head or tail of the bar
// while the current page sits close to that end. It does not scale with the
// max visible pages setting.
const edgeWindow = 3

// minNeighbourhoodWidth is the smallest max visible setting that still shows
// the neighbours of the current page in the middle zone.
const minNeighbourhoodWidth = 3

// Request is the position a pagination control is asked to render.
type Request struct {
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
}

// Zone says which part of the page range the current page falls into.
type Zone int

const (
	// ZoneAll: every page fits, nothing is compressed.
	ZoneAll Zone = iota
	ZoneStart
	ZoneMiddle
	ZoneEnd
)

func (z Zone) String() string {
	switch z {
	case ZoneAll:
		return "all"
	case ZoneStart:
		return "start"
	case ZoneMiddle:
		return "middle"
	case ZoneEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Classify reports the zone Generate uses for the given position.
// A current page past the last page lands in ZoneEnd.
func Classify(current, total, maxVisible int) Zone {
	maxVisible = normalizeMaxVisible(maxVisible)
	switch {
	case total <= maxVisible:
		return ZoneAll
	case current <= edgeWindow:
		return ZoneStart
	case current >= total-(edgeWindow-1):
		return ZoneEnd
	default:
		return ZoneMiddle
	}
}

// Generate returns the tokens to render, left to right, for req.
//
// When all pages fit into maxVisible slots the result is 1..TotalPages.
// Otherwise the first and last page are always present, the head or tail
// window (three pages) is shown when the current page is near an end, and
// current-1, current and current+1 are shown in between. Only the "show
// everything" threshold depends on maxVisible; below three slots the middle
// zone is just the first and last page. Ellipsis markers stand in for every
// skipped run and never repeat.
// A maxVisible <= 0 means DefaultMaxVisiblePages.
//
// Generate never fails and keeps no state; it is safe for concurrent use.
func Generate(req Request, maxVisible int) []Token {
	maxVisible = normalizeMaxVisible(maxVisible)
	total := req.TotalPages
	current := req.CurrentPage

	var pages []int
	switch Classify(current, total, maxVisible) {
	case ZoneAll:
		out := make([]Token, 0, max(total, 0))
		for p := 1; p <= total; p++ {
			out = append(out, Page(p))
		}
		return out
	case ZoneStart:
		pages = make([]int, 0, edgeWindow+1)
		for p := 1; p <= edgeWindow; p++ {
			pages = append(pages, p)
		}
		pages = append(pages, total)
	case ZoneEnd:
		pages = make([]int, 0, edgeWindow+1)
		pages = append(pages, 1)
		for p := total - edgeWindow + 1; p <= total; p++ {
			pages = append(pages, p)
		}
	default:
		pages = append(pages, 1)
		pages = append(pages, neighbourhood(current, maxVisible)...)
		pages = append(pages, total)
	}
	return compress(pages, total)
}

// neighbourhood returns the pages either side of current shown in the middle
// zone. Widths below three have no room for the neighbours, so the middle
// zone collapses to the first and last page.
func neighbourhood(current, maxVisible int) []int {
	if maxVisible < minNeighbourhoodWidth {
		return nil
	}
	return []int{current - 1, current, current + 1}
}

// compress turns an ascending list of candidate pages into tokens. Pages out
// of 1..total or not above the previous page are dropped; an ellipsis goes
// into every gap between kept pages.
func compress(pages []int, total int) []Token {
	out := make([]Token, 0, len(pages)*2)
	last := 0
	for _, p := range pages {
		if p <= last || p > total {
			continue
		}
		if last > 0 && p-last > 1 {
			out = append(out, Ellipsis())
		}
		out = append(out, Page(p))
		last = p
	}
	return out
}

func normalizeMaxVisible(n int) int {
	if n <= 0 {
		return DefaultMaxVisiblePages
	}
	return n
}
