package pagination_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/catalog-pagination/internal/pagination"
)

// bar renders tokens compactly so expectations read like the UI.
func bar(tokens []pagination.Token) string {
	out := ""
	for i, tok := range tokens {
		if i > 0 {
			out += " "
		}
		out += tok.String()
	}
	return out
}

func TestGenerate_Scenarios(t *testing.T) {
	cases := []struct {
		name       string
		current    int
		total      int
		maxVisible int
		want       string
	}{
		{"fits entirely", 1, 3, 5, "1 2 3"},
		{"start zone", 1, 10, 5, "1 2 3 … 10"},
		{"end zone", 10, 10, 5, "1 … 8 9 10"},
		{"middle zone", 5, 10, 5, "1 … 4 5 6 … 10"},
		{"single page", 1, 1, 5, "1"},
		{"current past last page", 12, 10, 5, "1 … 8 9 10"},
		{"one visible slot", 5, 10, 1, "1 … 10"},
		{"no pages", 1, 0, 5, ""},
		{"exactly max pages", 3, 5, 5, "1 2 3 4 5"},
		{"start zone boundary", 3, 10, 5, "1 2 3 … 10"},
		{"first middle page", 4, 10, 5, "1 … 3 4 5 … 10"},
		{"last middle page", 7, 10, 5, "1 … 6 7 8 … 10"},
		{"end zone boundary", 8, 10, 5, "1 … 8 9 10"},
		{"unspecified max uses default", 5, 10, 0, "1 … 4 5 6 … 10"},
		{"wider max keeps three neighbours", 10, 20, 7, "1 … 9 10 11 … 20"},
		{"even max keeps three neighbours", 10, 20, 4, "1 … 9 10 11 … 20"},
		{"narrowest max with neighbours", 10, 20, 3, "1 … 9 10 11 … 20"},
		{"two slots collapse the middle", 10, 20, 2, "1 … 20"},
		{"one slot start zone", 2, 10, 1, "1 2 3 … 10"},
		{"one slot end zone", 9, 10, 1, "1 … 8 9 10"},
		{"tiny range with one slot", 1, 2, 1, "1 2"},
		{"first middle page with wide max", 4, 12, 9, "1 … 3 4 5 … 12"},
		{"start zone without a gap", 1, 4, 3, "1 2 3 4"},
		{"end zone without a gap", 4, 4, 3, "1 2 3 4"},
		{"zero current page", 0, 10, 5, "1 2 3 … 10"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := pagination.Generate(pagination.Request{CurrentPage: tc.current, TotalPages: tc.total}, tc.maxVisible)
			assert.Equal(t, tc.want, bar(got))
		})
	}
}

func TestGenerate_Invariants(t *testing.T) {
	for maxVisible := 1; maxVisible <= 9; maxVisible++ {
		for total := 0; total <= 40; total++ {
			for current := 0; current <= total+3; current++ {
				name := fmt.Sprintf("max=%d/total=%d/current=%d", maxVisible, total, current)
				got := pagination.Generate(pagination.Request{CurrentPage: current, TotalPages: total}, maxVisible)

				var numbers []int
				for i, tok := range got {
					if tok.IsEllipsis() {
						require.Greater(t, i, 0, "%s: leading ellipsis", name)
						require.False(t, got[i-1].IsEllipsis(), "%s: adjacent ellipses", name)
						continue
					}
					n, ok := tok.Number()
					require.True(t, ok, name)
					numbers = append(numbers, n)
				}

				for i := 1; i < len(numbers); i++ {
					require.Less(t, numbers[i-1], numbers[i], "%s: not strictly increasing", name)
				}

				if total <= maxVisible {
					require.Len(t, got, total, name)
					for i, n := range numbers {
						require.Equal(t, i+1, n, name)
					}
					continue
				}

				require.Equal(t, 1, numbers[0], name)
				require.Equal(t, total, numbers[len(numbers)-1], name)
				require.False(t, got[len(got)-1].IsEllipsis(), name)

				if maxVisible >= 3 && current >= 1 && current <= total {
					require.Contains(t, numbers, current, "%s: current page hidden", name)
				}
			}
		}
	}
}

// literalDefault is the textbook first/last plus three-neighbour layout for
// five visible slots.
func literalDefault(current, total int) string {
	var parts []string
	switch {
	case total <= 5:
		for p := 1; p <= total; p++ {
			parts = append(parts, fmt.Sprint(p))
		}
	case current <= 3:
		parts = []string{"1", "2", "3", "…", fmt.Sprint(total)}
	case current >= total-2:
		parts = []string{"1", "…", fmt.Sprint(total - 2), fmt.Sprint(total - 1), fmt.Sprint(total)}
	default:
		parts = []string{"1", "…", fmt.Sprint(current - 1), fmt.Sprint(current), fmt.Sprint(current + 1), "…", fmt.Sprint(total)}
	}
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += " "
		}
		out += p
	}
	return out
}

func TestGenerate_MiddleZoneIgnoresWidth(t *testing.T) {
	req := pagination.Request{CurrentPage: 10, TotalPages: 20}
	for maxVisible := 3; maxVisible <= 19; maxVisible++ {
		assert.Equal(t, "1 … 9 10 11 … 20", bar(pagination.Generate(req, maxVisible)), "max=%d", maxVisible)
	}
}

func TestGenerate_DefaultMatchesFixedLayout(t *testing.T) {
	for total := 0; total <= 30; total++ {
		for current := 1; current <= total+2; current++ {
			got := pagination.Generate(pagination.Request{CurrentPage: current, TotalPages: total}, pagination.DefaultMaxVisiblePages)
			assert.Equal(t, literalDefault(current, total), bar(got), "current=%d total=%d", current, total)
		}
	}
}

func TestGenerate_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(current int) {
			defer wg.Done()
			got := pagination.Generate(pagination.Request{CurrentPage: current, TotalPages: 50}, 5)
			assert.Equal(t, literalDefault(current, 50), bar(got))
		}(i + 1)
	}
	wg.Wait()
}

func TestClassify(t *testing.T) {
	cases := []struct {
		current, total, maxVisible int
		want                       pagination.Zone
	}{
		{1, 5, 5, pagination.ZoneAll},
		{0, 0, 5, pagination.ZoneAll},
		{3, 10, 5, pagination.ZoneStart},
		{4, 10, 5, pagination.ZoneMiddle},
		{8, 10, 5, pagination.ZoneEnd},
		{99, 10, 5, pagination.ZoneEnd},
		{5, 10, 0, pagination.ZoneMiddle},
	}
	for _, tc := range cases {
		got := pagination.Classify(tc.current, tc.total, tc.maxVisible)
		assert.Equal(t, tc.want, got, "current=%d total=%d max=%d", tc.current, tc.total, tc.maxVisible)
	}
	assert.Equal(t, "middle", pagination.ZoneMiddle.String())
}
