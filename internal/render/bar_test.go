package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maxviazov/catalog-pagination/internal/pagination"
	"github.com/maxviazov/catalog-pagination/internal/render"
)

func TestBar_Plain(t *testing.T) {
	cases := []struct {
		name           string
		current, total int
		maxVisible     int
		want           string
	}{
		{"middle", 5, 10, 5, "1 … 4 [5] 6 … 10"},
		{"start", 1, 10, 5, "[1] 2 3 … 10"},
		{"end", 10, 10, 5, "1 … 8 9 [10]"},
		{"past the end highlights nothing", 12, 10, 5, "1 … 8 9 10"},
		{"all pages", 2, 3, 5, "1 [2] 3"},
		{"empty", 1, 0, 5, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tokens := pagination.Generate(pagination.Request{CurrentPage: tc.current, TotalPages: tc.total}, tc.maxVisible)
			assert.Equal(t, tc.want, render.Bar(tokens, tc.current, render.PlainStyle()))
		})
	}
}

func TestBar_DefaultStyleKeepsAllSlots(t *testing.T) {
	tokens := pagination.Generate(pagination.Request{CurrentPage: 5, TotalPages: 10}, 5)
	out := render.Bar(tokens, 5, render.DefaultStyle())
	for _, want := range []string{"1", "4", "5", "6", "10", "…"} {
		assert.Contains(t, out, want)
	}
}
