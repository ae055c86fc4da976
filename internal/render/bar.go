// Package render draws pagination tokens as a one-line terminal bar.
package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/maxviazov/catalog-pagination/internal/pagination"
)

// Style controls how each kind of slot is drawn.
type Style struct {
	Current   lipgloss.Style
	Page      lipgloss.Style
	Ellipsis  lipgloss.Style
	Separator string
	// Bracket wraps the current page in [ ] for output without colour.
	Bracket bool
}

// DefaultStyle highlights the current page and dims the ellipsis.
func DefaultStyle() Style {
	return Style{
		Current:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("12")).Padding(0, 1),
		Page:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Padding(0, 1),
		Ellipsis:  lipgloss.NewStyle().Faint(true).Padding(0, 1),
		Separator: "",
	}
}

// PlainStyle draws without escape sequences: the current page in brackets,
// slots separated by a single space.
func PlainStyle() Style {
	return Style{
		Current:   lipgloss.NewStyle(),
		Page:      lipgloss.NewStyle(),
		Ellipsis:  lipgloss.NewStyle(),
		Separator: " ",
		Bracket:   true,
	}
}

// Bar renders tokens left to right. The page equal to current is drawn with
// the Current style.
func Bar(tokens []pagination.Token, current int, st Style) string {
	parts := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		n, ok := tok.Number()
		switch {
		case !ok:
			parts = append(parts, st.Ellipsis.Render(tok.String()))
		case n == current && st.Bracket:
			parts = append(parts, st.Current.Render("["+strconv.Itoa(n)+"]"))
		case n == current:
			parts = append(parts, st.Current.Render(strconv.Itoa(n)))
		default:
			parts = append(parts, st.Page.Render(strconv.Itoa(n)))
		}
	}
	return strings.Join(parts, st.Separator)
}
