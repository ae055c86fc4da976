// Package pagination turns a page position into the compressed list of page
// links a pagination control renders: first and last page, a neighbourhood of
// the current page, and ellipsis markers over the elided runs.
package pagination

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind tells the two token variants apart.
type Kind uint8

const (
	KindPage Kind = iota + 1
	KindEllipsis
)

func (k Kind) String() string {
	switch k {
	case KindPage:
		return "page"
	case KindEllipsis:
		return "ellipsis"
	default:
		return "unknown"
	}
}

// Token is one slot of a pagination bar: either a page number or an ellipsis.
// The zero value is neither and is never produced by Generate.
type Token struct {
	kind Kind
	page int
}

// Page returns a token for page n.
func Page(n int) Token { return Token{kind: KindPage, page: n} }

// Ellipsis returns the marker for an elided run of pages. It is not clickable.
func Ellipsis() Token { return Token{kind: KindEllipsis} }

func (t Token) Kind() Kind       { return t.kind }
func (t Token) IsEllipsis() bool { return t.kind == KindEllipsis }

// Number returns the page number and true for page tokens, 0 and false otherwise.
func (t Token) Number() (int, bool) {
	if t.kind != KindPage {
		return 0, false
	}
	return t.page, true
}

func (t Token) String() string {
	switch t.kind {
	case KindPage:
		return strconv.Itoa(t.page)
	case KindEllipsis:
		return "…"
	default:
		return "?"
	}
}

type tokenJSON struct {
	Type string `json:"type"`
	Page int    `json:"page,omitempty"`
}

// MarshalJSON encodes pages as {"type":"page","page":n} and the marker as {"type":"ellipsis"}.
func (t Token) MarshalJSON() ([]byte, error) {
	switch t.kind {
	case KindPage:
		return json.Marshal(tokenJSON{Type: KindPage.String(), Page: t.page})
	case KindEllipsis:
		return json.Marshal(tokenJSON{Type: KindEllipsis.String()})
	default:
		return nil, fmt.Errorf("pagination: cannot encode token of kind %d", t.kind)
	}
}

func (t *Token) UnmarshalJSON(data []byte) error {
	var raw tokenJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch raw.Type {
	case "page":
		if raw.Page < 1 {
			return fmt.Errorf("pagination: page token must be >= 1, got %d", raw.Page)
		}
		*t = Page(raw.Page)
	case "ellipsis":
		*t = Ellipsis()
	default:
		return fmt.Errorf("pagination: unknown token type %q", raw.Type)
	}
	return nil
}
