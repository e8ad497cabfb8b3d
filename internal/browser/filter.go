package browser

import (
	"strings"

	fuzzysearch "github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mmcdole/gallery/internal/domain"
	"github.com/sahilm/fuzzy"
)

// titleSource implements sahilm/fuzzy.Source over row titles
type titleSource []domain.Artwork

func (s titleSource) String(i int) string { return strings.ToLower(s[i].Title) }
func (s titleSource) Len() int            { return len(s) }

// FilterRows narrows the visible page to rows matching query.
//
// Titles are fuzzy-ranked (best first). Rows whose title does not match but
// whose artist or place of origin does are appended in row order; that match
// ignores case and diacritics, so "cezanne" finds "Paul Cézanne".
func FilterRows(rows []domain.Artwork, query string) []domain.Artwork {
	query = strings.TrimSpace(query)
	if query == "" {
		return rows
	}

	matched := make(map[int]bool)
	var out []domain.Artwork

	for _, m := range fuzzy.FindFrom(strings.ToLower(query), titleSource(rows)) {
		matched[m.Index] = true
		out = append(out, rows[m.Index])
	}

	for i, a := range rows {
		if matched[i] {
			continue
		}
		if fuzzysearch.MatchNormalizedFold(query, a.ArtistDisplay) ||
			fuzzysearch.MatchNormalizedFold(query, a.PlaceOfOrigin) {
			out = append(out, a)
		}
	}

	return out
}
