package browser

import (
	"testing"

	"github.com/mmcdole/gallery/internal/domain"
	"github.com/stretchr/testify/assert"
)

func filterFixture() []domain.Artwork {
	return []domain.Artwork{
		{ID: 1, Title: "The Basket of Apples", ArtistDisplay: "Paul Cézanne\nFrench, 1839–1906", PlaceOfOrigin: "France"},
		{ID: 2, Title: "Nighthawks", ArtistDisplay: "Edward Hopper\nAmerican, 1882–1967", PlaceOfOrigin: "United States"},
		{ID: 3, Title: "Night Shadows", ArtistDisplay: "Edward Hopper", PlaceOfOrigin: "United States"},
		{ID: 4, Title: "Untitled", ArtistDisplay: "Unknown", PlaceOfOrigin: "Japan"},
	}
}

func TestFilterRows_EmptyQuery(t *testing.T) {
	rows := filterFixture()
	assert.Equal(t, rows, FilterRows(rows, "   "))
}

func TestFilterRows_TitleMatch(t *testing.T) {
	got := ids(FilterRows(filterFixture(), "nighthawks"))
	assert.Equal(t, []int{2}, got)
}

func TestFilterRows_ArtistIgnoresDiacritics(t *testing.T) {
	got := ids(FilterRows(filterFixture(), "cezanne"))
	assert.Equal(t, []int{1}, got)
}

func TestFilterRows_OriginMatch(t *testing.T) {
	got := ids(FilterRows(filterFixture(), "japan"))
	assert.Equal(t, []int{4}, got)
}

func TestFilterRows_NoMatch(t *testing.T) {
	assert.Empty(t, FilterRows(filterFixture(), "zzzz"))
}
