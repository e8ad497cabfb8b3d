package browser

import (
	"cmp"
	"slices"
	"strings"

	"github.com/mmcdole/gallery/internal/domain"
)

// SortField is a column the visible page can be ordered by
type SortField int

const (
	SortDefault SortField = iota // catalog order
	SortTitle
	SortOrigin
	SortArtist
	SortStart
	SortEnd
)

// SortFields lists the fields in cycling order
var SortFields = []SortField{SortDefault, SortTitle, SortOrigin, SortArtist, SortStart, SortEnd}

// String returns the display name for the sort field
func (f SortField) String() string {
	switch f {
	case SortDefault:
		return "Default"
	case SortTitle:
		return "Title"
	case SortOrigin:
		return "Place of Origin"
	case SortArtist:
		return "Artist"
	case SortStart:
		return "Start Date"
	case SortEnd:
		return "End Date"
	default:
		return "Unknown"
	}
}

// Next returns the field after f, wrapping around
func (f SortField) Next() SortField {
	idx := slices.Index(SortFields, f)
	return SortFields[(idx+1)%len(SortFields)]
}

// SortDirection represents sort direction
type SortDirection int

const (
	SortAsc SortDirection = iota
	SortDesc
)

// Flip returns the opposite direction
func (d SortDirection) Flip() SortDirection {
	if d == SortAsc {
		return SortDesc
	}
	return SortAsc
}

// String returns an arrow for the direction
func (d SortDirection) String() string {
	if d == SortDesc {
		return "↓"
	}
	return "↑"
}

// SortRows returns a stably sorted copy of rows. SortDefault keeps catalog order.
func SortRows(rows []domain.Artwork, field SortField, dir SortDirection) []domain.Artwork {
	out := slices.Clone(rows)
	if field == SortDefault {
		return out
	}

	slices.SortStableFunc(out, func(a, b domain.Artwork) int {
		c := compareField(a, b, field)
		if dir == SortDesc {
			return -c
		}
		return c
	})
	return out
}

func compareField(a, b domain.Artwork, field SortField) int {
	switch field {
	case SortTitle:
		return compareFold(a.Title, b.Title)
	case SortOrigin:
		return compareFold(a.PlaceOfOrigin, b.PlaceOfOrigin)
	case SortArtist:
		return compareFold(a.ArtistDisplay, b.ArtistDisplay)
	case SortStart:
		return cmp.Compare(a.DateStart, b.DateStart)
	case SortEnd:
		return cmp.Compare(a.DateEnd, b.DateEnd)
	default:
		return 0
	}
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
