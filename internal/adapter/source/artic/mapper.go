package artic

import (
	"fmt"

	"github.com/mmcdole/gallery/internal/domain"
)

// MapPage converts a decoded /artworks envelope to a domain page.
// Missing data, pagination, total, or record IDs make the whole page invalid.
func MapPage(resp *APIResponse) (*domain.Page, error) {
	if resp.Data == nil {
		return nil, fmt.Errorf("%w: missing data", domain.ErrMalformedResponse)
	}
	if resp.Pagination == nil || resp.Pagination.Total == nil {
		return nil, fmt.Errorf("%w: missing pagination total", domain.ErrMalformedResponse)
	}

	artworks, err := MapArtworks(*resp.Data)
	if err != nil {
		return nil, err
	}

	return &domain.Page{
		Artworks:    artworks,
		Total:       *resp.Pagination.Total,
		Limit:       resp.Pagination.Limit,
		CurrentPage: resp.Pagination.CurrentPage,
		TotalPages:  resp.Pagination.TotalPages,
	}, nil
}

// MapArtworks converts catalog records to domain artworks
func MapArtworks(records []Artwork) ([]domain.Artwork, error) {
	artworks := make([]domain.Artwork, 0, len(records))
	for i, r := range records {
		if r.ID == nil {
			return nil, fmt.Errorf("%w: record %d has no id", domain.ErrMalformedResponse, i)
		}
		artworks = append(artworks, mapArtwork(r))
	}
	return artworks, nil
}

// mapArtwork converts a single record; null fields become zero values
func mapArtwork(r Artwork) domain.Artwork {
	return domain.Artwork{
		ID:            *r.ID,
		Title:         deref(r.Title),
		PlaceOfOrigin: deref(r.PlaceOfOrigin),
		ArtistDisplay: deref(r.ArtistDisplay),
		Inscriptions:  deref(r.Inscriptions),
		DateStart:     deref(r.DateStart),
		DateEnd:       deref(r.DateEnd),
	}
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
