package domain

import "context"

// MaxPageSize is the largest limit the catalog accepts per request
const MaxPageSize = 100

// ArtworkFields is the fixed field projection requested from the catalog
var ArtworkFields = []string{
	"id",
	"title",
	"place_of_origin",
	"artist_display",
	"inscriptions",
	"date_start",
	"date_end",
}

// CatalogClient: Network operations (implemented by catalog sources)
type CatalogClient interface {
	// GetArtworks returns one page of artworks. page is 1-indexed.
	GetArtworks(ctx context.Context, page, limit int) (*Page, error)

	// GetArtworksByIDs returns the artworks with the given IDs, in catalog order.
	GetArtworksByIDs(ctx context.Context, ids []int) ([]Artwork, error)
}
