package artic

// APIResponse is the envelope for /artworks responses.
// Pointers distinguish a missing key from a zero value.
type APIResponse struct {
	Pagination *Pagination `json:"pagination"`
	Data       *[]Artwork  `json:"data"`
}

// Pagination describes where a page sits in the full result set
type Pagination struct {
	Total       *int `json:"total"`
	Limit       int  `json:"limit"`
	TotalPages  int  `json:"total_pages"`
	CurrentPage int  `json:"current_page"`
}

// IDsResponse is the envelope for /artworks?ids= responses, which carry no pagination
type IDsResponse struct {
	Data *[]Artwork `json:"data"`
}

// Artwork is a single record. Text fields are frequently null in the catalog.
type Artwork struct {
	ID            *int    `json:"id"`
	Title         *string `json:"title"`
	PlaceOfOrigin *string `json:"place_of_origin"`
	ArtistDisplay *string `json:"artist_display"`
	Inscriptions  *string `json:"inscriptions"`
	DateStart     *int    `json:"date_start"`
	DateEnd       *int    `json:"date_end"`
}
