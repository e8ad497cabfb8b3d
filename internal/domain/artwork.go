package domain

import "strconv"

// Artwork is a single catalog record as shown in the table.
type Artwork struct {
	ID            int    `json:"id" yaml:"id" parquet:"id"`
	Title         string `json:"title" yaml:"title" parquet:"title"`
	PlaceOfOrigin string `json:"place_of_origin" yaml:"place_of_origin" parquet:"place_of_origin"`
	ArtistDisplay string `json:"artist_display" yaml:"artist_display" parquet:"artist_display"`
	Inscriptions  string `json:"inscriptions" yaml:"inscriptions" parquet:"inscriptions"`
	DateStart     int    `json:"date_start" yaml:"date_start" parquet:"date_start"`
	DateEnd       int    `json:"date_end" yaml:"date_end" parquet:"date_end"`
}

// StartYear returns the start year for display ("" when unknown)
func (a Artwork) StartYear() string {
	return formatYear(a.DateStart)
}

// EndYear returns the end year for display ("" when unknown)
func (a Artwork) EndYear() string {
	return formatYear(a.DateEnd)
}

func formatYear(year int) string {
	if year == 0 {
		return ""
	}
	return strconv.Itoa(year)
}

// Page is one page of catalog results.
type Page struct {
	Artworks    []Artwork
	Total       int // total records across all pages
	Limit       int
	CurrentPage int
	TotalPages  int
}
