package models

import (
	"strings"
	"time"
)

// MovieSummary is the uniform movie shape served to clients regardless of
// which upstream endpoint (or the fallback catalog) produced it.
type MovieSummary struct {
	ID               int64    `json:"id"`
	Title            string   `json:"title"`
	OriginalTitle    string   `json:"originalTitle"`
	Overview         string   `json:"overview"`
	ReleaseDate      string   `json:"releaseDate,omitempty"` // YYYY-MM-DD
	VoteAverage      *float64 `json:"voteAverage,omitempty"` // 0-10
	PosterPath       string   `json:"posterPath,omitempty"`
	PosterURL        string   `json:"posterUrl,omitempty"`
	OriginalLanguage string   `json:"originalLanguage"`
	// ProductionCountry is derived from OriginalLanguage and is only an approximation.
	ProductionCountry string `json:"productionCountry"`
	LanguageName      string `json:"languageName"`
	GenreIDs          []int  `json:"genreIds,omitempty"`
}

// ReleaseYear returns the four digit release year, or "" when unknown.
// Dates that fail to parse fall back to their first four characters.
func (m MovieSummary) ReleaseYear() string {
	return ReleaseYear(m.ReleaseDate)
}

// ReleaseYear extracts the year from an ISO date string.
func ReleaseYear(date string) string {
	date = strings.TrimSpace(date)
	if date == "" {
		return ""
	}
	if t, err := time.Parse("2006-01-02", date); err == nil {
		return t.Format("2006")
	}
	if len(date) >= 4 {
		return date[:4]
	}
	return ""
}

// CastMember is a billed performer on a movie.
type CastMember struct {
	Name      string `json:"name"`
	Character string `json:"character,omitempty"`
}

// MovieDetails extends MovieSummary with fields only the single-title lookup provides.
type MovieDetails struct {
	MovieSummary
	Tagline             string       `json:"tagline,omitempty"`
	Runtime             int          `json:"runtime,omitempty"` // minutes
	Genres              []string     `json:"genres,omitempty"`
	ProductionCountries []string     `json:"productionCountries,omitempty"`
	Cast                []CastMember `json:"cast,omitempty"`
}

// Genre is a selectable genre collection. ID 0 means "all genres".
type Genre struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
}

// Country is a selectable production-country collection.
type Country struct {
	Code        string `json:"code"` // ISO 3166-1 alpha-2
	Name        string `json:"name"`
	Flag        string `json:"flag"`
	Description string `json:"description,omitempty"`
}

// FilterRequest describes one listing request. A non-empty Query wins over
// CountryCode, which wins over GenreID.
type FilterRequest struct {
	Query       string
	GenreID     int
	CountryCode string
	Page        int
	Language    string
}

// PagedResult is one page of movies plus the pagination totals.
type PagedResult struct {
	Page         int            `json:"page"`
	TotalPages   int            `json:"totalPages"`
	TotalResults int            `json:"totalResults"`
	Movies       []MovieSummary `json:"movies"`
	Mode         string         `json:"mode"`
	Genre        int            `json:"genre,omitempty"`
	Country      string         `json:"country,omitempty"`
	Query        string         `json:"query,omitempty"`
	Warning      string         `json:"warning,omitempty"`
}
