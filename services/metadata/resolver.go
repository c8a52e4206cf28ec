package metadata

import (
	"strconv"
	"strings"

	"cineworld/models"
)

// Mode is the upstream resource a FilterRequest resolves to.
type Mode string

const (
	ModeSearch  Mode = "search"
	ModeGenre   Mode = "genre"
	ModePopular Mode = "popular"
	ModeCountry Mode = "country"
)

// Plan is a resolved FilterRequest: exactly one mode plus its parameters.
type Plan struct {
	Mode         Mode
	Query        string
	GenreID      int
	CountryCode  string
	LanguageHint string // only for ModeCountry; "" means no language filter
	SortBy       string
	Page         int
}

// Resolve maps a request to a single upstream call. Query beats country,
// country beats genre, and anything else lists popular movies.
func Resolve(req models.FilterRequest) Plan {
	page := clampPage(req.Page)

	if q := strings.TrimSpace(req.Query); q != "" {
		return Plan{Mode: ModeSearch, Query: q, Page: page}
	}

	if code := NormalizeCountryCode(req.CountryCode); code != "" {
		return Plan{
			Mode:         ModeCountry,
			CountryCode:  code,
			LanguageHint: PrimaryLanguage(code),
			SortBy:       "popularity.desc",
			Page:         page,
		}
	}

	if req.GenreID != AllGenresID && req.GenreID > 0 {
		return Plan{Mode: ModeGenre, GenreID: req.GenreID, SortBy: "popularity.desc", Page: page}
	}

	return Plan{Mode: ModePopular, Page: page}
}

// FallbackKey returns the fallback catalog key for a plan.
func (p Plan) FallbackKey() string {
	switch p.Mode {
	case ModeGenre:
		return genreKey(p.GenreID)
	case ModeCountry:
		return countryKey(p.CountryCode)
	default:
		return allKey
	}
}

// NormalizeCountryCode upper-cases a country code. "world" and "all" mean no
// country filter and return "".
func NormalizeCountryCode(code string) string {
	code = strings.TrimSpace(code)
	switch strings.ToLower(code) {
	case "", "world", "all":
		return ""
	}
	return strings.ToUpper(code)
}

// ParseGenreParam reads a genre query parameter. "all", "0", empty and
// unparseable values all mean the "all" sentinel.
func ParseGenreParam(value string) int {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, "all") {
		return AllGenresID
	}
	id, err := strconv.Atoi(value)
	if err != nil || id < 0 {
		return AllGenresID
	}
	return id
}

// ParsePageParam reads a 1-based page number; anything invalid is page 1.
func ParsePageParam(value string) int {
	page, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 1
	}
	return clampPage(page)
}

func clampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}
