package ui

import (
	"net/url"
	"strconv"
	"strings"

	"cineworld/models"
	"cineworld/services/metadata"
)

// Collection is what the page currently lists.
type Collection string

const (
	CollectionTheme   Collection = "theme"
	CollectionGenre   Collection = "genre"
	CollectionCountry Collection = "country"
	CollectionSearch  Collection = "search"
)

// State is the complete browsing state. Every navigation produces a new
// State through Reduce and is encoded into the URL, so one request renders
// exactly one state.
type State struct {
	Collection  Collection
	GenreID     int
	CountryCode string
	Query       string
	Page        int
	DetailsID   int64
}

// Action is a discrete state transition.
type Action interface {
	isAction()
}

// SelectionChanged switches to another collection. GenreID is read for
// CollectionGenre and CountryCode for CollectionCountry.
type SelectionChanged struct {
	Collection  Collection
	GenreID     int
	CountryCode string
}

type PageChanged struct {
	Page int
}

type SearchSubmitted struct {
	Query string
}

type DetailsOpened struct {
	ID int64
}

type DetailsClosed struct{}

func (SelectionChanged) isAction() {}
func (PageChanged) isAction()      {}
func (SearchSubmitted) isAction()  {}
func (DetailsOpened) isAction()    {}
func (DetailsClosed) isAction()    {}

// Initial is the landing state.
func Initial() State {
	return State{Collection: CollectionTheme, Page: 1}
}

// AllMovies is the paginated popular listing, the "All Movies" genre.
func AllMovies() State {
	return State{Collection: CollectionGenre, GenreID: metadata.AllGenresID, Page: 1}
}

// Reduce applies one action. Selection and search changes reset the page
// and close the details panel.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case SelectionChanged:
		return selection(a)
	case SearchSubmitted:
		q := strings.TrimSpace(a.Query)
		if q == "" {
			return Initial()
		}
		return State{Collection: CollectionSearch, Query: q, Page: 1}
	case PageChanged:
		if s.Collection == CollectionTheme {
			s = AllMovies()
		}
		s.Page = max(a.Page, 1)
		s.DetailsID = 0
		return s
	case DetailsOpened:
		if a.ID > 0 {
			s.DetailsID = a.ID
		}
		return s
	case DetailsClosed:
		s.DetailsID = 0
		return s
	}
	return s
}

func selection(a SelectionChanged) State {
	switch a.Collection {
	case CollectionGenre:
		if a.GenreID >= 0 {
			return State{Collection: CollectionGenre, GenreID: a.GenreID, Page: 1}
		}
	case CollectionCountry:
		if code := metadata.NormalizeCountryCode(a.CountryCode); code != "" {
			return State{Collection: CollectionCountry, CountryCode: code, Page: 1}
		}
	}
	return Initial()
}

// Filter converts the state into a listing request. The theme collection
// lists popular movies.
func (s State) Filter() models.FilterRequest {
	req := models.FilterRequest{Page: max(s.Page, 1)}
	switch s.Collection {
	case CollectionGenre:
		req.GenreID = s.GenreID
	case CollectionCountry:
		req.CountryCode = s.CountryCode
	case CollectionSearch:
		req.Query = s.Query
	}
	return req
}

// StateFromQuery decodes a state from URL parameters: q, genre, country,
// page and movie. A query wins over a country, which wins over a genre.
// "genre=all" or "genre=0" selects the All Movies listing, as does a bare
// page number, since the theme collection has a single page.
func StateFromQuery(v url.Values) State {
	page := metadata.ParsePageParam(v.Get("page"))
	var s State
	switch {
	case strings.TrimSpace(v.Get("q")) != "":
		s = Reduce(Initial(), SearchSubmitted{Query: v.Get("q")})
	case metadata.NormalizeCountryCode(v.Get("country")) != "":
		s = selection(SelectionChanged{Collection: CollectionCountry, CountryCode: v.Get("country")})
	case strings.TrimSpace(v.Get("genre")) != "":
		s = selection(SelectionChanged{Collection: CollectionGenre, GenreID: metadata.ParseGenreParam(v.Get("genre"))})
	case page > 1:
		s = AllMovies()
	default:
		s = Initial()
	}
	s.Page = page
	if id, err := strconv.ParseInt(strings.TrimSpace(v.Get("movie")), 10, 64); err == nil && id > 0 {
		s.DetailsID = id
	}
	return s
}

// Values encodes the state as URL parameters, omitting defaults.
func (s State) Values() url.Values {
	v := url.Values{}
	switch s.Collection {
	case CollectionGenre:
		v.Set("genre", strconv.Itoa(s.GenreID))
	case CollectionCountry:
		v.Set("country", s.CountryCode)
	case CollectionSearch:
		v.Set("q", s.Query)
	}
	if s.Page > 1 {
		v.Set("page", strconv.Itoa(s.Page))
	}
	if s.DetailsID > 0 {
		v.Set("movie", strconv.FormatInt(s.DetailsID, 10))
	}
	return v
}

// URL returns the link for the state under path.
func (s State) URL(path string) string {
	if q := s.Values().Encode(); q != "" {
		return path + "?" + q
	}
	return path
}
