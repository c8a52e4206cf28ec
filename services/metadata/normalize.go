package metadata

import (
	"math"
	"sort"
	"strings"
	"time"

	"cineworld/models"
)

const (
	defaultImageBaseURL = "https://image.tmdb.org/t/p"
	tmdbPosterSize      = "w500"
)

// tmdbMovie is one entry of a TMDB list payload (search, discover, popular).
// The fallback catalog is stored in the same shape so both sources share
// one normalization path.
type tmdbMovie struct {
	ID               int64   `json:"id"`
	Title            string  `json:"title"`
	OriginalTitle    string  `json:"original_title"`
	Overview         string  `json:"overview"`
	ReleaseDate      string  `json:"release_date"`
	VoteAverage      float64 `json:"vote_average"`
	PosterPath       string  `json:"poster_path"`
	OriginalLanguage string  `json:"original_language"`
	GenreIDs         []int   `json:"genre_ids"`
	Popularity       float64 `json:"popularity"`
}

type tmdbListResponse struct {
	Page         int          `json:"page"`
	Results      *[]tmdbMovie `json:"results"`
	TotalPages   int          `json:"total_pages"`
	TotalResults int          `json:"total_results"`
}

type tmdbMovieDetails struct {
	tmdbMovie
	Tagline string `json:"tagline"`
	Runtime int    `json:"runtime"`
	Genres  []struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"genres"`
	ProductionCountries []struct {
		ISO  string `json:"iso_3166_1"`
		Name string `json:"name"`
	} `json:"production_countries"`
	Credits struct {
		Cast []struct {
			Name      string `json:"name"`
			Character string `json:"character"`
			Order     int    `json:"order"`
		} `json:"cast"`
	} `json:"credits"`
}

const maxCastMembers = 10

// Normalizer converts upstream records into models.MovieSummary.
type Normalizer struct {
	ImageBaseURL string
	PosterSize   string
}

func newNormalizer(imageBaseURL string) Normalizer {
	imageBaseURL = strings.TrimRight(strings.TrimSpace(imageBaseURL), "/")
	if imageBaseURL == "" {
		imageBaseURL = defaultImageBaseURL
	}
	return Normalizer{ImageBaseURL: imageBaseURL, PosterSize: tmdbPosterSize}
}

// Summary normalizes one upstream record.
func (n Normalizer) Summary(m tmdbMovie) models.MovieSummary {
	lang := strings.ToLower(strings.TrimSpace(m.OriginalLanguage))
	title := strings.TrimSpace(m.Title)
	original := strings.TrimSpace(m.OriginalTitle)
	if title == "" {
		title = original
	}
	if original == "" {
		original = title
	}
	var genres []int
	if len(m.GenreIDs) > 0 {
		genres = append([]int(nil), m.GenreIDs...)
	}
	return models.MovieSummary{
		ID:                m.ID,
		Title:             title,
		OriginalTitle:     original,
		Overview:          strings.TrimSpace(m.Overview),
		ReleaseDate:       normalizeReleaseDate(m.ReleaseDate),
		VoteAverage:       normalizeRating(m.VoteAverage),
		PosterPath:        strings.TrimSpace(m.PosterPath),
		PosterURL:         buildPosterURL(n.ImageBaseURL, n.PosterSize, m.PosterPath),
		OriginalLanguage:  lang,
		ProductionCountry: CountryFromLanguage(lang),
		LanguageName:      LanguageName(lang),
		GenreIDs:          genres,
	}
}

// Summaries normalizes a list, preserving order.
func (n Normalizer) Summaries(list []tmdbMovie) []models.MovieSummary {
	out := make([]models.MovieSummary, 0, len(list))
	for _, m := range list {
		out = append(out, n.Summary(m))
	}
	return out
}

// Details normalizes a single-title payload, keeping at most ten cast members.
func (n Normalizer) Details(d tmdbMovieDetails) models.MovieDetails {
	details := models.MovieDetails{
		MovieSummary: n.Summary(d.tmdbMovie),
		Tagline:      strings.TrimSpace(d.Tagline),
		Runtime:      d.Runtime,
	}
	for _, g := range d.Genres {
		if name := strings.TrimSpace(g.Name); name != "" {
			details.Genres = append(details.Genres, name)
		}
		details.GenreIDs = appendUnique(details.GenreIDs, g.ID)
	}
	for _, c := range d.ProductionCountries {
		if name := strings.TrimSpace(c.Name); name != "" {
			details.ProductionCountries = append(details.ProductionCountries, name)
		}
	}
	cast := append(d.Credits.Cast[:0:0], d.Credits.Cast...)
	sort.SliceStable(cast, func(i, j int) bool { return cast[i].Order < cast[j].Order })
	for _, c := range cast {
		if len(details.Cast) == maxCastMembers {
			break
		}
		details.Cast = append(details.Cast, models.CastMember{Name: c.Name, Character: c.Character})
	}
	return details
}

func appendUnique(ids []int, id int) []int {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}

// normalizeRating maps a vote average into [0,10]. Zero means "no votes"
// upstream and is reported as absent.
func normalizeRating(v float64) *float64 {
	if v == 0 || math.IsNaN(v) {
		return nil
	}
	v = math.Max(0, math.Min(10, v))
	return &v
}

func normalizeReleaseDate(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return ""
	}
	return value
}

func buildPosterURL(base, size, path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if size == "" {
		size = tmdbPosterSize
	}
	return base + "/" + size + path
}
