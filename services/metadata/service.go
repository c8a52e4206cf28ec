package metadata

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"cineworld/models"
)

var (
	// ErrUpstreamUnavailable covers network failures, timeouts, non-2xx
	// responses and a missing API key.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	// ErrMalformedResponse means upstream answered but the payload could not be used.
	ErrMalformedResponse = errors.New("malformed upstream response")
	ErrNotFound          = errors.New("not found")
)

const (
	fallbackWarning   = "movie database unavailable, showing sample data"
	missingKeyWarning = "movie database API key not configured, showing sample data"
)

// upstream is the subset of the TMDB client the service depends on.
type upstream interface {
	isConfigured() bool
	list(ctx context.Context, plan Plan, lang string) (*tmdbListResponse, error)
	movie(ctx context.Context, id int64, lang string) (*tmdbMovieDetails, error)
	image(ctx context.Context, size, file string) ([]byte, error)
}

var _ upstream = (*tmdbClient)(nil)

// Options configures a Service.
type Options struct {
	APIKey       string
	BaseURL      string
	ImageBaseURL string
	Language     string
	Timeout      time.Duration
	Attempts     int
	// Catalog replaces the built-in sample catalog when non-nil.
	Catalog    *Catalog
	HTTPClient *http.Client
}

// Service answers movie listing and lookup requests from TMDB, falling back
// to the sample catalog whenever upstream cannot be used.
type Service struct {
	upstream   upstream
	catalog    *Catalog
	normalizer Normalizer
}

func NewService(opts Options) *Service {
	httpc := opts.HTTPClient
	if httpc == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		httpc = &http.Client{Timeout: timeout}
	}
	client := newTMDBClient(opts.APIKey, opts.BaseURL, opts.ImageBaseURL, opts.Language, httpc, opts.Attempts)
	if !client.isConfigured() {
		log.Printf("[metadata] no TMDB API key configured; serving sample data only")
	}
	return newService(client, opts.Catalog, opts.ImageBaseURL)
}

func newService(up upstream, catalog *Catalog, imageBaseURL string) *Service {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &Service{
		upstream:   up,
		catalog:    catalog,
		normalizer: newNormalizer(imageBaseURL),
	}
}

// UpstreamConfigured reports whether an API key is available.
func (s *Service) UpstreamConfigured() bool {
	return s.upstream.isConfigured()
}

// Movies resolves req to a single upstream call and returns one page of
// normalized results. It never fails: upstream errors produce fallback data
// with Warning set.
func (s *Service) Movies(ctx context.Context, req models.FilterRequest) models.PagedResult {
	plan := Resolve(req)

	if !s.upstream.isConfigured() {
		return s.fallback(plan, missingKeyWarning)
	}

	resp, err := s.upstream.list(ctx, plan, req.Language)
	if err != nil {
		log.Printf("[metadata] %s request failed, serving fallback: %v", plan.Mode, err)
		return s.fallback(plan, fallbackWarning)
	}

	result := echo(plan)
	result.Movies = s.normalizer.Summaries(*resp.Results)
	result.Page = plan.Page
	if resp.Page > 0 {
		result.Page = resp.Page
	}
	result.TotalPages = capTotalPages(resp.TotalPages)
	result.TotalResults = resp.TotalResults
	return result
}

// Popular lists the upstream popular movies.
func (s *Service) Popular(ctx context.Context, page int) models.PagedResult {
	return s.Movies(ctx, models.FilterRequest{Page: page})
}

func (s *Service) fallback(plan Plan, warning string) models.PagedResult {
	var items []tmdbMovie
	if plan.Mode == ModeSearch {
		items = s.catalog.Search(plan.Query)
		if len(items) == 0 {
			items = s.catalog.Lookup(allKey)
		}
	} else {
		items = s.catalog.Lookup(plan.FallbackKey())
	}
	p := Paginate(items, plan.Page, PageSize)

	result := echo(plan)
	result.Movies = s.normalizer.Summaries(p.Items)
	result.Page = p.Page
	result.TotalPages = p.TotalPages
	result.TotalResults = p.Total
	result.Warning = warning
	return result
}

func echo(plan Plan) models.PagedResult {
	return models.PagedResult{
		Mode:    string(plan.Mode),
		Genre:   plan.GenreID,
		Country: plan.CountryCode,
		Query:   plan.Query,
	}
}

// Movie returns the details of one title. When upstream cannot supply it the
// sample catalog is consulted; ErrNotFound is returned when neither has it.
func (s *Service) Movie(ctx context.Context, id int64, lang string) (*models.MovieDetails, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: movie %d", ErrNotFound, id)
	}

	var upstreamErr error
	if s.upstream.isConfigured() {
		d, err := s.upstream.movie(ctx, id, lang)
		if err == nil {
			details := s.normalizer.Details(*d)
			return &details, nil
		}
		upstreamErr = err
		if !errors.Is(err, ErrNotFound) {
			log.Printf("[metadata] movie %d lookup failed, trying fallback: %v", id, err)
		}
	}

	if m, ok := s.catalog.Find(id); ok {
		details := models.MovieDetails{MovieSummary: s.normalizer.Summary(m)}
		return &details, nil
	}
	if upstreamErr != nil && !errors.Is(upstreamErr, ErrNotFound) {
		return nil, upstreamErr
	}
	return nil, fmt.Errorf("%w: movie %d", ErrNotFound, id)
}

// Genres returns the selectable genres, "All Movies" first.
func (s *Service) Genres() []models.Genre {
	return Genres()
}

// Countries returns the selectable countries.
func (s *Service) Countries() []models.Country {
	return Countries()
}

// CountryMovies returns the curated sample titles for one country.
func (s *Service) CountryMovies(code string) []models.MovieSummary {
	return s.normalizer.Summaries(s.catalog.CountryCatalog(code))
}

// Poster downloads a poster image by size ("w500", "original") and file name.
func (s *Service) Poster(ctx context.Context, size, file string) ([]byte, error) {
	return s.upstream.image(ctx, strings.TrimSpace(size), strings.TrimSpace(file))
}
