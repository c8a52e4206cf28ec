package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"golang.org/x/text/language"
)

const (
	defaultTMDBBaseURL  = "https://api.themoviedb.org/3"
	defaultTMDBLanguage = "en-US"
	maxTMDBBodyBytes    = 8 << 20
	maxPosterBytes      = 5 << 20
)

// tmdbClient is a minimal TMDB v3 client covering the list, details and image
// endpoints the query service needs.
type tmdbClient struct {
	apiKey       string
	baseURL      string
	imageBaseURL string
	language     string
	httpc        *http.Client
	attempts     uint
	retryDelay   time.Duration
}

func newTMDBClient(apiKey, baseURL, imageBaseURL, lang string, httpc *http.Client, attempts int) *tmdbClient {
	if httpc == nil {
		httpc = &http.Client{Timeout: 10 * time.Second}
	}
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = defaultTMDBBaseURL
	}
	imageBaseURL = strings.TrimRight(strings.TrimSpace(imageBaseURL), "/")
	if imageBaseURL == "" {
		imageBaseURL = defaultImageBaseURL
	}
	if attempts < 1 {
		attempts = 1
	}
	return &tmdbClient{
		apiKey:       strings.TrimSpace(apiKey),
		baseURL:      baseURL,
		imageBaseURL: imageBaseURL,
		language:     normalizeLanguage(lang),
		httpc:        httpc,
		attempts:     uint(attempts),
		retryDelay:   300 * time.Millisecond,
	}
}

func (c *tmdbClient) isConfigured() bool {
	return c != nil && c.apiKey != ""
}

// normalizeLanguage turns "pt", "pt_br" or "PT-br" into a TMDB locale such as "pt-BR".
func normalizeLanguage(lang string) string {
	lang = strings.ReplaceAll(strings.TrimSpace(lang), "_", "-")
	if lang == "" {
		return defaultTMDBLanguage
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return defaultTMDBLanguage
	}
	base, conf := tag.Base()
	if conf == language.No {
		return defaultTMDBLanguage
	}
	region, conf := tag.Region()
	if conf == language.No || region.String() == "ZZ" {
		return base.String()
	}
	return base.String() + "-" + region.String()
}

// list performs the single upstream call a Plan resolves to.
func (c *tmdbClient) list(ctx context.Context, plan Plan, lang string) (*tmdbListResponse, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(min(plan.Page, MaxUpstreamPages)))
	params.Set("include_adult", "false")

	var path string
	switch plan.Mode {
	case ModeSearch:
		path = "/search/movie"
		params.Set("query", plan.Query)
	case ModeGenre:
		path = "/discover/movie"
		params.Set("with_genres", strconv.Itoa(plan.GenreID))
		params.Set("sort_by", plan.SortBy)
	case ModeCountry:
		path = "/discover/movie"
		params.Set("with_origin_country", plan.CountryCode)
		params.Set("region", plan.CountryCode)
		params.Set("sort_by", plan.SortBy)
		if plan.LanguageHint != "" {
			params.Set("with_original_language", plan.LanguageHint)
		}
	default:
		path = "/movie/popular"
	}

	var resp tmdbListResponse
	if err := c.get(ctx, path, params, lang, &resp); err != nil {
		return nil, err
	}
	if resp.Results == nil {
		return nil, fmt.Errorf("%w: tmdb %s response has no results", ErrMalformedResponse, path)
	}
	return &resp, nil
}

// movie fetches a single title with its credits appended.
func (c *tmdbClient) movie(ctx context.Context, id int64, lang string) (*tmdbMovieDetails, error) {
	params := url.Values{}
	params.Set("append_to_response", "credits")
	var resp tmdbMovieDetails
	if err := c.get(ctx, fmt.Sprintf("/movie/%d", id), params, lang, &resp); err != nil {
		return nil, err
	}
	if resp.ID == 0 {
		return nil, fmt.Errorf("%w: tmdb movie %d response has no id", ErrMalformedResponse, id)
	}
	return &resp, nil
}

func (c *tmdbClient) get(ctx context.Context, path string, params url.Values, lang string, v any) error {
	if !c.isConfigured() {
		return fmt.Errorf("%w: tmdb api key not configured", ErrUpstreamUnavailable)
	}
	if lang = strings.TrimSpace(lang); lang != "" {
		params.Set("language", normalizeLanguage(lang))
	} else {
		params.Set("language", c.language)
	}
	logged := c.baseURL + path + "?" + params.Encode()
	params.Set("api_key", c.apiKey)
	endpoint := c.baseURL + path + "?" + params.Encode()

	return retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
			if err != nil {
				return retry.Unrecoverable(fmt.Errorf("build tmdb request: %w", err))
			}
			req.Header.Set("Accept", "application/json")

			start := time.Now()
			resp, err := c.httpc.Do(req)
			if err != nil {
				return fmt.Errorf("%w: tmdb get %s: %v", ErrUpstreamUnavailable, path, err)
			}
			defer resp.Body.Close()
			log.Printf("[tmdb] GET %s status=%d latency=%v", logged, resp.StatusCode, time.Since(start))

			if resp.StatusCode == http.StatusNotFound {
				return retry.Unrecoverable(fmt.Errorf("%w: tmdb %s", ErrNotFound, path))
			}
			if resp.StatusCode < 200 || resp.StatusCode >= 300 {
				body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
				err := fmt.Errorf("%w: tmdb get %s failed: %s: %s", ErrUpstreamUnavailable, path, resp.Status, strings.TrimSpace(string(body)))
				if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
					return err
				}
				return retry.Unrecoverable(err)
			}
			if err := json.NewDecoder(io.LimitReader(resp.Body, maxTMDBBodyBytes)).Decode(v); err != nil {
				return retry.Unrecoverable(fmt.Errorf("%w: decode tmdb %s: %v", ErrMalformedResponse, path, err))
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(c.attempts),
		retry.Delay(c.retryDelay),
		retry.LastErrorOnly(true),
	)
}

var (
	posterSizePattern = regexp.MustCompile(`^(w[0-9]{2,4}|original)$`)
	posterFilePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+\.(jpg|jpeg|png|webp|svg)$`)
)

// image downloads a poster from the image CDN. It does not need an API key.
func (c *tmdbClient) image(ctx context.Context, size, file string) ([]byte, error) {
	if !posterSizePattern.MatchString(size) || !posterFilePattern.MatchString(file) {
		return nil, fmt.Errorf("%w: poster %s/%s", ErrNotFound, size, file)
	}
	endpoint := c.imageBaseURL + "/" + size + "/" + file
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build poster request: %w", err)
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: poster %s: %v", ErrUpstreamUnavailable, file, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: poster %s", ErrNotFound, file)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: poster %s: %s", ErrUpstreamUnavailable, file, resp.Status)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPosterBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read poster %s: %v", ErrUpstreamUnavailable, file, err)
	}
	return body, nil
}
