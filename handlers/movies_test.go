package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gorilla/mux"

	"cineworld/models"
	"cineworld/services/metadata"
)

type fakeMovieService struct {
	mu sync.Mutex

	moviesResp  models.PagedResult
	popularResp models.PagedResult
	movieResp   *models.MovieDetails
	movieErr    error
	countryResp []models.MovieSummary
	posterResp  []byte
	posterErr   error
	configured  bool

	lastFilter   models.FilterRequest
	filters      []models.FilterRequest
	lastPage     int
	lastMovieID  int64
	lastLanguage string
	lastCountry  string
	lastSize     string
	lastFile     string
}

func (f *fakeMovieService) Movies(_ context.Context, req models.FilterRequest) models.PagedResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastFilter = req
	f.filters = append(f.filters, req)
	resp := f.moviesResp
	if req.GenreID != 0 {
		resp.Movies = []models.MovieSummary{{ID: int64(req.GenreID), Title: fmt.Sprintf("genre %d pick", req.GenreID)}}
	}
	return resp
}

func (f *fakeMovieService) Popular(_ context.Context, page int) models.PagedResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastPage = page
	return f.popularResp
}

func (f *fakeMovieService) Movie(_ context.Context, id int64, lang string) (*models.MovieDetails, error) {
	f.lastMovieID = id
	f.lastLanguage = lang
	return f.movieResp, f.movieErr
}

func (f *fakeMovieService) Genres() []models.Genre {
	return metadata.Genres()
}

func (f *fakeMovieService) Countries() []models.Country {
	return metadata.Countries()
}

func (f *fakeMovieService) CountryMovies(code string) []models.MovieSummary {
	f.lastCountry = code
	return f.countryResp
}

func (f *fakeMovieService) Poster(_ context.Context, size, file string) ([]byte, error) {
	f.lastSize = size
	f.lastFile = file
	return f.posterResp, f.posterErr
}

func (f *fakeMovieService) UpstreamConfigured() bool {
	return f.configured
}

func newTestRouter(svc *fakeMovieService) *mux.Router {
	r := mux.NewRouter()
	RegisterRoutes(r, NewMoviesHandler(svc), NewPosterHandler(svc), NewUIHandler(svc, []int{35, 18}))
	return r
}

func serve(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}

func TestMoviesListParsesFilter(t *testing.T) {
	svc := &fakeMovieService{moviesResp: models.PagedResult{
		Page: 2, TotalPages: 9, TotalResults: 170, Mode: "genre", Genre: 35,
		Movies: []models.MovieSummary{{ID: 1, Title: "One"}},
	}}
	rec := serve(t, newTestRouter(svc), "/api/movies?genre=35&page=2&country=world&language=pt-BR")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type %q", ct)
	}
	want := models.FilterRequest{GenreID: 35, CountryCode: "world", Page: 2, Language: "pt-BR"}
	if svc.lastFilter != want {
		t.Fatalf("unexpected filter: %+v", svc.lastFilter)
	}

	body := decodeBody(t, rec)
	if body["success"] != true || body["totalPages"] != float64(9) || body["mode"] != "genre" {
		t.Fatalf("unexpected body: %v", body)
	}
	if movies, ok := body["movies"].([]any); !ok || len(movies) != 1 {
		t.Fatalf("expected one movie, got %v", body["movies"])
	}
}

func TestMoviesListDefaults(t *testing.T) {
	svc := &fakeMovieService{}
	serve(t, newTestRouter(svc), "/api/movies?genre=all&page=-3&query=%20%20")
	if svc.lastFilter != (models.FilterRequest{Page: 1}) {
		t.Fatalf("unexpected filter: %+v", svc.lastFilter)
	}
}

func TestMoviesListWarning(t *testing.T) {
	svc := &fakeMovieService{moviesResp: models.PagedResult{Page: 1, Warning: "showing sample data"}}
	body := decodeBody(t, serve(t, newTestRouter(svc), "/api/movies?query=amelie"))
	if body["warning"] != "showing sample data" {
		t.Fatalf("expected warning in body, got %v", body)
	}
	if svc.lastFilter.Query != "amelie" {
		t.Fatalf("expected query to be forwarded, got %q", svc.lastFilter.Query)
	}
}

func TestPopular(t *testing.T) {
	svc := &fakeMovieService{popularResp: models.PagedResult{Page: 4, Mode: "popular"}}
	body := decodeBody(t, serve(t, newTestRouter(svc), "/api/movies/popular?page=4"))
	if svc.lastPage != 4 || body["mode"] != "popular" {
		t.Fatalf("unexpected popular call: page=%d body=%v", svc.lastPage, body)
	}
}

func TestMovieDetails(t *testing.T) {
	svc := &fakeMovieService{movieResp: &models.MovieDetails{MovieSummary: models.MovieSummary{ID: 598, Title: "City of God"}, Runtime: 130}}
	rec := serve(t, newTestRouter(svc), "/api/movie/598?language=pt-BR")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.lastMovieID != 598 || svc.lastLanguage != "pt-BR" {
		t.Fatalf("unexpected call: id=%d lang=%q", svc.lastMovieID, svc.lastLanguage)
	}
	body := decodeBody(t, rec)
	movie, ok := body["movie"].(map[string]any)
	if !ok || movie["title"] != "City of God" || movie["runtime"] != float64(130) {
		t.Fatalf("unexpected movie: %v", body["movie"])
	}
}

func TestMovieDetailsErrors(t *testing.T) {
	tests := []struct {
		name   string
		target string
		err    error
		status int
	}{
		{"invalid id", "/api/movie/abc", nil, http.StatusBadRequest},
		{"zero id", "/api/movie/0", nil, http.StatusBadRequest},
		{"not found", "/api/movie/42", fmt.Errorf("%w: movie 42", metadata.ErrNotFound), http.StatusNotFound},
		{"upstream", "/api/movie/43", fmt.Errorf("%w: timeout", metadata.ErrUpstreamUnavailable), http.StatusBadGateway},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &fakeMovieService{movieErr: tc.err}
			rec := serve(t, newTestRouter(svc), tc.target)
			if rec.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, rec.Code)
			}
			body := decodeBody(t, rec)
			if body["success"] != false || body["error"] == "" {
				t.Fatalf("unexpected error body: %v", body)
			}
		})
	}
}

func TestGenresAndCountries(t *testing.T) {
	router := newTestRouter(&fakeMovieService{})

	body := decodeBody(t, serve(t, router, "/api/genres"))
	genres, _ := body["genres"].([]any)
	if body["success"] != true || len(genres) == 0 || body["total"] != float64(len(genres)) {
		t.Fatalf("unexpected genres body: %v", body)
	}

	body = decodeBody(t, serve(t, router, "/api/countries"))
	countries, _ := body["countries"].([]any)
	if len(countries) == 0 || body["total"] != float64(len(countries)) {
		t.Fatalf("unexpected countries body: %v", body)
	}
}

func TestCountryMovies(t *testing.T) {
	svc := &fakeMovieService{countryResp: []models.MovieSummary{{ID: 598, Title: "City of God"}}}
	router := newTestRouter(svc)

	rec := serve(t, router, "/api/countries/br/movies")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.lastCountry != "BR" {
		t.Fatalf("expected normalized code, got %q", svc.lastCountry)
	}
	body := decodeBody(t, rec)
	country, _ := body["country"].(map[string]any)
	if country["name"] != "Brazil" || body["total"] != float64(1) {
		t.Fatalf("unexpected body: %v", body)
	}

	if rec := serve(t, router, "/api/countries/zz/movies"); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown country, got %d", rec.Code)
	}
}

func TestHealth(t *testing.T) {
	body := decodeBody(t, serve(t, newTestRouter(&fakeMovieService{}), "/api/health"))
	if body["status"] != "ok" || body["upstream"] != "missing api key" || body["timestamp"] == "" {
		t.Fatalf("unexpected health body: %v", body)
	}

	body = decodeBody(t, serve(t, newTestRouter(&fakeMovieService{configured: true}), "/api/health"))
	if body["upstream"] != "configured" {
		t.Fatalf("expected configured upstream, got %v", body["upstream"])
	}
}

func TestVersion(t *testing.T) {
	body := decodeBody(t, serve(t, newTestRouter(&fakeMovieService{}), "/version"))
	if v, _ := body["version"].(string); v == "" {
		t.Fatalf("expected a version, got %v", body)
	}
}
