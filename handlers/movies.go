package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"cineworld/models"
	metadatapkg "cineworld/services/metadata"
)

type movieService interface {
	Movies(context.Context, models.FilterRequest) models.PagedResult
	Popular(context.Context, int) models.PagedResult
	Movie(context.Context, int64, string) (*models.MovieDetails, error)
	Genres() []models.Genre
	Countries() []models.Country
	CountryMovies(string) []models.MovieSummary
	Poster(ctx context.Context, size, file string) ([]byte, error)
	UpstreamConfigured() bool
}

var _ movieService = (*metadatapkg.Service)(nil)

type MoviesHandler struct {
	Service movieService
}

func NewMoviesHandler(s movieService) *MoviesHandler {
	return &MoviesHandler{Service: s}
}

// moviesResponse flattens a PagedResult next to the success flag.
type moviesResponse struct {
	Success bool `json:"success"`
	models.PagedResult
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeFailure(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"success": false, "error": msg})
}

// List handles GET /api/movies?query=&genre=&country=&page=&language=.
func (h *MoviesHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := q.Get("query")
	if query == "" {
		query = q.Get("q")
	}
	req := models.FilterRequest{
		Query:       strings.TrimSpace(query),
		GenreID:     metadatapkg.ParseGenreParam(q.Get("genre")),
		CountryCode: q.Get("country"),
		Page:        metadatapkg.ParsePageParam(q.Get("page")),
		Language:    strings.TrimSpace(q.Get("language")),
	}
	result := h.Service.Movies(r.Context(), req)
	writeJSON(w, http.StatusOK, moviesResponse{Success: true, PagedResult: result})
}

// Popular handles GET /api/movies/popular?page=.
func (h *MoviesHandler) Popular(w http.ResponseWriter, r *http.Request) {
	result := h.Service.Popular(r.Context(), metadatapkg.ParsePageParam(r.URL.Query().Get("page")))
	writeJSON(w, http.StatusOK, moviesResponse{Success: true, PagedResult: result})
}

// Movie handles GET /api/movie/{id}.
func (h *MoviesHandler) Movie(w http.ResponseWriter, r *http.Request) {
	raw := strings.TrimSpace(mux.Vars(r)["id"])
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		writeFailure(w, http.StatusBadRequest, "invalid movie id")
		return
	}

	details, err := h.Service.Movie(r.Context(), id, strings.TrimSpace(r.URL.Query().Get("language")))
	if err != nil {
		if errors.Is(err, metadatapkg.ErrNotFound) {
			writeFailure(w, http.StatusNotFound, "movie not found")
			return
		}
		writeFailure(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "movie": details})
}

// Genres handles GET /api/genres.
func (h *MoviesHandler) Genres(w http.ResponseWriter, r *http.Request) {
	genres := h.Service.Genres()
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "genres": genres, "total": len(genres)})
}

// Countries handles GET /api/countries.
func (h *MoviesHandler) Countries(w http.ResponseWriter, r *http.Request) {
	countries := h.Service.Countries()
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "countries": countries, "total": len(countries)})
}

// CountryMovies handles GET /api/countries/{code}/movies.
func (h *MoviesHandler) CountryMovies(w http.ResponseWriter, r *http.Request) {
	code := metadatapkg.NormalizeCountryCode(mux.Vars(r)["code"])
	country, ok := metadatapkg.LookupCountry(code)
	if !ok {
		writeFailure(w, http.StatusNotFound, "country not found")
		return
	}
	movies := h.Service.CountryMovies(code)
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"country": country,
		"movies":  movies,
		"total":   len(movies),
	})
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Upstream  string `json:"upstream"`
	Version   string `json:"version"`
}

// Health handles GET /api/health.
func (h *MoviesHandler) Health(w http.ResponseWriter, r *http.Request) {
	upstream := "configured"
	if !h.Service.UpstreamConfigured() {
		upstream = "missing api key"
	}
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Upstream:  upstream,
		Version:   GetBackendVersion(),
	})
}
