package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterRoutes wires every endpoint onto r. apiMiddleware wraps only the
// /api subtree (rate limiting).
func RegisterRoutes(r *mux.Router, movies *MoviesHandler, posters *PosterHandler, page *UIHandler, apiMiddleware ...mux.MiddlewareFunc) {
	api := r.PathPrefix("/api").Subrouter()
	api.Use(apiMiddleware...)

	get := []string{http.MethodGet, http.MethodOptions}
	api.HandleFunc("/movies", movies.List).Methods(get...)
	api.HandleFunc("/movies/popular", movies.Popular).Methods(get...)
	api.HandleFunc("/movie/{id}", movies.Movie).Methods(get...)
	api.HandleFunc("/genres", movies.Genres).Methods(get...)
	api.HandleFunc("/countries", movies.Countries).Methods(get...)
	api.HandleFunc("/countries/{code}/movies", movies.CountryMovies).Methods(get...)
	api.HandleFunc("/health", movies.Health).Methods(get...)
	api.Handle("/poster/{size}/{file}", posters).Methods(get...)

	r.HandleFunc("/version", NewVersionHandler().GetVersion).Methods(http.MethodGet)
	r.PathPrefix("/static/").Handler(NewStaticHandler()).Methods(http.MethodGet, http.MethodHead)
	r.Handle("/", page).Methods(http.MethodGet, http.MethodHead)
	r.Handle("/movies", page).Methods(http.MethodGet, http.MethodHead)
}
