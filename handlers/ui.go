package handlers

import (
	"bytes"
	"errors"
	"log"
	"net/http"
	"sort"

	"github.com/sourcegraph/conc/pool"

	"cineworld/internal/ui"
	"cineworld/models"
	metadatapkg "cineworld/services/metadata"
)

const (
	maxFeaturedWorkers = 4
	featuredRowSize    = 10
)

// UIHandler renders the browser frontend. Each request decodes one ui.State
// from the URL, fetches what that state needs and renders a full page.
type UIHandler struct {
	Service        movieService
	FeaturedGenres []int
}

func NewUIHandler(s movieService, featuredGenres []int) *UIHandler {
	return &UIHandler{Service: s, FeaturedGenres: featuredGenres}
}

type indexedRow struct {
	index int
	row   ui.FeaturedRow
}

func (h *UIHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	state := ui.StateFromQuery(r.URL.Query())
	data := ui.PageData{
		Path:      r.URL.Path,
		State:     state,
		Genres:    h.Service.Genres(),
		Countries: h.Service.Countries(),
	}

	if state.Collection == ui.CollectionTheme {
		data.Featured = h.featured(r)
	} else {
		result := h.list(r, state.Filter())
		data.Result = &result
	}

	if state.DetailsID > 0 {
		details, err := h.Service.Movie(ctx, state.DetailsID, "")
		switch {
		case err == nil:
			data.Details = details
		case errors.Is(err, metadatapkg.ErrNotFound):
			data.DetailsMissing = true
		default:
			log.Printf("[ui] movie %d: %v", state.DetailsID, err)
			data.DetailsError = "Could not load this movie right now."
		}
	}

	// A superseded navigation has already gone away; nothing to render.
	if err := ctx.Err(); err != nil {
		log.Printf("[ui] %s abandoned: %v", r.URL.RequestURI(), err)
		return
	}

	var buf bytes.Buffer
	if err := ui.Render(&buf, ui.Page(data)); err != nil {
		log.Printf("[ui] render %s: %v", r.URL.RequestURI(), err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// list fetches one page for req; an unfiltered request is the popular list.
func (h *UIHandler) list(r *http.Request, req models.FilterRequest) models.PagedResult {
	if req.Query == "" && req.CountryCode == "" && req.GenreID == metadatapkg.AllGenresID {
		return h.Service.Popular(r.Context(), req.Page)
	}
	return h.Service.Movies(r.Context(), req)
}

// featured loads the popular row and one row per featured genre
// concurrently, keeping their configured order.
func (h *UIHandler) featured(r *http.Request) []ui.FeaturedRow {
	type spec struct {
		title  string
		target ui.State
	}
	specs := []spec{{title: "Popular now", target: ui.AllMovies()}}
	for _, id := range h.FeaturedGenres {
		g, ok := metadatapkg.LookupGenre(id)
		if !ok || id == metadatapkg.AllGenresID {
			continue
		}
		specs = append(specs, spec{
			title:  g.Name,
			target: ui.Reduce(ui.Initial(), ui.SelectionChanged{Collection: ui.CollectionGenre, GenreID: id}),
		})
	}

	p := pool.NewWithResults[indexedRow]().WithMaxGoroutines(maxFeaturedWorkers)
	for i, s := range specs {
		p.Go(func() indexedRow {
			result := h.list(r, s.target.Filter())
			movies := result.Movies
			if len(movies) > featuredRowSize {
				movies = movies[:featuredRowSize]
			}
			return indexedRow{index: i, row: ui.FeaturedRow{
				Title:   s.title,
				Target:  s.target,
				Movies:  movies,
				Warning: result.Warning,
			}}
		})
	}
	results := p.Wait()
	sort.Slice(results, func(a, b int) bool { return results[a].index < results[b].index })

	rows := make([]ui.FeaturedRow, len(results))
	for i, res := range results {
		rows[i] = res.row
	}
	return rows
}
