package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"cineworld/models"
	"cineworld/services/metadata"
)

func renderUI(t *testing.T, svc *fakeMovieService, target string) *goquery.Document {
	t.Helper()
	rec := serve(t, newTestRouter(svc), target)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Fatalf("unexpected content type %q", ct)
	}
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

func TestUIThemeRendersFeaturedRowsInOrder(t *testing.T) {
	svc := &fakeMovieService{popularResp: models.PagedResult{Movies: []models.MovieSummary{{ID: 1, Title: "Popular pick"}}}}
	doc := renderUI(t, svc, "/")

	rows := doc.Find("section.featured")
	if rows.Length() != 3 {
		t.Fatalf("expected 3 featured rows, got %d", rows.Length())
	}
	want := []string{"Popular now", "Comedy", "Drama"}
	rows.Each(func(i int, s *goquery.Selection) {
		if got := s.Find("a.row-title").Text(); got != want[i] {
			t.Fatalf("row %d: expected %q, got %q", i, want[i], got)
		}
	})
	if got := rows.Eq(1).Find("h3.title").First().Text(); got != "genre 35 pick" {
		t.Fatalf("unexpected comedy row movie %q", got)
	}
	if len(svc.filters) != 2 {
		t.Fatalf("expected one listing per featured genre, got %d", len(svc.filters))
	}
}

func TestUIAllMoviesIsPaginatedPopularList(t *testing.T) {
	popular := models.PagedResult{Page: 2, TotalPages: 5, Mode: "popular", Movies: []models.MovieSummary{{ID: 7, Title: "Second page pick"}}}

	for _, target := range []string{"/?page=2", "/?genre=0&page=2", "/?genre=all&page=2"} {
		svc := &fakeMovieService{popularResp: popular}
		doc := renderUI(t, svc, target)

		if svc.lastPage != 2 {
			t.Fatalf("%s: expected popular page 2, got %d", target, svc.lastPage)
		}
		if got := doc.Find("h2.heading").Text(); got != "All Movies" {
			t.Fatalf("%s: unexpected heading %q", target, got)
		}
		if doc.Find("section.featured").Length() != 0 {
			t.Fatalf("%s: featured rows rendered on a listing page", target)
		}
		if got := doc.Find("article.card h3.title").Text(); got != "Second page pick" {
			t.Fatalf("%s: unexpected card %q", target, got)
		}
		if got := doc.Find("nav.pager span.position").Text(); got != "Page 2 of 5" {
			t.Fatalf("%s: unexpected pager %q", target, got)
		}
		if got := doc.Find("nav.pager a.prev").AttrOr("href", ""); got != "/?genre=0" {
			t.Fatalf("%s: unexpected prev link %q", target, got)
		}
		if got := doc.Find("nav.pager a.next").AttrOr("href", ""); got != "/?genre=0&page=3" {
			t.Fatalf("%s: unexpected next link %q", target, got)
		}
	}
}

func TestUIThemeLinksToAllMovies(t *testing.T) {
	doc := renderUI(t, &fakeMovieService{}, "/")

	var found bool
	doc.Find("nav.selector a.genre").Each(func(_ int, s *goquery.Selection) {
		if strings.Contains(s.Text(), "All Movies") {
			found = true
			if href := s.AttrOr("href", ""); href != "/?genre=0" {
				t.Fatalf("unexpected All Movies link %q", href)
			}
		}
	})
	if !found {
		t.Fatal("expected an All Movies entry in the selector")
	}
	if got := doc.Find("section.featured").First().Find("a.row-title").AttrOr("href", ""); got != "/?genre=0" {
		t.Fatalf("popular row should link to the full listing, got %q", got)
	}
}

func TestUIGenreCollection(t *testing.T) {
	svc := &fakeMovieService{moviesResp: models.PagedResult{Page: 2, TotalPages: 4, Warning: "showing sample data"}}
	doc := renderUI(t, svc, "/movies?genre=35&page=2")

	if svc.lastFilter != (models.FilterRequest{GenreID: 35, Page: 2}) {
		t.Fatalf("unexpected filter %+v", svc.lastFilter)
	}
	if got := doc.Find("h2.heading").Text(); got != "Comedy" {
		t.Fatalf("unexpected heading %q", got)
	}
	if got := doc.Find("nav.pager a.next").AttrOr("href", ""); got != "/movies?genre=35&page=3" {
		t.Fatalf("unexpected next link %q", got)
	}
	if doc.Find("div.warning a.retry").Length() != 1 {
		t.Fatal("expected a retry link on the warning banner")
	}
}

func TestUISearchAndDetails(t *testing.T) {
	svc := &fakeMovieService{
		moviesResp: models.PagedResult{Page: 1, TotalPages: 1, Movies: []models.MovieSummary{{ID: 194, Title: "Amélie"}}},
		movieResp:  &models.MovieDetails{MovieSummary: models.MovieSummary{ID: 194, Title: "Amélie"}, Tagline: "She'll change your life."},
	}
	doc := renderUI(t, svc, "/?q=amelie&movie=194")

	if svc.lastFilter.Query != "amelie" || svc.lastMovieID != 194 {
		t.Fatalf("unexpected calls: filter=%+v movie=%d", svc.lastFilter, svc.lastMovieID)
	}
	if got := doc.Find("aside.details p.tagline").Text(); got != "She'll change your life." {
		t.Fatalf("unexpected tagline %q", got)
	}
	if got := doc.Find("aside.details a.close").AttrOr("href", ""); got != "/?q=amelie" {
		t.Fatalf("unexpected close link %q", got)
	}
	if got := doc.Find("form.search input[name=q]").AttrOr("value", ""); got != "amelie" {
		t.Fatalf("expected search box to keep the query, got %q", got)
	}
}

func TestUIDetailsFailures(t *testing.T) {
	svc := &fakeMovieService{movieErr: fmt.Errorf("%w: movie 5", metadata.ErrNotFound)}
	doc := renderUI(t, svc, "/?movie=5")
	if doc.Find("aside.not-found").Length() != 1 {
		t.Fatal("expected not-found panel")
	}

	svc = &fakeMovieService{movieErr: fmt.Errorf("%w: timeout", metadata.ErrUpstreamUnavailable)}
	doc = renderUI(t, svc, "/?movie=5")
	if got := doc.Find("div.error a.retry").AttrOr("href", ""); got != "/?movie=5" {
		t.Fatalf("unexpected retry link %q", got)
	}
}

func TestStaticAssets(t *testing.T) {
	router := newTestRouter(&fakeMovieService{})

	rec := serve(t, router, "/static/cineworld.css")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for stylesheet, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/css; charset=utf-8" {
		t.Fatalf("unexpected stylesheet type %q", ct)
	}

	rec = serve(t, router, "/static/no-poster.svg")
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Fatalf("unexpected svg type %q", ct)
	}

	if rec := serve(t, router, "/static/missing.png"); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
