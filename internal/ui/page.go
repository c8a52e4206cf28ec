package ui

import (
	"golang.org/x/net/html"

	"cineworld/models"
)

// FeaturedRow is one titled row of the theme collection.
type FeaturedRow struct {
	Title  string
	Target State
	Movies []models.MovieSummary
	// Warning is set when the row came from fallback data.
	Warning string
}

// PageData is everything one render needs. The handler fills it; Page only
// lays it out.
type PageData struct {
	Path      string
	State     State
	Genres    []models.Genre
	Countries []models.Country

	Featured []FeaturedRow
	Result   *models.PagedResult

	Details        *models.MovieDetails
	DetailsMissing bool
	// DetailsError is shown instead of the details panel when the lookup failed.
	DetailsError string
}

func (d PageData) href(s State) string {
	return s.URL(d.Path)
}

func (d PageData) detailsHref(id int64) string {
	return d.href(Reduce(d.State, DetailsOpened{ID: id}))
}

// Page lays out the full document for d.
func Page(d PageData) *html.Node {
	header := appendAll(el("header", "class", "masthead"),
		appendAll(el("h1"), link(d.href(Initial()), "brand", "CineWorld")),
		Selector(d.State, d.Genres, d.Countries, d.href),
	)

	main := el("main")
	main.AppendChild(textEl("h2", "heading", d.heading()))

	if d.State.Collection == CollectionTheme {
		for _, row := range d.Featured {
			main.AppendChild(d.featuredRow(row))
		}
	}
	if d.Result != nil {
		if d.Result.Warning != "" {
			main.AppendChild(Warning(d.Result.Warning, d.href(d.State)))
		}
		main.AppendChild(Grid(d.Result.Movies, d.detailsHref))
		main.AppendChild(Pager(d.State, d.Result.TotalPages, d.href))
	}

	closeHref := d.href(Reduce(d.State, DetailsClosed{}))
	switch {
	case d.DetailsError != "":
		main.AppendChild(ErrorPanel(d.DetailsError, d.href(d.State)))
	case d.DetailsMissing:
		main.AppendChild(NotFoundPanel(closeHref))
	case d.Details != nil:
		main.AppendChild(DetailsPanel(*d.Details, closeHref))
	}

	return Document("CineWorld · "+d.heading(), header, main)
}

func (d PageData) featuredRow(row FeaturedRow) *html.Node {
	section := el("section", "class", "featured")
	title := appendAll(el("h3"), link(d.href(row.Target), "row-title", row.Title))
	section.AppendChild(title)
	if row.Warning != "" {
		section.AppendChild(Warning(row.Warning, d.href(d.State)))
	}
	section.AppendChild(Grid(row.Movies, d.detailsHref))
	return section
}

func (d PageData) heading() string {
	switch d.State.Collection {
	case CollectionSearch:
		return "Results for “" + d.State.Query + "”"
	case CollectionGenre:
		for _, g := range d.Genres {
			if g.ID == d.State.GenreID {
				return g.Name
			}
		}
		return "Genre"
	case CollectionCountry:
		for _, c := range d.Countries {
			if c.Code == d.State.CountryCode {
				return "Movies from " + c.Name
			}
		}
		return "Movies from " + d.State.CountryCode
	}
	return "Featured"
}
