package ui

import (
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"cineworld/models"
)

// OverviewLimit is the number of characters of an overview shown on a card.
const OverviewLimit = 100

const (
	placeholderPoster = "/static/no-poster.svg"
	posterProxyPath   = "/api/poster/w500/"
)

// Truncate cuts s to at most limit runes and appends "..." when it was cut.
func Truncate(s string, limit int) string {
	s = strings.TrimSpace(s)
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return strings.TrimRight(string(runes[:limit]), " ") + "..."
}

func el(tag string, attrs ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: tag, DataAtom: atom.Lookup([]byte(tag))}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func appendAll(parent *html.Node, children ...*html.Node) *html.Node {
	for _, c := range children {
		if c != nil {
			parent.AppendChild(c)
		}
	}
	return parent
}

func textEl(tag, class, s string) *html.Node {
	n := el(tag)
	if class != "" {
		n.Attr = append(n.Attr, html.Attribute{Key: "class", Val: class})
	}
	n.AppendChild(text(s))
	return n
}

func link(href, class, label string) *html.Node {
	a := el("a", "href", href)
	if class != "" {
		a.Attr = append(a.Attr, html.Attribute{Key: "class", Val: class})
	}
	a.AppendChild(text(label))
	return a
}

func rating(v *float64) string {
	if v == nil {
		return "No rating"
	}
	return fmt.Sprintf("★ %.1f", *v)
}

// posterSrc points at the poster proxy so the page only loads images from
// this service.
func posterSrc(m models.MovieSummary) string {
	file := strings.TrimPrefix(strings.TrimSpace(m.PosterPath), "/")
	if file == "" || strings.Contains(file, "/") {
		return placeholderPoster
	}
	return posterProxyPath + url.PathEscape(file)
}

func poster(m models.MovieSummary) *html.Node {
	return el("img", "src", posterSrc(m), "alt", m.Title, "loading", "lazy")
}

// Card renders one movie summary linking to href.
func Card(m models.MovieSummary, href string) *html.Node {
	meta := []string{}
	if year := m.ReleaseYear(); year != "" {
		meta = append(meta, year)
	}
	meta = append(meta, m.LanguageName, m.ProductionCountry)

	a := appendAll(el("a", "href", href),
		poster(m),
		textEl("h3", "title", m.Title),
		textEl("p", "meta", strings.Join(meta, " · ")),
		textEl("p", "rating", rating(m.VoteAverage)),
		textEl("p", "overview", Truncate(m.Overview, OverviewLimit)),
	)
	return appendAll(el("article", "class", "card", "data-id", strconv.FormatInt(m.ID, 10)), a)
}

// Grid renders cards in upstream order; hrefFor builds each card's link.
func Grid(movies []models.MovieSummary, hrefFor func(id int64) string) *html.Node {
	if len(movies) == 0 {
		return textEl("p", "empty", "No movies found.")
	}
	grid := el("section", "class", "grid")
	for _, m := range movies {
		grid.AppendChild(Card(m, hrefFor(m.ID)))
	}
	return grid
}

// DetailsPanel renders the full record of one movie with a close link.
func DetailsPanel(d models.MovieDetails, closeHref string) *html.Node {
	panel := el("aside", "class", "details", "role", "dialog", "aria-label", d.Title)
	panel.AppendChild(link(closeHref, "close", "×"))
	panel.AppendChild(poster(d.MovieSummary))

	body := el("div", "class", "details-body")
	body.AppendChild(textEl("h2", "title", d.Title))
	if d.OriginalTitle != "" && d.OriginalTitle != d.Title {
		body.AppendChild(textEl("p", "original-title", d.OriginalTitle))
	}
	if d.Tagline != "" {
		body.AppendChild(textEl("p", "tagline", d.Tagline))
	}

	facts := el("dl", "class", "facts")
	addFact := func(label, value string) {
		if value == "" {
			return
		}
		facts.AppendChild(textEl("dt", "", label))
		facts.AppendChild(textEl("dd", "", value))
	}
	addFact("Release date", d.ReleaseDate)
	if d.Runtime > 0 {
		addFact("Runtime", fmt.Sprintf("%d min", d.Runtime))
	}
	addFact("Rating", rating(d.VoteAverage))
	addFact("Language", d.LanguageName)
	country := d.ProductionCountry
	if len(d.ProductionCountries) > 0 {
		country = strings.Join(d.ProductionCountries, ", ")
	}
	addFact("Country", country)
	addFact("Genres", strings.Join(d.Genres, ", "))
	body.AppendChild(facts)

	overview := d.Overview
	if overview == "" {
		overview = "No synopsis available."
	}
	body.AppendChild(textEl("p", "overview", overview))

	if len(d.Cast) > 0 {
		body.AppendChild(textEl("h3", "", "Cast"))
		list := el("ul", "class", "cast")
		for _, c := range d.Cast {
			label := c.Name
			if c.Character != "" {
				label += " as " + c.Character
			}
			list.AppendChild(textEl("li", "", label))
		}
		body.AppendChild(list)
	}
	panel.AppendChild(body)
	return panel
}

// NotFoundPanel replaces the details panel for an unknown movie.
func NotFoundPanel(closeHref string) *html.Node {
	return appendAll(el("aside", "class", "details not-found", "role", "dialog"),
		link(closeHref, "close", "×"),
		textEl("p", "", "Movie not found."),
	)
}

// ErrorPanel shows a failure message with a retry link.
func ErrorPanel(message, retryHref string) *html.Node {
	return appendAll(el("div", "class", "error", "role", "alert"),
		textEl("p", "", message),
		link(retryHref, "retry", "Try again"),
	)
}

// Warning renders the fallback banner.
func Warning(message, retryHref string) *html.Node {
	return appendAll(el("div", "class", "warning", "role", "status"),
		textEl("span", "", message),
		text(" "),
		link(retryHref, "retry", "Retry"),
	)
}

// Selector renders the collection switcher and the search form. hrefFor
// maps a target state to its URL.
func Selector(s State, genres []models.Genre, countries []models.Country, hrefFor func(State) string) *html.Node {
	nav := el("nav", "class", "selector")

	themeClass := "collection"
	if s.Collection == CollectionTheme {
		themeClass += " active"
	}
	nav.AppendChild(link(hrefFor(Initial()), themeClass, "Featured"))

	genreList := el("ul", "class", "genres")
	for _, g := range genres {
		class := "genre"
		if s.Collection == CollectionGenre && s.GenreID == g.ID {
			class += " active"
		}
		target := Reduce(s, SelectionChanged{Collection: CollectionGenre, GenreID: g.ID})
		li := el("li")
		li.AppendChild(link(hrefFor(target), class, g.Icon+" "+g.Name))
		genreList.AppendChild(li)
	}
	nav.AppendChild(genreList)

	countryList := el("ul", "class", "countries")
	for _, c := range countries {
		class := "country"
		if s.Collection == CollectionCountry && s.CountryCode == c.Code {
			class += " active"
		}
		target := Reduce(s, SelectionChanged{Collection: CollectionCountry, CountryCode: c.Code})
		li := el("li")
		li.AppendChild(link(hrefFor(target), class, c.Flag+" "+c.Name))
		countryList.AppendChild(li)
	}
	nav.AppendChild(countryList)

	form := el("form", "class", "search", "method", "get", "action", hrefFor(Initial()), "role", "search")
	form.AppendChild(el("input", "type", "search", "name", "q", "value", s.Query, "placeholder", "Search movies"))
	form.AppendChild(textEl("button", "", "Search"))
	nav.AppendChild(form)
	return nav
}

// Pager renders previous/next links around "Page N of M".
func Pager(s State, totalPages int, hrefFor func(State) string) *html.Node {
	nav := el("nav", "class", "pager")
	if s.Page > 1 {
		nav.AppendChild(link(hrefFor(Reduce(s, PageChanged{Page: s.Page - 1})), "prev", "Previous"))
	}
	label := fmt.Sprintf("Page %d of %d", s.Page, max(totalPages, 1))
	nav.AppendChild(textEl("span", "position", label))
	if s.Page < totalPages {
		nav.AppendChild(link(hrefFor(Reduce(s, PageChanged{Page: s.Page + 1})), "next", "Next"))
	}
	return nav
}

// Document wraps body nodes in a complete HTML page.
func Document(title string, body ...*html.Node) *html.Node {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	head := appendAll(el("head"),
		el("meta", "charset", "utf-8"),
		el("meta", "name", "viewport", "content", "width=device-width, initial-scale=1"),
		textEl("title", "", title),
		el("link", "rel", "stylesheet", "href", "/static/cineworld.css"),
	)
	bodyNode := appendAll(el("body"), body...)
	doc.AppendChild(appendAll(el("html", "lang", "en"), head, bodyNode))
	return doc
}

// Render writes a node tree as HTML.
func Render(w io.Writer, n *html.Node) error {
	return html.Render(w, n)
}
