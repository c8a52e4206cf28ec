package metadata

// PageSize is the number of movies per page for locally paginated results.
const PageSize = 20

// MaxUpstreamPages bounds the page count TMDB reports; it refuses pages past 500.
const MaxUpstreamPages = 500

// Page is one slice of a locally held sequence.
type Page[T any] struct {
	Items      []T
	Page       int
	TotalPages int
	Total      int
}

// Paginate returns items [(page-1)*size, page*size). Pages past the end are
// empty, not an error. Totals computed here are never capped.
func Paginate[T any](items []T, page, size int) Page[T] {
	page = clampPage(page)
	if size <= 0 {
		size = PageSize
	}
	total := len(items)
	totalPages := (total + size - 1) / size

	if page > totalPages {
		return Page[T]{Items: []T{}, Page: page, TotalPages: totalPages, Total: total}
	}
	start := (page - 1) * size
	end := start + size
	if end > total {
		end = total
	}
	out := make([]T, end-start)
	copy(out, items[start:end])
	return Page[T]{Items: out, Page: page, TotalPages: totalPages, Total: total}
}

func capTotalPages(n int) int {
	if n > MaxUpstreamPages {
		return MaxUpstreamPages
	}
	if n < 0 {
		return 0
	}
	return n
}
