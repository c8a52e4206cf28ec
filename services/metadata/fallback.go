package metadata

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/mozillazg/go-unidecode"
	"github.com/spf13/afero"
)

const allKey = "all"

func genreKey(id int) string {
	if id == AllGenresID {
		return allKey
	}
	return "genre:" + strconv.Itoa(id)
}

func countryKey(code string) string {
	code = NormalizeCountryCode(code)
	if code == "" {
		return allKey
	}
	return "country:" + code
}

// Catalog is the static sample data served when upstream is unavailable.
// It is never mutated after construction; every accessor returns a copy.
type Catalog struct {
	entries map[string][]tmdbMovie
}

// DefaultCatalog returns the built-in sample catalog.
func DefaultCatalog() *Catalog {
	return &Catalog{entries: demoCatalog}
}

// LoadCatalog reads a replacement catalog from a JSON file of the form
// {"all": [...], "genre:35": [...], "country:BR": [...]} holding TMDB-shaped records.
func LoadCatalog(fsys afero.Fs, path string) (*Catalog, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read fallback catalog: %w", err)
	}
	var raw map[string][]tmdbMovie
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse fallback catalog %s: %w", path, err)
	}
	entries := make(map[string][]tmdbMovie, len(raw))
	for key, list := range raw {
		normalized, err := normalizeCatalogKey(key)
		if err != nil {
			return nil, fmt.Errorf("fallback catalog %s: %w", path, err)
		}
		entries[normalized] = append(entries[normalized], list...)
	}
	return &Catalog{entries: entries}, nil
}

func normalizeCatalogKey(key string) (string, error) {
	key = strings.TrimSpace(key)
	if strings.EqualFold(key, allKey) || key == "0" {
		return allKey, nil
	}
	kind, value, ok := strings.Cut(key, ":")
	if !ok {
		return "", fmt.Errorf("invalid catalog key %q", key)
	}
	switch strings.ToLower(kind) {
	case "genre":
		id, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || id < 0 {
			return "", fmt.Errorf("invalid genre in catalog key %q", key)
		}
		return genreKey(id), nil
	case "country":
		return countryKey(value), nil
	}
	return "", fmt.Errorf("invalid catalog key %q", key)
}

// Lookup returns the records for key: the exact match, else the "all"
// catalog, else an empty slice.
func (c *Catalog) Lookup(key string) []tmdbMovie {
	if list, ok := c.entries[key]; ok {
		return cloneMovies(list)
	}
	if list, ok := c.entries[allKey]; ok {
		return cloneMovies(list)
	}
	return []tmdbMovie{}
}

// Exact returns only the records stored under key, without the "all" fallback.
func (c *Catalog) Exact(key string) []tmdbMovie {
	return cloneMovies(c.entries[key])
}

// CountryCatalog lists the curated records for one country; unknown or
// empty codes yield an empty slice.
func (c *Catalog) CountryCatalog(code string) []tmdbMovie {
	if NormalizeCountryCode(code) == "" {
		return []tmdbMovie{}
	}
	return c.Exact(countryKey(code))
}

// Find returns the first record with the given id, looking in the "all"
// catalog first and then every other key.
func (c *Catalog) Find(id int64) (tmdbMovie, bool) {
	for _, m := range c.entries[allKey] {
		if m.ID == id {
			return m, true
		}
	}
	for _, key := range c.sortedKeys() {
		for _, m := range c.entries[key] {
			if m.ID == id {
				return m, true
			}
		}
	}
	return tmdbMovie{}, false
}

// Search matches query against titles and original titles of every record,
// ignoring case and accents. Results are deduplicated by id.
func (c *Catalog) Search(query string) []tmdbMovie {
	needle := foldText(query)
	if needle == "" {
		return []tmdbMovie{}
	}
	seen := make(map[int64]struct{})
	out := []tmdbMovie{}
	keys := append([]string{allKey}, c.sortedKeys()...)
	for _, key := range keys {
		for _, m := range c.entries[key] {
			if _, dup := seen[m.ID]; dup {
				continue
			}
			if strings.Contains(foldText(m.Title), needle) || strings.Contains(foldText(m.OriginalTitle), needle) {
				seen[m.ID] = struct{}{}
				out = append(out, m)
			}
		}
	}
	return out
}

// sortedKeys lists every key except "all" in a stable order.
func (c *Catalog) sortedKeys() []string {
	keys := make([]string, 0, len(c.entries))
	for key := range c.entries {
		if key != allKey {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

func foldText(s string) string {
	return strings.ToLower(strings.TrimSpace(unidecode.Unidecode(s)))
}

func cloneMovies(list []tmdbMovie) []tmdbMovie {
	out := make([]tmdbMovie, len(list))
	for i, m := range list {
		if len(m.GenreIDs) > 0 {
			m.GenreIDs = append([]int(nil), m.GenreIDs...)
		}
		out[i] = m
	}
	return out
}
