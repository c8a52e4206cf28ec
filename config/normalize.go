package config

import "strings"

func (c *Config) normalize() {
	c.normalizeServer()
	c.normalizeTMDB()
	c.normalizeLogging()
	c.normalizeUI()
	c.Fallback.CatalogFile = strings.TrimSpace(c.Fallback.CatalogFile)
}

func (c *Config) normalizeServer() {
	c.Server.Bind = strings.TrimSpace(c.Server.Bind)
	if c.Server.Bind == "" {
		c.Server.Bind = defaultBind
	}
	origins := make([]string, 0, len(c.Server.CORSOrigins))
	seen := make(map[string]struct{}, len(c.Server.CORSOrigins))
	for _, origin := range c.Server.CORSOrigins {
		origin = strings.TrimRight(strings.TrimSpace(origin), "/")
		if origin == "" {
			continue
		}
		if _, dup := seen[origin]; dup {
			continue
		}
		seen[origin] = struct{}{}
		origins = append(origins, origin)
	}
	c.Server.CORSOrigins = origins
	if c.Server.RateLimitPerMinute > 0 && c.Server.RateBurst <= 0 {
		c.Server.RateBurst = defaultRateBurst
	}
}

func (c *Config) normalizeTMDB() {
	c.TMDB.APIKey = strings.TrimSpace(c.TMDB.APIKey)
	c.TMDB.BaseURL = strings.TrimRight(strings.TrimSpace(c.TMDB.BaseURL), "/")
	if c.TMDB.BaseURL == "" {
		c.TMDB.BaseURL = defaultTMDBBaseURL
	}
	c.TMDB.ImageBaseURL = strings.TrimRight(strings.TrimSpace(c.TMDB.ImageBaseURL), "/")
	if c.TMDB.ImageBaseURL == "" {
		c.TMDB.ImageBaseURL = defaultTMDBImageBaseURL
	}
	c.TMDB.Language = strings.TrimSpace(c.TMDB.Language)
	if c.TMDB.Language == "" {
		c.TMDB.Language = defaultTMDBLanguage
	}
	if c.TMDB.TimeoutSeconds == 0 {
		c.TMDB.TimeoutSeconds = defaultTMDBTimeoutSeconds
	}
	if c.TMDB.Attempts == 0 {
		c.TMDB.Attempts = defaultTMDBAttempts
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.File = strings.TrimSpace(c.Logging.File)
	if c.Logging.MaxSizeMB <= 0 {
		c.Logging.MaxSizeMB = defaultLogMaxSizeMB
	}
	if c.Logging.MaxBackups < 0 {
		c.Logging.MaxBackups = 0
	}
	if c.Logging.MaxAgeDays < 0 {
		c.Logging.MaxAgeDays = 0
	}
}

func (c *Config) normalizeUI() {
	genres := make([]int, 0, len(c.UI.FeaturedGenres))
	seen := make(map[int]struct{}, len(c.UI.FeaturedGenres))
	for _, id := range c.UI.FeaturedGenres {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		genres = append(genres, id)
	}
	c.UI.FeaturedGenres = genres
}
