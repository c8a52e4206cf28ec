package config

import (
	"fmt"
	"net/url"
)

// Validate ensures the configuration is usable. A missing TMDB API key is
// allowed; the service then serves sample data only.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateTMDB(); err != nil {
		return err
	}
	if err := c.validateUI(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.RateLimitPerMinute < 0 {
		return fmt.Errorf("server.rate_limit_per_minute must be >= 0, got %d", c.Server.RateLimitPerMinute)
	}
	return nil
}

func (c *Config) validateTMDB() error {
	if err := validateHTTPURL("tmdb.base_url", c.TMDB.BaseURL); err != nil {
		return err
	}
	if err := validateHTTPURL("tmdb.image_base_url", c.TMDB.ImageBaseURL); err != nil {
		return err
	}
	if c.TMDB.TimeoutSeconds < 1 {
		return fmt.Errorf("tmdb.timeout_seconds must be positive, got %d", c.TMDB.TimeoutSeconds)
	}
	if c.TMDB.Attempts < 1 || c.TMDB.Attempts > maxTMDBAttempts {
		return fmt.Errorf("tmdb.attempts must be between 1 and %d, got %d", maxTMDBAttempts, c.TMDB.Attempts)
	}
	return nil
}

func (c *Config) validateUI() error {
	for _, id := range c.UI.FeaturedGenres {
		if id <= 0 {
			return fmt.Errorf("ui.featured_genres must contain positive genre ids, got %d", id)
		}
	}
	return nil
}

func validateHTTPURL(field, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%s must be an http(s) URL, got %q", field, raw)
	}
	return nil
}
