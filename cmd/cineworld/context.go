package main

import (
	"strings"
	"sync"

	"github.com/spf13/afero"

	"cineworld/config"
	"cineworld/services/metadata"
)

type commandContext struct {
	configFlag *string
	fs         afero.Fs

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		fs:         afero.NewOsFs(),
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.LoadFS(c.fs, path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// newService builds the query service from configuration, loading a
// replacement fallback catalog when one is configured.
func (c *commandContext) newService(cfg *config.Config) (*metadata.Service, error) {
	var catalog *metadata.Catalog
	if cfg.Fallback.CatalogFile != "" {
		loaded, err := metadata.LoadCatalog(c.fs, cfg.Fallback.CatalogFile)
		if err != nil {
			return nil, err
		}
		catalog = loaded
	}
	return metadata.NewService(metadata.Options{
		APIKey:       cfg.TMDB.APIKey,
		BaseURL:      cfg.TMDB.BaseURL,
		ImageBaseURL: cfg.TMDB.ImageBaseURL,
		Language:     cfg.TMDB.Language,
		Timeout:      cfg.TMDBTimeout(),
		Attempts:     cfg.TMDB.Attempts,
		Catalog:      catalog,
	}), nil
}

func (c *commandContext) service() (*metadata.Service, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return c.newService(cfg)
}
