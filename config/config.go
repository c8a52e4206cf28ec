package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

//go:embed sample_config.toml
var sampleConfig string

// Server contains the HTTP listener and admission settings.
type Server struct {
	Bind        string   `toml:"bind"`
	Port        int      `toml:"port"`
	CORSOrigins []string `toml:"cors_origins"`
	// RateLimitPerMinute is the per-IP budget for /api routes; 0 disables limiting.
	RateLimitPerMinute int `toml:"rate_limit_per_minute"`
	RateBurst          int `toml:"rate_burst"`
}

// TMDB contains configuration for The Movie Database API.
type TMDB struct {
	APIKey         string `toml:"api_key"`
	BaseURL        string `toml:"base_url"`
	ImageBaseURL   string `toml:"image_base_url"`
	Language       string `toml:"language"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	Attempts       int    `toml:"attempts"`
}

// Fallback points at an optional replacement for the built-in sample catalog.
type Fallback struct {
	CatalogFile string `toml:"catalog_file"`
}

// Logging configures the optional rotating log file.
type Logging struct {
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
}

// UI configures the server-rendered frontend.
type UI struct {
	FeaturedGenres []int `toml:"featured_genres"`
}

// Config is the full service configuration.
type Config struct {
	Server   Server   `toml:"server"`
	TMDB     TMDB     `toml:"tmdb"`
	Fallback Fallback `toml:"fallback"`
	Logging  Logging  `toml:"logging"`
	UI       UI       `toml:"ui"`
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Bind, strconv.Itoa(c.Server.Port))
}

// TMDBTimeout returns the outbound request timeout.
func (c *Config) TMDBTimeout() time.Duration {
	return time.Duration(c.TMDB.TimeoutSeconds) * time.Second
}

// SampleConfig returns an annotated configuration file.
func SampleConfig() string {
	return sampleConfig
}

// Load reads configuration from the OS filesystem. See LoadFS.
func Load(path string) (*Config, string, bool, error) {
	return LoadFS(afero.NewOsFs(), path)
}

// LoadFS resolves the config path (argument, CINEWORLD_CONFIG, then
// ./cineworld.toml), decodes it over Default() when present, applies
// environment overrides, then normalizes and validates. It returns the
// resolved path and whether a file was read.
func LoadFS(fsys afero.Fs, path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(fsys, path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := fsys.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config %s: %w", resolvedPath, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, "", false, err
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(fsys afero.Fs, path string) (string, bool, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		path = strings.TrimSpace(os.Getenv("CINEWORLD_CONFIG"))
	}
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}

	info, err := fsys.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if explicit {
				return "", false, fmt.Errorf("config file %s does not exist", path)
			}
			return path, false, nil
		}
		return "", false, fmt.Errorf("stat config: %w", err)
	}
	if info.IsDir() {
		return "", false, fmt.Errorf("config path %s is a directory", path)
	}
	return path, true, nil
}

func (c *Config) applyEnv() error {
	if key := strings.TrimSpace(os.Getenv("TMDB_API_KEY")); key != "" {
		c.TMDB.APIKey = key
	}
	if raw := strings.TrimSpace(os.Getenv("PORT")); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("PORT: invalid port %q", raw)
		}
		c.Server.Port = port
	}
	return nil
}
