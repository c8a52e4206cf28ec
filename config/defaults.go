package config

const (
	defaultConfigFile         = "cineworld.toml"
	defaultBind               = "0.0.0.0"
	defaultPort               = 3000
	defaultRateLimitPerMinute = 120
	defaultRateBurst          = 20
	defaultTMDBBaseURL        = "https://api.themoviedb.org/3"
	defaultTMDBImageBaseURL   = "https://image.tmdb.org/t/p"
	defaultTMDBLanguage       = "en-US"
	defaultTMDBTimeoutSeconds = 10
	defaultTMDBAttempts       = 1
	maxTMDBAttempts           = 5
	defaultLogMaxSizeMB       = 10
	defaultLogMaxBackups      = 3
	defaultLogMaxAgeDays      = 28
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Server: Server{
			Bind:               defaultBind,
			Port:               defaultPort,
			CORSOrigins:        []string{"*"},
			RateLimitPerMinute: defaultRateLimitPerMinute,
			RateBurst:          defaultRateBurst,
		},
		TMDB: TMDB{
			BaseURL:        defaultTMDBBaseURL,
			ImageBaseURL:   defaultTMDBImageBaseURL,
			Language:       defaultTMDBLanguage,
			TimeoutSeconds: defaultTMDBTimeoutSeconds,
			Attempts:       defaultTMDBAttempts,
		},
		Logging: Logging{
			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxBackups: defaultLogMaxBackups,
			MaxAgeDays: defaultLogMaxAgeDays,
		},
		UI: UI{
			FeaturedGenres: []int{28, 35, 18, 878},
		},
	}
}
