package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"cineworld/api"
	"cineworld/handlers"
	"cineworld/internal/logging"
	"cineworld/utils"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and web frontend",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			closer := logging.Setup(logging.Options{
				File:       cfg.Logging.File,
				MaxSizeMB:  cfg.Logging.MaxSizeMB,
				MaxBackups: cfg.Logging.MaxBackups,
				MaxAgeDays: cfg.Logging.MaxAgeDays,
			})
			defer closer.Close()

			svc, err := ctx.newService(cfg)
			if err != nil {
				return err
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			router := utils.NewRouter(cfg.Server.CORSOrigins)
			router.Use(api.RequestIDMiddleware(), api.AccessLogMiddleware())
			limiter := api.NewIPRateLimiter(runCtx, cfg.Server.RateLimitPerMinute, cfg.Server.RateBurst)
			handlers.RegisterRoutes(router,
				handlers.NewMoviesHandler(svc),
				handlers.NewPosterHandler(svc),
				handlers.NewUIHandler(svc, cfg.UI.FeaturedGenres),
				limiter.Middleware(),
			)

			srv := &http.Server{
				Addr:              cfg.Addr(),
				Handler:           router,
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				log.Printf("[server] listening on %s (version %s)", srv.Addr, handlers.GetBackendVersion())
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-runCtx.Done():
			}

			log.Printf("[server] shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return err
			}
			return nil
		},
	}
}
