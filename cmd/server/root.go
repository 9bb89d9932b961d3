package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"devops-info/infoservice/internal/api"
	"devops-info/infoservice/internal/config"
	"devops-info/infoservice/internal/constants"
	"devops-info/infoservice/internal/logging"
	"devops-info/infoservice/internal/routes"
	"devops-info/infoservice/internal/uptime"
)

const readHeaderTimeout = 10 * time.Second

func newRootCmd(startedAt time.Time) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "infoservice",
		Short:         "DevOps info service",
		Long:          `Serves host metadata, process uptime and request echo data as JSON on / and /health.`,
		Version:       constants.ServiceVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(viper.New(), cmd.Flags())
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return run(ctx, cfg, uptime.NewClock(startedAt))
		},
	}

	config.BindFlags(cmd.Flags())
	return cmd
}

func run(ctx context.Context, cfg *config.Config, clock *uptime.Clock) error {
	if err := logging.Init(cfg.AppEnv, cfg.Debug); err != nil {
		return err
	}
	defer logging.Close()

	logging.Info("Application starting...",
		"service", constants.ServiceName,
		"version", constants.ServiceVersion,
		"environment", cfg.AppEnv,
		"debug", cfg.Debug,
		"started_at", clock.StartedAt().Format(time.RFC3339),
	)

	deps, err := api.InitDependencies(clock)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	router := routes.RegisterRoutes(deps, routerOptions(cfg))

	ln, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.Addr(), err)
	}

	srv := &http.Server{
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	return serve(ctx, srv, ln, cfg.ShutdownTimeout)
}

// routerOptions maps cfg onto the middleware settings. Rate limit values are
// passed only when limiting is enabled.
func routerOptions(cfg *config.Config) routes.Options {
	opts := routes.Options{
		CORSOrigins: cfg.CORSOrigins,
		TrustProxy:  cfg.TrustProxy,
	}
	if cfg.RateLimitEnabled() {
		opts.RateLimitRPS = cfg.RateLimitRPS
		opts.RateLimitBurst = cfg.RateLimitBurst
	}
	return opts
}

// serve runs srv on ln until ctx is cancelled, then drains in-flight
// requests for at most shutdownTimeout.
func serve(ctx context.Context, srv *http.Server, ln net.Listener, shutdownTimeout time.Duration) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logging.Info("Server starting", "address", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logging.Info("Server shutting down", "timeout", shutdownTimeout.String())

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logging.Error("Server stopped with error", "error", err.Error())
		return err
	}
	logging.Info("Server stopped")
	return nil
}
