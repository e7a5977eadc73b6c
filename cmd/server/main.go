// Package main is the entry point for the Explore Kerinci web frontend. It
// wires all dependencies using samber/do v2, starts the HTTP server, and
// handles graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/explorekerinci/web/internal/adapters/http"
	"github.com/explorekerinci/web/internal/adapters/http/handlers"
	"github.com/explorekerinci/web/internal/adapters/http/middleware"
	"github.com/explorekerinci/web/internal/adapters/http/view"

	"github.com/explorekerinci/web/internal/adapters/clients/acl"
	"github.com/explorekerinci/web/internal/app"
	"github.com/explorekerinci/web/internal/platform/config"
	"github.com/explorekerinci/web/internal/platform/health"
	"github.com/explorekerinci/web/internal/platform/httpclient"
	"github.com/explorekerinci/web/internal/platform/logging"
	"github.com/explorekerinci/web/internal/platform/session"
	"github.com/explorekerinci/web/internal/platform/telemetry"
	"github.com/explorekerinci/web/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (local, dev or prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile, config.WithEnvFile(envFile()))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[*acl.CatalogClient](injector))

	logger.Info("backend configured",
		slog.String("base_url", cfg.Client.BaseURL),
		slog.Int("per_page", cfg.Listing.PerPage),
		slog.Duration("debounce", cfg.Listing.Debounce),
	)

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

// envFile is the dotenv file seeding APP_* variables. APP_ENV_FILE
// overrides the default ".env".
func envFile() string {
	if path := os.Getenv("APP_ENV_FILE"); path != "" {
		return path
	}
	return ".env"
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	// Outbound: one resilient client for the Explore Kerinci API, shared by
	// the three adapters.
	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, "kerinci-api", metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*acl.CatalogClient, error) {
		return acl.NewCatalogClient(do.MustInvoke[*httpclient.Client](i), logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.AccountClient, error) {
		return acl.NewAccountClient(do.MustInvoke[*httpclient.Client](i), logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.AdminClient, error) {
		return acl.NewAdminClient(do.MustInvoke[*httpclient.Client](i), logger), nil
	})

	// Application services.
	do.Provide(injector, func(i do.Injector) (ports.CatalogService, error) {
		return app.NewCatalogService(do.MustInvoke[*acl.CatalogClient](i), logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.AccountService, error) {
		return app.NewAccountService(do.MustInvoke[ports.AccountClient](i), logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.AdminService, error) {
		return app.NewAdminService(do.MustInvoke[ports.AdminClient](i), logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	// Presentation: session cookies and the template renderer.
	do.Provide(injector, func(_ do.Injector) (*session.Store, error) {
		return session.NewStore(&cfg.Session), nil
	})

	do.Provide(injector, func(i do.Injector) (*view.Renderer, error) {
		rd, err := view.New(do.MustInvoke[*session.Store](i))
		if err != nil {
			return nil, fmt.Errorf("parsing templates: %w", err)
		}
		return rd, nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.CatalogHandler, error) {
		store := do.MustInvoke[*session.Store](i)
		return handlers.NewCatalogHandler(
			do.MustInvoke[ports.CatalogService](i),
			do.MustInvoke[ports.AccountService](i),
			do.MustInvoke[*view.Renderer](i),
			store,
			do.MustInvoke[*telemetry.Metrics](i),
			handlers.CatalogOptions{PerPage: cfg.Listing.PerPage, Debounce: cfg.Listing.Debounce},
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.AuthHandler, error) {
		return handlers.NewAuthHandler(
			do.MustInvoke[ports.AccountService](i),
			do.MustInvoke[*view.Renderer](i),
			do.MustInvoke[*session.Store](i),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ProfileHandler, error) {
		return handlers.NewProfileHandler(
			do.MustInvoke[ports.AccountService](i),
			do.MustInvoke[*view.Renderer](i),
			do.MustInvoke[*session.Store](i),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.AdminHandler, error) {
		return handlers.NewAdminHandler(
			do.MustInvoke[ports.AdminService](i),
			do.MustInvoke[*view.Renderer](i),
			do.MustInvoke[*session.Store](i),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		return handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		rd := do.MustInvoke[*view.Renderer](i)
		store := do.MustInvoke[*session.Store](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		stack := middleware.Chain(
			middleware.Recovery(logger, rd),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Session(store),
			middleware.Timeout(cfg.Server.RequestTimeout, rd),
			middleware.AppContext(),
		)

		return adapthttp.NewRouter(adapthttp.Routes{
			Catalog: do.MustInvoke[*handlers.CatalogHandler](i),
			Auth:    do.MustInvoke[*handlers.AuthHandler](i),
			Profile: do.MustInvoke[*handlers.ProfileHandler](i),
			Admin:   do.MustInvoke[*handlers.AdminHandler](i),
			Health:  do.MustInvoke[*handlers.HealthHandler](i),
			Static:  view.Static(),
			Errors:  rd,
		}, stack), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
