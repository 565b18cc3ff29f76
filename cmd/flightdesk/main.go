package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"flightdesk/internal/airports"
	"flightdesk/internal/config"
	"flightdesk/internal/events"
	"flightdesk/internal/metrics"
	"flightdesk/internal/store"
)

func main() {
	_ = godotenv.Load()

	logger := newLogger(true, "info")

	cfg, err := config.Load(os.Getenv("FLIGHTDESK_CONFIG_PATH"))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	logger = newLogger(cfg.Logging.Pretty, cfg.Logging.Level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend, err := openBackend(ctx, cfg, &logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("open store backend")
	}

	st, err := store.Open(ctx, backend, &logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("open store")
	}
	defer st.Close()

	metrics.Register()
	bus := events.NewBus()
	wireMetrics(bus)

	if cfg.Monitoring.PrometheusEnabled {
		go startMetricsServer(ctx, cfg.Monitoring.PrometheusPort, &logger)
	}

	app := &app{
		cfg:    cfg,
		store:  st,
		bus:    bus,
		dir:    airports.Default(),
		logger: &logger,
	}
	if err := app.run(ctx, os.Args[1:]); err != nil {
		logger.Fatal().Err(err).Msg("command failed")
	}
}

func newLogger(pretty bool, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	var out zerolog.Logger
	if pretty {
		writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
		out = zerolog.New(writer)
	} else {
		out = zerolog.New(os.Stderr)
	}
	return out.Level(lvl).With().Timestamp().Logger()
}

func openBackend(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) (store.Backend, error) {
	switch cfg.Store.Backend {
	case "sqlite":
		return store.OpenSQLite(cfg.Store.Path, logger)
	case "redis":
		return store.OpenRedis(ctx, cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}

func wireMetrics(bus *events.Bus) {
	bus.Subscribe(events.TopicScheduleReplaced, func(e events.Event) {
		metrics.IncScheduleLoaded()
		metrics.AddRowsParsed(e.Count)
	})
	bus.Subscribe(events.TopicReservationCreated, func(e events.Event) {
		metrics.IncReservationCreated()
	})
	bus.Subscribe(events.TopicRowsSkipped, func(e events.Event) {
		metrics.IncRowSkipped(e.Subject)
	})
}

func startMetricsServer(ctx context.Context, port int, logger *zerolog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: mux}
	go func() {
		<-ctx.Done()
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctxShutdown)
	}()
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error().Err(err).Msg("metrics server error")
	}
}
