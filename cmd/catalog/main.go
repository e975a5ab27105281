// Command catalog loads a YAML catalog of authors, magazines and articles
// and prints a JSON report of every derived query.
//
// Configuration is read from the environment:
//
//	CATALOG_FILE     path of the YAML catalog (required)
//	LOAD_TIMEOUT     maximum load duration (default 30s)
//	LOG_LEVEL        debug, info, warn or error (default info)
//	LOG_FORMAT       json or text (default json)
//	METRICS_ENABLED  write Prometheus metrics to stderr on exit
//	TRACING_ENABLED  write spans to stderr
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"magazine-catalog/internal/catalog"
	"magazine-catalog/internal/config"
	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/observability/logging"
	"magazine-catalog/internal/observability/metrics"
	"magazine-catalog/internal/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	if err := run(context.Background(), cfg, os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// run loads the configured catalog and writes its report to stdout.
// Logs, metrics and spans go to stderr.
func run(ctx context.Context, cfg *config.Config, stdout, stderr io.Writer) error {
	logger := logging.New(stderr, cfg.Log.Format, logging.ParseLevel(cfg.Log.Level))
	ctx = logging.WithLogger(ctx, logger)

	if cfg.Observability.TracingEnabled {
		shutdown, err := initTracer(stderr)
		if err != nil {
			logger.Error("failed to initialize tracer", slog.Any("error", err))
			return err
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.Warn("failed to shut down tracer", slog.Any("error", err))
			}
		}()
	}

	promReg := prometheus.NewRegistry()
	m := metrics.New(promReg)
	reg := entity.NewRegistry(
		entity.WithObserver(logging.NewRegistryObserver(logger)),
		entity.WithObserver(m),
	)

	cat, err := loadCatalog(ctx, cfg, reg, m)
	if err != nil {
		logger.Error("failed to load catalog",
			slog.String("path", cfg.CatalogFile),
			slog.Any("error", err))
		return err
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report.Build(cat)); err != nil {
		logger.Error("failed to write report", slog.Any("error", err))
		return fmt.Errorf("write report: %w", err)
	}

	logger.Info("report written", slog.Int("registry_size", reg.Len()))

	if cfg.Observability.MetricsEnabled {
		if err := dumpMetrics(stderr, promReg); err != nil {
			logger.Warn("failed to write metrics", slog.Any("error", err))
		}
	}
	return nil
}

func loadCatalog(ctx context.Context, cfg *config.Config, reg *entity.Registry, m *metrics.Metrics) (*catalog.Catalog, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.LoadTimeout)
	defer cancel()

	// #nosec G304 -- path comes from operator configuration
	f, err := os.Open(cfg.CatalogFile)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer func() { _ = f.Close() }()

	loader := &catalog.Loader{Registry: reg, Recorder: m}
	cat, err := loader.Load(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return cat, nil
}

func initTracer(w io.Writer) (func(context.Context) error, error) {
	exporter, err := stdouttrace.New(stdouttrace.WithWriter(w))
	if err != nil {
		return nil, fmt.Errorf("create stdout exporter: %w", err)
	}
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)
	return tp.Shutdown, nil
}

func dumpMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("encode metrics: %w", err)
		}
	}
	return nil
}
