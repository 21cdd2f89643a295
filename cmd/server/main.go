package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/api/option"

	"github.com/AngelCh415/FUNNEL_GO/internal/config"
	"github.com/AngelCh415/FUNNEL_GO/internal/dashboard"
	"github.com/AngelCh415/FUNNEL_GO/internal/httpx"
	"github.com/AngelCh415/FUNNEL_GO/internal/ingest"
	"github.com/AngelCh415/FUNNEL_GO/internal/store"
	"github.com/AngelCh415/FUNNEL_GO/internal/telemetry"
	"github.com/AngelCh415/FUNNEL_GO/internal/utils"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", slog.String("err", err.Error()))
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server error", slog.String("err", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	loc := cfg.Location()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	pm := telemetry.NewPipelineMetrics(reg)

	cl := ingest.NewHTTPClient(cfg.HTTPTimeout)
	backoff := utils.NewBackoff(cfg.FetchBackoff, cfg.FetchRetries)

	var (
		cache store.LedgerCache
		ready func(context.Context) error
	)
	if cfg.RedisURL != "" {
		rs, err := store.NewRedisStore(ctx, cfg.RedisURL, cfg.Ledger.CacheTTL)
		if err != nil {
			return err
		}
		defer rs.Close()
		cache, ready = rs, rs.Ping
		logger.Info("ledger cache", slog.String("backend", "redis"))
	} else {
		cache = store.NewMemoryStore(cfg.Ledger.CacheTTL)
		logger.Info("ledger cache", slog.String("backend", "memory"))
	}

	provider, err := ledgerProvider(ctx, cfg, cl, backoff, loc)
	if err != nil {
		return err
	}
	ledger := ingest.NewCachedLedger(provider, cache, loc, logger, pm)
	svc := dashboard.NewService(ingest.NewAdsClient(cl, cfg.AdsURL, backoff), ledger, dashboard.NewState(), logger, pm)

	var exporter *dashboard.Exporter
	if cfg.SinkURL != "" {
		exporter = dashboard.NewExporter(cl, cfg.SinkURL, cfg.SinkSecret, logger)
	}

	r := httpx.NewRouter(httpx.Deps{
		Log:      logger,
		Service:  svc,
		Exporter: exporter,
		Metrics:  promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
		Ready:    ready,
		Location: loc,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("starting server",
			slog.String("port", cfg.Port),
			slog.String("ledger_source", cfg.Ledger.Source),
			slog.String("timezone", loc.String()))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func ledgerProvider(ctx context.Context, cfg config.Config, cl ingest.HTTPClient, b utils.Backoff, loc *time.Location) (ingest.LedgerProvider, error) {
	l := cfg.Ledger
	switch l.Source {
	case config.LedgerGviz:
		return ingest.NewGvizLedger(cl, l.GvizEndpoint(), b), nil
	case config.LedgerSheets:
		return ingest.NewSheetsLedger(ctx, l.SheetID, l.SheetName, l.SheetRange, loc, option.WithAPIKey(l.APIKey))
	case config.LedgerXLSX:
		return ingest.NewXLSXLedger(l.XLSXPath, l.SheetName, loc), nil
	}
	return nil, fmt.Errorf("unknown ledger source %q", l.Source)
}
