// Package app wires configuration into a ready analysis engine.
package app

import (
	"context"
	"errors"

	"StockPulse/internal/analysis"
	"StockPulse/internal/collector"
	"StockPulse/internal/config"
	"StockPulse/internal/logger"
)

// Version is overridden at build time with -ldflags "-X StockPulse/internal/app.Version=...".
var Version = "dev"

// App holds the long-lived engine components.
type App struct {
	Config    *config.Config
	Fetcher   collector.Fetcher
	Collector *collector.Collector
	Service   *analysis.Service

	closers []func() error
}

// New builds the fetcher chain, collector and service described by cfg.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	a := &App{Config: cfg}

	base := NewFetcher(cfg)
	a.Fetcher = base
	switch cfg.Cache.Backend {
	case "memory":
		a.Fetcher = collector.NewCachedFetcher(base, collector.NewMemoryCache(), cfg.CacheTTL())
	case "redis":
		rc, err := collector.NewRedisCache(ctx, cfg.Cache.RedisAddr, cfg.Cache.RedisPassword, cfg.Cache.RedisDB)
		if err != nil {
			logger.Warnf("redis cache unavailable, continuing without cache: %v", err)
			break
		}
		a.closers = append(a.closers, rc.Close)
		a.Fetcher = collector.NewCachedFetcher(base, rc, cfg.CacheTTL())
	}
	logger.Infof("data source: %s (cache: %s)", a.Fetcher.Name(), cfg.Cache.Backend)

	a.Collector = collector.NewCollector(a.Fetcher)
	a.Service = analysis.NewService(a.Collector, a.Fetcher.Name())
	return a, nil
}

// NewFetcher returns the provider named by cfg.DataSource.Provider.
func NewFetcher(cfg *config.Config) collector.Fetcher {
	switch cfg.DataSource.Provider {
	case "tiingo":
		return collector.NewTiingoFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy, cfg.DataSource.RequestsPerSecond)
	case "mock":
		return &collector.MockFetcher{Price: 100}
	default:
		return collector.NewYahooFetcher()
	}
}

// Close releases cache connections.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}
