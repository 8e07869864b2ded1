// Package analysis assembles engine results into the reports handed to the
// CLI, the MCP tool server and the Telegram bot.
package analysis

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"StockPulse/internal/calculator"
	"StockPulse/internal/collector"
	"StockPulse/internal/logger"
	"StockPulse/internal/metrics"
	"StockPulse/internal/model"
	"StockPulse/internal/strategy"
)

const (
	DefaultPricePeriod     = "30d"
	DefaultIndicatorPeriod = "365d"
	DefaultMomentumPeriod  = "180d"
	DefaultVolumePeriod    = "365d"

	statusProbeTicker = "AAPL"
)

// ErrEmptyTicker is returned when a call carries no ticker.
var ErrEmptyTicker = errors.New("ticker is required")

// Source supplies windowed daily bars and provider display names.
type Source interface {
	Series(ctx context.Context, ticker string, days int) ([]model.OHLCV, error)
	CompanyName(ctx context.Context, ticker string) (string, error)
}

// Engine is the API the adapters call. *Service implements it.
type Engine interface {
	Price(ctx context.Context, ticker string) (*model.PriceSnapshot, error)
	Indicators(ctx context.Context, ticker string, names []string, period string) (*model.IndicatorReport, error)
	Momentum(ctx context.Context, ticker, period string) (*model.MomentumReport, error)
	Volume(ctx context.Context, ticker, period string) (*model.VolumeReport, error)
	ListIndicators() model.Catalog
	Status(ctx context.Context) *model.StatusReport
}

var _ Engine = (*Service)(nil)

// Service is the engine API. It holds no mutable state.
type Service struct {
	source       Source
	providerName string
	now          func() time.Time
	log          *logger.Logger
}

// NewService creates a Service reading from source. providerName is reported
// as the catalog data source.
func NewService(source Source, providerName string) *Service {
	return &Service{
		source:       source,
		providerName: providerName,
		now:          time.Now,
		log:          logger.Get().With("component", "analysis"),
	}
}

// WithClock overrides the clock used for report timestamps.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) timestamp() string {
	return s.now().UTC().Format(model.TimestampLayout)
}

// begin normalizes the ticker and returns a request-scoped logger plus a
// completion func that records metrics.
func (s *Service) begin(op, ticker string) (string, *logger.Logger, func(error)) {
	canonical := collector.CanonicalTicker(ticker)
	log := s.log.With("request_id", uuid.NewString(), "op", op, "ticker", canonical)
	start := time.Now()
	log.Debugf("start")
	return canonical, log, func(err error) {
		elapsed := time.Since(start)
		metrics.RecordEngineCall(op, elapsed, err)
		if err != nil {
			log.Infof("failed after %s: %v", elapsed, err)
			return
		}
		log.Debugf("done in %s", elapsed)
	}
}

// Price returns the latest bar of ticker and the range of the last 30 days.
func (s *Service) Price(ctx context.Context, ticker string) (snap *model.PriceSnapshot, err error) {
	canonical, _, done := s.begin("price", ticker)
	defer func() { done(err) }()
	if canonical == "" {
		return nil, ErrEmptyTicker
	}

	period, err := model.ParsePeriod(canonical, DefaultPricePeriod, DefaultPricePeriod)
	if err != nil {
		return nil, err
	}
	bars, err := s.source.Series(ctx, canonical, period.Days)
	if err != nil {
		return nil, err
	}
	high, low, err := calculator.Range(bars)
	if err != nil {
		return nil, err
	}

	last := bars[len(bars)-1]
	return &model.PriceSnapshot{
		Ticker:       canonical,
		CompanyName:  s.displayName(ctx, ticker, canonical),
		CurrentPrice: calculator.Round2(last.Close),
		OpenPrice:    calculator.Round2(last.Open),
		HighPrice:    calculator.Round2(last.High),
		LowPrice:     calculator.Round2(last.Low),
		Volume:       int64(last.Volume),
		Date:         last.Time.UTC().Format("2006-01-02"),
		RangeHigh:    calculator.Round2(high),
		RangeLow:     calculator.Round2(low),
		Status:       "success",
	}, nil
}

// Indicators computes the requested indicators over period. Empty names
// select model.DefaultIndicators; unknown names are ignored.
func (s *Service) Indicators(ctx context.Context, ticker string, names []string, period string) (report *model.IndicatorReport, err error) {
	canonical, log, done := s.begin("indicators", ticker)
	defer func() { done(err) }()
	if canonical == "" {
		return nil, ErrEmptyTicker
	}

	p, err := model.ParsePeriod(canonical, period, DefaultIndicatorPeriod)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		names = model.DefaultIndicators
	}
	known, unknown := calculator.SplitKnown(names)
	if len(unknown) > 0 {
		log.Debugf("ignoring unknown indicators: %s", strings.Join(unknown, ","))
	}
	if len(known) == 0 {
		return nil, &model.NoIndicatorsRequestedError{Ticker: canonical, Requested: names}
	}

	bars, err := s.source.Series(ctx, canonical, p.Days)
	if err != nil {
		return nil, err
	}
	indicators, err := calculator.Compute(canonical, bars, known)
	if err != nil {
		return nil, err
	}

	return &model.IndicatorReport{
		Ticker:       canonical,
		CompanyName:  s.displayName(ctx, ticker, canonical),
		Timestamp:    s.timestamp(),
		CurrentPrice: calculator.Round2(bars[len(bars)-1].Close),
		DataPoints:   len(bars),
		Period:       p.Label,
		Indicators:   indicators,
	}, nil
}

// Momentum scores ticker over period.
func (s *Service) Momentum(ctx context.Context, ticker, period string) (report *model.MomentumReport, err error) {
	canonical, _, done := s.begin("momentum", ticker)
	defer func() { done(err) }()
	if canonical == "" {
		return nil, ErrEmptyTicker
	}

	p, err := model.ParsePeriod(canonical, period, DefaultMomentumPeriod)
	if err != nil {
		return nil, err
	}
	bars, err := s.source.Series(ctx, canonical, p.Days)
	if err != nil {
		return nil, err
	}
	result, err := strategy.Score(canonical, bars)
	if err != nil {
		return nil, err
	}

	return &model.MomentumReport{
		Ticker:         canonical,
		Name:           s.displayName(ctx, ticker, canonical),
		Timestamp:      s.timestamp(),
		MomentumResult: *result,
		Period:         p.Label,
	}, nil
}

// Volume analyzes the volume profile of ticker over period.
func (s *Service) Volume(ctx context.Context, ticker, period string) (report *model.VolumeReport, err error) {
	canonical, _, done := s.begin("volume", ticker)
	defer func() { done(err) }()
	if canonical == "" {
		return nil, ErrEmptyTicker
	}

	p, err := model.ParsePeriod(canonical, period, DefaultVolumePeriod)
	if err != nil {
		return nil, err
	}
	bars, err := s.source.Series(ctx, canonical, p.Days)
	if err != nil {
		return nil, err
	}
	result, err := strategy.AnalyzeVolume(canonical, bars)
	if err != nil {
		return nil, err
	}

	return &model.VolumeReport{
		Ticker:       canonical,
		Name:         s.displayName(ctx, ticker, canonical),
		Timestamp:    s.timestamp(),
		VolumeResult: *result,
		Period:       p.Label,
	}, nil
}

// Status probes the provider with a price request for a liquid ticker.
// It reports failures in the result rather than as an error.
func (s *Service) Status(ctx context.Context) *model.StatusReport {
	report := &model.StatusReport{
		Provider:  s.providerName,
		Probe:     statusProbeTicker,
		Timestamp: s.timestamp(),
	}
	snap, err := s.Price(ctx, statusProbeTicker)
	if err != nil {
		report.Status = "error"
		report.Message = err.Error()
		return report
	}
	report.Status = "ok"
	report.LastPrice = snap.CurrentPrice
	report.Message = "provider reachable, last close " + snap.Date
	return report
}
