package intent

import (
	"context"
	"errors"

	"StockPulse/internal/analysis"
	"StockPulse/internal/model"
	"StockPulse/internal/notifier"
)

// HelpText lists the commands the router understands.
const HelpText = `Available commands:
• /price AAPL
• /indicators MSFT SMA,RSI 90d
• /momentum NVDA 6m
• /volume TSLA 1y
• /list, /status, /digest
Free text works too, e.g. "apple momentum over 3 months".`

// Router answers chat messages with formatted engine results.
type Router struct {
	engine analysis.Engine
	digest func(ctx context.Context) string
}

// NewRouter creates a Router. digest renders the watchlist digest on demand; nil disables /digest.
func NewRouter(engine analysis.Engine, digest func(ctx context.Context) string) *Router {
	return &Router{engine: engine, digest: digest}
}

// Handle parses text and returns the reply message.
func (r *Router) Handle(ctx context.Context, text string) string {
	in, err := Parse(text)
	if err != nil {
		if errors.Is(err, ErrNoTicker) {
			return notifier.FormatError(model.ErrorPayload{Error: err.Error()}) + "\n\n" + HelpText
		}
		return notifier.FormatError(model.ErrorPayload{Error: err.Error()})
	}
	return r.Dispatch(ctx, in)
}

// Dispatch runs a parsed intent.
func (r *Router) Dispatch(ctx context.Context, in Intent) string {
	switch in.Kind {
	case KindPrice:
		res, err := r.engine.Price(ctx, in.Ticker)
		return reply(in.Ticker, res, err, notifier.FormatPrice)
	case KindIndicators:
		res, err := r.engine.Indicators(ctx, in.Ticker, in.Indicators, in.Period)
		return reply(in.Ticker, res, err, notifier.FormatIndicators)
	case KindMomentum:
		res, err := r.engine.Momentum(ctx, in.Ticker, in.Period)
		return reply(in.Ticker, res, err, notifier.FormatMomentum)
	case KindVolume:
		res, err := r.engine.Volume(ctx, in.Ticker, in.Period)
		return reply(in.Ticker, res, err, notifier.FormatVolume)
	case KindList:
		return notifier.FormatCatalog(r.engine.ListIndicators())
	case KindStatus:
		return notifier.FormatStatus(r.engine.Status(ctx))
	case KindDigest:
		if r.digest == nil {
			return HelpText
		}
		return r.digest(ctx)
	default:
		return HelpText
	}
}

func reply[T any](ticker string, res *T, err error, format func(*T) string) string {
	if payload, failed := analysis.Envelope(ticker, res, err).(model.ErrorPayload); failed {
		return notifier.FormatError(payload)
	}
	return format(res)
}
