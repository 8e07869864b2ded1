package analysis

import (
	"context"
	"strings"
)

var companyNames = map[string]string{
	"AAPL":  "Apple Inc.",
	"MSFT":  "Microsoft Corporation",
	"GOOGL": "Alphabet Inc. (Class A)",
	"GOOG":  "Alphabet Inc. (Class C)",
	"AMZN":  "Amazon.com Inc.",
	"TSLA":  "Tesla Inc.",
	"META":  "Meta Platforms Inc.",
	"NVDA":  "NVIDIA Corporation",
	"JPM":   "JPMorgan Chase & Co.",
	"V":     "Visa Inc.",
	"VOO":   "Vanguard S&P 500 ETF",
	"VTI":   "Vanguard Total Stock Market ETF",
	"QQQ":   "Invesco QQQ Trust",
	"SPY":   "SPDR S&P 500 ETF Trust",
}

// KnownName returns the static display name of ticker, if any.
func KnownName(ticker string) (string, bool) {
	name, ok := companyNames[strings.ToUpper(strings.TrimSpace(ticker))]
	return name, ok
}

// displayName resolves a name from the static table, then the provider, then
// falls back to "<TICKER> Stock/ETF". It never fails.
func (s *Service) displayName(ctx context.Context, requested, canonical string) string {
	if name, ok := KnownName(requested); ok {
		return name
	}
	if name, ok := KnownName(canonical); ok {
		return name
	}
	if name, err := s.source.CompanyName(ctx, canonical); err == nil && name != "" {
		return name
	} else if err != nil {
		s.log.Debugf("company name lookup for %s failed: %v", canonical, err)
	}
	return canonical + " Stock/ETF"
}
