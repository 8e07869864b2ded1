package model

import (
	"fmt"
	"strings"
)

// DataInsufficientError reports a series shorter than the windows an analysis needs.
type DataInsufficientError struct {
	Ticker string
	Rows   int
}

func (e *DataInsufficientError) Error() string {
	return fmt.Sprintf("insufficient price data for %s: %d rows available, need at least %d", e.Ticker, e.Rows, MinBars)
}

// ProviderErrorKind classifies failures of the price history provider.
type ProviderErrorKind string

const (
	ProviderNotFound     ProviderErrorKind = "not_found"
	ProviderRateLimited  ProviderErrorKind = "rate_limited"
	ProviderUnauthorized ProviderErrorKind = "unauthorized"
	ProviderNetwork      ProviderErrorKind = "network"
)

// ProviderError wraps a failure returned by a price history provider.
type ProviderError struct {
	Ticker string
	Kind   ProviderErrorKind
	Err    error
}

func (e *ProviderError) Error() string {
	switch e.Kind {
	case ProviderNotFound:
		return fmt.Sprintf("ticker %s not found: %v", e.Ticker, e.Err)
	case ProviderRateLimited:
		return fmt.Sprintf("provider rate limit reached while fetching %s: %v", e.Ticker, e.Err)
	case ProviderUnauthorized:
		return fmt.Sprintf("provider rejected credentials while fetching %s: %v", e.Ticker, e.Err)
	default:
		return fmt.Sprintf("network error while fetching %s: %v", e.Ticker, e.Err)
	}
}

func (e *ProviderError) Unwrap() error { return e.Err }

// NoIndicatorsRequestedError is returned when none of the requested names is in the catalog.
type NoIndicatorsRequestedError struct {
	Ticker    string
	Requested []string
}

func (e *NoIndicatorsRequestedError) Error() string {
	if len(e.Requested) == 0 {
		return fmt.Sprintf("no indicators requested for %s", e.Ticker)
	}
	return fmt.Sprintf("no known indicators requested for %s: %s", e.Ticker, strings.Join(e.Requested, ","))
}

// InvalidPeriodError reports a period string that is not <int>d, <int>m or <int>y.
type InvalidPeriodError struct {
	Ticker string
	Period string
}

func (e *InvalidPeriodError) Error() string {
	return fmt.Sprintf("invalid analysis period %q for %s, expected e.g. 90d", e.Period, e.Ticker)
}
