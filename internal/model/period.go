package model

import (
	"strconv"
	"strings"
)

// Period is a parsed lookback window.
type Period struct {
	Label string
	Days  int
}

// ParsePeriod accepts "<n>d", plus "<n>m" (30 days each) and "<n>y" (365 days each).
// An empty string yields the fallback label.
func ParsePeriod(ticker, label, fallback string) (Period, error) {
	label = strings.ToLower(strings.TrimSpace(label))
	if label == "" {
		label = fallback
	}
	if len(label) < 2 {
		return Period{}, &InvalidPeriodError{Ticker: ticker, Period: label}
	}

	unit := label[len(label)-1]
	n, err := strconv.Atoi(label[:len(label)-1])
	if err != nil || n <= 0 {
		return Period{}, &InvalidPeriodError{Ticker: ticker, Period: label}
	}

	switch unit {
	case 'd':
		return Period{Label: label, Days: n}, nil
	case 'm':
		return Period{Label: label, Days: n * 30}, nil
	case 'y':
		return Period{Label: label, Days: n * 365}, nil
	default:
		return Period{}, &InvalidPeriodError{Ticker: ticker, Period: label}
	}
}
