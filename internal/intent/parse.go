// Package intent turns chat messages into engine calls.
package intent

import (
	"errors"
	"regexp"
	"strings"

	"StockPulse/internal/model"
)

// Kind is the engine operation a message asks for.
type Kind string

const (
	KindPrice      Kind = "price"
	KindIndicators Kind = "indicators"
	KindMomentum   Kind = "momentum"
	KindVolume     Kind = "volume"
	KindList       Kind = "list"
	KindStatus     Kind = "status"
	KindDigest     Kind = "digest"
	KindHelp       Kind = "help"
)

// Intent is a parsed request.
type Intent struct {
	Kind       Kind
	Ticker     string
	Indicators []string
	Period     string
}

// ErrNoTicker is returned when a message needs a ticker but names none.
var ErrNoTicker = errors.New("no ticker found, try e.g. AAPL or apple")

var companyTickers = []struct {
	name   *regexp.Regexp
	ticker string
}{
	{wordMatcher("apple"), "AAPL"},
	{wordMatcher("microsoft"), "MSFT"},
	{wordMatcher("google"), "GOOGL"},
	{wordMatcher("alphabet"), "GOOGL"},
	{wordMatcher("amazon"), "AMZN"},
	{wordMatcher("tesla"), "TSLA"},
	{wordMatcher("facebook"), "META"},
	{wordMatcher("meta"), "META"},
	{wordMatcher("nvidia"), "NVDA"},
	{wordMatcher("jpmorgan"), "JPM"},
	{wordMatcher("visa"), "V"},
}

var indicatorKeywords = []struct {
	keyword *regexp.Regexp
	names   string
}{
	{wordMatcher("moving average"), "SMA,EMA"},
	{wordMatcher("sma"), "SMA"},
	{wordMatcher("ema"), "EMA"},
	{wordMatcher("rsi"), "RSI"},
	{wordMatcher("relative strength"), "RSI"},
	{wordMatcher("macd"), "MACD"},
	{wordMatcher("vwap"), "VWAP"},
	{wordMatcher("obv"), "OBV"},
	{wordMatcher("on-balance"), "OBV"},
	{wordMatcher("volume ratio"), "Volume_Ratio"},
}

func wordMatcher(keyword string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(keyword) + `\b`)
}

var phrasePeriods = []struct{ phrase, period string }{
	{"1 month", "30d"},
	{"one month", "30d"},
	{"3 month", "90d"},
	{"three month", "90d"},
	{"6 month", "180d"},
	{"six month", "180d"},
	{"1 year", "365d"},
	{"one year", "365d"},
}

var (
	tickerToken = regexp.MustCompile(`^\$?[A-Z][A-Z0-9.]{0,5}$`)
	periodToken = regexp.MustCompile(`^\d+[dmy]$`)
	wordSplit   = regexp.MustCompile(`[\s,;:!?()]+`)
)

// uppercase words that are never tickers in free text
var stopWords = map[string]bool{
	"I": true, "A": true, "RSI": true, "SMA": true, "EMA": true, "MACD": true, "VWAP": true, "OBV": true,
	"ETF": true, "US": true, "OK": true,
}

var commands = map[string]Kind{
	"/price":      KindPrice,
	"/quote":      KindPrice,
	"/indicators": KindIndicators,
	"/ta":         KindIndicators,
	"/momentum":   KindMomentum,
	"/volume":     KindVolume,
	"/list":       KindList,
	"/status":     KindStatus,
	"/digest":     KindDigest,
	"/help":       KindHelp,
	"/start":      KindHelp,
}

// Parse reads a slash command ("/momentum AAPL 6m") or free text
// ("how is apple's momentum over 3 months").
func Parse(text string) (Intent, error) {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "/") {
		return parseCommand(text)
	}
	return parseFreeText(text)
}

func parseCommand(text string) (Intent, error) {
	fields := strings.Fields(text)
	// Telegram appends @botname in group chats.
	name := strings.ToLower(strings.SplitN(fields[0], "@", 2)[0])
	kind, ok := commands[name]
	if !ok {
		return Intent{Kind: KindHelp}, nil
	}
	in := Intent{Kind: kind}
	switch kind {
	case KindList, KindStatus, KindDigest, KindHelp:
		return in, nil
	}

	for _, f := range fields[1:] {
		lower := strings.ToLower(f)
		switch {
		case periodToken.MatchString(lower):
			in.Period = lower
		case in.Ticker == "":
			in.Ticker = strings.ToUpper(strings.TrimPrefix(f, "$"))
		case kind == KindIndicators:
			for _, n := range strings.Split(f, ",") {
				if n = strings.TrimSpace(n); n != "" {
					in.Indicators = append(in.Indicators, n)
				}
			}
		}
	}
	if in.Ticker == "" {
		return in, ErrNoTicker
	}
	return in, nil
}

func parseFreeText(text string) (Intent, error) {
	lower := strings.ToLower(text)

	in := Intent{Kind: KindMomentum}
	switch {
	case containsAny(lower, "list", "available"):
		return Intent{Kind: KindList}, nil
	case containsAny(lower, "price", "quote"):
		in.Kind = KindPrice
	case containsAny(lower, "technical", "indicator") || len(keywordIndicators(lower)) > 0:
		in.Kind = KindIndicators
		in.Indicators = keywordIndicators(lower)
	case strings.Contains(lower, "momentum"):
		in.Kind = KindMomentum
	case strings.Contains(lower, "volume"):
		in.Kind = KindVolume
	case strings.Contains(lower, "status"):
		return Intent{Kind: KindStatus}, nil
	case containsAny(lower, "help") || lower == "":
		return Intent{Kind: KindHelp}, nil
	}

	in.Period = freeTextPeriod(lower)
	in.Ticker = findTicker(text, lower)
	if in.Ticker == "" {
		return in, ErrNoTicker
	}
	return in, nil
}

// findTicker prefers an explicit uppercase ticker over a company name.
func findTicker(text, lower string) string {
	for _, w := range wordSplit.Split(text, -1) {
		w = strings.TrimSuffix(strings.TrimSuffix(w, "'s"), ".")
		if tickerToken.MatchString(w) && !stopWords[strings.TrimPrefix(w, "$")] {
			return strings.TrimPrefix(w, "$")
		}
	}
	for _, c := range companyTickers {
		if c.name.MatchString(lower) {
			return c.ticker
		}
	}
	return ""
}

func keywordIndicators(lower string) []string {
	seen := map[string]bool{}
	var out []string
	for _, k := range indicatorKeywords {
		if !k.keyword.MatchString(lower) {
			continue
		}
		for _, n := range strings.Split(k.names, ",") {
			if !seen[n] {
				seen[n] = true
				out = append(out, n)
			}
		}
	}
	return out
}

func freeTextPeriod(lower string) string {
	for _, p := range phrasePeriods {
		if strings.Contains(lower, p.phrase) {
			return p.period
		}
	}
	for _, w := range wordSplit.Split(lower, -1) {
		if periodToken.MatchString(w) {
			if _, err := model.ParsePeriod("", w, ""); err == nil {
				return w
			}
		}
	}
	return ""
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
