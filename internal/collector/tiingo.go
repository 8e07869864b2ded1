package collector

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"StockPulse/internal/model"
)

const (
	DefaultTiingoURL = "https://api.tiingo.com"
	maxTiingoDays    = 5 * 365
)

// TiingoFetcher implements Fetcher using the Tiingo end-of-day REST API.
type TiingoFetcher struct {
	client  *resty.Client
	limiter *rate.Limiter
	now     func() time.Time
}

// NewTiingoFetcher creates a fetcher with optional proxy support.
// requestsPerSecond <= 0 disables client-side rate limiting.
func NewTiingoFetcher(baseURL, apiKey, proxyURL string, requestsPerSecond float64) *TiingoFetcher {
	if baseURL == "" {
		baseURL = DefaultTiingoURL
	}
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30*time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Token "+apiKey)
	if proxyURL != "" {
		client.SetProxy(proxyURL)
	}

	limit := rate.Inf
	if requestsPerSecond > 0 {
		limit = rate.Limit(requestsPerSecond)
	}
	return &TiingoFetcher{
		client:  client,
		limiter: rate.NewLimiter(limit, 1),
		now:     time.Now,
	}
}

func (f *TiingoFetcher) Name() string { return "tiingo" }

// tiingoBar is the JSON shape of one row of /tiingo/daily/{ticker}/prices.
type tiingoBar struct {
	Date      string   `json:"date"`
	AdjOpen   float64  `json:"adjOpen"`
	AdjHigh   float64  `json:"adjHigh"`
	AdjLow    float64  `json:"adjLow"`
	AdjClose  float64  `json:"adjClose"`
	AdjVolume *float64 `json:"adjVolume"`
	Volume    float64  `json:"volume"`
}

type tiingoMeta struct {
	Ticker string `json:"ticker"`
	Name   string `json:"name"`
}

type tiingoError struct {
	Detail string `json:"detail"`
}

func (f *TiingoFetcher) FetchDailyBars(ctx context.Context, ticker string, lookbackDays int) ([]model.OHLCV, error) {
	if lookbackDays > maxTiingoDays {
		lookbackDays = maxTiingoDays
	}
	start := f.now().UTC().AddDate(0, 0, -lookbackDays)

	body, err := f.get(ctx, ticker, fmt.Sprintf("/tiingo/daily/%s/prices", ticker), map[string]string{
		"startDate": start.Format("2006-01-02"),
		"format":    "json",
	})
	if err != nil {
		return nil, err
	}

	var rows []tiingoBar
	if err := json.Unmarshal(body, &rows); err != nil {
		var apiErr tiingoError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Detail != "" {
			return nil, &model.ProviderError{Ticker: ticker, Kind: model.ProviderNotFound, Err: errors.New(apiErr.Detail)}
		}
		return nil, &model.ProviderError{Ticker: ticker, Kind: model.ProviderNetwork, Err: fmt.Errorf("decode bars: %w", err)}
	}
	if len(rows) == 0 {
		return nil, &model.ProviderError{Ticker: ticker, Kind: model.ProviderNotFound, Err: errors.New("no data returned")}
	}

	bars := make([]model.OHLCV, 0, len(rows))
	for _, r := range rows {
		t, err := time.Parse(time.RFC3339, r.Date)
		if err != nil {
			continue
		}
		volume := r.Volume
		if r.AdjVolume != nil {
			volume = *r.AdjVolume
		}
		bars = append(bars, model.OHLCV{
			Time:   t.UTC(),
			Open:   r.AdjOpen,
			High:   r.AdjHigh,
			Low:    r.AdjLow,
			Close:  r.AdjClose,
			Volume: volume,
		})
	}
	return bars, nil
}

func (f *TiingoFetcher) CompanyName(ctx context.Context, ticker string) (string, error) {
	body, err := f.get(ctx, ticker, fmt.Sprintf("/tiingo/daily/%s", ticker), nil)
	if err != nil {
		return "", err
	}
	var meta tiingoMeta
	if err := json.Unmarshal(body, &meta); err != nil {
		return "", fmt.Errorf("decode meta: %w", err)
	}
	if meta.Name == "" {
		return "", fmt.Errorf("no name for %s", ticker)
	}
	return meta.Name, nil
}

func (f *TiingoFetcher) get(ctx context.Context, ticker, path string, query map[string]string) ([]byte, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, &model.ProviderError{Ticker: ticker, Kind: model.ProviderNetwork, Err: err}
	}

	req := f.client.R().SetContext(ctx)
	if query != nil {
		req.SetQueryParams(query)
	}
	resp, err := req.Get(path)
	if err != nil {
		return nil, &model.ProviderError{Ticker: ticker, Kind: model.ProviderNetwork, Err: err}
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, &model.ProviderError{
			Ticker: ticker,
			Kind:   kindForStatus(resp.StatusCode()),
			Err:    fmt.Errorf("status %d, body: %s", resp.StatusCode(), truncate(resp.String(), 200)),
		}
	}
	return resp.Body(), nil
}

func kindForStatus(status int) model.ProviderErrorKind {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return model.ProviderUnauthorized
	case http.StatusTooManyRequests:
		return model.ProviderRateLimited
	case http.StatusNotFound:
		return model.ProviderNotFound
	default:
		return model.ProviderNetwork
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
