package analysis

import (
	"encoding/json"

	"StockPulse/internal/collector"
	"StockPulse/internal/model"
)

// Envelope returns v on success or an ErrorPayload for err, never both.
func Envelope(ticker string, v interface{}, err error) interface{} {
	if err != nil {
		return model.ErrorPayload{Error: err.Error(), Ticker: collector.CanonicalTicker(ticker)}
	}
	return v
}

// EnvelopeJSON renders Envelope as indented JSON.
func EnvelopeJSON(ticker string, v interface{}, err error) []byte {
	data, mErr := json.MarshalIndent(Envelope(ticker, v, err), "", "  ")
	if mErr != nil {
		data, _ = json.MarshalIndent(model.ErrorPayload{Error: mErr.Error(), Ticker: collector.CanonicalTicker(ticker)}, "", "  ")
	}
	return data
}
