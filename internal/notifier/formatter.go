package notifier

import (
	"fmt"
	"html"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"

	"StockPulse/internal/model"
)

var ratingIcons = map[model.Rating]string{
	model.RatingStrongBullish: "🚀",
	model.RatingBullish:       "📈",
	model.RatingNeutral:       "➖",
	model.RatingBearish:       "📉",
	model.RatingStrongBearish: "🔻",
}

func header(icon, title, ticker, name string) string {
	return fmt.Sprintf("%s <b>%s</b> | %s (%s)\n\n", icon, title, html.EscapeString(name), ticker)
}

// FormatPrice formats a price snapshot.
func FormatPrice(p *model.PriceSnapshot) string {
	var b strings.Builder
	b.WriteString(header("💵", "Price", p.Ticker, p.CompanyName))
	b.WriteString(fmt.Sprintf("Close: %.2f (%s)\n", p.CurrentPrice, p.Date))
	b.WriteString(fmt.Sprintf("Open: %.2f | High: %.2f | Low: %.2f\n", p.OpenPrice, p.HighPrice, p.LowPrice))
	b.WriteString(fmt.Sprintf("Volume: %s\n", humanize.Comma(p.Volume)))
	b.WriteString(fmt.Sprintf("30d range: %.2f – %.2f\n", p.RangeLow, p.RangeHigh))
	return b.String()
}

// FormatIndicators formats an indicator report, one block per computed indicator.
func FormatIndicators(r *model.IndicatorReport) string {
	var b strings.Builder
	b.WriteString(header("📊", "Indicators", r.Ticker, r.CompanyName))
	b.WriteString(fmt.Sprintf("Price: %.2f | %d bars over %s\n\n", r.CurrentPrice, r.DataPoints, r.Period))

	ind := r.Indicators
	if ind.SMA != nil {
		b.WriteString(fmt.Sprintf("SMA20: %.2f | SMA50: %.2f (%s vs SMA20) → %s\n",
			ind.SMA.SMA20, ind.SMA.SMA50, ind.SMA.PriceVsSMA20, ind.SMA.Trend))
	}
	if ind.EMA != nil {
		b.WriteString(fmt.Sprintf("EMA12: %.2f | EMA26: %.2f → %s\n", ind.EMA.EMA12, ind.EMA.EMA26, ind.EMA.Signal))
	}
	if ind.RSI != nil {
		b.WriteString(fmt.Sprintf("RSI14: %.2f → %s\n", ind.RSI.RSI14, ind.RSI.Signal))
	}
	if ind.MACD != nil {
		b.WriteString(fmt.Sprintf("MACD: %.4f | Signal: %.4f | Hist: %.4f → %s\n",
			ind.MACD.Line, ind.MACD.Signal, ind.MACD.Histogram, ind.MACD.Action))
	}
	if ind.VWAP != nil {
		b.WriteString(fmt.Sprintf("VWAP: %.2f (%s) → %s\n", ind.VWAP.VWAP, ind.VWAP.PriceVsVWAP, ind.VWAP.Signal))
	}
	if ind.OBV != nil {
		b.WriteString(fmt.Sprintf("OBV: %s", humanize.Comma(int64(ind.OBV.OBV))))
		if ind.OBV.Trend != "" {
			b.WriteString(" → " + ind.OBV.Trend)
		}
		b.WriteString("\n")
	}
	if ind.VolumeRatio != nil {
		b.WriteString(fmt.Sprintf("Volume: %s vs MA20 %s (x%.2f) → %s\n",
			humanize.Comma(ind.VolumeRatio.CurrentVolume), humanize.Comma(ind.VolumeRatio.VolumeMA20),
			ind.VolumeRatio.Ratio, ind.VolumeRatio.Signal))
	}
	if ind.VolumeMA != nil {
		b.WriteString(fmt.Sprintf("Volume MA20: %s → %s\n", humanize.Comma(ind.VolumeMA.VolumeMA20), ind.VolumeMA.Signal))
	}
	return b.String()
}

// FormatMomentum formats a momentum report with its factor breakdown.
func FormatMomentum(r *model.MomentumReport) string {
	var b strings.Builder
	b.WriteString(header(ratingIcons[r.Rating], "Momentum", r.Ticker, r.Name))
	b.WriteString(fmt.Sprintf("Score: <b>%d</b>/100 (%s) | Price: %.2f\n\n", r.Score, r.Rating, r.CurrentPrice))

	b.WriteString("📈 <b>Factors:</b>\n")
	for _, f := range r.Factors {
		b.WriteString(fmt.Sprintf("  %s: %+d (%s)\n", f.Name, f.Points, f.Commentary))
	}
	s := r.Summary
	b.WriteString(fmt.Sprintf("\nRSI14 %.2f | SMA20 %.2f | SMA50 %.2f | MACD %.4f/%.4f\n", s.RSI14, s.SMA20, s.SMA50, s.MACD, s.Signal))
	b.WriteString(fmt.Sprintf("\n💡 %s\n", html.EscapeString(r.Recommendation)))
	return b.String()
}

// FormatVolume formats a volume report.
func FormatVolume(r *model.VolumeReport) string {
	var b strings.Builder
	v := r.Indicators
	b.WriteString(header("🔊", "Volume", r.Ticker, r.Name))
	b.WriteString(fmt.Sprintf("Volume: %s vs MA20 %s (x%.2f) → %s\n",
		humanize.Comma(v.CurrentVolume), humanize.Comma(v.VolumeMA20), v.VolumeRatio, r.VolumeTrend))
	b.WriteString(fmt.Sprintf("VWAP: %.2f (%s) → %s\n", v.VWAP, v.PriceVsVWAP, r.VWAPAnalysis))
	if v.OBVTrend != "" {
		b.WriteString(fmt.Sprintf("OBV trend: %s\n", v.OBVTrend))
	}
	b.WriteString(fmt.Sprintf("\n💡 %s\n", html.EscapeString(r.Analysis)))
	return b.String()
}

// FormatDigest formats the scheduled watchlist summary. failures maps ticker to error text.
func FormatDigest(date string, reports []*model.MomentumReport, failures map[string]string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🗞 <b>Watchlist digest</b> | %s\n\n", date))
	for _, r := range reports {
		b.WriteString(fmt.Sprintf("%s %s %.2f | %d (%s)\n", ratingIcons[r.Rating], r.Ticker, r.CurrentPrice, r.Score, r.Rating))
	}
	if len(failures) > 0 {
		tickers := make([]string, 0, len(failures))
		for t := range failures {
			tickers = append(tickers, t)
		}
		sort.Strings(tickers)
		b.WriteString("\n⚠️ <b>Unavailable:</b>\n")
		for _, t := range tickers {
			b.WriteString(fmt.Sprintf("  %s: %s\n", t, html.EscapeString(failures[t])))
		}
	}
	return b.String()
}

// FormatCatalog lists the available indicators.
func FormatCatalog(c model.Catalog) string {
	var b strings.Builder
	b.WriteString("📚 <b>Available indicators</b>\n\n")
	writeGroup := func(title string, items map[string]string) {
		names := make([]string, 0, len(items))
		for n := range items {
			names = append(names, n)
		}
		sort.Strings(names)
		b.WriteString(fmt.Sprintf("<b>%s</b>\n", title))
		for _, n := range names {
			b.WriteString(fmt.Sprintf("  %s: %s\n", n, html.EscapeString(items[n])))
		}
	}
	writeGroup("Basic", c.BasicIndicators)
	writeGroup("Volume", c.VolumeIndicators)
	b.WriteString(fmt.Sprintf("\nData source: %s\n", c.DataSource))
	return b.String()
}

// FormatStatus formats a provider health check.
func FormatStatus(s *model.StatusReport) string {
	icon := "✅"
	if s.Status != "ok" {
		icon = "❌"
	}
	return fmt.Sprintf("%s <b>Status</b>: %s\nData source: %s\n%s\n", icon, s.Status, s.Provider, html.EscapeString(s.Message))
}

// FormatError formats a failed request.
func FormatError(p model.ErrorPayload) string {
	if p.Ticker == "" {
		return fmt.Sprintf("❌ %s", html.EscapeString(p.Error))
	}
	return fmt.Sprintf("❌ %s: %s", p.Ticker, html.EscapeString(p.Error))
}
