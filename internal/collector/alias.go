package collector

import "strings"

var tickerAliases = map[string]string{
	"GOOG":   "GOOGL",
	"GOOGLE": "GOOGL",
	"AMAZON": "AMZN",
}

// CanonicalTicker upper-cases a ticker and resolves known aliases.
func CanonicalTicker(ticker string) string {
	t := strings.ToUpper(strings.TrimSpace(ticker))
	if alias, ok := tickerAliases[t]; ok {
		return alias
	}
	return t
}
