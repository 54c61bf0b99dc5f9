// Package currencyutils holds the ticker and amount helpers used when mapping
// Nexo rows to CoinTracker rows.
package currencyutils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// tickerAliases maps Nexo-specific tickers to the symbols CoinTracker knows.
var tickerAliases = map[string]string{
	"NEXONEXO": "NEXO",
	"USDTERC":  "USDT",
}

// NormalizeTicker trims the ticker and resolves known Nexo aliases. Other
// tickers pass through unchanged.
func NormalizeTicker(ticker string) string {
	ticker = strings.TrimSpace(ticker)
	if alias, ok := tickerAliases[ticker]; ok {
		return alias
	}
	return ticker
}

// StripSign removes a single leading '+' or '-' from an amount. The rest of the
// text is not inspected.
func StripSign(amount string) string {
	amount = strings.TrimSpace(amount)
	if strings.HasPrefix(amount, "-") || strings.HasPrefix(amount, "+") {
		return amount[1:]
	}
	return amount
}

// ParseQuantity parses a plain decimal quantity such as "0.00012" or "-5".
// Unlike a display amount, no currency symbols or separators are accepted.
func ParseQuantity(quantity string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(quantity))
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse quantity '%s': %w", quantity, err)
	}
	return d, nil
}

// IsPositive reports whether quantity parses to a value strictly above zero.
func IsPositive(quantity string) (bool, error) {
	d, err := ParseQuantity(quantity)
	if err != nil {
		return false, err
	}
	return d.IsPositive(), nil
}
