// Package format converts between user-facing amount text and decimals.
package format

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/iwvelando/mortgage-forecast/pkg/constants"
	"github.com/shopspring/decimal"
)

// ParseAmount parses user-entered amount text such as "£ 300,000.00", "5%"
// or "-12.5" into an exact decimal. Currency symbols, whitespace and a percent
// sign are ignored. Commas and underscores are accepted only as thousands
// separators in the integer part; any other character is an error.
func ParseAmount(text string) (decimal.Decimal, error) {
	var builder strings.Builder
	for _, r := range text {
		switch {
		case unicode.IsDigit(r), r == '.', r == '-', r == '+', r == ',', r == '_':
			builder.WriteRune(r)
		case unicode.IsSpace(r), r == '%', unicode.Is(unicode.Sc, r):
		default:
			return decimal.Zero, fmt.Errorf("invalid amount %q: unexpected character %q", text, r)
		}
	}

	cleaned := builder.String()
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("invalid amount %q: no digits", text)
	}
	cleaned, err := stripGrouping(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", text, err)
	}
	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", text, err)
	}
	return value, nil
}

// stripGrouping removes thousands separators, which must split the integer
// part into a leading group of one to three digits followed by groups of three.
func stripGrouping(number string) (string, error) {
	if !strings.ContainsAny(number, ",_") {
		return number, nil
	}

	sign := ""
	if strings.HasPrefix(number, "-") || strings.HasPrefix(number, "+") {
		sign, number = number[:1], number[1:]
	}
	integer, fraction, hasFraction := strings.Cut(number, ".")
	if strings.ContainsAny(fraction, ",_") {
		return "", fmt.Errorf("separator in fractional part")
	}

	groups := strings.Split(strings.ReplaceAll(integer, "_", ","), ",")
	for i, group := range groups {
		if group == "" || len(group) > 3 || (i > 0 && len(group) != 3) {
			return "", fmt.Errorf("misplaced thousands separator")
		}
	}

	stripped := sign + strings.Join(groups, "")
	if hasFraction {
		stripped += "." + fraction
	}
	return stripped, nil
}

// Currency returns a currency string with a symbol and thousands separators (e.g., "-£1,234.56").
func Currency(amount decimal.Decimal, symbol string) string {
	formatted := formatPositiveCurrency(amount.Abs())
	if amount.Round(constants.CurrencyPlaces).IsNegative() {
		return "-" + symbol + formatted
	}
	return symbol + formatted
}

// NumericCurrency returns a currency string without a currency symbol but with separators (e.g., "-1,234.56").
func NumericCurrency(amount decimal.Decimal) string {
	return Currency(amount, "")
}

// Plain returns the amount rounded to cents without separators, suitable for CSV.
func Plain(amount decimal.Decimal) string {
	return amount.StringFixed(constants.CurrencyPlaces)
}

func formatPositiveCurrency(value decimal.Decimal) string {
	formatted := value.StringFixed(constants.CurrencyPlaces)
	parts := strings.SplitN(formatted, ".", 2)
	intPart := parts[0]
	decPart := "00"
	if len(parts) == 2 {
		decPart = parts[1]
	}

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	return intPart + "." + decPart
}
