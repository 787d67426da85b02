// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/mortgage-forecast/internal/forecast"
	"github.com/iwvelando/mortgage-forecast/pkg/mathutil"
	"github.com/shopspring/decimal"
)

// FindScenario finds a scenario by name in the results slice.
// Returns a pointer to the forecast if found, nil otherwise.
func FindScenario(results []forecast.Forecast, name string) *forecast.Forecast {
	for i := range results {
		if results[i].Name == name {
			return &results[i]
		}
	}
	return nil
}

// BalanceAt returns the balance of the forecast point for year, or false if
// the forecast does not reach that year.
func BalanceAt(result *forecast.Forecast, year int) (decimal.Decimal, bool) {
	if result == nil || year < 0 || year >= len(result.Points) {
		return decimal.Zero, false
	}
	return result.Points[year].Balance, true
}

// RoundsTo reports whether actual rounded to cents equals expected.
func RoundsTo(actual decimal.Decimal, expected string) bool {
	want, err := decimal.NewFromString(expected)
	if err != nil {
		return false
	}
	return mathutil.Round(actual).Equal(want)
}
