// Package mathutil provides common decimal utility functions.
package mathutil

import (
	"github.com/iwvelando/mortgage-forecast/pkg/constants"
	"github.com/shopspring/decimal"
)

var (
	// CurrencyTolerance is the tolerance for currency comparisons (1 cent).
	CurrencyTolerance = decimal.New(1, -constants.CurrencyPlaces)

	// ComparisonTolerance is the tolerance for financial comparisons against
	// externally rounded reference figures.
	ComparisonTolerance = decimal.NewFromInt(1)
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Half values round away from zero.
func Round(val decimal.Decimal) decimal.Decimal {
	return val.Round(constants.CurrencyPlaces)
}

// IsZero checks if a value is effectively zero (within tolerance)
func IsZero(val decimal.Decimal) bool {
	return val.Abs().LessThanOrEqual(CurrencyTolerance)
}

// IsPositive checks if a value is positive (greater than tolerance)
func IsPositive(val decimal.Decimal) bool {
	return val.GreaterThan(CurrencyTolerance)
}

// IsNegative checks if a value is negative (less than negative tolerance)
func IsNegative(val decimal.Decimal) bool {
	return val.LessThan(CurrencyTolerance.Neg())
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance decimal.Decimal) bool {
	return val1.Sub(val2).Abs().LessThanOrEqual(tolerance)
}

// ClampZero returns zero for negative values.
func ClampZero(val decimal.Decimal) decimal.Decimal {
	if val.IsNegative() {
		return decimal.Zero
	}
	return val
}

// CalculatePercentage calculates what percentage value is of total
func CalculatePercentage(value, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return value.Mul(decimal.NewFromInt(constants.PercentageMultiplier)).DivRound(total, constants.WorkingPrecision)
}
