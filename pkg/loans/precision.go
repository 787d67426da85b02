package loans

import (
	"fmt"

	"github.com/iwvelando/mortgage-forecast/pkg/constants"
	"github.com/shopspring/decimal"
)

var (
	one            = decimal.NewFromInt(1)
	monthsPerYear  = decimal.NewFromInt(constants.MonthsPerYear)
	monthlyDivisor = decimal.NewFromInt(constants.PercentageMultiplier * constants.MonthsPerYear)
	maxLoanYears   = decimal.NewFromInt(constants.MaxLoanYears)
	maxExponent    = decimal.NewFromInt(constants.MaxLoanYears * constants.MonthsPerYear)

	maxProjectionYears = decimal.NewFromInt(constants.MaxProjectionYears)
)

// div divides at the working precision. Callers guarantee a non-zero divisor.
func div(a, b decimal.Decimal) decimal.Decimal {
	return a.DivRound(b, constants.WorkingPrecision)
}

const (
	// powDigits is the number of significant digits kept by every step of pow.
	powDigits = constants.WorkingPrecision + 16

	// maxMagnitude bounds the decimal exponent of pow intermediates. Smaller
	// values underflow to zero; larger ones are a domain error.
	maxMagnitude = 100_000
)

// pow raises base to exp. The integer part of the exponent is applied by
// square-and-multiply with every intermediate rounded to powDigits significant
// digits, so the cost grows with log(exp) and the operands never widen. A
// fractional remainder goes through exp(frac * ln(base)).
func pow(base, exp decimal.Decimal) (decimal.Decimal, error) {
	if !base.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: power of non-positive base %s", ErrArithmeticDomain, base)
	}

	whole := exp.Truncate(0)
	if !whole.Abs().LessThanOrEqual(maxExponent) {
		return decimal.Zero, fmt.Errorf("%w: exponent %s out of range", ErrArithmeticDomain, exp)
	}

	factor := base
	n := whole.IntPart()
	if n < 0 {
		factor = one.DivRound(base, powDigits+magnitude(base))
		n = -n
	}

	result := one
	for n > 0 {
		if n&1 == 1 {
			result = roundSignificant(result.Mul(factor), powDigits)
		}
		n >>= 1
		if n > 0 {
			factor = roundSignificant(factor.Mul(factor), powDigits)
		}
		for _, d := range []decimal.Decimal{result, factor} {
			if m := magnitude(d); m > maxMagnitude {
				return decimal.Zero, fmt.Errorf("%w: %s^%s overflows", ErrArithmeticDomain, base, exp)
			} else if m < -maxMagnitude {
				return decimal.Zero, nil
			}
		}
	}

	if frac := exp.Sub(whole); !frac.IsZero() {
		logBase, err := base.Ln(powDigits)
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: ln(%s): %v", ErrArithmeticDomain, base, err)
		}
		partial, err := logBase.Mul(frac).ExpTaylor(powDigits)
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: %s^%s: %v", ErrArithmeticDomain, base, frac, err)
		}
		result = roundSignificant(result.Mul(partial), powDigits)
	}

	if magnitude(result) < -constants.WorkingPrecision {
		return decimal.Zero, nil
	}
	if result.Exponent() < -constants.WorkingPrecision {
		result = result.Round(constants.WorkingPrecision)
	}
	return result, nil
}

// magnitude is the position of the leading digit: 1 for 1..9, 0 for 0.1..0.9.
func magnitude(d decimal.Decimal) int32 {
	return int32(d.NumDigits()) + d.Exponent()
}

// roundSignificant rounds d half away from zero to digits significant digits.
func roundSignificant(d decimal.Decimal, digits int32) decimal.Decimal {
	extra := int32(d.NumDigits()) - digits
	if extra <= 0 {
		return d
	}
	return d.Round(-(d.Exponent() + extra))
}

// ln is the natural logarithm at the working precision.
func ln(x decimal.Decimal) (decimal.Decimal, error) {
	if !x.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: logarithm of non-positive %s", ErrArithmeticDomain, x)
	}
	result, err := x.Ln(constants.WorkingPrecision)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: ln(%s): %v", ErrArithmeticDomain, x, err)
	}
	return result, nil
}

// MonthlyRate converts a nominal annual percentage rate into the periodic
// monthly rate, e.g. 5 becomes 0.0041666...
func MonthlyRate(annualRatePercent decimal.Decimal) decimal.Decimal {
	return div(annualRatePercent, monthlyDivisor)
}

// Periods converts a duration in years into a number of monthly periods.
func Periods(years decimal.Decimal) decimal.Decimal {
	return years.Mul(monthsPerYear)
}

func validateLoan(housePrice, deposit, annualRatePercent decimal.Decimal) error {
	if !housePrice.IsPositive() {
		return invalid("housePrice", housePrice, "must be greater than zero")
	}
	if deposit.IsNegative() {
		return invalid("deposit", deposit, "must not be negative")
	}
	if deposit.GreaterThanOrEqual(housePrice) {
		return invalid("deposit", deposit, "must be less than the house price")
	}
	if annualRatePercent.IsNegative() {
		return invalid("annualRatePercent", annualRatePercent, "must not be negative")
	}
	return nil
}

// validateYears checks a duration that sizes a closed-form computation.
func validateYears(param string, years decimal.Decimal) error {
	if !years.IsPositive() {
		return invalid(param, years, "must be greater than zero")
	}
	if years.GreaterThan(maxLoanYears) {
		return invalid(param, years, fmt.Sprintf("must not exceed %d", constants.MaxLoanYears))
	}
	return nil
}

func validateOutflow(monthlyPayment, overpayment decimal.Decimal) error {
	if !monthlyPayment.IsPositive() {
		return invalid("monthlyPayment", monthlyPayment, "must be greater than zero")
	}
	if overpayment.IsNegative() {
		return invalid("overpayment", overpayment, "must not be negative")
	}
	return nil
}
