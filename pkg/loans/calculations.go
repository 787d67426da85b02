// Package loans provides the mortgage amortization engine.
//
// Every operation works on exact base-10 decimals: sums and products are
// exact, division and logarithms are carried to constants.WorkingPrecision
// fractional digits, and powers keep a fixed number of significant digits so
// their cost does not grow with the term. Nothing in the computation
// path converts through float64. The Compute functions are pure: they do not
// log and hold no state, so callers may run them concurrently.
package loans

import (
	"fmt"

	"github.com/iwvelando/mortgage-forecast/pkg/constants"
	"github.com/shopspring/decimal"
)

// ComputeMonthlyPayment returns the fixed monthly payment that amortizes
// housePrice - deposit over termYears at annualRatePercent:
//
//	PMT = P*R / (1 - (1+R)^-N)
//
// A zero rate yields the straight-line payment P / N.
func ComputeMonthlyPayment(housePrice, deposit, annualRatePercent, termYears decimal.Decimal) (decimal.Decimal, error) {
	if err := validateLoan(housePrice, deposit, annualRatePercent); err != nil {
		return decimal.Zero, err
	}
	if err := validateYears("termYears", termYears); err != nil {
		return decimal.Zero, err
	}

	principal := housePrice.Sub(deposit)
	rate := MonthlyRate(annualRatePercent)
	periods := Periods(termYears)

	if rate.IsZero() {
		return div(principal, periods), nil
	}

	discount, err := pow(one.Add(rate), periods.Neg())
	if err != nil {
		return decimal.Zero, err
	}
	denominator := one.Sub(discount)
	if !denominator.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: annuity factor %s is not positive", ErrArithmeticDomain, denominator)
	}
	return div(principal.Mul(rate), denominator), nil
}

// ComputeBalanceAtYear returns the outstanding balance after elapsedYears of
// paying monthlyPayment + overpayment each month:
//
//	D = P*s - T*(s-1)/r, s = (1+r)^k
//
// A zero rate amortizes linearly. Once the loan is repaid, at or before
// elapsedYears, the balance is reported as zero.
func ComputeBalanceAtYear(housePrice, deposit, monthlyPayment, annualRatePercent, elapsedYears, overpayment decimal.Decimal) (decimal.Decimal, error) {
	if err := validateLoan(housePrice, deposit, annualRatePercent); err != nil {
		return decimal.Zero, err
	}
	if err := validateOutflow(monthlyPayment, overpayment); err != nil {
		return decimal.Zero, err
	}
	if elapsedYears.IsNegative() {
		return decimal.Zero, invalid("elapsedYears", elapsedYears, "must not be negative")
	}
	if elapsedYears.GreaterThan(maxLoanYears) {
		return decimal.Zero, invalid("elapsedYears", elapsedYears, fmt.Sprintf("must not exceed %d", constants.MaxLoanYears))
	}

	principal := housePrice.Sub(deposit)
	rate := MonthlyRate(annualRatePercent)
	periods := Periods(elapsedYears)
	outflow := monthlyPayment.Add(overpayment)

	var balance decimal.Decimal
	if rate.IsZero() {
		balance = principal.Sub(outflow.Mul(periods))
	} else {
		if interest := principal.Mul(rate); outflow.GreaterThan(interest) {
			payoff, err := ComputeTimeToPayOff(housePrice, deposit, annualRatePercent, monthlyPayment, overpayment)
			if err != nil {
				return decimal.Zero, err
			}
			if periods.GreaterThanOrEqual(payoff) {
				return decimal.Zero, nil
			}
		}
		growth, err := pow(one.Add(rate), periods)
		if err != nil {
			return decimal.Zero, err
		}
		balance = principal.Mul(growth).Sub(outflow.Mul(div(growth.Sub(one), rate)))
	}

	if balance.IsNegative() {
		return decimal.Zero, nil
	}
	return balance, nil
}

// ComputeTimeToPayOff returns the number of MONTHS (not years) needed to
// repay housePrice - deposit when paying monthlyPayment + overpayment each
// month:
//
//	n = -ln(1 - P*R/T) / ln(1+R)
//
// The result is fractional; the last month carries a partial payment.
// ErrNeverAmortizes is returned when T does not exceed the first month's
// interest P*R.
func ComputeTimeToPayOff(housePrice, deposit, annualRatePercent, monthlyPayment, overpayment decimal.Decimal) (decimal.Decimal, error) {
	if err := validateLoan(housePrice, deposit, annualRatePercent); err != nil {
		return decimal.Zero, err
	}
	if err := validateOutflow(monthlyPayment, overpayment); err != nil {
		return decimal.Zero, err
	}

	principal := housePrice.Sub(deposit)
	rate := MonthlyRate(annualRatePercent)
	outflow := monthlyPayment.Add(overpayment)
	if !outflow.IsPositive() {
		return decimal.Zero, invalid("totalMonthlyOutflow", outflow, "must be greater than zero")
	}

	if rate.IsZero() {
		return div(principal, outflow), nil
	}

	interest := principal.Mul(rate)
	if outflow.LessThanOrEqual(interest) {
		return decimal.Zero, fmt.Errorf("%w: monthly outflow %s does not exceed monthly interest %s",
			ErrNeverAmortizes, outflow, interest)
	}

	numerator, err := ln(one.Sub(div(interest, outflow)))
	if err != nil {
		return decimal.Zero, err
	}
	denominator, err := ln(one.Add(rate))
	if err != nil {
		return decimal.Zero, err
	}
	return div(numerator.Neg(), denominator), nil
}

// ComputeTotalPaid returns the cumulative amount paid over termYears at
// monthlyPayment + overpayment per month.
func ComputeTotalPaid(monthlyPayment, overpayment, termYears decimal.Decimal) (decimal.Decimal, error) {
	if monthlyPayment.IsNegative() {
		return decimal.Zero, invalid("monthlyPayment", monthlyPayment, "must not be negative")
	}
	if overpayment.IsNegative() {
		return decimal.Zero, invalid("overpayment", overpayment, "must not be negative")
	}
	if !termYears.IsPositive() {
		return decimal.Zero, invalid("termYears", termYears, "must be greater than zero")
	}
	return monthlyPayment.Add(overpayment).Mul(Periods(termYears)), nil
}

// CalculateInterestPayment calculates the interest accrued in one month on
// remainingPrincipal.
func CalculateInterestPayment(remainingPrincipal, annualRatePercent decimal.Decimal) decimal.Decimal {
	return remainingPrincipal.Mul(MonthlyRate(annualRatePercent))
}
