// Package forecast defines the data structures related to a given forecast and
// includes functions for computing the forecasts.
package forecast

import (
	"fmt"

	"github.com/iwvelando/mortgage-forecast/internal/config"
	"github.com/iwvelando/mortgage-forecast/pkg/constants"
	"github.com/iwvelando/mortgage-forecast/pkg/datetime"
	"github.com/iwvelando/mortgage-forecast/pkg/loans"
	"github.com/iwvelando/mortgage-forecast/pkg/mathutil"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Point is one year of a forecast series.
type Point struct {
	Year       int
	Balance    decimal.Decimal // outstanding principal, never negative
	AmountPaid decimal.Decimal // cumulative, capped at LifetimeCost
}

// Forecast holds all information related to a specific forecast.
type Forecast struct {
	Name           string
	Principal      decimal.Decimal
	MonthlyPayment decimal.Decimal
	Overpayment    decimal.Decimal
	MonthlyOutflow decimal.Decimal

	TermMonths          decimal.Decimal
	PayoffMonths        decimal.Decimal
	PayoffMonthsRounded int64
	PayoffYears         decimal.Decimal
	PayoffDate          string // month of the final payment, empty without a start date

	// ContractCost is the total paid over the full term without overpayment.
	ContractCost decimal.Decimal
	// LifetimeCost is the total actually paid until the balance reaches zero.
	LifetimeCost  decimal.Decimal
	TotalInterest decimal.Decimal
	InterestSaved decimal.Decimal
	MonthsSaved   decimal.Decimal

	Points []Point
}

// GetForecast processes the Forecasts for all active Scenarios.
func GetForecast(logger *zap.Logger, conf config.Configuration) ([]Forecast, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var results []Forecast
	for _, scenario := range conf.Scenarios {
		if !scenario.Active {
			logger.Debug(fmt.Sprintf("skipping scenario %s because it is inactive", scenario.Name),
				zap.String("op", "forecast.GetForecast"),
			)
			continue
		}

		result, err := ForecastScenario(logger, scenario, conf.Projection.HorizonYears)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}

	return results, nil
}

// ForecastScenario computes the forecast of a single scenario over years
// 0..horizonYears. A non-positive horizon uses the scenario term rounded up;
// either way it may not exceed constants.MaxProjectionYears.
func ForecastScenario(logger *zap.Logger, scenario config.Scenario, horizonYears decimal.Decimal) (Forecast, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if !horizonYears.IsPositive() {
		horizonYears = scenario.TermYears
	}
	if horizonYears.GreaterThan(decimal.NewFromInt(constants.MaxProjectionYears)) {
		return Forecast{Name: scenario.Name}, fmt.Errorf("scenario %s: %w", scenario.Name,
			&loans.InputError{Param: "horizonYears", Value: horizonYears,
				Reason: fmt.Sprintf("must not exceed %d", constants.MaxProjectionYears)})
	}

	result := Forecast{
		Name:        scenario.Name,
		Principal:   scenario.HousePrice.Sub(scenario.Deposit),
		Overpayment: scenario.Overpayment,
		TermMonths:  loans.Periods(scenario.TermYears),
	}

	pmt, err := loans.ComputeMonthlyPayment(scenario.HousePrice, scenario.Deposit, scenario.Rate, scenario.TermYears)
	if err != nil {
		return result, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}
	result.MonthlyPayment = pmt
	result.MonthlyOutflow = pmt.Add(scenario.Overpayment)

	months, err := loans.ComputeTimeToPayOff(scenario.HousePrice, scenario.Deposit, scenario.Rate, pmt, scenario.Overpayment)
	if err != nil {
		return result, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}
	result.PayoffMonths = months
	result.PayoffMonthsRounded = mathutil.Round(months).Ceil().IntPart()
	result.PayoffYears = months.DivRound(decimal.NewFromInt(constants.MonthsPerYear), constants.CurrencyPlaces)
	result.PayoffDate, err = datetime.PaymentDate(scenario.StartDate, int(result.PayoffMonthsRounded))
	if err != nil {
		return result, fmt.Errorf("scenario %s: %w: startDate: %v", scenario.Name, loans.ErrInvalidInput, err)
	}

	result.ContractCost, err = loans.ComputeTotalPaid(pmt, decimal.Zero, scenario.TermYears)
	if err != nil {
		return result, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}
	result.LifetimeCost = result.MonthlyOutflow.Mul(months)
	result.TotalInterest = mathutil.ClampZero(result.LifetimeCost.Sub(result.Principal))
	result.InterestSaved = mathutil.ClampZero(result.ContractCost.Sub(result.LifetimeCost))
	result.MonthsSaved = mathutil.ClampZero(result.TermMonths.Sub(months))

	lastYear := int(horizonYears.Ceil().IntPart())
	for year := 0; year <= lastYear; year++ {
		elapsed := decimal.NewFromInt(int64(year))
		balance, err := loans.ComputeBalanceAtYear(scenario.HousePrice, scenario.Deposit, pmt, scenario.Rate, elapsed, scenario.Overpayment)
		if err != nil {
			return result, fmt.Errorf("scenario %s year %d: %w", scenario.Name, year, err)
		}

		paid := decimal.Zero
		if year > 0 {
			paid, err = loans.ComputeTotalPaid(pmt, scenario.Overpayment, elapsed)
			if err != nil {
				return result, fmt.Errorf("scenario %s year %d: %w", scenario.Name, year, err)
			}
			paid = decimal.Min(paid, result.LifetimeCost)
		}

		result.Points = append(result.Points, Point{Year: year, Balance: balance, AmountPaid: paid})
	}

	logger.Debug(fmt.Sprintf("scenario %s: payment %s, paid off after %d months", scenario.Name,
		mathutil.Round(result.MonthlyOutflow), result.PayoffMonthsRounded),
		zap.String("op", "forecast.ForecastScenario"),
		zap.Int("points", len(result.Points)),
	)

	return result, nil
}

// RequiredOverpayment returns the monthly overpayment that pays the scenario
// off within targetYears instead of its full term. The scenario's own
// overpayment is ignored. A target at or beyond the term needs none.
func RequiredOverpayment(scenario config.Scenario, targetYears decimal.Decimal) (decimal.Decimal, error) {
	if !targetYears.IsPositive() {
		return decimal.Zero, &loans.InputError{Param: "targetYears", Value: targetYears, Reason: "must be greater than zero"}
	}

	contract, err := loans.ComputeMonthlyPayment(scenario.HousePrice, scenario.Deposit, scenario.Rate, scenario.TermYears)
	if err != nil {
		return decimal.Zero, err
	}
	target, err := loans.ComputeMonthlyPayment(scenario.HousePrice, scenario.Deposit, scenario.Rate, targetYears)
	if err != nil {
		return decimal.Zero, err
	}
	return mathutil.ClampZero(target.Sub(contract)), nil
}
