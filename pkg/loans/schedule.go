package loans

import (
	"fmt"

	"github.com/iwvelando/mortgage-forecast/pkg/constants"
	"github.com/iwvelando/mortgage-forecast/pkg/datetime"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Payment holds the values for a given month of the schedule.
type Payment struct {
	Month              int
	Date               string // YYYY-MM, empty when the loan has no start date
	Payment            decimal.Decimal
	Principal          decimal.Decimal
	Interest           decimal.Decimal
	RemainingPrincipal decimal.Decimal
}

// LoanConfig represents loan configuration parameters
type LoanConfig struct {
	Name              string
	HousePrice        decimal.Decimal
	Deposit           decimal.Decimal
	AnnualRatePercent decimal.Decimal
	TermYears         decimal.Decimal
	Overpayment       decimal.Decimal
	StartDate         string // optional YYYY-MM of the first payment
}

// AmortizationScheduleGenerator provides utilities for generating loan amortization schedules
type AmortizationScheduleGenerator struct {
	logger *zap.Logger
}

// NewAmortizationScheduleGenerator creates a new generator instance
func NewAmortizationScheduleGenerator(logger *zap.Logger) *AmortizationScheduleGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AmortizationScheduleGenerator{logger: logger}
}

// GenerateSchedule creates the month-by-month amortization schedule for a
// loan. The monthly payment is the contractual PMT plus the overpayment; the
// schedule ends when the principal reaches zero or the term runs out.
func (g *AmortizationScheduleGenerator) GenerateSchedule(loan LoanConfig) ([]Payment, error) {
	if loan.TermYears.GreaterThan(maxProjectionYears) {
		return nil, invalid("termYears", loan.TermYears, fmt.Sprintf("must not exceed %d for a schedule", constants.MaxProjectionYears))
	}
	monthlyPayment, err := ComputeMonthlyPayment(loan.HousePrice, loan.Deposit, loan.AnnualRatePercent, loan.TermYears)
	if err != nil {
		return nil, err
	}
	if loan.Overpayment.IsNegative() {
		return nil, invalid("overpayment", loan.Overpayment, "must not be negative")
	}
	if loan.StartDate != "" {
		if err := datetime.ValidateMonth(loan.StartDate); err != nil {
			return nil, fmt.Errorf("%w: startDate: %v", ErrInvalidInput, err)
		}
	}

	outflow := monthlyPayment.Add(loan.Overpayment)
	termMonths := int(Periods(loan.TermYears).Ceil().IntPart())
	remaining := loan.HousePrice.Sub(loan.Deposit)

	g.logger.Debug(fmt.Sprintf("generating schedule for loan %s: payment %s over %d months",
		loan.Name, outflow.StringFixed(2), termMonths),
		zap.String("op", "loans.GenerateSchedule"),
	)

	var schedule []Payment
	for month := 1; month <= termMonths; month++ {
		var current Payment
		current.Month = month
		current.Date, err = datetime.PaymentDate(loan.StartDate, month)
		if err != nil {
			return nil, fmt.Errorf("%w: startDate: %v", ErrInvalidInput, err)
		}
		current.Interest = CalculateInterestPayment(remaining, loan.AnnualRatePercent).Round(constants.WorkingPrecision)
		current.Payment = outflow
		current.Principal = outflow.Sub(current.Interest)

		// The last payment is capped so that the principal never goes negative.
		if month == termMonths || current.Principal.GreaterThanOrEqual(remaining) {
			if current.Principal.GreaterThan(remaining) {
				g.logger.Debug("capping final payment to the remaining principal",
					zap.String("loan", loan.Name),
					zap.Int("month", month),
					zap.String("requested", outflow.String()),
					zap.String("remaining", remaining.String()),
				)
			}
			current.Principal = remaining
			current.Payment = remaining.Add(current.Interest)
			current.RemainingPrincipal = decimal.Zero
			schedule = append(schedule, current)
			if month < termMonths {
				g.logger.Debug(fmt.Sprintf("loan %s paid off after %d of %d months", loan.Name, month, termMonths),
					zap.String("op", "loans.GenerateSchedule"),
				)
			}
			break
		}

		remaining = remaining.Sub(current.Principal)
		current.RemainingPrincipal = remaining
		schedule = append(schedule, current)
	}

	return schedule, nil
}

// TotalInterest sums the interest column of a schedule.
func TotalInterest(schedule []Payment) decimal.Decimal {
	total := decimal.Zero
	for _, payment := range schedule {
		total = total.Add(payment.Interest)
	}
	return total
}
