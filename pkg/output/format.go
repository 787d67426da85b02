// Package output provides utilities for formatting and displaying forecast results.
package output

import (
	"bytes"
	"fmt"
	"io"

	"github.com/iwvelando/mortgage-forecast/internal/forecast"
	"github.com/iwvelando/mortgage-forecast/pkg/format"
	"github.com/iwvelando/mortgage-forecast/pkg/loans"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(w io.Writer, results []forecast.Forecast, symbol string) {
	p := message.NewPrinter(language.English)
	for i, result := range results {
		_, _ = fmt.Fprintf(w, "--- Results for scenario %s ---\n", result.Name)
		_, _ = fmt.Fprintf(w, "Monthly payment:  %s\n", format.Currency(result.MonthlyPayment, symbol))
		if result.Overpayment.IsPositive() {
			_, _ = fmt.Fprintf(w, "Overpayment:      %s\n", format.Currency(result.Overpayment, symbol))
		}
		_, _ = p.Fprintf(w, "Paid off after:   %d months (%s years)\n", result.PayoffMonthsRounded, result.PayoffYears.StringFixed(2))
		if result.PayoffDate != "" {
			_, _ = fmt.Fprintf(w, "Final payment:    %s\n", result.PayoffDate)
		}
		_, _ = fmt.Fprintf(w, "Total paid:       %s\n", format.Currency(result.LifetimeCost, symbol))
		_, _ = fmt.Fprintf(w, "Total interest:   %s\n", format.Currency(result.TotalInterest, symbol))
		if result.InterestSaved.IsPositive() {
			_, _ = fmt.Fprintf(w, "Interest saved:   %s\n", format.Currency(result.InterestSaved, symbol))
		}
		_, _ = fmt.Fprintf(w, "\n")
		_, _ = fmt.Fprintf(w, "Year | Balance         | Amount Paid\n")
		_, _ = fmt.Fprintf(w, "____ | _______________ | _______________\n")
		for _, point := range result.Points {
			_, _ = fmt.Fprintf(w, "%4d | %15s | %15s\n", point.Year,
				format.Currency(point.Balance, symbol), format.Currency(point.AmountPaid, symbol))
		}
		if i < len(results)-1 {
			_, _ = fmt.Fprintf(w, "\n")
		}
	}
}

// CsvFormat outputs in comma-separated value format. Scenarios with a shorter
// horizon leave their cells empty for the later years.
func CsvFormat(w io.Writer, results []forecast.Forecast) {
	if len(results) == 0 {
		return
	}

	years := 0
	for _, result := range results {
		if len(result.Points) > years {
			years = len(result.Points)
		}
	}

	_, _ = fmt.Fprintf(w, `"year"`)
	for _, result := range results {
		_, _ = fmt.Fprintf(w, `,"balance (%s)","amount paid (%s)"`, result.Name, result.Name)
	}
	_, _ = fmt.Fprintf(w, "\n")
	for year := 0; year < years; year++ {
		_, _ = fmt.Fprintf(w, `"%d"`, year)
		for _, result := range results {
			if year >= len(result.Points) {
				_, _ = fmt.Fprintf(w, `,"",""`)
				continue
			}
			point := result.Points[year]
			_, _ = fmt.Fprintf(w, `,"%s","%s"`, format.Plain(point.Balance), format.Plain(point.AmountPaid))
		}
		_, _ = fmt.Fprintf(w, "\n")
	}
}

// CsvString returns the CsvFormat output as a string.
func CsvString(results []forecast.Forecast) string {
	var buf bytes.Buffer
	CsvFormat(&buf, results)
	return buf.String()
}

// ScheduleFormat prints a month-by-month amortization table.
func ScheduleFormat(w io.Writer, schedule []loans.Payment, symbol string) {
	_, _ = fmt.Fprintf(w, "Month | Payment      | Principal    | Interest     | Remaining\n")
	_, _ = fmt.Fprintf(w, "_____ | ____________ | ____________ | ____________ | _______________\n")
	for _, payment := range schedule {
		_, _ = fmt.Fprintf(w, "%5d | %12s | %12s | %12s | %15s\n", payment.Month,
			format.Currency(payment.Payment, symbol),
			format.Currency(payment.Principal, symbol),
			format.Currency(payment.Interest, symbol),
			format.Currency(payment.RemainingPrincipal, symbol))
	}
	_, _ = fmt.Fprintf(w, "\nTotal interest: %s\n", format.Currency(loans.TotalInterest(schedule), symbol))
}

// ScheduleCsv outputs the amortization table in comma-separated value format.
// The date column is empty when the loan has no start date.
func ScheduleCsv(w io.Writer, schedule []loans.Payment) {
	_, _ = fmt.Fprintf(w, `"month","date","payment","principal","interest","remaining"`+"\n")
	for _, payment := range schedule {
		_, _ = fmt.Fprintf(w, `"%d","%s","%s","%s","%s","%s"`+"\n", payment.Month, payment.Date,
			format.Plain(payment.Payment),
			format.Plain(payment.Principal),
			format.Plain(payment.Interest),
			format.Plain(payment.RemainingPrincipal))
	}
}
