package cmd

import (
	"fmt"

	"github.com/iwvelando/mortgage-forecast/pkg/constants"
	"github.com/iwvelando/mortgage-forecast/pkg/format"
	"github.com/iwvelando/mortgage-forecast/pkg/loans"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// loanFlags holds the raw text of the loan parameters shared by the
// calculation commands.
type loanFlags struct {
	housePrice     string
	deposit        string
	rate           string
	termYears      string
	elapsedYears   string
	monthlyPayment string
	overpayment    string
	startDate      string
	symbol         string
}

type loanValues struct {
	housePrice     decimal.Decimal
	deposit        decimal.Decimal
	rate           decimal.Decimal
	termYears      decimal.Decimal
	elapsedYears   decimal.Decimal
	monthlyPayment decimal.Decimal
	overpayment    decimal.Decimal
}

func (f *loanFlags) parse() (loanValues, error) {
	var values loanValues
	fields := []struct {
		name  string
		raw   string
		value *decimal.Decimal
	}{
		{"house-price", f.housePrice, &values.housePrice},
		{"deposit", f.deposit, &values.deposit},
		{"rate", f.rate, &values.rate},
		{"term-years", f.termYears, &values.termYears},
		{"elapsed-years", f.elapsedYears, &values.elapsedYears},
		{"monthly-payment", f.monthlyPayment, &values.monthlyPayment},
		{"overpayment", f.overpayment, &values.overpayment},
	}
	for _, field := range fields {
		value, err := amountFlag(field.name, field.raw)
		if err != nil {
			return values, err
		}
		*field.value = value
	}
	return values, nil
}

func (f *loanFlags) addLoan(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.housePrice, "house-price", "", "purchase price of the property")
	cmd.Flags().StringVar(&f.deposit, "deposit", "0", "deposit paid up front")
	cmd.Flags().StringVar(&f.rate, "rate", "", "nominal annual interest rate in percent")
	cmd.Flags().StringVar(&f.symbol, "symbol", constants.DefaultCurrencySymbol, "currency symbol for output")
	_ = cmd.MarkFlagRequired("house-price")
	_ = cmd.MarkFlagRequired("rate")
}

func (f *loanFlags) addOverpayment(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.overpayment, "overpayment", "0", "extra amount paid every month")
}

func (f *loanFlags) addMonthlyPayment(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.monthlyPayment, "monthly-payment", "", "contractual monthly payment")
	_ = cmd.MarkFlagRequired("monthly-payment")
}

func newPaymentCmd() *cobra.Command {
	flags := &loanFlags{}
	cmd := &cobra.Command{
		Use:   "payment",
		Short: "Compute the fixed monthly payment of a loan",
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := flags.parse()
			if err != nil {
				return err
			}
			pmt, err := loans.ComputeMonthlyPayment(values.housePrice, values.deposit, values.rate, values.termYears)
			if err != nil {
				return err
			}
			printValue(cmd, "Monthly payment", pmt, flags.symbol)
			return nil
		},
	}
	flags.addLoan(cmd)
	cmd.Flags().StringVar(&flags.termYears, "term-years", "", "loan term in years")
	_ = cmd.MarkFlagRequired("term-years")
	return cmd
}

func newBalanceCmd() *cobra.Command {
	flags := &loanFlags{}
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Compute the outstanding balance after a number of years",
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := flags.parse()
			if err != nil {
				return err
			}
			balance, err := loans.ComputeBalanceAtYear(values.housePrice, values.deposit, values.monthlyPayment,
				values.rate, values.elapsedYears, values.overpayment)
			if err != nil {
				return err
			}
			printValue(cmd, "Balance", balance, flags.symbol)
			return nil
		},
	}
	flags.addLoan(cmd)
	flags.addMonthlyPayment(cmd)
	flags.addOverpayment(cmd)
	cmd.Flags().StringVar(&flags.elapsedYears, "elapsed-years", "", "years of payments made")
	_ = cmd.MarkFlagRequired("elapsed-years")
	return cmd
}

func newPayoffCmd() *cobra.Command {
	flags := &loanFlags{}
	cmd := &cobra.Command{
		Use:   "payoff",
		Short: "Compute the number of months until the loan is repaid",
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := flags.parse()
			if err != nil {
				return err
			}
			months, err := loans.ComputeTimeToPayOff(values.housePrice, values.deposit, values.rate,
				values.monthlyPayment, values.overpayment)
			if err != nil {
				return err
			}
			years := months.DivRound(decimal.NewFromInt(constants.MonthsPerYear), constants.CurrencyPlaces)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Paid off after: %s months (%s years)\n",
				months.StringFixed(constants.CurrencyPlaces), years.StringFixed(constants.CurrencyPlaces))
			return nil
		},
	}
	flags.addLoan(cmd)
	flags.addMonthlyPayment(cmd)
	flags.addOverpayment(cmd)
	return cmd
}

func newTotalPaidCmd() *cobra.Command {
	flags := &loanFlags{}
	cmd := &cobra.Command{
		Use:   "total-paid",
		Short: "Compute the total paid over a number of years",
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := flags.parse()
			if err != nil {
				return err
			}
			total, err := loans.ComputeTotalPaid(values.monthlyPayment, values.overpayment, values.termYears)
			if err != nil {
				return err
			}
			printValue(cmd, "Total paid", total, flags.symbol)
			return nil
		},
	}
	flags.addMonthlyPayment(cmd)
	flags.addOverpayment(cmd)
	cmd.Flags().StringVar(&flags.termYears, "term-years", "", "years of payments")
	cmd.Flags().StringVar(&flags.symbol, "symbol", constants.DefaultCurrencySymbol, "currency symbol for output")
	_ = cmd.MarkFlagRequired("term-years")
	return cmd
}

func printValue(cmd *cobra.Command, label string, value decimal.Decimal, symbol string) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%s)\n", label, format.Currency(value, symbol), value.String())
}
