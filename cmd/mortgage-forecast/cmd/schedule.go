package cmd

import (
	"github.com/iwvelando/mortgage-forecast/pkg/constants"
	"github.com/iwvelando/mortgage-forecast/pkg/loans"
	"github.com/iwvelando/mortgage-forecast/pkg/output"
	"github.com/iwvelando/mortgage-forecast/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newScheduleCmd(opts *rootOptions) *cobra.Command {
	flags := &loanFlags{}
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print the month-by-month amortization schedule of a loan",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validation.ValidateOutputFormat(outputFormat); err != nil {
				return err
			}
			values, err := flags.parse()
			if err != nil {
				return err
			}

			logger, err := opts.commandLogger()
			if err != nil {
				return err
			}
			defer func() {
				_ = logger.Sync()
			}()

			generator := loans.NewAmortizationScheduleGenerator(logger)
			schedule, err := generator.GenerateSchedule(loans.LoanConfig{
				Name:              "cli",
				HousePrice:        values.housePrice,
				Deposit:           values.deposit,
				AnnualRatePercent: values.rate,
				TermYears:         values.termYears,
				Overpayment:       values.overpayment,
				StartDate:         flags.startDate,
			})
			if err != nil {
				logger.Debug("schedule generation failed",
					zap.String("op", "cmd.schedule"),
					zap.Error(err),
				)
				return err
			}

			switch outputFormat {
			case constants.OutputFormatCSV:
				output.ScheduleCsv(cmd.OutOrStdout(), schedule)
			default:
				output.ScheduleFormat(cmd.OutOrStdout(), schedule, flags.symbol)
			}
			return nil
		},
	}

	flags.addLoan(cmd)
	flags.addOverpayment(cmd)
	cmd.Flags().StringVar(&flags.termYears, "term-years", "", "loan term in years")
	cmd.Flags().StringVar(&flags.startDate, "start-date", "", "month of the first payment (YYYY-MM)")
	cmd.Flags().StringVar(&outputFormat, "output-format", constants.OutputFormatPretty, "type of output: pretty, csv")
	_ = cmd.MarkFlagRequired("term-years")
	return cmd
}
