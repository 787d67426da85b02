// Package cmd implements the mortgage-forecast command line interface.
package cmd

import (
	"fmt"

	"github.com/iwvelando/mortgage-forecast/internal/config"
	"github.com/iwvelando/mortgage-forecast/internal/logging"
	"github.com/iwvelando/mortgage-forecast/pkg/constants"
	"github.com/iwvelando/mortgage-forecast/pkg/format"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version is set at build time with -ldflags "-X .../cmd.Version=...".
var Version = "dev"

type rootOptions struct {
	configPath string
	logLevel   string
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "mortgage-forecast",
		Short: "Decimal mortgage amortization calculator",
		Long: `mortgage-forecast computes fixed-rate mortgage figures with exact decimal
arithmetic: monthly payment, outstanding balance, time to pay off and total
paid, plus multi-scenario forecasts and month-by-month schedules.

Amounts may be written as plain numbers or as text such as "£300,000" or "4.5%".`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", constants.DefaultConfigFile, "path to configuration file")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level override (debug, info, warn, error)")

	root.AddCommand(
		newForecastCmd(opts),
		newPaymentCmd(),
		newBalanceCmd(),
		newPayoffCmd(),
		newTotalPaidCmd(),
		newScheduleCmd(opts),
		newServeCmd(opts),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command.
func Execute() error {
	root := NewRootCommand()
	err := root.Execute()
	if err != nil {
		root.PrintErrln("Error:", err)
	}
	return err
}

// commandLogger builds a logger for commands that run without a
// configuration file.
func (o *rootOptions) commandLogger() (*zap.Logger, error) {
	return logging.New(config.LoggingConfig{Level: "warn", Format: "console"}, o.logLevel)
}

// amountFlag parses a flag value as an amount, naming the flag on failure.
func amountFlag(name, value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, nil
	}
	amount, err := format.ParseAmount(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("--%s: %w", name, err)
	}
	return amount, nil
}
