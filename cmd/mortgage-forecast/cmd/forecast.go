package cmd

import (
	"fmt"

	"github.com/iwvelando/mortgage-forecast/internal/config"
	"github.com/iwvelando/mortgage-forecast/internal/forecast"
	"github.com/iwvelando/mortgage-forecast/internal/logging"
	"github.com/iwvelando/mortgage-forecast/pkg/constants"
	"github.com/iwvelando/mortgage-forecast/pkg/output"
	"github.com/iwvelando/mortgage-forecast/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newForecastCmd(opts *rootOptions) *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Forecast every active scenario in the configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := config.LoadConfiguration(opts.configPath)
			if err != nil {
				return fmt.Errorf("failed to load configuration at %s: %w", opts.configPath, err)
			}

			logger, err := logging.New(conf.Logging, opts.logLevel)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer func() {
				_ = logger.Sync()
			}()

			// CLI override takes precedence over config
			format := conf.Output.Format
			if outputFormat != "" {
				format = outputFormat
			}
			if format == "" {
				format = constants.OutputFormatPretty
			}
			if err := validation.ValidateOutputFormat(format); err != nil {
				return err
			}

			for _, warning := range conf.ValidateConfiguration() {
				logger.Warn("Configuration warning: "+warning,
					zap.String("op", "cmd.forecast"),
				)
			}

			results, err := forecast.GetForecast(logger, *conf)
			if err != nil {
				logger.Error("failed to compute forecast",
					zap.String("op", "cmd.forecast"),
					zap.Error(err),
				)
				return err
			}

			switch format {
			case constants.OutputFormatPretty:
				output.PrettyFormat(cmd.OutOrStdout(), results, conf.Output.CurrencySymbol)
			case constants.OutputFormatCSV:
				output.CsvFormat(cmd.OutOrStdout(), results)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outputFormat, "output-format", "", "type of output override: pretty, csv")
	return cmd
}
