// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/mortgage-forecast/pkg/constants"
	"github.com/iwvelando/mortgage-forecast/pkg/datetime"
	"github.com/iwvelando/mortgage-forecast/pkg/validation"
	"github.com/mitchellh/mapstructure"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment variables that override configuration keys,
// e.g. MORTGAGE_LOGGING_LEVEL.
const EnvPrefix = "MORTGAGE"

// Configuration holds all configuration for mortgage-forecast.
type Configuration struct {
	Scenarios  []Scenario
	Projection ProjectionConfig `yaml:"projection,omitempty"`
	Logging    LoggingConfig    `yaml:"logging,omitempty"`
	Output     OutputConfig     `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty" toml:"level"`           // debug, info, warn, error
	Format     string `yaml:"format,omitempty" toml:"format"`         // json, console
	OutputFile string `yaml:"outputFile,omitempty" toml:"outputFile"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format         string `yaml:"format,omitempty"` // pretty, csv
	CurrencySymbol string `yaml:"currencySymbol,omitempty"`
}

// ProjectionConfig controls the year-by-year series of a forecast.
type ProjectionConfig struct {
	// HorizonYears is the last year of the series; zero follows each
	// scenario's own term.
	HorizonYears decimal.Decimal `yaml:"horizonYears,omitempty"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	return decode(v)
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	err := v.Unmarshal(&configuration, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		DecimalHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)))
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.normalize()

	if err := validation.ValidateScenarioNames(configuration.ScenarioNames()); err != nil {
		return nil, err
	}
	for _, scenario := range configuration.Scenarios {
		if scenario.StartDate == "" {
			continue
		}
		if err := datetime.ValidateMonth(scenario.StartDate); err != nil {
			return nil, fmt.Errorf("scenario %s: startDate: %w", scenario.Name, err)
		}
	}

	return &configuration, nil
}

func (conf *Configuration) normalize() {
	if conf.Output.CurrencySymbol == "" {
		conf.Output.CurrencySymbol = constants.DefaultCurrencySymbol
	}
	for i := range conf.Scenarios {
		conf.Scenarios[i].Name = strings.TrimSpace(conf.Scenarios[i].Name)
	}
}

// ScenarioNames returns the names of all scenarios in declaration order.
func (conf *Configuration) ScenarioNames() []string {
	names := make([]string, 0, len(conf.Scenarios))
	for _, scenario := range conf.Scenarios {
		names = append(names, scenario.Name)
	}
	return names
}

// ActiveScenarios returns the scenarios marked active.
func (conf *Configuration) ActiveScenarios() []Scenario {
	var active []Scenario
	for _, scenario := range conf.Scenarios {
		if scenario.Active {
			active = append(active, scenario)
		}
	}
	return active
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (conf *Configuration) ValidateConfiguration() []string {
	infos := make([]validation.ScenarioInfo, 0, len(conf.Scenarios))
	for _, scenario := range conf.Scenarios {
		infos = append(infos, validation.ScenarioInfo{
			Name:      scenario.Name,
			Active:    scenario.Active,
			TermYears: scenario.TermYears,
		})
	}
	return validation.ScenarioWarnings(infos, conf.Projection.HorizonYears)
}
