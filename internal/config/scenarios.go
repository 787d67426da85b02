package config

import (
	"fmt"
	"reflect"

	"github.com/iwvelando/mortgage-forecast/pkg/format"
	"github.com/iwvelando/mortgage-forecast/pkg/loans"
	"github.com/mitchellh/mapstructure"
	"github.com/shopspring/decimal"
)

// Scenario holds the loan parameters of one "what if" scenario.
type Scenario struct {
	Name        string
	Active      bool
	HousePrice  decimal.Decimal
	Deposit     decimal.Decimal
	Rate        decimal.Decimal // nominal annual percentage
	TermYears   decimal.Decimal
	Overpayment decimal.Decimal
	StartDate   string // optional YYYY-MM of the first payment
}

// LoanConfig converts the scenario into the engine's loan parameters.
func (s Scenario) LoanConfig() loans.LoanConfig {
	return loans.LoanConfig{
		Name:              s.Name,
		HousePrice:        s.HousePrice,
		Deposit:           s.Deposit,
		AnnualRatePercent: s.Rate,
		TermYears:         s.TermYears,
		Overpayment:       s.Overpayment,
		StartDate:         s.StartDate,
	}
}

var decimalType = reflect.TypeOf(decimal.Decimal{})

// floatDigits is the number of significant digits a float64 is guaranteed to
// carry from the file literal unchanged.
const floatDigits = 15

// DecimalHookFunc returns a decode hook that converts YAML scalars into
// decimal.Decimal. Strings go through format.ParseAmount so that "£ 300,000"
// is accepted. Unquoted floats use their shortest decimal representation,
// which is the literal written in the file only up to floatDigits significant
// digits; longer literals are rejected and must be quoted.
func DecimalHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t != decimalType {
			return data, nil
		}

		switch v := data.(type) {
		case decimal.Decimal:
			return v, nil
		case string:
			value, err := format.ParseAmount(v)
			if err != nil {
				return nil, err
			}
			return value, nil
		case int:
			return decimal.NewFromInt(int64(v)), nil
		case int32:
			return decimal.NewFromInt32(v), nil
		case int64:
			return decimal.NewFromInt(v), nil
		case float32:
			return fromFloat(decimal.NewFromFloat32(v))
		case float64:
			return fromFloat(decimal.NewFromFloat(v))
		default:
			return nil, fmt.Errorf("cannot decode %T into a decimal", data)
		}
	}
}

func fromFloat(value decimal.Decimal) (decimal.Decimal, error) {
	if value.NumDigits() > floatDigits {
		return decimal.Zero, fmt.Errorf("number %s has more than %d significant digits; quote it to keep it exact", value, floatDigits)
	}
	return value, nil
}
