package server

import (
	"bytes"
	"strings"

	"github.com/iwvelando/mortgage-forecast/internal/config"
	"github.com/iwvelando/mortgage-forecast/internal/forecast"
	"github.com/iwvelando/mortgage-forecast/pkg/format"
	"github.com/iwvelando/mortgage-forecast/pkg/loans"
	"github.com/iwvelando/mortgage-forecast/pkg/mathutil"
	"github.com/shopspring/decimal"
)

// amount accepts a JSON number or amount text such as "£300,000" or "4.5%".
// Numbers are parsed from their literal text, never through float64.
type amount struct {
	decimal.Decimal
}

func (a *amount) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		a.Decimal = decimal.Zero
		return nil
	}
	value, err := format.ParseAmount(strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}
	a.Decimal = value
	return nil
}

type paymentRequest struct {
	HousePrice amount `json:"housePrice"`
	Deposit    amount `json:"deposit"`
	Rate       amount `json:"rate"`
	TermYears  amount `json:"termYears"`
}

type balanceRequest struct {
	HousePrice     amount `json:"housePrice"`
	Deposit        amount `json:"deposit"`
	MonthlyPayment amount `json:"monthlyPayment"`
	Rate           amount `json:"rate"`
	ElapsedYears   amount `json:"elapsedYears"`
	Overpayment    amount `json:"overpayment"`
}

type payoffRequest struct {
	HousePrice     amount `json:"housePrice"`
	Deposit        amount `json:"deposit"`
	Rate           amount `json:"rate"`
	MonthlyPayment amount `json:"monthlyPayment"`
	Overpayment    amount `json:"overpayment"`
}

type totalPaidRequest struct {
	MonthlyPayment amount `json:"monthlyPayment"`
	Overpayment    amount `json:"overpayment"`
	TermYears      amount `json:"termYears"`
}

type scenarioRequest struct {
	Name        string `json:"name"`
	HousePrice  amount `json:"housePrice"`
	Deposit     amount `json:"deposit"`
	Rate        amount `json:"rate"`
	TermYears   amount `json:"termYears"`
	Overpayment amount `json:"overpayment"`
	StartDate   string `json:"startDate"`
}

func (s scenarioRequest) scenario() config.Scenario {
	return config.Scenario{
		Name:        strings.TrimSpace(s.Name),
		Active:      true,
		HousePrice:  s.HousePrice.Decimal,
		Deposit:     s.Deposit.Decimal,
		Rate:        s.Rate.Decimal,
		TermYears:   s.TermYears.Decimal,
		Overpayment: s.Overpayment.Decimal,
		StartDate:   strings.TrimSpace(s.StartDate),
	}
}

type forecastRequest struct {
	HorizonYears amount            `json:"horizonYears"`
	Scenarios    []scenarioRequest `json:"scenarios"`
}

type requiredOverpaymentRequest struct {
	scenarioRequest
	TargetYears amount `json:"targetYears"`
}

// valueResponse carries a full-precision engine result alongside its value
// rounded to cents.
type valueResponse struct {
	Value   string `json:"value"`
	Rounded string `json:"rounded"`
}

func newValueResponse(value decimal.Decimal) valueResponse {
	return valueResponse{Value: value.String(), Rounded: format.Plain(value)}
}

type payoffResponse struct {
	Months        string `json:"months"`
	MonthsRounded int64  `json:"monthsRounded"`
	Years         string `json:"years"`
}

type pointResponse struct {
	Year       int    `json:"year"`
	Balance    string `json:"balance"`
	AmountPaid string `json:"amountPaid"`
}

type scenarioResponse struct {
	Name           string          `json:"name"`
	MonthlyPayment string          `json:"monthlyPayment"`
	Overpayment    string          `json:"overpayment"`
	PayoffMonths   int64           `json:"payoffMonths"`
	PayoffYears    string          `json:"payoffYears"`
	PayoffDate     string          `json:"payoffDate,omitempty"`
	ContractCost   string          `json:"contractCost"`
	LifetimeCost   string          `json:"lifetimeCost"`
	TotalInterest  string          `json:"totalInterest"`
	InterestSaved  string          `json:"interestSaved"`
	MonthsSaved    string          `json:"monthsSaved"`
	Points         []pointResponse `json:"points"`
}

func newScenarioResponse(result forecast.Forecast) scenarioResponse {
	points := make([]pointResponse, 0, len(result.Points))
	for _, point := range result.Points {
		points = append(points, pointResponse{
			Year:       point.Year,
			Balance:    format.Plain(point.Balance),
			AmountPaid: format.Plain(point.AmountPaid),
		})
	}
	return scenarioResponse{
		Name:           result.Name,
		MonthlyPayment: format.Plain(result.MonthlyPayment),
		Overpayment:    format.Plain(result.Overpayment),
		PayoffMonths:   result.PayoffMonthsRounded,
		PayoffYears:    result.PayoffYears.StringFixed(2),
		PayoffDate:     result.PayoffDate,
		ContractCost:   format.Plain(result.ContractCost),
		LifetimeCost:   format.Plain(result.LifetimeCost),
		TotalInterest:  format.Plain(result.TotalInterest),
		InterestSaved:  format.Plain(result.InterestSaved),
		MonthsSaved:    format.Plain(result.MonthsSaved),
		Points:         points,
	}
}

type forecastResponse struct {
	Scenarios []scenarioResponse `json:"scenarios"`
	CSV       string             `json:"csv"`
	Warnings  []string           `json:"warnings,omitempty"`
	Duration  string             `json:"duration"`
}

type paymentResponse struct {
	Month              int    `json:"month"`
	Date               string `json:"date,omitempty"`
	Payment            string `json:"payment"`
	Principal          string `json:"principal"`
	Interest           string `json:"interest"`
	RemainingPrincipal string `json:"remainingPrincipal"`
}

type scheduleResponse struct {
	Payments      []paymentResponse `json:"payments"`
	TotalInterest string            `json:"totalInterest"`
	Months        int               `json:"months"`
}

func newScheduleResponse(schedule []loans.Payment) scheduleResponse {
	payments := make([]paymentResponse, 0, len(schedule))
	for _, payment := range schedule {
		payments = append(payments, paymentResponse{
			Month:              payment.Month,
			Date:               payment.Date,
			Payment:            format.Plain(payment.Payment),
			Principal:          format.Plain(payment.Principal),
			Interest:           format.Plain(payment.Interest),
			RemainingPrincipal: format.Plain(payment.RemainingPrincipal),
		})
	}
	return scheduleResponse{
		Payments:      payments,
		TotalInterest: format.Plain(mathutil.Round(loans.TotalInterest(schedule))),
		Months:        len(schedule),
	}
}
