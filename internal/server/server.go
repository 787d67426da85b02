// Package server exposes the amortization engine and scenario forecasts over HTTP.
package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iwvelando/mortgage-forecast/internal/config"
	"github.com/iwvelando/mortgage-forecast/internal/forecast"
	"github.com/iwvelando/mortgage-forecast/pkg/constants"
	"github.com/iwvelando/mortgage-forecast/pkg/loans"
	"github.com/iwvelando/mortgage-forecast/pkg/output"
	"github.com/iwvelando/mortgage-forecast/pkg/validation"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type handler struct {
	logger         *zap.Logger
	maxRequestSize int64
	version        string
	metrics        *metrics
	schedules      *loans.AmortizationScheduleGenerator
}

// NewHandler constructs the HTTP handler that serves the calculation API.
func NewHandler(logger *zap.Logger, maxRequestSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxRequestSize <= 0 {
		maxRequestSize = constants.DefaultMaxRequestSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:         logger,
		maxRequestSize: maxRequestSize,
		version:        trimmedVersion,
		metrics:        newMetrics(),
		schedules:      loans.NewAmortizationScheduleGenerator(logger),
	}

	router := gin.New()
	router.Use(requestID(), recovery(logger), accessLog(logger), instrument(h.metrics), limitBody(maxRequestSize))

	router.GET("/health", h.handleHealth)
	router.GET("/api/version", h.handleVersion)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(h.metrics.registry, promhttp.HandlerOpts{})))

	v1 := router.Group("/api/v1")
	v1.POST("/payment", h.handlePayment)
	v1.POST("/balance", h.handleBalance)
	v1.POST("/payoff", h.handlePayoff)
	v1.POST("/total-paid", h.handleTotalPaid)
	v1.POST("/forecast", h.handleForecast)
	v1.POST("/schedule", h.handleSchedule)
	v1.POST("/required-overpayment", h.handleRequiredOverpayment)

	return router
}

func (h *handler) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *handler) handleVersion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"version": h.version})
}

func (h *handler) handlePayment(c *gin.Context) {
	const op = "server.handlePayment"
	var req paymentRequest
	if !h.bind(c, &req, op) {
		return
	}

	pmt, err := loans.ComputeMonthlyPayment(req.HousePrice.Decimal, req.Deposit.Decimal, req.Rate.Decimal, req.TermYears.Decimal)
	h.metrics.recordCalculation("payment", err)
	if err != nil {
		h.respondError(c, err, op)
		return
	}
	c.JSON(http.StatusOK, newValueResponse(pmt))
}

func (h *handler) handleBalance(c *gin.Context) {
	const op = "server.handleBalance"
	var req balanceRequest
	if !h.bind(c, &req, op) {
		return
	}

	balance, err := loans.ComputeBalanceAtYear(req.HousePrice.Decimal, req.Deposit.Decimal, req.MonthlyPayment.Decimal,
		req.Rate.Decimal, req.ElapsedYears.Decimal, req.Overpayment.Decimal)
	h.metrics.recordCalculation("balance", err)
	if err != nil {
		h.respondError(c, err, op)
		return
	}
	c.JSON(http.StatusOK, newValueResponse(balance))
}

func (h *handler) handlePayoff(c *gin.Context) {
	const op = "server.handlePayoff"
	var req payoffRequest
	if !h.bind(c, &req, op) {
		return
	}

	months, err := loans.ComputeTimeToPayOff(req.HousePrice.Decimal, req.Deposit.Decimal, req.Rate.Decimal,
		req.MonthlyPayment.Decimal, req.Overpayment.Decimal)
	h.metrics.recordCalculation("payoff", err)
	if err != nil {
		h.respondError(c, err, op)
		return
	}
	c.JSON(http.StatusOK, payoffResponse{
		Months:        months.String(),
		MonthsRounded: months.Round(constants.CurrencyPlaces).Ceil().IntPart(),
		Years:         months.DivRound(decimal.NewFromInt(constants.MonthsPerYear), constants.CurrencyPlaces).StringFixed(constants.CurrencyPlaces),
	})
}

func (h *handler) handleTotalPaid(c *gin.Context) {
	const op = "server.handleTotalPaid"
	var req totalPaidRequest
	if !h.bind(c, &req, op) {
		return
	}

	total, err := loans.ComputeTotalPaid(req.MonthlyPayment.Decimal, req.Overpayment.Decimal, req.TermYears.Decimal)
	h.metrics.recordCalculation("total_paid", err)
	if err != nil {
		h.respondError(c, err, op)
		return
	}
	c.JSON(http.StatusOK, newValueResponse(total))
}

func (h *handler) handleForecast(c *gin.Context) {
	const op = "server.handleForecast"
	start := time.Now()

	var req forecastRequest
	if !h.bind(c, &req, op) {
		return
	}
	if len(req.Scenarios) == 0 {
		h.respondStatus(c, http.StatusBadRequest, "at least one scenario is required", op)
		return
	}

	conf := config.Configuration{Projection: config.ProjectionConfig{HorizonYears: req.HorizonYears.Decimal}}
	for i, scenario := range req.Scenarios {
		if strings.TrimSpace(scenario.Name) == "" {
			scenario.Name = fmt.Sprintf("scenario %d", i+1)
		}
		conf.Scenarios = append(conf.Scenarios, scenario.scenario())
	}
	if err := validation.ValidateScenarioNames(conf.ScenarioNames()); err != nil {
		h.respondStatus(c, http.StatusBadRequest, err.Error(), op)
		return
	}

	results, err := forecast.GetForecast(h.logger, conf)
	h.metrics.recordCalculation("forecast", err)
	if err != nil {
		h.respondError(c, err, op)
		return
	}

	response := forecastResponse{
		Scenarios: make([]scenarioResponse, 0, len(results)),
		CSV:       output.CsvString(results),
		Warnings:  conf.ValidateConfiguration(),
		Duration:  time.Since(start).String(),
	}
	for _, result := range results {
		response.Scenarios = append(response.Scenarios, newScenarioResponse(result))
	}
	c.JSON(http.StatusOK, response)
}

func (h *handler) handleSchedule(c *gin.Context) {
	const op = "server.handleSchedule"
	var req scenarioRequest
	if !h.bind(c, &req, op) {
		return
	}

	schedule, err := h.schedules.GenerateSchedule(req.scenario().LoanConfig())
	h.metrics.recordCalculation("schedule", err)
	if err != nil {
		h.respondError(c, err, op)
		return
	}
	c.JSON(http.StatusOK, newScheduleResponse(schedule))
}

func (h *handler) handleRequiredOverpayment(c *gin.Context) {
	const op = "server.handleRequiredOverpayment"
	var req requiredOverpaymentRequest
	if !h.bind(c, &req, op) {
		return
	}

	over, err := forecast.RequiredOverpayment(req.scenario(), req.TargetYears.Decimal)
	h.metrics.recordCalculation("required_overpayment", err)
	if err != nil {
		h.respondError(c, err, op)
		return
	}
	c.JSON(http.StatusOK, newValueResponse(over))
}

// bind decodes the JSON body into req and reports whether the handler should
// continue.
func (h *handler) bind(c *gin.Context, req interface{}, op string) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondStatus(c, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxRequestSize), op)
			return false
		}
		h.respondStatus(c, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return false
	}
	return true
}

// statusFor maps engine errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, loans.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, loans.ErrNeverAmortizes):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (h *handler) respondError(c *gin.Context, err error, op string) {
	h.respondStatus(c, statusFor(err), err.Error(), op)
}

func (h *handler) respondStatus(c *gin.Context, status int, msg string, op string) {
	level := h.logger.Warn
	if status >= http.StatusInternalServerError {
		level = h.logger.Error
	}
	level("request failed",
		zap.String("op", op),
		zap.String("request_id", c.GetString(requestIDKey)),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	c.JSON(status, gin.H{"error": msg, "requestId": c.GetString(requestIDKey)})
}
