package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iwvelando/mortgage-forecast/pkg/loans"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCalculationCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "Payment",
			args: []string{"payment", "--house-price", "£300,000", "--deposit", "60000", "--rate", "5%", "--term-years", "25"},
			want: "Monthly payment: £1,403.02 (1403.0160996191496928",
		},
		{
			name: "Balance",
			args: []string{"balance", "--house-price", "175000", "--rate", "4.5", "--monthly-payment", "886.70", "--elapsed-years", "1", "--symbol", "$"},
			want: "Balance: $172,176.85",
		},
		{
			name: "Payoff",
			args: []string{"payoff", "--house-price", "300000", "--deposit", "60000", "--rate", "5", "--monthly-payment", "1403.02", "--overpayment", "500"},
			want: "Paid off after: 179.28 months (14.94 years)",
		},
		{
			name: "Total paid",
			args: []string{"total-paid", "--monthly-payment", "1000", "--overpayment", "100", "--term-years", "2"},
			want: "Total paid: £26,400.00 (26400)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCommand(t, tt.args...)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("output %q does not contain %q", out, tt.want)
			}
		})
	}
}

func TestCalculationCommandErrors(t *testing.T) {
	if _, err := runCommand(t, "payment", "--house-price", "100000", "--deposit", "200000", "--rate", "5", "--term-years", "25"); !errors.Is(err, loans.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := runCommand(t, "payment", "--house-price", "lots", "--rate", "5", "--term-years", "25"); err == nil || !strings.Contains(err.Error(), "--house-price") {
		t.Errorf("expected house price parse error, got %v", err)
	}
	if _, err := runCommand(t, "payoff", "--house-price", "300000", "--deposit", "60000", "--rate", "5", "--monthly-payment", "1000"); !errors.Is(err, loans.ErrNeverAmortizes) {
		t.Errorf("expected ErrNeverAmortizes, got %v", err)
	}
	if _, err := runCommand(t, "payment", "--house-price", "300000"); err == nil {
		t.Error("expected error for missing required flags")
	}
}

func TestScheduleCommand(t *testing.T) {
	out, err := runCommand(t, "schedule", "--house-price", "300000", "--deposit", "60000", "--rate", "5",
		"--term-years", "25", "--overpayment", "200", "--start-date", "2025-11", "--output-format", "csv")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 237 {
		t.Fatalf("expected header and 236 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[len(lines)-1], `"236","2045-06",`) {
		t.Errorf("unexpected final row: %s", lines[len(lines)-1])
	}
	if !strings.HasSuffix(lines[len(lines)-1], `"0.00"`) {
		t.Errorf("final row should clear the balance: %s", lines[len(lines)-1])
	}

	if _, err := runCommand(t, "schedule", "--house-price", "300000", "--rate", "5", "--term-years", "25", "--output-format", "xml"); err == nil {
		t.Error("expected error for unsupported output format")
	}
}

func TestForecastCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := `logging:
  level: error
output:
  currencySymbol: "$"
scenarios:
  - name: baseline
    active: true
    housePrice: 300000
    deposit: 60000
    rate: 5
    termYears: 25
  - name: overpay
    active: true
    housePrice: 300000
    deposit: 60000
    rate: 5
    termYears: 25
    overpayment: 200
`
	if err := os.WriteFile(path, []byte(contents), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	out, err := runCommand(t, "forecast", "--config", path)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, want := range []string{"--- Results for scenario baseline ---", "--- Results for scenario overpay ---", "Monthly payment:  $1,403.02"} {
		if !strings.Contains(out, want) {
			t.Errorf("pretty output missing %q", want)
		}
	}

	out, err = runCommand(t, "forecast", "--config", path, "--output-format", "csv")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.HasPrefix(out, `"year","balance (baseline)","amount paid (baseline)","balance (overpay)","amount paid (overpay)"`) {
		t.Errorf("unexpected CSV output %q", out)
	}

	if _, err := runCommand(t, "forecast", "--config", path, "--output-format", "json"); err == nil {
		t.Error("expected error for unsupported output format")
	}
	if _, err := runCommand(t, "forecast", "--config", filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing configuration")
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if strings.TrimSpace(out) != Version {
		t.Errorf("version output = %q, expected %q", out, Version)
	}
}
