package testutil

import (
	"testing"

	"github.com/iwvelando/mortgage-forecast/internal/forecast"
	"github.com/shopspring/decimal"
)

func TestFindScenario(t *testing.T) {
	results := []forecast.Forecast{
		{Name: "Scenario A", MonthlyPayment: decimal.NewFromInt(1000)},
		{Name: "Scenario B", MonthlyPayment: decimal.NewFromInt(2000)},
		{Name: "Another Scenario", MonthlyPayment: decimal.NewFromInt(3000)},
	}

	tests := []struct {
		name            string
		searchName      string
		expectFound     bool
		expectedPayment int64
	}{
		{
			name:            "Find existing scenario A",
			searchName:      "Scenario A",
			expectFound:     true,
			expectedPayment: 1000,
		},
		{
			name:            "Find existing scenario B",
			searchName:      "Scenario B",
			expectFound:     true,
			expectedPayment: 2000,
		},
		{
			name:            "Find scenario with longer name",
			searchName:      "Another Scenario",
			expectFound:     true,
			expectedPayment: 3000,
		},
		{
			name:        "Search for non-existent scenario",
			searchName:  "Non-existent",
			expectFound: false,
		},
		{
			name:        "Empty search name",
			searchName:  "",
			expectFound: false,
		},
		{
			name:        "Case sensitive search",
			searchName:  "scenario a",
			expectFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FindScenario(results, tt.searchName)

			if tt.expectFound {
				if result == nil {
					t.Fatalf("expected to find scenario '%s', but got nil", tt.searchName)
				}
				if result.Name != tt.searchName {
					t.Errorf("expected scenario name '%s', got '%s'", tt.searchName, result.Name)
				}
				if !result.MonthlyPayment.Equal(decimal.NewFromInt(tt.expectedPayment)) {
					t.Errorf("expected payment %d, got %s", tt.expectedPayment, result.MonthlyPayment)
				}
			} else if result != nil {
				t.Errorf("expected nil for scenario '%s', but got %+v", tt.searchName, result)
			}
		})
	}
}

func TestFindScenarioReturnsPointerIntoSlice(t *testing.T) {
	results := []forecast.Forecast{{Name: "Test"}}

	found := FindScenario(results, "Test")
	if found == nil {
		t.Fatal("expected to find scenario")
	}
	found.PayoffMonthsRounded = 42

	if results[0].PayoffMonthsRounded != 42 {
		t.Error("expected FindScenario to return a pointer into the original slice")
	}
}

func TestFindScenarioEmptySlice(t *testing.T) {
	if result := FindScenario(nil, "Any"); result != nil {
		t.Errorf("expected nil for nil slice, got %+v", result)
	}
	if result := FindScenario([]forecast.Forecast{}, "Any"); result != nil {
		t.Errorf("expected nil for empty slice, got %+v", result)
	}
}

func TestBalanceAt(t *testing.T) {
	result := &forecast.Forecast{
		Points: []forecast.Point{
			{Year: 0, Balance: decimal.NewFromInt(240000)},
			{Year: 1, Balance: decimal.RequireFromString("235051.42")},
		},
	}

	if balance, ok := BalanceAt(result, 1); !ok || !balance.Equal(decimal.RequireFromString("235051.42")) {
		t.Errorf("BalanceAt(1) = %s, %v", balance, ok)
	}
	if _, ok := BalanceAt(result, 2); ok {
		t.Error("expected BalanceAt past the horizon to fail")
	}
	if _, ok := BalanceAt(nil, 0); ok {
		t.Error("expected BalanceAt on nil forecast to fail")
	}
}

func TestRoundsTo(t *testing.T) {
	tests := []struct {
		actual   string
		expected string
		want     bool
	}{
		{"1403.0160996", "1403.02", true},
		{"1403.015", "1403.02", true},
		{"1403.0149", "1403.02", false},
		{"12", "not a number", false},
	}

	for _, tt := range tests {
		if got := RoundsTo(decimal.RequireFromString(tt.actual), tt.expected); got != tt.want {
			t.Errorf("RoundsTo(%s, %s) = %v, expected %v", tt.actual, tt.expected, got, tt.want)
		}
	}
}
