package datetime

import (
	"testing"
)

func TestValidateMonth(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		wantErr bool
	}{
		{"Valid month", "2025-01", false},
		{"December", "2030-12", false},
		{"Month out of range", "2025-13", true},
		{"Full date", "2025-01-15", true},
		{"Empty", "", true},
		{"Garbage", "invalid-date", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMonth(tt.date)
			if tt.wantErr && err == nil {
				t.Errorf("ValidateMonth(%q) expected error but got none", tt.date)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidateMonth(%q) error = %v", tt.date, err)
			}
		})
	}
}

func TestOffsetDate(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		months   int
		expected string
		wantErr  bool
	}{
		{
			name:     "Add multiple years",
			date:     "2025-01",
			months:   24,
			expected: "2027-01",
		},
		{
			name:     "Subtract multiple years",
			date:     "2025-01",
			months:   -24,
			expected: "2023-01",
		},
		{
			name:     "Cross year boundary forward",
			date:     "2025-06",
			months:   8,
			expected: "2026-02",
		},
		{
			name:     "Cross year boundary backward",
			date:     "2025-06",
			months:   -8,
			expected: "2024-10",
		},
		{
			name:     "Zero months",
			date:     "2025-06",
			months:   0,
			expected: "2025-06",
		},
		{
			name:     "Full mortgage term",
			date:     "2025-01",
			months:   299,
			expected: "2049-12",
		},
		{
			name:     "Last representable month",
			date:     "9999-06",
			months:   6,
			expected: "9999-12",
		},
		{
			name:    "Past year 9999",
			date:    "9999-06",
			months:  7,
			wantErr: true,
		},
		{
			name:    "Before year 1",
			date:    "0001-03",
			months:  -3,
			wantErr: true,
		},
		{
			name:    "Invalid date",
			date:    "January 2025",
			months:  1,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := OffsetDate(tt.date, tt.months)
			if tt.wantErr {
				if err == nil {
					t.Errorf("OffsetDate() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Errorf("OffsetDate() error = %v", err)
				return
			}
			if result != tt.expected {
				t.Errorf("OffsetDate() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestPaymentDate(t *testing.T) {
	tests := []struct {
		start    string
		month    int
		expected string
	}{
		{"2025-01", 1, "2025-01"},
		{"2025-01", 12, "2025-12"},
		{"2025-01", 13, "2026-01"},
		{"2025-11", 236, "2045-06"},
		{"", 5, ""},
	}

	for _, tt := range tests {
		result, err := PaymentDate(tt.start, tt.month)
		if err != nil {
			t.Errorf("PaymentDate(%q, %d) error = %v", tt.start, tt.month, err)
			continue
		}
		if result != tt.expected {
			t.Errorf("PaymentDate(%q, %d) = %q, expected %q", tt.start, tt.month, result, tt.expected)
		}
	}
}
