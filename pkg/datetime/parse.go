// Package datetime provides month arithmetic for payment dates.
package datetime

import (
	"fmt"
	"time"

	"github.com/iwvelando/mortgage-forecast/pkg/constants"
)

const (
	// DateTimeLayout is the format expected in config files and is also the output
	// date format.
	DateTimeLayout = constants.DateTimeLayout
)

// ValidateMonth checks that date is a YYYY-MM month.
func ValidateMonth(date string) error {
	if _, err := time.Parse(DateTimeLayout, date); err != nil {
		return fmt.Errorf("invalid month %q: expected YYYY-MM", date)
	}
	return nil
}

// OffsetDate returns the month offset by the given number of months relative
// to date.
func OffsetDate(date string, months int) (string, error) {
	t, err := time.Parse(DateTimeLayout, date)
	if err != nil {
		return date, fmt.Errorf("invalid month %q: expected YYYY-MM", date)
	}
	offset := t.AddDate(0, months, 0)
	if offset.Year() < 1 || offset.Year() > 9999 {
		return date, fmt.Errorf("month %q offset by %d months falls outside years 1-9999", date, months)
	}
	return offset.Format(DateTimeLayout), nil
}

// PaymentDate returns the month in which payment number month (1-based) of a
// loan starting in start falls due. An empty start yields an empty date.
func PaymentDate(start string, month int) (string, error) {
	if start == "" {
		return "", nil
	}
	return OffsetDate(start, month-1)
}
