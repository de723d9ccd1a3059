package analytics

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/alexanderramin/lifetrack/internal/domain"
)

const monthLayout = domain.MonthLayout

// MonthKey formats t as "YYYY-MM" in t's own location.
func MonthKey(t time.Time) string {
	return t.Format(monthLayout)
}

// DateKey formats t as "YYYY-MM-DD" in t's own location.
func DateKey(t time.Time) string {
	return t.Format(domain.DateLayout)
}

// ParseDate parses an ISO calendar date as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return t, nil
}

// DayDifference returns the number of whole calendar days from b to a.
// The result is positive when a is after b.
func DayDifference(a, b string) (int, error) {
	ta, err := ParseDate(a)
	if err != nil {
		return 0, err
	}
	tb, err := ParseDate(b)
	if err != nil {
		return 0, err
	}
	return daysBetween(ta, tb), nil
}

// ShiftMonth returns the first day of the month n months away from t.
func ShiftMonth(t time.Time, n int) time.Time {
	return time.Date(t.Year(), t.Month()+time.Month(n), 1, 0, 0, 0, 0, t.Location())
}

// daysBetween expects both values at midnight UTC.
func daysBetween(a, b time.Time) int {
	return int(math.Round(a.Sub(b).Hours() / 24))
}

func inMonth(date, month string) bool {
	return strings.HasPrefix(date, month)
}
