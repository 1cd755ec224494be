package resample

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sartorproj/tsframe/timeseries"
)

type unit int

const (
	dayUnit unit = iota + 1
	weekUnit
	monthUnit
	yearUnit
)

// Period is the width of a resampling bucket. The zero value is invalid.
type Period struct {
	unit unit
	n    int
}

// Calendar periods.
var (
	Day   = Period{unit: dayUnit, n: 1}
	Week  = Period{unit: weekUnit, n: 1}
	Month = Period{unit: monthUnit, n: 1}
	Year  = Period{unit: yearUnit, n: 1}
)

// Days returns a period of n consecutive days. Buckets start at the first
// date of the frame and are keyed by their start date.
func Days(n int) Period {
	return Period{unit: dayUnit, n: n}
}

// ParsePeriod accepts D, W, M, Y (and ME, YE, A), the period names, or a
// day count such as 5D.
func ParsePeriod(s string) (Period, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	digits := len(name) - len(strings.TrimLeft(name, "0123456789"))
	if digits > 0 {
		n, err := strconv.Atoi(name[:digits])
		if err != nil || n < 1 {
			return Period{}, fmt.Errorf("%w: invalid period count in %q", timeseries.ErrInvalidArgument, s)
		}
		switch name[digits:] {
		case "d", "day", "days":
			return Days(n), nil
		}
		if n == 1 {
			return ParsePeriod(name[digits:])
		}
		return Period{}, fmt.Errorf("%w: only day periods take a count, got %q", timeseries.ErrInvalidArgument, s)
	}
	switch name {
	case "d", "day", "daily":
		return Day, nil
	case "w", "week", "weekly":
		return Week, nil
	case "m", "me", "month", "monthly":
		return Month, nil
	case "y", "ye", "a", "year", "yearly", "annual":
		return Year, nil
	}
	return Period{}, fmt.Errorf("%w: unknown period %q", timeseries.ErrInvalidArgument, s)
}

func (p Period) String() string {
	if !p.valid() {
		return fmt.Sprintf("Period(%d,%d)", int(p.unit), p.n)
	}
	switch p.unit {
	case weekUnit:
		return "week"
	case monthUnit:
		return "month"
	case yearUnit:
		return "year"
	}
	if p.n > 1 {
		return fmt.Sprintf("%ddays", p.n)
	}
	return "day"
}

func (p Period) valid() bool {
	if p.unit == dayUnit {
		return p.n >= 1
	}
	return p.unit >= weekUnit && p.unit <= yearUnit && p.n == 1
}

// keyedByLastDate reports whether buckets are keyed by their last row
// rather than by the group identifier.
func (p Period) keyedByLastDate() bool {
	return p.unit == monthUnit || p.unit == yearUnit
}

// group returns an identifier shared by every date of the same bucket.
// Multi-day buckets count from origin.
func (p Period) group(t, origin time.Time, weekEnd time.Weekday) time.Time {
	switch p.unit {
	case weekUnit:
		return t.AddDate(0, 0, (int(weekEnd)-int(t.Weekday())+7)%7)
	case monthUnit:
		return timeseries.Date(t.Year(), t.Month(), 1)
	case yearUnit:
		return timeseries.Date(t.Year(), time.January, 1)
	}
	if p.n == 1 {
		return t
	}
	days := int(t.Sub(origin).Hours() / 24)
	return origin.AddDate(0, 0, days-days%p.n)
}
