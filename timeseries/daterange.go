package timeseries

import (
	"fmt"
	"strings"
	"time"
)

// ToDate truncates t to its calendar date at midnight UTC. Every date stored
// in a Frame or Series goes through ToDate, so equal days compare equal.
func ToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Date builds a calendar date.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DateRange is an inclusive [Start, End] range of calendar dates.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange returns the inclusive range between two dates.
func NewDateRange(start, end time.Time) DateRange {
	return DateRange{Start: ToDate(start), End: ToDate(end)}
}

// ParseDateRange parses both bounds at year ("2013"), month ("2013-01") or
// day ("2013-01-01") granularity. The start bound is the first day of its
// period and the end bound the last, so ParseDateRange("2013", "2014")
// covers 2013-01-01 through 2014-12-31. An empty bound is open.
func ParseDateRange(start, end string) (DateRange, error) {
	var r DateRange
	if strings.TrimSpace(start) != "" {
		lo, _, err := parsePartialDate(start)
		if err != nil {
			return DateRange{}, err
		}
		r.Start = lo
	}
	if strings.TrimSpace(end) != "" {
		_, hi, err := parsePartialDate(end)
		if err != nil {
			return DateRange{}, err
		}
		r.End = hi
	}
	if !r.Start.IsZero() && !r.End.IsZero() && r.End.Before(r.Start) {
		return DateRange{}, fmt.Errorf("%w: range end %s before start %s", ErrInvalidArgument,
			r.End.Format(time.DateOnly), r.Start.Format(time.DateOnly))
	}
	return r, nil
}

// Contains reports whether t falls within the range. A zero bound is open.
func (r DateRange) Contains(t time.Time) bool {
	r = r.normalized()
	d := ToDate(t)
	if !r.Start.IsZero() && d.Before(r.Start) {
		return false
	}
	if !r.End.IsZero() && d.After(r.End) {
		return false
	}
	return true
}

// normalized truncates non-zero bounds to calendar days, so a range built
// from a literal with a time of day still includes its first day.
func (r DateRange) normalized() DateRange {
	if !r.Start.IsZero() {
		r.Start = ToDate(r.Start)
	}
	if !r.End.IsZero() {
		r.End = ToDate(r.End)
	}
	return r
}

func (r DateRange) String() string {
	format := func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format(time.DateOnly)
	}
	return format(r.Start) + ".." + format(r.End)
}

// parsePartialDate returns the first and last day covered by s.
func parsePartialDate(s string) (time.Time, time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, t, nil
	}
	if t, err := time.Parse("2006-01", s); err == nil {
		return t, t.AddDate(0, 1, -1), nil
	}
	if t, err := time.Parse("2006", s); err == nil {
		return t, t.AddDate(1, 0, -1), nil
	}
	return time.Time{}, time.Time{}, &ParseError{Value: s, Err: fmt.Errorf("expected YYYY, YYYY-MM or YYYY-MM-DD")}
}
