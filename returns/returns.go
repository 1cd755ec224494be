package returns

import (
	"fmt"
	"math"
	"time"

	"github.com/sartorproj/tsframe/timeseries"
)

// PercentChange computes (x[t] - x[t-1]) / x[t-1] for every row after the
// first, so the result is one shorter than the frame (empty for an empty
// frame). A position is NaN when the predecessor is zero or either value is
// null.
func PercentChange(frame *timeseries.Frame, field string) (*timeseries.Series, error) {
	col, err := frame.Column(field)
	if err != nil {
		return nil, err
	}
	n := col.Len()
	if n < 2 {
		return &timeseries.Series{Timestamps: []time.Time{}, Values: []float64{}, Name: field + "_pct_change"}, nil
	}

	result := make([]float64, n-1)
	for i := 1; i < n; i++ {
		prev, cur := col.Values[i-1], col.Values[i]
		if prev == 0 || math.IsNaN(prev) || math.IsNaN(cur) {
			result[i-1] = math.NaN()
			continue
		}
		result[i-1] = (cur - prev) / prev
	}

	timestamps := make([]time.Time, n-1)
	copy(timestamps, col.Timestamps[1:])

	return &timeseries.Series{
		Timestamps: timestamps,
		Values:     result,
		Name:       field + "_pct_change",
	}, nil
}

// PercentChangeFrame applies PercentChange to every field of the frame.
func PercentChangeFrame(frame *timeseries.Frame) (*timeseries.Frame, error) {
	fields := frame.Fields()
	out := make([]timeseries.Field, 0, len(fields))
	var index []time.Time
	for _, name := range fields {
		s, err := PercentChange(frame, name)
		if err != nil {
			return nil, err
		}
		index = s.Timestamps
		out = append(out, timeseries.Field{Name: name, Values: s.Values})
	}
	if index == nil {
		idx := frame.Index()
		if len(idx) > 1 {
			index = idx[1:]
		}
	}
	result, err := timeseries.NewFrame(index, out...)
	if err != nil {
		return nil, err
	}
	return result.Named(frame.Name()), nil
}

// DropNaN removes the positions holding NaN or infinite values.
func DropNaN(s *timeseries.Series) *timeseries.Series {
	values := make([]float64, 0, len(s.Values))
	timestamps := make([]time.Time, 0, len(s.Values))
	for i, v := range s.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		values = append(values, v)
		if i < len(s.Timestamps) {
			timestamps = append(timestamps, s.Timestamps[i])
		}
	}
	return &timeseries.Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       s.Name,
	}
}

// Diff returns x[i] - x[i-lag]. A positive lag looks back and drops the
// first lag positions; a negative lag looks ahead and drops the last |lag|
// positions. Each value keeps the timestamp of x[i]. A lag of zero fails
// with ErrInvalidArgument; a lag at least as long as the series yields an
// empty series.
func Diff(s *timeseries.Series, lag int) (*timeseries.Series, error) {
	if lag == 0 {
		return nil, fmt.Errorf("%w: lag must be non-zero", timeseries.ErrInvalidArgument)
	}
	n := len(s.Values)
	k := lag
	if k < 0 {
		k = -k
	}
	name := fmt.Sprintf("%s_diff%+d", s.Name, lag)
	if k >= n {
		return &timeseries.Series{Timestamps: []time.Time{}, Values: []float64{}, Name: name}, nil
	}

	// Output positions i run over [lo, hi).
	lo, hi := 0, n
	if lag > 0 {
		lo = lag
	} else {
		hi = n + lag
	}

	result := make([]float64, hi-lo)
	timestamps := make([]time.Time, hi-lo)
	for i := lo; i < hi; i++ {
		result[i-lo] = s.Values[i] - s.Values[i-lag]
		if i < len(s.Timestamps) {
			timestamps[i-lo] = s.Timestamps[i]
		}
	}

	return &timeseries.Series{
		Timestamps: timestamps,
		Values:     result,
		Name:       name,
	}, nil
}
