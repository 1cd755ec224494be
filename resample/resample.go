package resample

import (
	"fmt"
	"sort"
	"time"

	"github.com/sartorproj/tsframe/timeseries"
)

// Bucket is one non-empty period: its key date and the positions of the
// frame rows it holds.
type Bucket struct {
	Key  time.Time
	Rows []int
}

// Resampler buckets frames by calendar period. The zero value ends weeks on
// Sunday.
type Resampler struct {
	WeekEnd time.Weekday
}

var defaultResampler Resampler

// Buckets partitions the frame rows with the default Resampler.
func Buckets(frame *timeseries.Frame, period Period) ([]Bucket, error) {
	return defaultResampler.Buckets(frame, period)
}

// Resample reduces one field per bucket with the default Resampler.
func Resample(frame *timeseries.Frame, field string, period Period, reducer Reducer) (*timeseries.Series, error) {
	return defaultResampler.Resample(frame, field, period, reducer)
}

// ResampleFrame reduces every field with the same reducer.
func ResampleFrame(frame *timeseries.Frame, period Period, reducer Reducer) (*timeseries.Frame, error) {
	return defaultResampler.ResampleFrame(frame, period, reducer)
}

// Aggregate reduces each listed field with its own reducer.
func Aggregate(frame *timeseries.Frame, period Period, reducers map[string]Reducer) (*timeseries.Frame, error) {
	return defaultResampler.Aggregate(frame, period, reducers)
}

// Buckets partitions the frame rows into consecutive non-empty buckets.
// Every row belongs to exactly one bucket.
func (r Resampler) Buckets(frame *timeseries.Frame, period Period) ([]Bucket, error) {
	if !period.valid() {
		return nil, fmt.Errorf("%w: unknown period %v", timeseries.ErrInvalidArgument, period)
	}
	if r.WeekEnd < time.Sunday || r.WeekEnd > time.Saturday {
		return nil, fmt.Errorf("%w: week end %d", timeseries.ErrInvalidArgument, r.WeekEnd)
	}

	index := frame.Index()
	var buckets []Bucket
	var current time.Time
	for i, d := range index {
		g := period.group(d, index[0], r.WeekEnd)
		if len(buckets) == 0 || !g.Equal(current) {
			buckets = append(buckets, Bucket{Key: g})
			current = g
		}
		b := &buckets[len(buckets)-1]
		b.Rows = append(b.Rows, i)
		if period.keyedByLastDate() {
			b.Key = d
		}
	}
	return buckets, nil
}

// Resample reduces field within each bucket. The result has one value per
// non-empty bucket, keyed by the bucket key.
func (r Resampler) Resample(frame *timeseries.Frame, field string, period Period, reducer Reducer) (*timeseries.Series, error) {
	if !reducer.valid() {
		return nil, fmt.Errorf("%w: unknown reducer %v", timeseries.ErrInvalidArgument, reducer)
	}
	col, err := frame.Column(field)
	if err != nil {
		return nil, err
	}
	buckets, err := r.Buckets(frame, period)
	if err != nil {
		return nil, err
	}

	timestamps := make([]time.Time, len(buckets))
	values := make([]float64, len(buckets))
	for i, b := range buckets {
		vals := make([]float64, len(b.Rows))
		for j, row := range b.Rows {
			vals[j] = col.Values[row]
		}
		timestamps[i] = b.Key
		values[i] = reducer.apply(&timeseries.Series{Values: vals})
	}

	return &timeseries.Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       fmt.Sprintf("%s_%s_%s", field, period, reducer),
	}, nil
}

// ResampleFrame reduces every field of the frame within each bucket.
func (r Resampler) ResampleFrame(frame *timeseries.Frame, period Period, reducer Reducer) (*timeseries.Frame, error) {
	reducers := make(map[string]Reducer)
	for _, name := range frame.Fields() {
		reducers[name] = reducer
	}
	return r.Aggregate(frame, period, reducers)
}

// Aggregate reduces each field named in reducers with its reducer. Output
// fields follow the frame's field order.
func (r Resampler) Aggregate(frame *timeseries.Frame, period Period, reducers map[string]Reducer) (*timeseries.Frame, error) {
	names := make([]string, 0, len(reducers))
	for name := range reducers {
		names = append(names, name)
	}
	order := make(map[string]int)
	for i, name := range frame.Fields() {
		order[name] = i
	}
	for _, name := range names {
		if _, ok := order[name]; !ok {
			return nil, fmt.Errorf("%w: field %q", timeseries.ErrKeyNotFound, name)
		}
	}
	sort.Slice(names, func(i, j int) bool { return order[names[i]] < order[names[j]] })

	var index []time.Time
	fields := make([]timeseries.Field, 0, len(names))
	for _, name := range names {
		s, err := r.Resample(frame, name, period, reducers[name])
		if err != nil {
			return nil, err
		}
		index = s.Timestamps
		fields = append(fields, timeseries.Field{Name: name, Values: s.Values})
	}
	if index == nil {
		buckets, err := r.Buckets(frame, period)
		if err != nil {
			return nil, err
		}
		for _, b := range buckets {
			index = append(index, b.Key)
		}
	}

	out, err := timeseries.NewFrame(index, fields...)
	if err != nil {
		return nil, err
	}
	return out.Named(frame.Name()), nil
}
