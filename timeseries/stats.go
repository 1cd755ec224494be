package timeseries

import (
	"fmt"
	"math"
	"time"
)

// Mean returns the mean of every field, ignoring nulls.
func (f *Frame) Mean() (map[string]float64, error) {
	return f.reduce((*Series).Mean)
}

// Min returns the minimum of every field, ignoring nulls.
func (f *Frame) Min() (map[string]float64, error) {
	return f.reduce((*Series).Min)
}

// Max returns the maximum of every field, ignoring nulls.
func (f *Frame) Max() (map[string]float64, error) {
	return f.reduce((*Series).Max)
}

// Median returns the median of every field, ignoring nulls.
func (f *Frame) Median() (map[string]float64, error) {
	return f.reduce((*Series).Median)
}

// ArgMin returns every date at which field takes its minimum, ascending.
func (f *Frame) ArgMin(field string) ([]time.Time, error) {
	return f.argExtreme(field, (*Series).Min)
}

// ArgMax returns every date at which field takes its maximum, ascending.
func (f *Frame) ArgMax(field string) ([]time.Time, error) {
	return f.argExtreme(field, (*Series).Max)
}

func (f *Frame) reduce(fn func(*Series) float64) (map[string]float64, error) {
	if f.Len() == 0 {
		return nil, ErrEmptySeries
	}
	out := make(map[string]float64, len(f.fields))
	for _, name := range f.fields {
		out[name] = fn(&Series{Values: f.data[name]})
	}
	return out, nil
}

func (f *Frame) argExtreme(field string, fn func(*Series) float64) ([]time.Time, error) {
	vals, ok := f.data[field]
	if !ok {
		return nil, fmt.Errorf("%w: field %q", ErrKeyNotFound, field)
	}
	target := fn(&Series{Values: vals})
	if math.IsNaN(target) {
		return nil, fmt.Errorf("%w: field %q has no values", ErrEmptySeries, field)
	}
	var dates []time.Time
	for i, v := range vals {
		if v == target {
			dates = append(dates, f.index[i])
		}
	}
	return dates, nil
}
