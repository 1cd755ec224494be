package timeseries

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seriesOf(values ...float64) *Series {
	ts := make([]time.Time, len(values))
	for i := range ts {
		ts[i] = Date(2020, time.January, 1+i)
	}
	return &Series{Timestamps: ts, Values: values}
}

func TestNewWithTimestamps(t *testing.T) {
	ts := []time.Time{
		time.Date(2020, 1, 1, 15, 30, 0, 0, time.UTC),
		time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC),
	}
	values := []float64{1, 2}

	s, err := NewWithTimestamps(ts, values)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, Date(2020, time.January, 1), s.Timestamps[0], "timestamps are truncated to dates")

	values[0] = 100
	assert.Equal(t, 1.0, s.Values[0], "values are copied")

	_, err = NewWithTimestamps(ts, []float64{1})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestMean(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{"simple", []float64{1, 2, 3, 4, 5}, 3.0},
		{"single", []float64{5}, 5.0},
		{"negative", []float64{-1, -2, -3}, -2.0},
		{"mixed", []float64{-1, 0, 1}, 0.0},
		{"with nulls", []float64{1, math.NaN(), 3}, 2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, seriesOf(tt.values...).Mean(), 1e-10)
		})
	}

	assert.True(t, math.IsNaN(seriesOf().Mean()), "empty mean is NaN")
}

func TestMinMax(t *testing.T) {
	s := seriesOf(5, 2, math.NaN(), 8, 1, 9, 3)

	assert.Equal(t, 1.0, s.Min())
	assert.Equal(t, 9.0, s.Max())
	assert.True(t, math.IsNaN(seriesOf(math.NaN()).Min()))
	assert.True(t, math.IsNaN(seriesOf().Max()))
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{"odd", []float64{1, 3, 5}, 3.0},
		{"even", []float64{1, 2, 3, 4}, 2.5},
		{"single", []float64{5}, 5.0},
		{"unsorted", []float64{5, 1, 3}, 3.0},
		{"nulls ignored", []float64{math.NaN(), 5, 1, 3}, 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, seriesOf(tt.values...).Median(), 1e-10)
		})
	}
}

func TestFirstLastSum(t *testing.T) {
	s := seriesOf(math.NaN(), 2, 3, math.NaN())

	assert.Equal(t, 2.0, s.First())
	assert.Equal(t, 3.0, s.Last())
	assert.Equal(t, 5.0, s.Sum())
	assert.Equal(t, 2, s.Count())
	assert.Equal(t, 0.0, seriesOf().Sum())
}

func TestSlice(t *testing.T) {
	s := seriesOf(1, 2, 3, 4, 5)
	sliced := s.Slice(1, 4)

	assert.Equal(t, []float64{2, 3, 4}, sliced.Values)
	assert.Equal(t, Date(2020, time.January, 2), sliced.Timestamps[0])
	assert.Equal(t, 0, s.Slice(4, 2).Len())
}

func TestCopy(t *testing.T) {
	s := seriesOf(1, 2, 3)
	copied := s.Copy()

	s.Values[0] = 100

	assert.Equal(t, 1.0, copied.Values[0], "copy was modified when original changed")
}
