package align

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/tsframe/timeseries"
)

func day(d int) time.Time {
	return timeseries.Date(2013, time.January, d)
}

func frame(t *testing.T, days []int, values []float64) *timeseries.Frame {
	t.Helper()
	index := make([]time.Time, len(days))
	for i, d := range days {
		index[i] = day(d)
	}
	f, err := timeseries.NewFrame(index, timeseries.Field{Name: "Close", Values: values})
	require.NoError(t, err)
	return f
}

func TestDateDifference(t *testing.T) {
	msft := frame(t, []int{1, 2}, []float64{10, 11})
	amzn := frame(t, []int{1, 2, 3}, []float64{20, 21, 22})

	assert.Equal(t, []time.Time{day(3)}, DateDifference(msft, amzn))
	assert.Empty(t, DateDifference(amzn, msft), "direction matters")
}

func TestCommonDates(t *testing.T) {
	a := frame(t, []int{1, 2, 4, 7}, []float64{1, 2, 4, 7})
	b := frame(t, []int{2, 3, 4, 8}, []float64{2, 3, 4, 8})

	assert.Equal(t, []time.Time{day(2), day(4)}, CommonDates(a, b))
	assert.Equal(t, CommonDates(a, b), CommonDates(b, a))
}

func TestTruncateToCommon(t *testing.T) {
	amzn := frame(t, []int{1, 2, 4, 7}, []float64{1, 2, 4, 7})
	bmw := frame(t, []int{2, 3, 4, 8}, []float64{20, 30, 40, 80})

	ta, tb := TruncateToCommon(amzn, bmw)
	require.Equal(t, ta.Index(), tb.Index())
	assert.Equal(t, []time.Time{day(2), day(4)}, ta.Index())

	ca, err := ta.Column("Close")
	require.NoError(t, err)
	cb, err := tb.Column("Close")
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4}, ca.Values)
	assert.Equal(t, []float64{20, 40}, cb.Values)

	assert.Equal(t, 4, amzn.Len(), "inputs are not modified")
}

func TestTruncateToCommonSelf(t *testing.T) {
	s := frame(t, []int{1, 3, 5}, []float64{1, 3, 5})

	a, b := TruncateToCommon(s, s)
	assert.Equal(t, s.Index(), a.Index())
	assert.Equal(t, s.Index(), b.Index())

	ca, _ := a.Column("Close")
	cs, _ := s.Column("Close")
	assert.Equal(t, cs.Values, ca.Values)
}

func TestDifferencesPartitionUnion(t *testing.T) {
	a := frame(t, []int{1, 2, 4, 7, 9}, make([]float64, 5))
	b := frame(t, []int{2, 3, 4, 8}, make([]float64, 4))

	common := CommonDates(a, b)
	onlyB := DateDifference(a, b)
	onlyA := DateDifference(b, a)

	union := append(append(append([]time.Time{}, common...), onlyB...), onlyA...)
	sort.Slice(union, func(i, j int) bool { return union[i].Before(union[j]) })

	assert.Equal(t, []time.Time{day(1), day(2), day(3), day(4), day(7), day(8), day(9)}, union,
		"common and both differences partition the union")
	assert.Equal(t, []time.Time{day(1), day(3), day(7), day(8), day(9)}, SymmetricDifference(a, b))
}
