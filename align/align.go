package align

import (
	"sort"
	"time"

	"github.com/sartorproj/tsframe/timeseries"
)

// CommonDates returns the dates present in both frames, ascending.
func CommonDates(a, b *timeseries.Frame) []time.Time {
	inB := dateSet(b)
	common := []time.Time{}
	for _, d := range a.Index() {
		if _, ok := inB[d]; ok {
			common = append(common, d)
		}
	}
	return common
}

// TruncateToCommon restricts both frames to their common dates. Row i of the
// first result and row i of the second share the same date.
func TruncateToCommon(a, b *timeseries.Frame) (*timeseries.Frame, *timeseries.Frame) {
	common := CommonDates(a, b)
	// Every common date is in both indices, so Select cannot fail.
	ta, _ := a.Select(common)
	tb, _ := b.Select(common)
	return ta, tb
}

// DateDifference returns the dates present in b but absent from a
// ("b minus a"), ascending. Swap the arguments for the other direction.
func DateDifference(a, b *timeseries.Frame) []time.Time {
	inA := dateSet(a)
	diff := []time.Time{}
	for _, d := range b.Index() {
		if _, ok := inA[d]; !ok {
			diff = append(diff, d)
		}
	}
	return diff
}

// SymmetricDifference returns the dates present in exactly one frame,
// ascending.
func SymmetricDifference(a, b *timeseries.Frame) []time.Time {
	out := append(DateDifference(a, b), DateDifference(b, a)...)
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

func dateSet(f *timeseries.Frame) map[time.Time]struct{} {
	idx := f.Index()
	set := make(map[time.Time]struct{}, len(idx))
	for _, d := range idx {
		set[d] = struct{}{}
	}
	return set
}
