package resample

import (
	"fmt"
	"strings"

	"github.com/sartorproj/tsframe/timeseries"
)

// Reducer collapses the values of one bucket.
type Reducer int

const (
	First Reducer = iota + 1
	Last
	Mean
	Median
	Max
	Min
	Sum
)

var reducerNames = map[Reducer]string{
	First:  "first",
	Last:   "last",
	Mean:   "mean",
	Median: "median",
	Max:    "max",
	Min:    "min",
	Sum:    "sum",
}

// ParseReducer accepts a reducer name such as "mean" or "last".
func ParseReducer(s string) (Reducer, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for r, n := range reducerNames {
		if n == name {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown reducer %q", timeseries.ErrInvalidArgument, s)
}

func (r Reducer) String() string {
	if n, ok := reducerNames[r]; ok {
		return n
	}
	return fmt.Sprintf("Reducer(%d)", int(r))
}

func (r Reducer) valid() bool {
	_, ok := reducerNames[r]
	return ok
}

func (r Reducer) apply(s *timeseries.Series) float64 {
	switch r {
	case First:
		return s.First()
	case Last:
		return s.Last()
	case Mean:
		return s.Mean()
	case Median:
		return s.Median()
	case Max:
		return s.Max()
	case Min:
		return s.Min()
	default:
		return s.Sum()
	}
}
