package timeseries

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// Field is one named numeric column of a Frame. NaN marks a null cell.
type Field struct {
	Name   string
	Values []float64
}

// Frame is a date-indexed table of numeric fields. The index is strictly
// ascending and every field holds exactly one value per index entry.
//
// A Frame is never modified after construction: every operation returns a
// new Frame, so one Frame can feed several computations concurrently.
type Frame struct {
	name   string
	index  []time.Time
	fields []string
	data   map[string][]float64
}

// NewFrame builds a Frame from an index and its fields. Dates are truncated
// to calendar days. It fails with ErrInvalidArgument when the index is not
// strictly ascending, a field length differs from the index length, or a
// field name is empty or repeated. The inputs are copied.
func NewFrame(index []time.Time, fields ...Field) (*Frame, error) {
	idx := make([]time.Time, len(index))
	for i, t := range index {
		idx[i] = ToDate(t)
		if i > 0 && !idx[i].After(idx[i-1]) {
			return nil, fmt.Errorf("%w: index not strictly ascending at position %d (%s)",
				ErrInvalidArgument, i, idx[i].Format(time.DateOnly))
		}
	}

	f := &Frame{
		index:  idx,
		fields: make([]string, 0, len(fields)),
		data:   make(map[string][]float64, len(fields)),
	}
	for _, fd := range fields {
		if fd.Name == "" {
			return nil, fmt.Errorf("%w: empty field name", ErrInvalidArgument)
		}
		if _, dup := f.data[fd.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate field %q", ErrInvalidArgument, fd.Name)
		}
		if len(fd.Values) != len(idx) {
			return nil, fmt.Errorf("%w: field %q has %d values for %d dates",
				ErrInvalidArgument, fd.Name, len(fd.Values), len(idx))
		}
		vals := make([]float64, len(fd.Values))
		copy(vals, fd.Values)
		f.fields = append(f.fields, fd.Name)
		f.data[fd.Name] = vals
	}
	return f, nil
}

// Name returns the label attached with Named, if any.
func (f *Frame) Name() string {
	return f.name
}

// Named returns a copy of the frame labelled name.
func (f *Frame) Named(name string) *Frame {
	out := *f
	out.name = name
	return &out
}

// Len returns the number of rows.
func (f *Frame) Len() int {
	return len(f.index)
}

// Index returns a copy of the dates.
func (f *Frame) Index() []time.Time {
	out := make([]time.Time, len(f.index))
	copy(out, f.index)
	return out
}

// Fields returns the field names in load order.
func (f *Frame) Fields() []string {
	out := make([]string, len(f.fields))
	copy(out, f.fields)
	return out
}

// Has reports whether date is in the index.
func (f *Frame) Has(date time.Time) bool {
	_, ok := f.position(date)
	return ok
}

// Column returns one field as a Series.
func (f *Frame) Column(field string) (*Series, error) {
	vals, ok := f.data[field]
	if !ok {
		return nil, fmt.Errorf("%w: field %q", ErrKeyNotFound, field)
	}
	s, err := NewWithTimestamps(f.index, vals)
	if err != nil {
		return nil, err
	}
	s.Name = field
	return s, nil
}

// At returns the row at date.
func (f *Frame) At(date time.Time) (map[string]float64, error) {
	pos, ok := f.position(date)
	if !ok {
		return nil, fmt.Errorf("%w: date %s", ErrKeyNotFound, ToDate(date).Format(time.DateOnly))
	}
	row := make(map[string]float64, len(f.fields))
	for _, name := range f.fields {
		row[name] = f.data[name][pos]
	}
	return row, nil
}

// DropNulls returns the rows where every field is present.
func (f *Frame) DropNulls() *Frame {
	keep := make([]int, 0, len(f.index))
	for i := range f.index {
		complete := true
		for _, name := range f.fields {
			if math.IsNaN(f.data[name][i]) {
				complete = false
				break
			}
		}
		if complete {
			keep = append(keep, i)
		}
	}
	return f.rows(keep)
}

// DropDate returns the frame without the row at date. It fails with
// ErrKeyNotFound when the date is absent; see DropDateIfPresent for the
// lenient form.
func (f *Frame) DropDate(date time.Time) (*Frame, error) {
	pos, ok := f.position(date)
	if !ok {
		return nil, fmt.Errorf("%w: date %s", ErrKeyNotFound, ToDate(date).Format(time.DateOnly))
	}
	return f.without(pos), nil
}

// DropDateIfPresent is DropDate that returns the receiver unchanged when the
// date is absent.
func (f *Frame) DropDateIfPresent(date time.Time) *Frame {
	pos, ok := f.position(date)
	if !ok {
		return f
	}
	return f.without(pos)
}

// Slice returns the rows whose dates fall within r, bounds included.
func (f *Frame) Slice(r DateRange) *Frame {
	r = r.normalized()
	lo := 0
	if !r.Start.IsZero() {
		lo = sort.Search(len(f.index), func(i int) bool { return !f.index[i].Before(r.Start) })
	}
	hi := len(f.index)
	if !r.End.IsZero() {
		hi = sort.Search(len(f.index), func(i int) bool { return f.index[i].After(r.End) })
	}
	keep := make([]int, 0, max(hi-lo, 0))
	for i := lo; i < hi; i++ {
		keep = append(keep, i)
	}
	return f.rows(keep)
}

// Select returns the rows at the given dates, in ascending date order.
// Duplicate dates are collapsed. It fails with ErrKeyNotFound if any date is
// absent.
func (f *Frame) Select(dates []time.Time) (*Frame, error) {
	seen := make(map[int]struct{}, len(dates))
	keep := make([]int, 0, len(dates))
	for _, d := range dates {
		pos, ok := f.position(d)
		if !ok {
			return nil, fmt.Errorf("%w: date %s", ErrKeyNotFound, ToDate(d).Format(time.DateOnly))
		}
		if _, dup := seen[pos]; dup {
			continue
		}
		seen[pos] = struct{}{}
		keep = append(keep, pos)
	}
	sort.Ints(keep)
	return f.rows(keep), nil
}

// Where returns the rows whose value in field satisfies pred. Null cells are
// passed to pred as NaN.
func (f *Frame) Where(field string, pred func(float64) bool) (*Frame, error) {
	vals, ok := f.data[field]
	if !ok {
		return nil, fmt.Errorf("%w: field %q", ErrKeyNotFound, field)
	}
	keep := make([]int, 0, len(vals))
	for i, v := range vals {
		if pred(v) {
			keep = append(keep, i)
		}
	}
	return f.rows(keep), nil
}

func (f *Frame) position(date time.Time) (int, bool) {
	d := ToDate(date)
	i := sort.Search(len(f.index), func(i int) bool { return !f.index[i].Before(d) })
	if i < len(f.index) && f.index[i].Equal(d) {
		return i, true
	}
	return 0, false
}

func (f *Frame) without(pos int) *Frame {
	keep := make([]int, 0, len(f.index)-1)
	for i := range f.index {
		if i != pos {
			keep = append(keep, i)
		}
	}
	return f.rows(keep)
}

// rows builds a new frame from ascending row positions.
func (f *Frame) rows(keep []int) *Frame {
	out := &Frame{
		name:   f.name,
		index:  make([]time.Time, len(keep)),
		fields: f.fields,
		data:   make(map[string][]float64, len(f.fields)),
	}
	for j, i := range keep {
		out.index[j] = f.index[i]
	}
	for _, name := range f.fields {
		src := f.data[name]
		vals := make([]float64, len(keep))
		for j, i := range keep {
			vals[j] = src[i]
		}
		out.data[name] = vals
	}
	return out
}
